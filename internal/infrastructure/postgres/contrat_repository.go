package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	"github.com/atelier-ceremonie/location-api/pkg/normalize"
)

var _ repository.ContratRepository = (*ContratRepo)(nil)

const colonnesContrat = `id, numero, client_nom, client_prenom, telephone, email, mensurations, lignes,
		caution, date_essai, date_ceremonie, date_retrait, date_retour_prevu, vendeur, statut, notes,
		created_at, updated_at`

// ContratRepo implémentation du port ContratRepository sur PostgreSQL.
// Mensurations et lignes de tenue vivent en JSONB sur la ligne du contrat ;
// les paiements ont leur propre table.
type ContratRepo struct {
	q Querier
}

// NewContratRepository construit l'adaptateur des contrats. Passer pool ou tx.
func NewContratRepository(q Querier) *ContratRepo {
	return &ContratRepo{q: q}
}

// Create persiste un nouveau contrat. Le numéro est unique : un doublon
// signale un bug d'allocation, pas une erreur utilisateur.
func (r *ContratRepo) Create(ctx context.Context, c *entity.ContratLocation) error {
	query := `
		INSERT INTO contrats (id, numero, client_nom, client_nom_norm, client_prenom, telephone, email,
			mensurations, lignes, caution, date_essai, date_ceremonie, date_retrait, date_retour_prevu,
			vendeur, statut, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Numero, c.ClientNom, nomNorm(c), c.ClientPrenom, c.Telephone, c.Email,
		c.Mensurations, c.Lignes, c.Caution, c.DateEssai, c.DateCeremonie, c.DateRetrait, c.DateRetourPrevu,
		c.Vendeur, c.Statut, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contrat: %w", err)
	}
	return nil
}

// GetByID charge le contrat complet, paiements inclus.
func (r *ContratRepo) GetByID(ctx context.Context, id string) (*entity.ContratLocation, error) {
	query := `SELECT ` + colonnesContrat + ` FROM contrats WHERE id = $1`
	var c entity.ContratLocation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Numero, &c.ClientNom, &c.ClientPrenom, &c.Telephone, &c.Email, &c.Mensurations, &c.Lignes,
		&c.Caution, &c.DateEssai, &c.DateCeremonie, &c.DateRetrait, &c.DateRetourPrevu, &c.Vendeur, &c.Statut,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contrat: %w", err)
	}

	paiements, err := r.paiementsDe(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Paiements = paiements
	return &c, nil
}

// Update écrit le contrat hors statut (UpdateStatut) et hors paiements
// (AjouterPaiement).
func (r *ContratRepo) Update(ctx context.Context, c *entity.ContratLocation) error {
	query := `
		UPDATE contrats
		SET client_nom = $2, client_nom_norm = $3, client_prenom = $4, telephone = $5, email = $6,
			mensurations = $7, lignes = $8, caution = $9, date_essai = $10, date_ceremonie = $11,
			date_retrait = $12, date_retour_prevu = $13, vendeur = $14, notes = $15, updated_at = $16
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.ClientNom, nomNorm(c), c.ClientPrenom, c.Telephone, c.Email,
		c.Mensurations, c.Lignes, c.Caution, c.DateEssai, c.DateCeremonie,
		c.DateRetrait, c.DateRetourPrevu, c.Vendeur, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contrat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatut écrit le statut seul. La légalité de la transition a déjà été
// vérifiée en amont.
func (r *ContratRepo) UpdateStatut(ctx context.Context, id, statut string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE contrats SET statut = $2, updated_at = NOW() WHERE id = $1`, id, statut)
	if err != nil {
		return fmt.Errorf("update statut contrat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List renvoie une page de contrats sans leurs paiements (chargés au détail),
// plus le total hors pagination.
func (r *ContratRepo) List(ctx context.Context, filtre repository.FiltreContrats, limit, offset int) ([]*entity.ContratLocation, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	i := 1
	if filtre.Statut != "" {
		where += fmt.Sprintf(" AND statut = $%d", i)
		args = append(args, filtre.Statut)
		i++
	}
	if filtre.Recherche != "" {
		where += fmt.Sprintf(" AND client_nom_norm LIKE '%%' || $%d || '%%'", i)
		args = append(args, filtre.Recherche)
		i++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM contrats`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contrats: %w", err)
	}

	query := `SELECT ` + colonnesContrat + ` FROM contrats` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contrats: %w", err)
	}
	defer rows.Close()

	var contrats []*entity.ContratLocation
	for rows.Next() {
		var c entity.ContratLocation
		if err := rows.Scan(
			&c.ID, &c.Numero, &c.ClientNom, &c.ClientPrenom, &c.Telephone, &c.Email, &c.Mensurations, &c.Lignes,
			&c.Caution, &c.DateEssai, &c.DateCeremonie, &c.DateRetrait, &c.DateRetourPrevu, &c.Vendeur, &c.Statut,
			&c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan contrat: %w", err)
		}
		contrats = append(contrats, &c)
	}
	return contrats, total, rows.Err()
}

// AjouterPaiement ajoute un versement au contrat.
func (r *ContratRepo) AjouterPaiement(ctx context.Context, p *entity.Paiement) error {
	query := `
		INSERT INTO paiements (id, contrat_id, montant, mode, date_paiement, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, p.ID, p.ContratID, p.Montant, p.Mode, p.DatePaiement, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert paiement: %w", err)
	}
	return nil
}

// Delete supprime le contrat et ses paiements (cascade).
func (r *ContratRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM contrats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contrat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContratRepo) paiementsDe(ctx context.Context, contratID string) ([]entity.Paiement, error) {
	query := `
		SELECT id, contrat_id, montant, mode, date_paiement, created_at
		FROM paiements
		WHERE contrat_id = $1
		ORDER BY date_paiement ASC`
	rows, err := r.q.Query(ctx, query, contratID)
	if err != nil {
		return nil, fmt.Errorf("list paiements: %w", err)
	}
	defer rows.Close()

	var paiements []entity.Paiement
	for rows.Next() {
		var p entity.Paiement
		if err := rows.Scan(&p.ID, &p.ContratID, &p.Montant, &p.Mode, &p.DatePaiement, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan paiement: %w", err)
		}
		paiements = append(paiements, p)
	}
	return paiements, rows.Err()
}

func nomNorm(c *entity.ContratLocation) string {
	return normalize.Fold(c.ClientNom + " " + c.ClientPrenom)
}
