package postgres

import (
	"context"
	"fmt"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	"github.com/atelier-ceremonie/location-api/internal/domain/stock"
)

var _ repository.MouvementRepository = (*MouvementRepo)(nil)

// MouvementRepo implémentation du port MouvementRepository sur PostgreSQL.
// Le journal est append-only ; aucune méthode de mise à jour ni de
// suppression n'existe ici.
type MouvementRepo struct {
	q Querier
}

// NewMouvementRepository construit l'adaptateur du journal de stock. Passer
// pool ou tx (Querier).
func NewMouvementRepository(q Querier) *MouvementRepo {
	return &MouvementRepo{q: q}
}

// Create ajoute une ligne au journal.
func (r *MouvementRepo) Create(ctx context.Context, m *entity.MouvementStock) error {
	query := `
		INSERT INTO mouvements_stock (id, article_id, type, quantite, date_mouvement,
			date_prevue, date_retour_prevue, contrat_id, effectue_par, commentaire, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ArticleID, m.Type, m.Quantite, m.DateMouvement,
		m.DatePrevue, m.DateRetourPrevue, m.ContratID, m.EffectuePar, m.Commentaire, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mouvement: %w", err)
	}
	return nil
}

// List renvoie l'historique d'un article, du plus récent au plus ancien.
func (r *MouvementRepo) List(ctx context.Context, articleID string, limit, offset int) ([]*entity.MouvementStock, int, error) {
	var total int
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM mouvements_stock WHERE article_id = $1`, articleID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count mouvements: %w", err)
	}

	query := `
		SELECT id, article_id, type, quantite, date_mouvement,
			date_prevue, date_retour_prevue, contrat_id, effectue_par, commentaire, created_at
		FROM mouvements_stock
		WHERE article_id = $1
		ORDER BY date_mouvement DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, articleID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list mouvements: %w", err)
	}
	defer rows.Close()

	var mouvements []*entity.MouvementStock
	for rows.Next() {
		var m entity.MouvementStock
		if err := rows.Scan(
			&m.ID, &m.ArticleID, &m.Type, &m.Quantite, &m.DateMouvement,
			&m.DatePrevue, &m.DateRetourPrevue, &m.ContratID, &m.EffectuePar, &m.Commentaire, &m.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan mouvement: %w", err)
		}
		mouvements = append(mouvements, &m)
	}
	return mouvements, total, rows.Err()
}

// ReservationsOuvertes reconstruit, depuis le journal, les réservations d'un
// article qui courent encore. Le nettage par contrat est porté par
// stock.FenetresOuvertes ; ici on ne fait que lire les écritures concernées
// dans l'ordre du journal.
func (r *MouvementRepo) ReservationsOuvertes(ctx context.Context, articleID string) ([]stock.FenetreReservation, error) {
	query := `
		SELECT type, quantite, date_prevue, date_retour_prevue, contrat_id
		FROM mouvements_stock
		WHERE article_id = $1 AND type IN ('reservation', 'retour', 'annulation')
		ORDER BY date_mouvement, created_at`
	rows, err := r.q.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("reservations ouvertes: %w", err)
	}
	defer rows.Close()

	var mouvements []*entity.MouvementStock
	for rows.Next() {
		var m entity.MouvementStock
		if err := rows.Scan(&m.Type, &m.Quantite, &m.DatePrevue, &m.DateRetourPrevue, &m.ContratID); err != nil {
			return nil, fmt.Errorf("scan reservation ouverte: %w", err)
		}
		mouvements = append(mouvements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stock.FenetresOuvertes(mouvements), nil
}
