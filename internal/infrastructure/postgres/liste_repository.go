package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

var _ repository.ListeRepository = (*ListeRepo)(nil)

// ListeRepo implémentation du port ListeRepository sur PostgreSQL. Les
// participants vivent dans leur propre table, remplacés en bloc à chaque
// Update ; le repo prend le pool directement pour ouvrir ses transactions.
type ListeRepo struct {
	pool *pgxpool.Pool
}

// NewListeRepository construit l'adaptateur des listes.
func NewListeRepository(pool *pgxpool.Pool) *ListeRepo {
	return &ListeRepo{pool: pool}
}

// Create persiste une liste et ses participants.
func (r *ListeRepo) Create(ctx context.Context, l *entity.Liste) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO listes (id, numero, nom, description, couleur, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.Exec(ctx, query, l.ID, l.Numero, l.Nom, l.Description, l.Couleur, l.CreatedAt, l.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert liste: %w", err)
	}
	if err := insererParticipants(ctx, tx, l); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID charge la liste et ses participants dans l'ordre.
func (r *ListeRepo) GetByID(ctx context.Context, id string) (*entity.Liste, error) {
	query := `SELECT id, numero, nom, description, couleur, created_at, updated_at FROM listes WHERE id = $1`
	var l entity.Liste
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Numero, &l.Nom, &l.Description, &l.Couleur, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get liste: %w", err)
	}

	participants, err := r.participantsDe(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Participants = participants
	return &l, nil
}

// Update réécrit la liste et remplace l'ensemble de ses participants dans une
// même transaction : l'état persisté reflète toujours exactement l'entité.
func (r *ListeRepo) Update(ctx context.Context, l *entity.Liste) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE listes SET nom = $2, description = $3, couleur = $4, updated_at = $5 WHERE id = $1`
	tag, err := tx.Exec(ctx, query, l.ID, l.Nom, l.Description, l.Couleur, l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update liste: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM liste_participants WHERE liste_id = $1`, l.ID); err != nil {
		return fmt.Errorf("delete participants: %w", err)
	}
	if err := insererParticipants(ctx, tx, l); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List renvoie une page de listes, participants inclus, plus le total.
func (r *ListeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Liste, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM listes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count listes: %w", err)
	}

	query := `
		SELECT id, numero, nom, description, couleur, created_at, updated_at
		FROM listes
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list listes: %w", err)
	}
	defer rows.Close()

	var listes []*entity.Liste
	for rows.Next() {
		var l entity.Liste
		if err := rows.Scan(&l.ID, &l.Numero, &l.Nom, &l.Description, &l.Couleur, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan liste: %w", err)
		}
		listes = append(listes, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, l := range listes {
		participants, err := r.participantsDe(ctx, l.ID)
		if err != nil {
			return nil, 0, err
		}
		l.Participants = participants
	}
	return listes, total, nil
}

// FindByContrat renvoie les listes auxquelles un contrat participe.
func (r *ListeRepo) FindByContrat(ctx context.Context, contratID string) ([]*entity.Liste, error) {
	query := `
		SELECT l.id, l.numero, l.nom, l.description, l.couleur, l.created_at, l.updated_at
		FROM listes l
		JOIN liste_participants p ON p.liste_id = l.id
		WHERE p.contrat_id = $1
		ORDER BY l.created_at DESC`
	rows, err := r.pool.Query(ctx, query, contratID)
	if err != nil {
		return nil, fmt.Errorf("listes par contrat: %w", err)
	}
	defer rows.Close()

	var listes []*entity.Liste
	for rows.Next() {
		var l entity.Liste
		if err := rows.Scan(&l.ID, &l.Numero, &l.Nom, &l.Description, &l.Couleur, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan liste: %w", err)
		}
		listes = append(listes, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, l := range listes {
		participants, err := r.participantsDe(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		l.Participants = participants
	}
	return listes, nil
}

// Delete supprime la liste et ses rattachements (cascade).
func (r *ListeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM listes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete liste: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ListeRepo) participantsDe(ctx context.Context, listeID string) ([]entity.Participant, error) {
	query := `
		SELECT contrat_id, role, ordre
		FROM liste_participants
		WHERE liste_id = $1
		ORDER BY ordre ASC`
	rows, err := r.pool.Query(ctx, query, listeID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var participants []entity.Participant
	for rows.Next() {
		var p entity.Participant
		if err := rows.Scan(&p.ContratID, &p.Role, &p.Ordre); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func insererParticipants(ctx context.Context, tx pgx.Tx, l *entity.Liste) error {
	for _, p := range l.Participants {
		_, err := tx.Exec(ctx,
			`INSERT INTO liste_participants (liste_id, contrat_id, role, ordre) VALUES ($1, $2, $3, $4)`,
			l.ID, p.ContratID, p.Role, p.Ordre)
		if err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}
	}
	return nil
}
