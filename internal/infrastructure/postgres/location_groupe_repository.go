package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

var _ repository.LocationGroupeRepository = (*LocationGroupeRepo)(nil)

const colonnesGroupe = `id, nom_groupe, telephone, email, date_essai, vendeur, clients, statut, notes,
		created_at, updated_at`

// LocationGroupeRepo implémentation du port LocationGroupeRepository sur
// PostgreSQL. Les clients du groupe vivent en JSONB : ils ne sont jamais
// requêtés individuellement.
type LocationGroupeRepo struct {
	q Querier
}

// NewLocationGroupeRepository construit l'adaptateur des locations groupées.
func NewLocationGroupeRepository(q Querier) *LocationGroupeRepo {
	return &LocationGroupeRepo{q: q}
}

// Create persiste une nouvelle fiche.
func (r *LocationGroupeRepo) Create(ctx context.Context, g *entity.LocationGroupe) error {
	query := `
		INSERT INTO locations_groupees (id, nom_groupe, telephone, email, date_essai, vendeur, clients,
			statut, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		g.ID, g.NomGroupe, g.Telephone, g.Email, g.DateEssai, g.Vendeur, g.Clients,
		g.Statut, g.Notes, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location groupee: %w", err)
	}
	return nil
}

// GetByID récupère une fiche par ID.
func (r *LocationGroupeRepo) GetByID(ctx context.Context, id string) (*entity.LocationGroupe, error) {
	query := `SELECT ` + colonnesGroupe + ` FROM locations_groupees WHERE id = $1`
	var g entity.LocationGroupe
	err := r.q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.NomGroupe, &g.Telephone, &g.Email, &g.DateEssai, &g.Vendeur, &g.Clients,
		&g.Statut, &g.Notes, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location groupee: %w", err)
	}
	return &g, nil
}

// Update réécrit la fiche entière, statut compris.
func (r *LocationGroupeRepo) Update(ctx context.Context, g *entity.LocationGroupe) error {
	query := `
		UPDATE locations_groupees
		SET nom_groupe = $2, telephone = $3, email = $4, date_essai = $5, vendeur = $6, clients = $7,
			statut = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		g.ID, g.NomGroupe, g.Telephone, g.Email, g.DateEssai, g.Vendeur, g.Clients,
		g.Statut, g.Notes, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location groupee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List renvoie une page de fiches, filtrable par statut, plus le total.
func (r *LocationGroupeRepo) List(ctx context.Context, statut string, limit, offset int) ([]*entity.LocationGroupe, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	i := 1
	if statut != "" {
		where += fmt.Sprintf(" AND statut = $%d", i)
		args = append(args, statut)
		i++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM locations_groupees`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count locations groupees: %w", err)
	}

	query := `SELECT ` + colonnesGroupe + ` FROM locations_groupees` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list locations groupees: %w", err)
	}
	defer rows.Close()

	var groupes []*entity.LocationGroupe
	for rows.Next() {
		var g entity.LocationGroupe
		if err := rows.Scan(
			&g.ID, &g.NomGroupe, &g.Telephone, &g.Email, &g.DateEssai, &g.Vendeur, &g.Clients,
			&g.Statut, &g.Notes, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan location groupee: %w", err)
		}
		groupes = append(groupes, &g)
	}
	return groupes, total, rows.Err()
}

// Delete supprime une fiche.
func (r *LocationGroupeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM locations_groupees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location groupee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
