package postgres

import (
	"context"
	"fmt"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

var _ repository.AlerteRepository = (*AlerteRepo)(nil)

// AlerteRepo implémentation du port AlerteRepository sur PostgreSQL. La
// contrainte d'unicité sur article_id garantit une alerte par article.
type AlerteRepo struct {
	q Querier
}

// NewAlerteRepository construit l'adaptateur des alertes. Passer pool ou tx.
func NewAlerteRepository(q Querier) *AlerteRepo {
	return &AlerteRepo{q: q}
}

// Upsert crée l'alerte ou réactive celle de l'article avec les valeurs à jour.
func (r *AlerteRepo) Upsert(ctx context.Context, a *entity.AlerteStock) error {
	query := `
		INSERT INTO alertes_stock (id, article_id, quantite_actuelle, seuil, active, message, detectee_le)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (article_id)
		DO UPDATE SET quantite_actuelle = $3, seuil = $4, active = $5, message = $6, detectee_le = $7`
	_, err := r.q.Exec(ctx, query, a.ID, a.ArticleID, a.QuantiteActuelle, a.Seuil, a.Active, a.Message, a.DetecteeLe)
	if err != nil {
		return fmt.Errorf("upsert alerte: %w", err)
	}
	return nil
}

// Desactiver coupe l'alerte de l'article. Sans alerte existante, no-op.
func (r *AlerteRepo) Desactiver(ctx context.Context, articleID string) error {
	_, err := r.q.Exec(ctx, `UPDATE alertes_stock SET active = false WHERE article_id = $1`, articleID)
	if err != nil {
		return fmt.Errorf("desactiver alerte: %w", err)
	}
	return nil
}

// ListActives renvoie les alertes en cours, les plus récentes d'abord.
func (r *AlerteRepo) ListActives(ctx context.Context) ([]*entity.AlerteStock, error) {
	query := `
		SELECT id, article_id, quantite_actuelle, seuil, active, message, detectee_le
		FROM alertes_stock
		WHERE active = true
		ORDER BY detectee_le DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list alertes: %w", err)
	}
	defer rows.Close()

	var alertes []*entity.AlerteStock
	for rows.Next() {
		var a entity.AlerteStock
		if err := rows.Scan(&a.ID, &a.ArticleID, &a.QuantiteActuelle, &a.Seuil, &a.Active, &a.Message, &a.DetecteeLe); err != nil {
			return nil, fmt.Errorf("scan alerte: %w", err)
		}
		alertes = append(alertes, &a)
	}
	return alertes, rows.Err()
}
