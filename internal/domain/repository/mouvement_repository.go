package repository

import (
	"context"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/stock"
)

// MouvementRepository définit le port du journal de stock. Append-only :
// pas de Update ni de Delete, le journal est la piste d'audit.
type MouvementRepository interface {
	Create(ctx context.Context, mouvement *entity.MouvementStock) error
	List(ctx context.Context, articleID string, limit, offset int) ([]*entity.MouvementStock, int, error)
	// ReservationsOuvertes agrège, par contrat, les réservations non encore
	// rendues ni annulées d'un article, avec leur fenêtre d'effet.
	ReservationsOuvertes(ctx context.Context, articleID string) ([]stock.FenetreReservation, error)
}
