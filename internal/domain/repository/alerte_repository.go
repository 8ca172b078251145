package repository

import (
	"context"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// AlerteRepository définit le port des alertes de stock. Une alerte par
// article au plus ; Upsert la crée ou la réactive, Desactiver la coupe.
type AlerteRepository interface {
	Upsert(ctx context.Context, alerte *entity.AlerteStock) error
	Desactiver(ctx context.Context, articleID string) error
	ListActives(ctx context.Context) ([]*entity.AlerteStock, error)
}
