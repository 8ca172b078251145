package repository

import (
	"context"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// LocationGroupeRepository définit le port de persistance pour LocationGroupe.
type LocationGroupeRepository interface {
	Create(ctx context.Context, groupe *entity.LocationGroupe) error
	GetByID(ctx context.Context, id string) (*entity.LocationGroupe, error)
	Update(ctx context.Context, groupe *entity.LocationGroupe) error
	List(ctx context.Context, statut string, limit, offset int) ([]*entity.LocationGroupe, int, error)
	Delete(ctx context.Context, id string) error
}
