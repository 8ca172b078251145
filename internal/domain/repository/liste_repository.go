package repository

import (
	"context"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// ListeRepository définit le port de persistance pour Liste. Update remplace
// la liste et l'ensemble de ses participants dans une même transaction.
type ListeRepository interface {
	Create(ctx context.Context, liste *entity.Liste) error
	GetByID(ctx context.Context, id string) (*entity.Liste, error)
	Update(ctx context.Context, liste *entity.Liste) error
	List(ctx context.Context, limit, offset int) ([]*entity.Liste, int, error)
	// FindByContrat renvoie les listes auxquelles un contrat participe.
	FindByContrat(ctx context.Context, contratID string) ([]*entity.Liste, error)
	Delete(ctx context.Context, id string) error
}
