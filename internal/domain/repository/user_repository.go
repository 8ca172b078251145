package repository

import (
	"context"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// UserRepository définit le port de persistance pour Utilisateur.
type UserRepository interface {
	Create(ctx context.Context, user *entity.Utilisateur) error
	GetByID(ctx context.Context, id string) (*entity.Utilisateur, error)
	FindByEmail(ctx context.Context, email string) (*entity.Utilisateur, error)
}
