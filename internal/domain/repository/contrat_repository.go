package repository

import (
	"context"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// FiltreContrats critères de listing des contrats.
type FiltreContrats struct {
	Statut    string
	Recherche string // nom/prénom du client, insensible aux accents
}

// ContratRepository définit le port de persistance pour ContratLocation.
// GetByID charge le contrat complet (lignes et paiements inclus).
type ContratRepository interface {
	Create(ctx context.Context, contrat *entity.ContratLocation) error
	GetByID(ctx context.Context, id string) (*entity.ContratLocation, error)
	Update(ctx context.Context, contrat *entity.ContratLocation) error
	UpdateStatut(ctx context.Context, id, statut string) error
	List(ctx context.Context, filtre FiltreContrats, limit, offset int) ([]*entity.ContratLocation, int, error)
	AjouterPaiement(ctx context.Context, paiement *entity.Paiement) error
	Delete(ctx context.Context, id string) error
}
