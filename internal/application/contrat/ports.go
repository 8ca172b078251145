package contrat

import (
	"context"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// Numeroteur alloue les numéros d'affaire séquentiels (C-2025-012).
type Numeroteur interface {
	AllouerNumero(ctx context.Context, prefixe string) (string, error)
}

// FicheGenerator produit la fiche PDF d'un contrat, remise au client au
// retrait.
type FicheGenerator interface {
	GenererFiche(contrat *entity.ContratLocation) ([]byte, error)
}
