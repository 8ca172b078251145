package stock

import (
	"context"

	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction de base, en lui passant
// des repositories attachés à cette transaction. Garantit l'atomicité du
// moteur de mouvements : compteurs, journal et alerte bougent ensemble ou
// pas du tout.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		articleRepo repository.ArticleRepository,
		mouvementRepo repository.MouvementRepository,
		alerteRepo repository.AlerteRepository,
	) error) error
}
