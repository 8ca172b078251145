package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	domstock "github.com/atelier-ceremonie/location-api/internal/domain/stock"
)

// EnregistrerMouvementUseCase applique un mouvement au grand livre de stock
// de façon transactionnelle : verrou de ligne (SELECT FOR UPDATE) sur
// l'article, transition des compteurs, écriture du journal et réconciliation
// de l'alerte, puis Commit ou Rollback.
type EnregistrerMouvementUseCase struct {
	txRunner    TxRunner
	articleRepo repository.ArticleRepository
}

// NewEnregistrerMouvementUseCase construit le cas d'usage.
func NewEnregistrerMouvementUseCase(txRunner TxRunner, articleRepo repository.ArticleRepository) *EnregistrerMouvementUseCase {
	return &EnregistrerMouvementUseCase{txRunner: txRunner, articleRepo: articleRepo}
}

// MouvementInput entrée pour enregistrer un mouvement.
type MouvementInput struct {
	ArticleID        string
	Type             string
	Quantite         int
	DatePrevue       *time.Time
	DateRetourPrevue *time.Time
	ContratID        string
	EffectuePar      string
	Commentaire      string
}

// Enregistrer valide l'entrée, puis exécute la mutation sous transaction.
// Renvoie l'article avec ses compteurs à jour.
func (uc *EnregistrerMouvementUseCase) Enregistrer(ctx context.Context, input MouvementInput) (*entity.ArticleStock, error) {
	if input.ArticleID == "" || !entity.TypeMouvementValide(input.Type) || input.Quantite <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// Vérification d'existence hors transaction (réponse 404 rapide)
	article, err := uc.articleRepo.GetByID(ctx, input.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var resultat *entity.ArticleStock

	err = uc.txRunner.Run(ctx, func(
		articleRepo repository.ArticleRepository,
		mouvementRepo repository.MouvementRepository,
		alerteRepo repository.AlerteRepository,
	) error {
		// Verrouille la ligne : sérialise les mouvements concurrents sur ce SKU
		art, err := articleRepo.GetForUpdate(ctx, input.ArticleID)
		if err != nil {
			return err
		}
		if art == nil {
			return domain.ErrNotFound
		}

		compteurs, err := domstock.Appliquer(
			domstock.Compteurs{Stock: art.QuantiteStock, Reservee: art.QuantiteReservee},
			input.Type, input.Quantite,
		)
		if err != nil {
			return err
		}

		art.QuantiteStock = compteurs.Stock
		art.QuantiteReservee = compteurs.Reservee
		art.QuantiteDisponible = compteurs.Disponible()
		art.UpdatedAt = now
		if err := articleRepo.UpdateCompteurs(ctx, art); err != nil {
			return err
		}

		mouvement := &entity.MouvementStock{
			ID:               uuid.New().String(),
			ArticleID:        input.ArticleID,
			Type:             input.Type,
			Quantite:         input.Quantite,
			DateMouvement:    now,
			DatePrevue:       input.DatePrevue,
			DateRetourPrevue: input.DateRetourPrevue,
			ContratID:        input.ContratID,
			EffectuePar:      input.EffectuePar,
			Commentaire:      input.Commentaire,
			CreatedAt:        now,
		}
		if err := mouvementRepo.Create(ctx, mouvement); err != nil {
			return err
		}

		if err := reconcilierAlerte(ctx, alerteRepo, art, now); err != nil {
			return err
		}

		resultat = art
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultat, nil
}

// reconcilierAlerte active l'alerte quand le disponible passe sous le seuil
// et la coupe quand il remonte au-dessus. Tourne dans la transaction du
// mouvement : l'alerte reflète toujours la dernière écriture.
func reconcilierAlerte(ctx context.Context, alerteRepo repository.AlerteRepository, art *entity.ArticleStock, now time.Time) error {
	if art.QuantiteDisponible <= art.SeuilAlerte {
		return alerteRepo.Upsert(ctx, &entity.AlerteStock{
			ID:               uuid.New().String(),
			ArticleID:        art.ID,
			QuantiteActuelle: art.QuantiteDisponible,
			Seuil:            art.SeuilAlerte,
			Active:           true,
			Message: fmt.Sprintf("%s %s (taille %s) : %d disponible(s), seuil %d",
				art.Categorie, art.Reference, art.Taille, art.QuantiteDisponible, art.SeuilAlerte),
			DetecteeLe: now,
		})
	}
	return alerteRepo.Desactiver(ctx, art.ID)
}
