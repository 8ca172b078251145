package rapport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	"github.com/atelier-ceremonie/location-api/pkg/logger"
)

// Cache port clé/valeur pour les agrégats de reporting (Redis en prod).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// TTL des recettes en cache : la journée en cours bouge encore, les journées
// passées sont figées.
const (
	ttlJourCourant = 2 * time.Minute
	ttlJourPasse   = 24 * time.Hour
)

// RapportUseCase calcule les agrégats du tableau de bord. Le cache est
// facultatif (nil = toujours recalculer).
type RapportUseCase struct {
	repo    repository.RapportRepository
	cache   Cache
	log     *logger.Logger
	horloge func() time.Time
}

// NewRapportUseCase construit le cas d'usage.
func NewRapportUseCase(repo repository.RapportRepository, cache Cache, log *logger.Logger) *RapportUseCase {
	return &RapportUseCase{repo: repo, cache: cache, log: log, horloge: time.Now}
}

// RecetteJournaliere renvoie le chiffre encaissé le jour donné.
func (uc *RapportUseCase) RecetteJournaliere(ctx context.Context, jour time.Time) (*dto.RecetteJournaliereDTO, error) {
	cle := "rapport:recette:" + jour.Format("2006-01-02")

	if uc.cache != nil {
		if raw, ok := uc.cache.Get(ctx, cle); ok {
			var cached dto.RecetteJournaliereDTO
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			// Entrée illisible : on recalcule et on réécrit
			uc.log.Warn().Str("cle", cle).Msg("entrée de cache corrompue, recalcul")
		}
	}

	recette, err := uc.repo.RecetteJournaliere(ctx, jour)
	if err != nil {
		return nil, err
	}
	resp := &dto.RecetteJournaliereDTO{
		Date:         jour.Format("2006-01-02"),
		Total:        recette.Total,
		NbPaiements:  recette.NbPaiements,
		TotalParMode: recette.TotalParMode,
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			uc.cache.Set(ctx, cle, raw, uc.ttlPour(jour))
		}
	}
	return resp, nil
}

// TableauDeBord synthèse du jour : recette, répartition des contrats par
// statut et alertes de stock actives. Jamais mis en cache dans son ensemble,
// seuls les sous-agrégats le sont.
func (uc *RapportUseCase) TableauDeBord(ctx context.Context) (*dto.TableauDeBordDTO, error) {
	aujourdHui := uc.horloge()

	recette, err := uc.RecetteJournaliere(ctx, aujourdHui)
	if err != nil {
		return nil, err
	}
	parStatut, err := uc.repo.ContratsParStatut(ctx)
	if err != nil {
		return nil, err
	}
	alertes, err := uc.repo.NbAlertesActives(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.TableauDeBordDTO{
		RecetteDuJour:     *recette,
		ContratsParStatut: parStatut,
		AlertesActives:    alertes,
	}, nil
}

func (uc *RapportUseCase) ttlPour(jour time.Time) time.Duration {
	aujourdHui := uc.horloge()
	if jour.Year() == aujourdHui.Year() && jour.YearDay() == aujourdHui.YearDay() {
		return ttlJourCourant
	}
	return ttlJourPasse
}
