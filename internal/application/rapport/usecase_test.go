package rapport

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	"github.com/atelier-ceremonie/location-api/pkg/logger"
)

type rapportFige struct {
	recettes  int // compteur d'appels, pour vérifier le cache
	parStatut map[string]int
	alertes   int
}

func (r *rapportFige) RecetteJournaliere(_ context.Context, jour time.Time) (*repository.RecetteJour, error) {
	r.recettes++
	return &repository.RecetteJour{
		Date:        jour,
		Total:       decimal.NewFromInt(540),
		NbPaiements: 3,
		TotalParMode: map[string]decimal.Decimal{
			"carte":   decimal.NewFromInt(440),
			"especes": decimal.NewFromInt(100),
		},
	}, nil
}

func (r *rapportFige) ContratsParStatut(_ context.Context) (map[string]int, error) {
	return r.parStatut, nil
}

func (r *rapportFige) NbAlertesActives(_ context.Context) (int, error) {
	return r.alertes, nil
}

type cacheMemoire struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newCacheMemoire() *cacheMemoire {
	return &cacheMemoire{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (c *cacheMemoire) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := c.data[key]
	return v, ok
}

func (c *cacheMemoire) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.data[key] = value
	c.ttls[key] = ttl
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func TestRecetteJournaliere_PasseParLeCache(t *testing.T) {
	repo := &rapportFige{}
	cache := newCacheMemoire()
	uc := NewRapportUseCase(repo, cache, testLogger())

	jour := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	premiere, err := uc.RecetteJournaliere(context.Background(), jour)
	require.NoError(t, err)
	seconde, err := uc.RecetteJournaliere(context.Background(), jour)
	require.NoError(t, err)

	// Un seul calcul : la seconde lecture vient du cache
	assert.Equal(t, 1, repo.recettes)
	assert.Equal(t, premiere.Date, seconde.Date)
	assert.True(t, seconde.Total.Equal(decimal.NewFromInt(540)))
	assert.Equal(t, 3, seconde.NbPaiements)
}

func TestRecetteJournaliere_TTLSelonLeJour(t *testing.T) {
	repo := &rapportFige{}
	cache := newCacheMemoire()
	uc := NewRapportUseCase(repo, cache, testLogger())

	maintenant := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)
	uc.horloge = func() time.Time { return maintenant }

	_, err := uc.RecetteJournaliere(context.Background(), maintenant)
	require.NoError(t, err)
	_, err = uc.RecetteJournaliere(context.Background(), maintenant.AddDate(0, 0, -1))
	require.NoError(t, err)

	// Le jour courant expire vite, le passé est figé
	assert.Equal(t, ttlJourCourant, cache.ttls["rapport:recette:2025-03-14"])
	assert.Equal(t, ttlJourPasse, cache.ttls["rapport:recette:2025-03-13"])
}

func TestRecetteJournaliere_SansCache(t *testing.T) {
	repo := &rapportFige{}
	uc := NewRapportUseCase(repo, nil, testLogger())

	jour := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	_, err := uc.RecetteJournaliere(context.Background(), jour)
	require.NoError(t, err)
	_, err = uc.RecetteJournaliere(context.Background(), jour)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.recettes)
}

func TestRecetteJournaliere_CacheCorrompu(t *testing.T) {
	repo := &rapportFige{}
	cache := newCacheMemoire()
	cache.data["rapport:recette:2025-03-14"] = []byte("{pas du json")
	uc := NewRapportUseCase(repo, cache, testLogger())

	jour := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	resp, err := uc.RecetteJournaliere(context.Background(), jour)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.recettes)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(540)))
}

func TestTableauDeBord(t *testing.T) {
	repo := &rapportFige{
		parStatut: map[string]int{"brouillon": 2, "confirmee": 5, "retiree": 1},
		alertes:   4,
	}
	uc := NewRapportUseCase(repo, nil, testLogger())
	uc.horloge = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }

	resp, err := uc.TableauDeBord(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14", resp.RecetteDuJour.Date)
	assert.Equal(t, 5, resp.ContratsParStatut["confirmee"])
	assert.Equal(t, 4, resp.AlertesActives)
}
