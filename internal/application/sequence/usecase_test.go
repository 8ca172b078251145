package sequence

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// compteurMemoire repro fidèle du contrat du repository : incrément atomique
// par clé (prefixe, scope).
type compteurMemoire struct {
	mu       sync.Mutex
	valeurs  map[string]int
	nbAppels int
}

func newCompteurMemoire() *compteurMemoire {
	return &compteurMemoire{valeurs: make(map[string]int)}
}

func (c *compteurMemoire) Incrementer(_ context.Context, prefixe, scope string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cle := prefixe + ":" + scope
	c.valeurs[cle]++
	c.nbAppels++
	return c.valeurs[cle], nil
}

func numeroteurFige(repo *compteurMemoire, annee int) *NumeroteurUseCase {
	uc := NewNumeroteurUseCase(repo)
	uc.horloge = func() time.Time {
		return time.Date(annee, time.March, 15, 10, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestAllouerNumero_SequenceStricte(t *testing.T) {
	uc := numeroteurFige(newCompteurMemoire(), 2025)

	for i, attendu := range []string{"L-2025-001", "L-2025-002", "L-2025-003"} {
		numero, err := uc.AllouerNumero(context.Background(), entity.PrefixeListe)
		require.NoError(t, err)
		assert.Equal(t, attendu, numero, "allocation %d", i+1)
	}
}

func TestAllouerNumero_ScopesIndependants(t *testing.T) {
	repo := newCompteurMemoire()

	uc2025 := numeroteurFige(repo, 2025)
	uc2026 := numeroteurFige(repo, 2026)

	n1, err := uc2025.AllouerNumero(context.Background(), entity.PrefixeContrat)
	require.NoError(t, err)
	n2, err := uc2026.AllouerNumero(context.Background(), entity.PrefixeContrat)
	require.NoError(t, err)

	// Chaque année repart à 001 ; les préfixes sont eux aussi indépendants
	assert.Equal(t, "C-2025-001", n1)
	assert.Equal(t, "C-2026-001", n2)

	l1, err := uc2025.AllouerNumero(context.Background(), entity.PrefixeListe)
	require.NoError(t, err)
	assert.Equal(t, "L-2025-001", l1)
}

// N allocations concurrentes sur le même scope produisent N numéros distincts.
func TestAllouerNumero_ConcurrentSansDoublon(t *testing.T) {
	const n = 100
	uc := numeroteurFige(newCompteurMemoire(), 2025)

	var wg sync.WaitGroup
	resultats := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			numero, err := uc.AllouerNumero(context.Background(), entity.PrefixeListe)
			assert.NoError(t, err)
			resultats <- numero
		}()
	}
	wg.Wait()
	close(resultats)

	vus := make(map[string]bool, n)
	for numero := range resultats {
		assert.False(t, vus[numero], "numéro dupliqué: %s", numero)
		vus[numero] = true
	}
	assert.Len(t, vus, n)
}
