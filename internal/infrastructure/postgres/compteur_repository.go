package postgres

import (
	"context"
	"fmt"

	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

var _ repository.CompteurRepository = (*CompteurRepo)(nil)

// CompteurRepo implémentation du port CompteurRepository sur PostgreSQL.
type CompteurRepo struct {
	q Querier
}

// NewCompteurRepository construit l'adaptateur de persistance des compteurs.
func NewCompteurRepository(q Querier) *CompteurRepo {
	return &CompteurRepo{q: q}
}

// Incrementer alloue le numéro suivant pour (prefixe, scope) en un seul
// aller-retour. L'upsert RETURNING est atomique côté serveur : deux appels
// concurrents ne peuvent pas obtenir le même numéro.
func (r *CompteurRepo) Incrementer(ctx context.Context, prefixe, scope string) (int, error) {
	query := `
		INSERT INTO compteurs_sequence (prefixe, scope, dernier_numero, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (prefixe, scope)
		DO UPDATE SET dernier_numero = compteurs_sequence.dernier_numero + 1, updated_at = NOW()
		RETURNING dernier_numero`
	var numero int
	if err := r.q.QueryRow(ctx, query, prefixe, scope).Scan(&numero); err != nil {
		return 0, fmt.Errorf("incrementer compteur %s-%s: %w", prefixe, scope, err)
	}
	return numero, nil
}
