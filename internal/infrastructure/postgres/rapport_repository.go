package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

var _ repository.RapportRepository = (*RapportRepo)(nil)

// RapportRepo agrégats de reporting, lecture seule.
type RapportRepo struct {
	q Querier
}

// NewRapportRepository construit l'adaptateur de reporting.
func NewRapportRepository(q Querier) *RapportRepo {
	return &RapportRepo{q: q}
}

// RecetteJournaliere agrège les paiements du jour donné, ventilés par mode.
func (r *RapportRepo) RecetteJournaliere(ctx context.Context, jour time.Time) (*repository.RecetteJour, error) {
	query := `
		SELECT mode, COALESCE(SUM(montant), 0), COUNT(*)
		FROM paiements
		WHERE date_paiement >= $1 AND date_paiement < $2
		GROUP BY mode`
	debut := time.Date(jour.Year(), jour.Month(), jour.Day(), 0, 0, 0, 0, jour.Location())
	fin := debut.AddDate(0, 0, 1)

	rows, err := r.q.Query(ctx, query, debut, fin)
	if err != nil {
		return nil, fmt.Errorf("recette journaliere: %w", err)
	}
	defer rows.Close()

	recette := &repository.RecetteJour{
		Date:         debut,
		Total:        decimal.Zero,
		TotalParMode: make(map[string]decimal.Decimal),
	}
	for rows.Next() {
		var mode string
		var montant decimal.Decimal
		var nb int
		if err := rows.Scan(&mode, &montant, &nb); err != nil {
			return nil, fmt.Errorf("scan recette: %w", err)
		}
		recette.TotalParMode[mode] = montant
		recette.Total = recette.Total.Add(montant)
		recette.NbPaiements += nb
	}
	return recette, rows.Err()
}

// ContratsParStatut compte les contrats par statut.
func (r *RapportRepo) ContratsParStatut(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT statut, COUNT(*) FROM contrats GROUP BY statut`)
	if err != nil {
		return nil, fmt.Errorf("contrats par statut: %w", err)
	}
	defer rows.Close()

	parStatut := make(map[string]int)
	for rows.Next() {
		var statut string
		var nb int
		if err := rows.Scan(&statut, &nb); err != nil {
			return nil, fmt.Errorf("scan statut: %w", err)
		}
		parStatut[statut] = nb
	}
	return parStatut, rows.Err()
}

// NbAlertesActives compte les alertes de stock en cours.
func (r *RapportRepo) NbAlertesActives(ctx context.Context) (int, error) {
	var nb int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM alertes_stock WHERE active = true`).Scan(&nb); err != nil {
		return 0, fmt.Errorf("nb alertes actives: %w", err)
	}
	return nb, nil
}
