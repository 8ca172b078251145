package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RecetteJour le chiffre d'une journée : total encaissé et nombre de
// paiements, ventilé par mode.
type RecetteJour struct {
	Date         time.Time
	Total        decimal.Decimal
	NbPaiements  int
	TotalParMode map[string]decimal.Decimal
}

// RapportRepository définit le port des agrégats de reporting (lecture seule).
type RapportRepository interface {
	RecetteJournaliere(ctx context.Context, jour time.Time) (*RecetteJour, error)
	ContratsParStatut(ctx context.Context) (map[string]int, error)
	NbAlertesActives(ctx context.Context) (int, error)
}
