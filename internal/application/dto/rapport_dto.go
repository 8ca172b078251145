package dto

import "github.com/shopspring/decimal"

// RecetteJournaliereDTO chiffre d'affaires encaissé sur une journée.
type RecetteJournaliereDTO struct {
	Date         string                     `json:"date"` // AAAA-MM-JJ
	Total        decimal.Decimal            `json:"total"`
	NbPaiements  int                        `json:"nb_paiements"`
	TotalParMode map[string]decimal.Decimal `json:"total_par_mode"`
}

// TableauDeBordDTO synthèse affichée sur le tableau de bord.
type TableauDeBordDTO struct {
	RecetteDuJour     RecetteJournaliereDTO `json:"recette_du_jour"`
	ContratsParStatut map[string]int        `json:"contrats_par_statut"`
	AlertesActives    int                   `json:"alertes_actives"`
}
