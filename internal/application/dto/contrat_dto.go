package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MensurationsDTO mesures prises à l'essayage (centimètres, pointure).
type MensurationsDTO struct {
	TourPoitrine   int `json:"tour_poitrine,omitempty"`
	TourTaille     int `json:"tour_taille,omitempty"`
	TourHanches    int `json:"tour_hanches,omitempty"`
	Hauteur        int `json:"hauteur,omitempty"`
	LongueurManche int `json:"longueur_manche,omitempty"`
	LongueurJambe  int `json:"longueur_jambe,omitempty"`
	TourCou        int `json:"tour_cou,omitempty"`
	Pointure       int `json:"pointure,omitempty"`
}

// LigneTenueDTO une pièce de la tenue louée.
type LigneTenueDTO struct {
	ArticleID    string          `json:"article_id"`
	Description  string          `json:"description"`
	Quantite     int             `json:"quantite"`
	PrixLocation decimal.Decimal `json:"prix_location"`
}

// PaiementRequest body pour POST /api/contrats/:id/paiements.
type PaiementRequest struct {
	Montant      decimal.Decimal `json:"montant"`
	Mode         string          `json:"mode"`
	DatePaiement *time.Time      `json:"date_paiement,omitempty"` // défaut : maintenant
}

// PaiementResponse un versement enregistré.
type PaiementResponse struct {
	ID           string          `json:"id"`
	Montant      decimal.Decimal `json:"montant"`
	Mode         string          `json:"mode"`
	DatePaiement time.Time       `json:"date_paiement"`
}

// CreateContratRequest body pour POST /api/contrats.
type CreateContratRequest struct {
	ClientNom       string          `json:"client_nom"`
	ClientPrenom    string          `json:"client_prenom,omitempty"`
	Telephone       string          `json:"telephone,omitempty"`
	Email           string          `json:"email,omitempty"`
	Mensurations    MensurationsDTO `json:"mensurations"`
	Lignes          []LigneTenueDTO `json:"lignes"`
	Caution         decimal.Decimal `json:"caution,omitempty"`
	DateEssai       *time.Time      `json:"date_essai,omitempty"`
	DateCeremonie   *time.Time      `json:"date_ceremonie,omitempty"`
	DateRetrait     *time.Time      `json:"date_retrait,omitempty"`
	DateRetourPrevu *time.Time      `json:"date_retour_prevu,omitempty"`
	Vendeur         string          `json:"vendeur"`
	Notes           string          `json:"notes,omitempty"`
}

// UpdateContratRequest body pour PUT /api/contrats/:id. Le numéro et le
// statut ne passent pas par ici (statut : PATCH dédié).
type UpdateContratRequest struct {
	ClientNom       *string          `json:"client_nom,omitempty"`
	ClientPrenom    *string          `json:"client_prenom,omitempty"`
	Telephone       *string          `json:"telephone,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Mensurations    *MensurationsDTO `json:"mensurations,omitempty"`
	Lignes          []LigneTenueDTO  `json:"lignes,omitempty"`
	Caution         *decimal.Decimal `json:"caution,omitempty"`
	DateEssai       *time.Time       `json:"date_essai,omitempty"`
	DateCeremonie   *time.Time       `json:"date_ceremonie,omitempty"`
	DateRetrait     *time.Time       `json:"date_retrait,omitempty"`
	DateRetourPrevu *time.Time       `json:"date_retour_prevu,omitempty"`
	Vendeur         *string          `json:"vendeur,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// ChangerStatutRequest body des PATCH .../statut (contrats et locations groupées).
type ChangerStatutRequest struct {
	Statut string `json:"statut"`
}

// ContratResponse représentation d'un contrat, montants dérivés inclus.
type ContratResponse struct {
	ID              string             `json:"id"`
	Numero          string             `json:"numero"`
	ClientNom       string             `json:"client_nom"`
	ClientPrenom    string             `json:"client_prenom,omitempty"`
	Telephone       string             `json:"telephone,omitempty"`
	Email           string             `json:"email,omitempty"`
	Mensurations    MensurationsDTO    `json:"mensurations"`
	Lignes          []LigneTenueDTO    `json:"lignes"`
	Caution         decimal.Decimal    `json:"caution"`
	Paiements       []PaiementResponse `json:"paiements"`
	MontantTotal    decimal.Decimal    `json:"montant_total"`
	MontantPaye     decimal.Decimal    `json:"montant_paye"`
	Solde           decimal.Decimal    `json:"solde"`
	DateEssai       *time.Time         `json:"date_essai,omitempty"`
	DateCeremonie   *time.Time         `json:"date_ceremonie,omitempty"`
	DateRetrait     *time.Time         `json:"date_retrait,omitempty"`
	DateRetourPrevu *time.Time         `json:"date_retour_prevu,omitempty"`
	Vendeur         string             `json:"vendeur"`
	Statut          string             `json:"statut"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ContratListResponse page de contrats.
type ContratListResponse struct {
	Data       []ContratResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
