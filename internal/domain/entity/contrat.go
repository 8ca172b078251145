package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'un contrat de location.
const (
	ContratBrouillon = "brouillon"
	ContratConfirme  = "confirmee"
	ContratRetire    = "retiree"
	ContratRetourne  = "retournee"
	ContratAnnule    = "annulee"
)

var statutsContratValides = map[string]bool{
	ContratBrouillon: true,
	ContratConfirme:  true,
	ContratRetire:    true,
	ContratRetourne:  true,
	ContratAnnule:    true,
}

// Graphe des transitions légales. Tout le reste est rejeté.
var transitionsContrat = map[string][]string{
	ContratBrouillon: {ContratConfirme, ContratAnnule},
	ContratConfirme:  {ContratRetire, ContratAnnule},
	ContratRetire:    {ContratRetourne},
	ContratRetourne:  {},
	ContratAnnule:    {},
}

// StatutContratValide indique si le statut appartient à l'énumération.
func StatutContratValide(s string) bool { return statutsContratValides[s] }

// TransitionContratValide indique si le passage de -> vers est légal.
// Un même statut répété est toléré (no-op).
func TransitionContratValide(de, vers string) bool {
	if de == vers {
		return true
	}
	for _, s := range transitionsContrat[de] {
		if s == vers {
			return true
		}
	}
	return false
}

// Modes de paiement acceptés.
const (
	PaiementEspeces  = "especes"
	PaiementCarte    = "carte"
	PaiementCheque   = "cheque"
	PaiementVirement = "virement"
)

var modesPaiementValides = map[string]bool{
	PaiementEspeces:  true,
	PaiementCarte:    true,
	PaiementCheque:   true,
	PaiementVirement: true,
}

// ModePaiementValide indique si le mode appartient à l'énumération.
func ModePaiementValide(m string) bool { return modesPaiementValides[m] }

// Mensurations prises lors de l'essayage.
type Mensurations struct {
	TourPoitrine   int `json:"tour_poitrine,omitempty"`
	TourTaille     int `json:"tour_taille,omitempty"`
	TourHanches    int `json:"tour_hanches,omitempty"`
	Hauteur        int `json:"hauteur,omitempty"`
	LongueurManche int `json:"longueur_manche,omitempty"`
	LongueurJambe  int `json:"longueur_jambe,omitempty"`
	TourCou        int `json:"tour_cou,omitempty"`
	Pointure       int `json:"pointure,omitempty"`
}

// LigneTenue une pièce louée dans le cadre d'un contrat.
type LigneTenue struct {
	ArticleID    string          `json:"article_id"`
	Description  string          `json:"description"` // libellé figé au moment du contrat
	Quantite     int             `json:"quantite"`
	PrixLocation decimal.Decimal `json:"prix_location"`
}

// Paiement un versement rattaché au contrat (acompte, solde, caution...).
type Paiement struct {
	ID           string
	ContratID    string
	Montant      decimal.Decimal
	Mode         string
	DatePaiement time.Time
	CreatedAt    time.Time
}

// ContratLocation est le document transactionnel d'une location : un client,
// sa tenue, ses mensurations, les dates clés et les paiements. Le numéro est
// alloué via CompteurSequence (C-2025-007).
type ContratLocation struct {
	ID              string
	Numero          string
	ClientNom       string
	ClientPrenom    string
	Telephone       string
	Email           string
	Mensurations    Mensurations
	Lignes          []LigneTenue
	Caution         decimal.Decimal
	Paiements       []Paiement
	DateEssai       *time.Time
	DateCeremonie   *time.Time
	DateRetrait     *time.Time
	DateRetourPrevu *time.Time
	Vendeur         string
	Statut          string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MontantTotal somme des lignes (prix x quantité), hors caution.
func (c *ContratLocation) MontantTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lignes {
		total = total.Add(l.PrixLocation.Mul(decimal.NewFromInt(int64(l.Quantite))))
	}
	return total
}

// MontantPaye somme des paiements enregistrés.
func (c *ContratLocation) MontantPaye() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.Paiements {
		total = total.Add(p.Montant)
	}
	return total
}
