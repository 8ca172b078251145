package entity

import "time"

// Statuts d'une location groupée.
const (
	GroupeBrouillon = "brouillon"
	GroupeComplete  = "complete"
	GroupeTransmise = "transmise"
)

var statutsGroupeValides = map[string]bool{
	GroupeBrouillon: true,
	GroupeComplete:  true,
	GroupeTransmise: true,
}

// Transitions légales : le brouillon se complète, une fiche complète peut
// repasser en brouillon (correction) ou être transmise ; transmise est final.
var transitionsGroupe = map[string][]string{
	GroupeBrouillon: {GroupeComplete},
	GroupeComplete:  {GroupeBrouillon, GroupeTransmise},
	GroupeTransmise: {},
}

// StatutGroupeValide indique si le statut appartient à l'énumération.
func StatutGroupeValide(s string) bool { return statutsGroupeValides[s] }

// TransitionGroupeValide indique si le passage de -> vers est légal.
// Un même statut répété est toléré (no-op).
func TransitionGroupeValide(de, vers string) bool {
	if de == vers {
		return true
	}
	for _, s := range transitionsGroupe[de] {
		if s == vers {
			return true
		}
	}
	return false
}

// ClientGroupe un membre du groupe : identité, mensurations et tenue prévue.
type ClientGroupe struct {
	Nom          string       `json:"nom"`
	Prenom       string       `json:"prenom"`
	Telephone    string       `json:"telephone,omitempty"`
	Mensurations Mensurations `json:"mensurations"`
	Tenue        string       `json:"tenue,omitempty"` // description libre de la tenue
	Ordre        int          `json:"ordre"`
}

// LocationGroupe une prise de mesures groupée (cortège, promotion...) amenée
// à devenir un ou plusieurs contrats. Doit contenir au moins un client.
type LocationGroupe struct {
	ID        string
	NomGroupe string
	Telephone string
	Email     string
	DateEssai *time.Time
	Vendeur   string
	Clients   []ClientGroupe
	Statut    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliquerNomAuto dérive le nom du groupe du nom de famille de l'unique
// client quand aucun nom n'a été fourni et que le groupe n'a qu'un membre.
func (g *LocationGroupe) AppliquerNomAuto() {
	if g.NomGroupe == "" && len(g.Clients) == 1 {
		g.NomGroupe = g.Clients[0].Nom
	}
}
