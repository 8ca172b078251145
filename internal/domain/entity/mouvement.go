package entity

import "time"

// Types de mouvement de stock.
const (
	MouvementEntree      = "entree"      // intake : augmente le stock total
	MouvementSortie      = "sortie"      // sortie définitive du stock
	MouvementReservation = "reservation" // engage une quantité sur un contrat
	MouvementRetour      = "retour"      // retour de location : libère la réservation
	MouvementAnnulation  = "annulation"  // annulation de contrat : libère la réservation
	MouvementDestruction = "destruction" // pièce détruite
	MouvementPerte       = "perte"       // pièce perdue
)

var typesMouvementValides = map[string]bool{
	MouvementEntree:      true,
	MouvementSortie:      true,
	MouvementReservation: true,
	MouvementRetour:      true,
	MouvementAnnulation:  true,
	MouvementDestruction: true,
	MouvementPerte:       true,
}

// TypeMouvementValide indique si le type appartient à l'énumération.
func TypeMouvementValide(t string) bool { return typesMouvementValides[t] }

// MouvementStock est une écriture du journal de stock. Append-only : jamais
// modifié ni supprimé après enregistrement, même si l'article disparaît
// (piste d'audit).
type MouvementStock struct {
	ID               string
	ArticleID        string
	Type             string
	Quantite         int // strictement positif ; le signe est porté par le type
	DateMouvement    time.Time
	DatePrevue       *time.Time // début de la fenêtre de réservation
	DateRetourPrevue *time.Time // fin de la fenêtre de réservation
	ContratID        string     // optionnel, lie le mouvement à un contrat
	EffectuePar      string     // identité de l'opérateur
	Commentaire      string
	CreatedAt        time.Time
}
