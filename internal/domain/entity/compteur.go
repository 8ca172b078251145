package entity

import (
	"fmt"
	"time"
)

// Préfixes des séquences de numérotation.
const (
	PrefixeListe   = "L"
	PrefixeContrat = "C"
)

// CompteurSequence porte la dernière valeur allouée pour un préfixe et un
// scope (l'année). Créé paresseusement à la première allocation, jamais
// supprimé. L'incrément est atomique côté stockage.
type CompteurSequence struct {
	Prefixe       string
	Scope         string // année, ex. "2025"
	DernierNumero int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FormatNumero met en forme un identifiant lisible : {prefixe}-{scope}-{numéro
// complété à 3 chiffres}. Au-delà de 999 la largeur s'étend naturellement
// (L-2025-1000) : le padding est un minimum, pas un tronquage.
func FormatNumero(prefixe, scope string, numero int) string {
	return fmt.Sprintf("%s-%s-%03d", prefixe, scope, numero)
}
