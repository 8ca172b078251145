package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catégories d'articles du stock.
const (
	CategorieCostume    = "costume"
	CategorieJaquette   = "jaquette"
	CategorieSmoking    = "smoking"
	CategorieChemise    = "chemise"
	CategorieGilet      = "gilet"
	CategorieChaussures = "chaussures"
	CategorieAccessoire = "accessoire"
)

var categoriesValides = map[string]bool{
	CategorieCostume:    true,
	CategorieJaquette:   true,
	CategorieSmoking:    true,
	CategorieChemise:    true,
	CategorieGilet:      true,
	CategorieChaussures: true,
	CategorieAccessoire: true,
}

// CategorieValide indique si la catégorie appartient à l'énumération.
func CategorieValide(c string) bool { return categoriesValides[c] }

// ArticleStock représente une référence de stock (SKU) : un modèle dans une
// taille et une couleur données. QuantiteDisponible est une projection
// (stock - réservé) ; elle n'est écrite que par le moteur de mouvements,
// dans la même transaction que ses champs sources.
type ArticleStock struct {
	ID                 string
	Categorie          string
	SousCategorie      string // optionnel, ex. "trois-pièces"
	Reference          string // nom du modèle, texte libre
	Taille             string
	Couleur            string          // optionnel
	PrixLocation       decimal.Decimal // optionnel (zéro = non tarifé)
	QuantiteStock      int             // total possédé
	QuantiteReservee   int             // engagé sur des contrats
	QuantiteDisponible int             // = QuantiteStock - QuantiteReservee
	SeuilAlerte        int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// GroupeArticles ligne agrégée pour le listing groupé (même modèle, toutes
// tailles confondues).
type GroupeArticles struct {
	Categorie          string
	Reference          string
	NbVariantes        int
	QuantiteStock      int
	QuantiteReservee   int
	QuantiteDisponible int
}
