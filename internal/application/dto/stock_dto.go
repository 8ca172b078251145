package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateArticleRequest body pour POST /api/articles (entrée en stock initiale comprise).
type CreateArticleRequest struct {
	Categorie     string          `json:"categorie"`
	SousCategorie string          `json:"sous_categorie,omitempty"`
	Reference     string          `json:"reference"`
	Taille        string          `json:"taille"`
	Couleur       string          `json:"couleur,omitempty"`
	PrixLocation  decimal.Decimal `json:"prix_location,omitempty"`
	QuantiteStock int             `json:"quantite_stock"`
	SeuilAlerte   int             `json:"seuil_alerte"`
}

// UpdateArticleRequest body pour PUT /api/articles/:id. Les compteurs ne sont
// pas modifiables ici : ils ne bougent que par mouvements.
type UpdateArticleRequest struct {
	Categorie     *string          `json:"categorie,omitempty"`
	SousCategorie *string          `json:"sous_categorie,omitempty"`
	Reference     *string          `json:"reference,omitempty"`
	Taille        *string          `json:"taille,omitempty"`
	Couleur       *string          `json:"couleur,omitempty"`
	PrixLocation  *decimal.Decimal `json:"prix_location,omitempty"`
	SeuilAlerte   *int             `json:"seuil_alerte,omitempty"`
}

// ArticleResponse représentation d'un article en réponse.
type ArticleResponse struct {
	ID                 string          `json:"id"`
	Categorie          string          `json:"categorie"`
	SousCategorie      string          `json:"sous_categorie,omitempty"`
	Reference          string          `json:"reference"`
	Taille             string          `json:"taille"`
	Couleur            string          `json:"couleur,omitempty"`
	PrixLocation       decimal.Decimal `json:"prix_location"`
	QuantiteStock      int             `json:"quantiteStock"`
	QuantiteReservee   int             `json:"quantiteReservee"`
	QuantiteDisponible int             `json:"quantiteDisponible"`
	SeuilAlerte        int             `json:"seuil_alerte"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ArticleListResponse page d'articles.
type ArticleListResponse struct {
	Data       []ArticleResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// GroupeArticlesResponse ligne du listing groupé par modèle.
type GroupeArticlesResponse struct {
	Categorie          string `json:"categorie"`
	Reference          string `json:"reference"`
	NbVariantes        int    `json:"nb_variantes"`
	QuantiteStock      int    `json:"quantiteStock"`
	QuantiteReservee   int    `json:"quantiteReservee"`
	QuantiteDisponible int    `json:"quantiteDisponible"`
}

// MouvementRequest body pour POST /api/mouvements.
type MouvementRequest struct {
	ArticleID        string     `json:"article_id"`
	Type             string     `json:"type"`
	Quantite         int        `json:"quantite"`
	DatePrevue       *time.Time `json:"date_prevue,omitempty"`
	DateRetourPrevue *time.Time `json:"date_retour_prevue,omitempty"`
	ContratID        string     `json:"contrat_id,omitempty"`
	Commentaire      string     `json:"commentaire,omitempty"`
}

// MouvementResponse écriture du journal en réponse.
type MouvementResponse struct {
	ID               string     `json:"id"`
	ArticleID        string     `json:"article_id"`
	Type             string     `json:"type"`
	Quantite         int        `json:"quantite"`
	DateMouvement    time.Time  `json:"date_mouvement"`
	DatePrevue       *time.Time `json:"date_prevue,omitempty"`
	DateRetourPrevue *time.Time `json:"date_retour_prevue,omitempty"`
	ContratID        string     `json:"contrat_id,omitempty"`
	EffectuePar      string     `json:"effectue_par"`
	Commentaire      string     `json:"commentaire,omitempty"`
}

// MouvementListResponse page de mouvements.
type MouvementListResponse struct {
	Data       []MouvementResponse `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

// AlerteResponse alerte de stock active.
type AlerteResponse struct {
	ID               string    `json:"id"`
	ArticleID        string    `json:"article_id"`
	QuantiteActuelle int       `json:"quantite_actuelle"`
	Seuil            int       `json:"seuil"`
	Message          string    `json:"message"`
	DetecteeLe       time.Time `json:"detectee_le"`
}

// DisponibiliteResponse disponibilité projetée à une date.
type DisponibiliteResponse struct {
	ArticleID            string    `json:"article_id"`
	Date                 time.Time `json:"date"`
	QuantiteStock        int       `json:"quantiteStock"`
	DisponibleMaintenant int       `json:"disponible_maintenant"`
	DisponibleALaDate    int       `json:"disponible_a_la_date"`
}
