package repository

import (
	"context"

	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

// FiltreArticles critères de listing des articles.
type FiltreArticles struct {
	Categorie string
	Taille    string
	Recherche string // comparé à la référence, insensible aux accents
}

// ArticleRepository définit le port de persistance pour ArticleStock.
// Les compteurs ne sont écrits que via UpdateCompteurs, depuis le moteur de
// mouvements, sous verrou de ligne (GetForUpdate).
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.ArticleStock) error
	GetByID(ctx context.Context, id string) (*entity.ArticleStock, error)
	// GetForUpdate verrouille la ligne (SELECT FOR UPDATE) ; à utiliser dans une tx.
	GetForUpdate(ctx context.Context, id string) (*entity.ArticleStock, error)
	// UpdateCompteurs écrit stock, réservé et disponible ensemble.
	UpdateCompteurs(ctx context.Context, article *entity.ArticleStock) error
	// Update écrit les champs descriptifs et le seuil, jamais les compteurs.
	Update(ctx context.Context, article *entity.ArticleStock) error
	List(ctx context.Context, filtre FiltreArticles, limit, offset int) ([]*entity.ArticleStock, int, error)
	ListGroupes(ctx context.Context) ([]*entity.GroupeArticles, error)
	Delete(ctx context.Context, id string) error
}
