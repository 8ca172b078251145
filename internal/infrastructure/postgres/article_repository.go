package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	"github.com/atelier-ceremonie/location-api/pkg/normalize"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

const colonnesArticle = `id, categorie, sous_categorie, reference, taille, couleur, prix_location,
		quantite_stock, quantite_reservee, quantite_disponible, seuil_alerte, created_at, updated_at`

// ArticleRepo implémentation du port ArticleRepository sur PostgreSQL
// (utilisable avec pool ou tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construit l'adaptateur de persistance des articles.
// Passer pool ou tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nouvel article. reference_norm sert à la recherche
// insensible aux accents.
func (r *ArticleRepo) Create(ctx context.Context, a *entity.ArticleStock) error {
	query := `
		INSERT INTO articles_stock (id, categorie, sous_categorie, reference, reference_norm, taille, couleur,
			prix_location, quantite_stock, quantite_reservee, quantite_disponible, seuil_alerte, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Categorie, a.SousCategorie, a.Reference, normalize.Fold(a.Reference), a.Taille, a.Couleur,
		a.PrixLocation, a.QuantiteStock, a.QuantiteReservee, a.QuantiteDisponible, a.SeuilAlerte,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID récupère un article par ID.
func (r *ArticleRepo) GetByID(ctx context.Context, id string) (*entity.ArticleStock, error) {
	query := `SELECT ` + colonnesArticle + ` FROM articles_stock WHERE id = $1`
	return r.scanArticle(r.q.QueryRow(ctx, query, id), "get article")
}

// GetForUpdate verrouille la ligne de l'article. À n'utiliser que dans une
// transaction : le verrou tient jusqu'au Commit/Rollback.
func (r *ArticleRepo) GetForUpdate(ctx context.Context, id string) (*entity.ArticleStock, error) {
	query := `SELECT ` + colonnesArticle + ` FROM articles_stock WHERE id = $1 FOR UPDATE`
	return r.scanArticle(r.q.QueryRow(ctx, query, id), "lock article")
}

// UpdateCompteurs écrit les trois compteurs ensemble. Seule écriture des
// compteurs de toute la base de code.
func (r *ArticleRepo) UpdateCompteurs(ctx context.Context, a *entity.ArticleStock) error {
	query := `
		UPDATE articles_stock
		SET quantite_stock = $2, quantite_reservee = $3, quantite_disponible = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, a.ID, a.QuantiteStock, a.QuantiteReservee, a.QuantiteDisponible, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update compteurs article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update écrit les champs descriptifs et le seuil. Les compteurs ne passent
// pas par ici.
func (r *ArticleRepo) Update(ctx context.Context, a *entity.ArticleStock) error {
	query := `
		UPDATE articles_stock
		SET categorie = $2, sous_categorie = $3, reference = $4, reference_norm = $5, taille = $6,
			couleur = $7, prix_location = $8, seuil_alerte = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		a.ID, a.Categorie, a.SousCategorie, a.Reference, normalize.Fold(a.Reference), a.Taille,
		a.Couleur, a.PrixLocation, a.SeuilAlerte, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List renvoie une page d'articles filtrée, plus le total hors pagination.
func (r *ArticleRepo) List(ctx context.Context, filtre repository.FiltreArticles, limit, offset int) ([]*entity.ArticleStock, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	i := 1
	if filtre.Categorie != "" {
		where += fmt.Sprintf(" AND categorie = $%d", i)
		args = append(args, filtre.Categorie)
		i++
	}
	if filtre.Taille != "" {
		where += fmt.Sprintf(" AND taille = $%d", i)
		args = append(args, filtre.Taille)
		i++
	}
	if filtre.Recherche != "" {
		where += fmt.Sprintf(" AND reference_norm LIKE '%%' || $%d || '%%'", i)
		args = append(args, normalize.Fold(filtre.Recherche))
		i++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM articles_stock`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query := `SELECT ` + colonnesArticle + ` FROM articles_stock` + where +
		fmt.Sprintf(` ORDER BY categorie, reference, taille LIMIT $%d OFFSET $%d`, i, i+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []*entity.ArticleStock
	for rows.Next() {
		var a entity.ArticleStock
		if err := rows.Scan(
			&a.ID, &a.Categorie, &a.SousCategorie, &a.Reference, &a.Taille, &a.Couleur, &a.PrixLocation,
			&a.QuantiteStock, &a.QuantiteReservee, &a.QuantiteDisponible, &a.SeuilAlerte, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, &a)
	}
	return articles, total, rows.Err()
}

// ListGroupes agrège le stock par modèle, toutes tailles confondues.
func (r *ArticleRepo) ListGroupes(ctx context.Context) ([]*entity.GroupeArticles, error) {
	query := `
		SELECT categorie, reference, COUNT(*) AS nb_variantes,
			SUM(quantite_stock), SUM(quantite_reservee), SUM(quantite_disponible)
		FROM articles_stock
		GROUP BY categorie, reference
		ORDER BY categorie, reference`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list groupes articles: %w", err)
	}
	defer rows.Close()

	var groupes []*entity.GroupeArticles
	for rows.Next() {
		var g entity.GroupeArticles
		if err := rows.Scan(&g.Categorie, &g.Reference, &g.NbVariantes,
			&g.QuantiteStock, &g.QuantiteReservee, &g.QuantiteDisponible); err != nil {
			return nil, fmt.Errorf("scan groupe articles: %w", err)
		}
		groupes = append(groupes, &g)
	}
	return groupes, rows.Err()
}

// Delete supprime l'article et son historique de mouvements (cascade).
func (r *ArticleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM articles_stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ArticleRepo) scanArticle(row pgx.Row, op string) (*entity.ArticleStock, error) {
	var a entity.ArticleStock
	err := row.Scan(
		&a.ID, &a.Categorie, &a.SousCategorie, &a.Reference, &a.Taille, &a.Couleur, &a.PrixLocation,
		&a.QuantiteStock, &a.QuantiteReservee, &a.QuantiteDisponible, &a.SeuilAlerte, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
