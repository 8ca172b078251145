package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	domstock "github.com/atelier-ceremonie/location-api/internal/domain/stock"
)

// ArticleUseCase cas d'usage CRUD du catalogue d'articles, listing des mouvements
// et des alertes, disponibilité projetée.
type ArticleUseCase struct {
	articleRepo   repository.ArticleRepository
	mouvementRepo repository.MouvementRepository
	alerteRepo    repository.AlerteRepository
}

// NewArticleUseCase construit le cas d'usage.
func NewArticleUseCase(
	articleRepo repository.ArticleRepository,
	mouvementRepo repository.MouvementRepository,
	alerteRepo repository.AlerteRepository,
) *ArticleUseCase {
	return &ArticleUseCase{articleRepo: articleRepo, mouvementRepo: mouvementRepo, alerteRepo: alerteRepo}
}

// Create enregistre un article (entrée en stock initiale comprise).
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	ve := &domain.ValidationError{}
	if !entity.CategorieValide(in.Categorie) {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "categorie", Message: "catégorie inconnue"})
	}
	if in.Reference == "" {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "reference", Message: "la référence est requise"})
	}
	if in.Taille == "" {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "taille", Message: "la taille est requise"})
	}
	if in.QuantiteStock < 0 {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "quantite_stock", Message: "doit être positive ou nulle"})
	}
	if in.SeuilAlerte < 0 {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "seuil_alerte", Message: "doit être positif ou nul"})
	}
	if len(ve.Champs) > 0 {
		return nil, ve
	}

	now := time.Now()
	article := &entity.ArticleStock{
		ID:                 uuid.New().String(),
		Categorie:          in.Categorie,
		SousCategorie:      in.SousCategorie,
		Reference:          in.Reference,
		Taille:             in.Taille,
		Couleur:            in.Couleur,
		PrixLocation:       in.PrixLocation,
		QuantiteStock:      in.QuantiteStock,
		QuantiteReservee:   0,
		QuantiteDisponible: in.QuantiteStock,
		SeuilAlerte:        in.SeuilAlerte,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetByID renvoie un article par ID.
func (uc *ArticleUseCase) GetByID(ctx context.Context, id string) (*dto.ArticleResponse, error) {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return toArticleResponse(article), nil
}

// Update modifie les champs descriptifs et le seuil. Les compteurs ne
// bougent que par mouvements.
func (uc *ArticleUseCase) Update(ctx context.Context, id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if in.Categorie != nil {
		if !entity.CategorieValide(*in.Categorie) {
			return nil, domain.NewValidationError("categorie", "catégorie inconnue")
		}
		article.Categorie = *in.Categorie
	}
	if in.SousCategorie != nil {
		article.SousCategorie = *in.SousCategorie
	}
	if in.Reference != nil {
		article.Reference = *in.Reference
	}
	if in.Taille != nil {
		article.Taille = *in.Taille
	}
	if in.Couleur != nil {
		article.Couleur = *in.Couleur
	}
	if in.PrixLocation != nil {
		article.PrixLocation = *in.PrixLocation
	}
	if in.SeuilAlerte != nil {
		if *in.SeuilAlerte < 0 {
			return nil, domain.NewValidationError("seuil_alerte", "doit être positif ou nul")
		}
		article.SeuilAlerte = *in.SeuilAlerte
	}
	article.UpdatedAt = time.Now()
	if err := uc.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// List liste les articles selon le filtre, avec pagination.
func (uc *ArticleUseCase) List(ctx context.Context, filtre repository.FiltreArticles, page dto.PageRequest) (*dto.ArticleListResponse, error) {
	page.Normaliser()
	articles, total, err := uc.articleRepo.List(ctx, filtre, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, *toArticleResponse(a))
	}
	return &dto.ArticleListResponse{
		Data:       items,
		Pagination: dto.NewPagination(total, page.Page, page.Limit),
	}, nil
}

// ListGroupes renvoie le stock agrégé par modèle (toutes tailles confondues).
func (uc *ArticleUseCase) ListGroupes(ctx context.Context) ([]dto.GroupeArticlesResponse, error) {
	groupes, err := uc.articleRepo.ListGroupes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupeArticlesResponse, 0, len(groupes))
	for _, g := range groupes {
		out = append(out, dto.GroupeArticlesResponse{
			Categorie:          g.Categorie,
			Reference:          g.Reference,
			NbVariantes:        g.NbVariantes,
			QuantiteStock:      g.QuantiteStock,
			QuantiteReservee:   g.QuantiteReservee,
			QuantiteDisponible: g.QuantiteDisponible,
		})
	}
	return out, nil
}

// Delete supprime un article. Refusé tant que des réservations sont en cours ;
// les mouvements restent en base (piste d'audit sur un ID désormais orphelin).
func (uc *ArticleUseCase) Delete(ctx context.Context, id string) error {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	if article.QuantiteReservee > 0 {
		return domain.ErrReservationsEnCours
	}
	return uc.articleRepo.Delete(ctx, id)
}

// ListMouvements liste le journal d'un article.
func (uc *ArticleUseCase) ListMouvements(ctx context.Context, articleID string, page dto.PageRequest) (*dto.MouvementListResponse, error) {
	page.Normaliser()
	mouvements, total, err := uc.mouvementRepo.List(ctx, articleID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.MouvementResponse, 0, len(mouvements))
	for _, m := range mouvements {
		items = append(items, dto.MouvementResponse{
			ID:               m.ID,
			ArticleID:        m.ArticleID,
			Type:             m.Type,
			Quantite:         m.Quantite,
			DateMouvement:    m.DateMouvement,
			DatePrevue:       m.DatePrevue,
			DateRetourPrevue: m.DateRetourPrevue,
			ContratID:        m.ContratID,
			EffectuePar:      m.EffectuePar,
			Commentaire:      m.Commentaire,
		})
	}
	return &dto.MouvementListResponse{
		Data:       items,
		Pagination: dto.NewPagination(total, page.Page, page.Limit),
	}, nil
}

// ListAlertes liste les alertes actives.
func (uc *ArticleUseCase) ListAlertes(ctx context.Context) ([]dto.AlerteResponse, error) {
	alertes, err := uc.alerteRepo.ListActives(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlerteResponse, 0, len(alertes))
	for _, a := range alertes {
		out = append(out, dto.AlerteResponse{
			ID:               a.ID,
			ArticleID:        a.ArticleID,
			QuantiteActuelle: a.QuantiteActuelle,
			Seuil:            a.Seuil,
			Message:          a.Message,
			DetecteeLe:       a.DetecteeLe,
		})
	}
	return out, nil
}

// Disponibilite projette la disponibilité d'un article à une date : lecture
// calculée depuis les fenêtres de réservation du journal, pas depuis les
// compteurs instantanés.
func (uc *ArticleUseCase) Disponibilite(ctx context.Context, articleID string, date time.Time) (*dto.DisponibiliteResponse, error) {
	article, err := uc.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	fenetres, err := uc.mouvementRepo.ReservationsOuvertes(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return &dto.DisponibiliteResponse{
		ArticleID:            articleID,
		Date:                 date,
		QuantiteStock:        article.QuantiteStock,
		DisponibleMaintenant: article.QuantiteDisponible,
		DisponibleALaDate:    domstock.DisponibleALaDate(article.QuantiteStock, fenetres, date),
	}, nil
}

func toArticleResponse(a *entity.ArticleStock) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticleResponse{
		ID:                 a.ID,
		Categorie:          a.Categorie,
		SousCategorie:      a.SousCategorie,
		Reference:          a.Reference,
		Taille:             a.Taille,
		Couleur:            a.Couleur,
		PrixLocation:       a.PrixLocation,
		QuantiteStock:      a.QuantiteStock,
		QuantiteReservee:   a.QuantiteReservee,
		QuantiteDisponible: a.QuantiteDisponible,
		SeuilAlerte:        a.SeuilAlerte,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
