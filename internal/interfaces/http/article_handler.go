package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	appstock "github.com/atelier-ceremonie/location-api/internal/application/stock"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

// ArticleHandler gère les requêtes HTTP du stock : articles, mouvements,
// alertes et disponibilité.
type ArticleHandler struct {
	articles   *appstock.ArticleUseCase
	mouvements *appstock.EnregistrerMouvementUseCase
}

// NewArticleHandler construit le handler.
func NewArticleHandler(articles *appstock.ArticleUseCase, mouvements *appstock.EnregistrerMouvementUseCase) *ArticleHandler {
	return &ArticleHandler{articles: articles, mouvements: mouvements}
}

// Create godoc
// @Summary      Créer un article de stock
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleRequest  true  "Article à créer"
// @Success      201   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.articles.Create(c.Context(), in)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un article par ID
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de l'article"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.articles.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un article (champs descriptifs et seuil)
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de l'article"
// @Param        body  body  dto.UpdateArticleRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.articles.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les articles
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        categorie  query  string  false  "Filtre catégorie"
// @Param        taille     query  string  false  "Filtre taille"
// @Param        recherche  query  string  false  "Recherche sur la référence"
// @Param        page       query  int     false  "Page"    default(1)
// @Param        limit      query  int     false  "Limite"  default(20)
// @Success      200  {object}  dto.ArticleListResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	filtre := repository.FiltreArticles{
		Categorie: c.Query("categorie"),
		Taille:    c.Query("taille"),
		Recherche: c.Query("recherche"),
	}
	out, err := h.articles.List(c.Context(), filtre, pageDepuisQuery(c))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// ListGroupes godoc
// @Summary      Stock agrégé par modèle, toutes tailles confondues
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GroupeArticlesResponse
// @Router       /api/articles/groupes [get]
func (h *ArticleHandler) ListGroupes(c *fiber.Ctx) error {
	out, err := h.articles.ListGroupes(c.Context())
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un article sans réservation en cours
// @Tags         articles
// @Security     Bearer
// @Param        id  path  string  true  "ID de l'article"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	if err := h.articles.Delete(c.Context(), c.Params("id")); err != nil {
		return reponseErreur(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Disponibilite godoc
// @Summary      Disponibilité projetée d'un article à une date
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true  "ID de l'article"
// @Param        date  query  string  true  "Date AAAA-MM-JJ"
// @Success      200   {object}  dto.DisponibiliteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/articles/{id}/disponibilite [get]
func (h *ArticleHandler) Disponibilite(c *fiber.Ctx) error {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date attendue au format AAAA-MM-JJ"})
	}
	out, err := h.articles.Disponibilite(c.Context(), c.Params("id"), date)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// CreateMouvement godoc
// @Summary      Enregistrer un mouvement de stock
// @Tags         mouvements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MouvementRequest  true  "Mouvement"
// @Success      201   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mouvements [post]
func (h *ArticleHandler) CreateMouvement(c *fiber.Ctx) error {
	var in dto.MouvementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	article, err := h.mouvements.Enregistrer(c.Context(), appstock.MouvementInput{
		ArticleID:        in.ArticleID,
		Type:             in.Type,
		Quantite:         in.Quantite,
		DatePrevue:       in.DatePrevue,
		DateRetourPrevue: in.DateRetourPrevue,
		ContratID:        in.ContratID,
		EffectuePar:      GetNom(c),
		Commentaire:      in.Commentaire,
	})
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(versArticleResponse(article))
}

// ListMouvements godoc
// @Summary      Historique des mouvements d'un article
// @Tags         mouvements
// @Security     Bearer
// @Produce      json
// @Param        article_id  query  string  true   "ID de l'article"
// @Param        page        query  int     false  "Page"    default(1)
// @Param        limit       query  int     false  "Limite"  default(20)
// @Success      200  {object}  dto.MouvementListResponse
// @Router       /api/mouvements [get]
func (h *ArticleHandler) ListMouvements(c *fiber.Ctx) error {
	articleID := c.Query("article_id")
	if articleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "article_id est requis"})
	}
	out, err := h.articles.ListMouvements(c.Context(), articleID, pageDepuisQuery(c))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

func versArticleResponse(a *entity.ArticleStock) dto.ArticleResponse {
	return dto.ArticleResponse{
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

// ListAlertes godoc
// @Summary      Alertes de stock actives
// @Tags         alertes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlerteResponse
// @Router       /api/alertes [get]
func (h *ArticleHandler) ListAlertes(c *fiber.Ctx) error {
	out, err := h.articles.ListAlertes(c.Context())
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}
