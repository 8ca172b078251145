package http

import (
	"github.com/gofiber/fiber/v2"

	appcontrat "github.com/atelier-ceremonie/location-api/internal/application/contrat"
	"github.com/atelier-ceremonie/location-api/internal/application/dto"
)

// ContratHandler gère les requêtes HTTP des contrats de location.
type ContratHandler struct {
	uc *appcontrat.ContratUseCase
}

// NewContratHandler construit le handler.
func NewContratHandler(uc *appcontrat.ContratUseCase) *ContratHandler {
	return &ContratHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un contrat (brouillon)
// @Tags         contrats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContratRequest  true  "Contrat à créer"
// @Success      201   {object}  dto.ContratResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contrats [post]
func (h *ContratHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContratRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un contrat par ID
// @Tags         contrats
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du contrat"
// @Success      200  {object}  dto.ContratResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contrats/{id} [get]
func (h *ContratHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un contrat (hors numéro et statut)
// @Tags         contrats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID du contrat"
// @Param        body  body  dto.UpdateContratRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.ContratResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contrats/{id} [put]
func (h *ContratHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContratRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// ChangerStatut godoc
// @Summary      Changer le statut d'un contrat
// @Tags         contrats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID du contrat"
// @Param        body  body  dto.ChangerStatutRequest true  "Nouveau statut"
// @Success      200   {object}  dto.ContratResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contrats/{id}/statut [patch]
func (h *ContratHandler) ChangerStatut(c *fiber.Ctx) error {
	var in dto.ChangerStatutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.ChangerStatut(c.Context(), c.Params("id"), in.Statut)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// AjouterPaiement godoc
// @Summary      Enregistrer un paiement sur un contrat
// @Tags         contrats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID du contrat"
// @Param        body  body  dto.PaiementRequest  true  "Paiement"
// @Success      201   {object}  dto.ContratResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contrats/{id}/paiements [post]
func (h *ContratHandler) AjouterPaiement(c *fiber.Ctx) error {
	var in dto.PaiementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.AjouterPaiement(c.Context(), c.Params("id"), in)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les contrats
// @Tags         contrats
// @Security     Bearer
// @Produce      json
// @Param        statut     query  string  false  "Filtre statut"
// @Param        recherche  query  string  false  "Recherche sur le nom du client"
// @Param        page       query  int     false  "Page"    default(1)
// @Param        limit      query  int     false  "Limite"  default(20)
// @Success      200  {object}  dto.ContratListResponse
// @Router       /api/contrats [get]
func (h *ContratHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("statut"), c.Query("recherche"), pageDepuisQuery(c))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// Fiche godoc
// @Summary      Fiche PDF du contrat
// @Tags         contrats
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID du contrat"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contrats/{id}/fiche.pdf [get]
func (h *ContratHandler) Fiche(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GenererFiche(c.Context(), c.Params("id"))
	if err != nil {
		return reponseErreur(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="fiche-location.pdf"`)
	return c.Send(pdfBytes)
}

// Delete godoc
// @Summary      Supprimer un contrat en brouillon
// @Tags         contrats
// @Security     Bearer
// @Param        id  path  string  true  "ID du contrat"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contrats/{id} [delete]
func (h *ContratHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return reponseErreur(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
