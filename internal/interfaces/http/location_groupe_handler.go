package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	applocation "github.com/atelier-ceremonie/location-api/internal/application/location"
)

// LocationGroupeHandler gère les requêtes HTTP des locations groupées.
type LocationGroupeHandler struct {
	uc *applocation.LocationGroupeUseCase
}

// NewLocationGroupeHandler construit le handler.
func NewLocationGroupeHandler(uc *applocation.LocationGroupeUseCase) *LocationGroupeHandler {
	return &LocationGroupeHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une fiche de location groupée
// @Tags         locations-groupees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationGroupeRequest  true  "Fiche à créer"
// @Success      201   {object}  dto.LocationGroupeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locations-groupees [post]
func (h *LocationGroupeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationGroupeRequest
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
// @Summary      Obtenir une fiche par ID
// @Tags         locations-groupees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la fiche"
// @Success      200  {object}  dto.LocationGroupeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations-groupees/{id} [get]
func (h *LocationGroupeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier une fiche (hors statut)
// @Tags         locations-groupees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID de la fiche"
// @Param        body  body  dto.UpdateLocationGroupeRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.LocationGroupeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations-groupees/{id} [put]
func (h *LocationGroupeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLocationGroupeRequest
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
// @Summary      Changer le statut d'une fiche
// @Tags         locations-groupees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la fiche"
// @Param        body  body  dto.ChangerStatutRequest true  "Nouveau statut"
// @Success      200   {object}  dto.LocationGroupeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations-groupees/{id}/statut [patch]
func (h *LocationGroupeHandler) ChangerStatut(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Lister les fiches
// @Tags         locations-groupees
// @Security     Bearer
// @Produce      json
// @Param        statut  query  string  false  "Filtre statut"
// @Param        page    query  int     false  "Page"    default(1)
// @Param        limit   query  int     false  "Limite"  default(20)
// @Success      200  {object}  dto.LocationGroupeListResponse
// @Router       /api/locations-groupees [get]
func (h *LocationGroupeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("statut"), pageDepuisQuery(c))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une fiche non transmise
// @Tags         locations-groupees
// @Security     Bearer
// @Param        id  path  string  true  "ID de la fiche"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/locations-groupees/{id} [delete]
func (h *LocationGroupeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return reponseErreur(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
