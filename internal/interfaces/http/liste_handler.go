package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	appliste "github.com/atelier-ceremonie/location-api/internal/application/liste"
)

// ListeHandler gère les requêtes HTTP des listes de contrats.
type ListeHandler struct {
	uc *appliste.ListeUseCase
}

// NewListeHandler construit le handler.
func NewListeHandler(uc *appliste.ListeUseCase) *ListeHandler {
	return &ListeHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une liste
// @Tags         listes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateListeRequest  true  "Liste à créer"
// @Success      201   {object}  dto.ListeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/listes [post]
func (h *ListeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateListeRequest
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
// @Summary      Obtenir une liste par ID
// @Tags         listes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la liste"
// @Success      200  {object}  dto.ListeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listes/{id} [get]
func (h *ListeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier une liste (champs descriptifs)
// @Tags         listes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la liste"
// @Param        body  body  dto.UpdateListeRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.ListeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/listes/{id} [put]
func (h *ListeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateListeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les listes
// @Tags         listes
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Page"    default(1)
// @Param        limit  query  int  false  "Limite"  default(20)
// @Success      200  {object}  dto.ListeListResponse
// @Router       /api/listes [get]
func (h *ListeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), pageDepuisQuery(c))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// ListesPourContrat godoc
// @Summary      Listes auxquelles un contrat participe
// @Tags         listes
// @Security     Bearer
// @Produce      json
// @Param        contratId  path  string  true  "ID du contrat"
// @Success      200  {array}  dto.ListeResponse
// @Router       /api/listes/contrat/{contratId} [get]
func (h *ListeHandler) ListesPourContrat(c *fiber.Ctx) error {
	out, err := h.uc.ListesPourContrat(c.Context(), c.Params("contratId"))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// AjouterParticipant godoc
// @Summary      Rattacher un contrat à une liste
// @Tags         listes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        listeId    path  string                        true   "ID de la liste"
// @Param        contratId  path  string                        true   "ID du contrat"
// @Param        body       body  dto.AjouterParticipantRequest false  "Rôle du participant"
// @Success      200  {object}  dto.ListeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listes/{listeId}/contrats/{contratId} [post]
func (h *ListeHandler) AjouterParticipant(c *fiber.Ctx) error {
	var in dto.AjouterParticipantRequest
	// Corps optionnel : sans body, rôle vide
	_ = c.BodyParser(&in)
	out, err := h.uc.AjouterParticipant(c.Context(), c.Params("listeId"), c.Params("contratId"), in.Role)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// RetirerParticipant godoc
// @Summary      Détacher un contrat d'une liste
// @Tags         listes
// @Security     Bearer
// @Produce      json
// @Param        listeId    path  string  true  "ID de la liste"
// @Param        contratId  path  string  true  "ID du contrat"
// @Success      200  {object}  dto.ListeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listes/{listeId}/contrats/{contratId} [delete]
func (h *ListeHandler) RetirerParticipant(c *fiber.Ctx) error {
	out, err := h.uc.RetirerParticipant(c.Context(), c.Params("listeId"), c.Params("contratId"))
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// ModifierRole godoc
// @Summary      Changer le rôle d'un participant
// @Tags         listes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        listeId    path  string                   true  "ID de la liste"
// @Param        contratId  path  string                   true  "ID du contrat"
// @Param        body       body  dto.ModifierRoleRequest  true  "Nouveau rôle"
// @Success      200  {object}  dto.ListeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listes/{listeId}/contrats/{contratId}/role [patch]
func (h *ListeHandler) ModifierRole(c *fiber.Ctx) error {
	var in dto.ModifierRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.ModifierRole(c.Context(), c.Params("listeId"), c.Params("contratId"), in.Role)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// RemplacerParticipants godoc
// @Summary      Remplacer l'ensemble des participants
// @Tags         listes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la liste"
// @Param        body  body  dto.RemplacerParticipantsRequest  true  "Participants"
// @Success      200   {object}  dto.ListeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/listes/{id}/participants [put]
func (h *ListeHandler) RemplacerParticipants(c *fiber.Ctx) error {
	var in dto.RemplacerParticipantsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.RemplacerParticipants(c.Context(), c.Params("id"), in)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une liste (les contrats sont conservés)
// @Tags         listes
// @Security     Bearer
// @Param        id  path  string  true  "ID de la liste"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listes/{id} [delete]
func (h *ListeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return reponseErreur(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
