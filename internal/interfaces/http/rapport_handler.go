package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	apprapport "github.com/atelier-ceremonie/location-api/internal/application/rapport"
)

// RapportHandler gère les requêtes HTTP de reporting.
type RapportHandler struct {
	uc *apprapport.RapportUseCase
}

// NewRapportHandler construit le handler.
func NewRapportHandler(uc *apprapport.RapportUseCase) *RapportHandler {
	return &RapportHandler{uc: uc}
}

// Recette godoc
// @Summary      Recette encaissée sur une journée
// @Tags         rapports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Date AAAA-MM-JJ (défaut : aujourd'hui)"
// @Success      200   {object}  dto.RecetteJournaliereDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rapports/recette [get]
func (h *RapportHandler) Recette(c *fiber.Ctx) error {
	jour := time.Now()
	if q := c.Query("date"); q != "" {
		var err error
		jour, err = time.Parse("2006-01-02", q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date attendue au format AAAA-MM-JJ"})
		}
	}
	out, err := h.uc.RecetteJournaliere(c.Context(), jour)
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}

// TableauDeBord godoc
// @Summary      Synthèse du tableau de bord
// @Tags         rapports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TableauDeBordDTO
// @Router       /api/rapports/tableau-de-bord [get]
func (h *RapportHandler) TableauDeBord(c *fiber.Ctx) error {
	out, err := h.uc.TableauDeBord(c.Context())
	if err != nil {
		return reponseErreur(c, err)
	}
	return c.JSON(out)
}
