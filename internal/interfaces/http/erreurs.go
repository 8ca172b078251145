package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/pkg/logger"
)

// Logger du mapping d'erreurs. Router le remplace par celui de l'application ;
// la valeur par défaut couvre les tests.
var log = logger.New(logger.Config{Env: "development", Level: "info"})

// reponseErreur traduit une erreur domaine en réponse HTTP. Tous les handlers
// passent par ici : un même type d'erreur sort toujours avec le même code.
func reponseErreur(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidation(err); ok {
		champs := make([]dto.ChampErreurDTO, 0, len(ve.Champs))
		for _, ch := range ve.Champs {
			champs = append(champs, dto.ChampErreurDTO{Champ: ch.Champ, Message: ch.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "données invalides", Errors: champs,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
	case errors.Is(err, domain.ErrStatutInvalide):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "statut hors énumération"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ressource introuvable"})
	case errors.Is(err, domain.ErrTransitionStatut):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "transition de statut interdite"})
	case errors.Is(err, domain.ErrStockInsuffisant):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVARIANT_VIOLATION", Message: "stock disponible insuffisant"})
	case errors.Is(err, domain.ErrInvariantStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVARIANT_VIOLATION", Message: "le mouvement violerait les compteurs de stock"})
	case errors.Is(err, domain.ErrReservationsEnCours):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_RESERVATIONS", Message: "des réservations sont en cours sur cet article"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la ressource existe déjà"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identifiants invalides"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "accès refusé"})
	default:
		// Le détail de l'erreur part dans les logs, jamais dans la réponse.
		log.Error().Err(err).Str("methode", c.Method()).Str("chemin", c.Path()).Msg("erreur interne")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erreur interne"})
	}
}

// pageDepuisQuery lit limit et page de la query string.
func pageDepuisQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
}
