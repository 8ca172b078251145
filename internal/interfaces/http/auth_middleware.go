package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/pkg/jwt"
)

// Locals keys pour l'utilisateur courant dans Fiber.
const (
	LocalUserID = "user_id"
	LocalNom    = "nom"
	LocalRole   = "role"
)

// AuthMiddleware valide le Bearer Token JWT et pose UserID, Nom et Role dans
// c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requis"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format attendu : Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vide"})
		}
		userID, nom, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalide ou expiré"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalNom, nom)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetUserID renvoie l'identifiant utilisateur du contexte (après le middleware).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetNom renvoie le nom de l'utilisateur du contexte.
func GetNom(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalNom).(string)
	return s
}

// GetRole renvoie le rôle de l'utilisateur du contexte.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
