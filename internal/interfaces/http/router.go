package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelier-ceremonie/location-api/internal/application/auth"
	appcontrat "github.com/atelier-ceremonie/location-api/internal/application/contrat"
	appliste "github.com/atelier-ceremonie/location-api/internal/application/liste"
	applocation "github.com/atelier-ceremonie/location-api/internal/application/location"
	apprapport "github.com/atelier-ceremonie/location-api/internal/application/rapport"
	appstock "github.com/atelier-ceremonie/location-api/internal/application/stock"
	"github.com/atelier-ceremonie/location-api/pkg/logger"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ArticleUC   *appstock.ArticleUseCase
	MouvementUC *appstock.EnregistrerMouvementUseCase
	ListeUC     *appliste.ListeUseCase
	LocationUC  *applocation.LocationGroupeUseCase
	ContratUC   *appcontrat.ContratUseCase
	RapportUC   *apprapport.RapportUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		log = deps.Log
	}

	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	authProtege := protected.Group("/auth")
	authProtege.Get("/me", authHandler.Me)

	// Stock : articles, mouvements, alertes
	articleHandler := NewArticleHandler(deps.ArticleUC, deps.MouvementUC)
	articles := protected.Group("/articles")
	articles.Post("/", articleHandler.Create)
	articles.Get("/", articleHandler.List)
	articles.Get("/groupes", articleHandler.ListGroupes)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Put("/:id", articleHandler.Update)
	articles.Delete("/:id", articleHandler.Delete)
	articles.Get("/:id/disponibilite", articleHandler.Disponibilite)

	mouvements := protected.Group("/mouvements")
	mouvements.Post("/", articleHandler.CreateMouvement)
	mouvements.Get("/", articleHandler.ListMouvements)

	protected.Get("/alertes", articleHandler.ListAlertes)

	// Listes de contrats
	listeHandler := NewListeHandler(deps.ListeUC)
	listes := protected.Group("/listes")
	listes.Post("/", listeHandler.Create)
	listes.Get("/", listeHandler.List)
	listes.Get("/contrat/:contratId", listeHandler.ListesPourContrat)
	listes.Get("/:id", listeHandler.GetByID)
	listes.Put("/:id", listeHandler.Update)
	listes.Delete("/:id", listeHandler.Delete)
	listes.Put("/:id/participants", listeHandler.RemplacerParticipants)
	listes.Post("/:listeId/contrats/:contratId", listeHandler.AjouterParticipant)
	listes.Delete("/:listeId/contrats/:contratId", listeHandler.RetirerParticipant)
	listes.Patch("/:listeId/contrats/:contratId/role", listeHandler.ModifierRole)

	// Locations groupées
	locationHandler := NewLocationGroupeHandler(deps.LocationUC)
	locations := protected.Group("/locations-groupees")
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Patch("/:id/statut", locationHandler.ChangerStatut)
	locations.Delete("/:id", locationHandler.Delete)

	// Contrats
	contratHandler := NewContratHandler(deps.ContratUC)
	contrats := protected.Group("/contrats")
	contrats.Post("/", contratHandler.Create)
	contrats.Get("/", contratHandler.List)
	contrats.Get("/:id", contratHandler.GetByID)
	contrats.Put("/:id", contratHandler.Update)
	contrats.Delete("/:id", contratHandler.Delete)
	contrats.Patch("/:id/statut", contratHandler.ChangerStatut)
	contrats.Post("/:id/paiements", contratHandler.AjouterPaiement)
	contrats.Get("/:id/fiche.pdf", contratHandler.Fiche)

	// Rapports
	rapportHandler := NewRapportHandler(deps.RapportUC)
	rapports := protected.Group("/rapports")
	rapports.Get("/recette", rapportHandler.Recette)
	rapports.Get("/tableau-de-bord", rapportHandler.TableauDeBord)
}
