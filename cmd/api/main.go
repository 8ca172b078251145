package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/atelier-ceremonie/location-api/internal/application/auth"
	appcontrat "github.com/atelier-ceremonie/location-api/internal/application/contrat"
	appliste "github.com/atelier-ceremonie/location-api/internal/application/liste"
	applocation "github.com/atelier-ceremonie/location-api/internal/application/location"
	apprapport "github.com/atelier-ceremonie/location-api/internal/application/rapport"
	"github.com/atelier-ceremonie/location-api/internal/application/sequence"
	appstock "github.com/atelier-ceremonie/location-api/internal/application/stock"
	"github.com/atelier-ceremonie/location-api/internal/infrastructure/cache"
	infrapdf "github.com/atelier-ceremonie/location-api/internal/infrastructure/pdf"
	"github.com/atelier-ceremonie/location-api/internal/infrastructure/postgres"
	httpRouter "github.com/atelier-ceremonie/location-api/internal/interfaces/http"
	"github.com/atelier-ceremonie/location-api/pkg/config"
	"github.com/atelier-ceremonie/location-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	compteurRepo := postgres.NewCompteurRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	mouvementRepo := postgres.NewMouvementRepository(pool)
	alerteRepo := postgres.NewAlerteRepository(pool)
	contratRepo := postgres.NewContratRepository(pool)
	listeRepo := postgres.NewListeRepository(pool)
	locationRepo := postgres.NewLocationGroupeRepository(pool)
	rapportRepo := postgres.NewRapportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache Redis : si indisponible, les rapports sont recalculés à chaque appel.
	var rapportCache apprapport.Cache
	redisCache, err := cache.NewRedisCache(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis indisponible, rapports sans cache")
	} else {
		rapportCache = redisCache
		defer redisCache.Close()
	}

	numeroteurUC := sequence.NewNumeroteurUseCase(compteurRepo)
	articleUC := appstock.NewArticleUseCase(articleRepo, mouvementRepo, alerteRepo)
	mouvementUC := appstock.NewEnregistrerMouvementUseCase(txRunner, articleRepo)
	listeUC := appliste.NewListeUseCase(listeRepo, numeroteurUC)
	locationUC := applocation.NewLocationGroupeUseCase(locationRepo)

	ficheGenerator := infrapdf.NewMarotoFicheGenerator(cfg.App.Name)
	contratUC := appcontrat.NewContratUseCase(contratRepo, numeroteurUC, ficheGenerator)

	rapportUC := apprapport.NewRapportUseCase(rapportRepo, rapportCache, log)
	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs. Le fichier est
	// généré par `swag init` ; sans lui, le serveur démarre sans la doc.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "API Location Cérémonie",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json absent, Swagger UI désactivée (lancer swag init)")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ArticleUC:   articleUC,
		MouvementUC: mouvementUC,
		ListeUC:     listeUC,
		LocationUC:  locationUC,
		ContratUC:   contratUC,
		RapportUC:   rapportUC,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
