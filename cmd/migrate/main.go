package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/atelier-ceremonie/location-api/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("fichier .env introuvable, lecture des variables d'environnement seules : %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("chargement de la configuration : %v", err)
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "répertoire des fichiers de migration")
	flag.Parse()

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("goose : connexion à la base : %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose : fermeture de la base : %v", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v : %v", command, err)
	}

	fmt.Printf("goose %s : ok\n", command)
}
