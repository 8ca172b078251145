package entity

import "time"

// Rôles valides pour Utilisateur.
const (
	RoleAdmin   = "admin"
	RoleVendeur = "vendeur"
)

// Utilisateur compte du personnel de la boutique.
type Utilisateur struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, jamais en clair après persistance
	Nom          string
	Role         string // admin, vendeur
	Statut       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
