package dto

import "time"

// ClientGroupeDTO un membre d'une location groupée.
type ClientGroupeDTO struct {
	Nom          string          `json:"nom"`
	Prenom       string          `json:"prenom,omitempty"`
	Telephone    string          `json:"telephone,omitempty"`
	Mensurations MensurationsDTO `json:"mensurations"`
	Tenue        string          `json:"tenue,omitempty"`
	Ordre        int             `json:"ordre"`
}

// CreateLocationGroupeRequest body pour POST /api/locations-groupees.
type CreateLocationGroupeRequest struct {
	NomGroupe string            `json:"nom_groupe,omitempty"`
	Telephone string            `json:"telephone,omitempty"`
	Email     string            `json:"email,omitempty"`
	DateEssai *time.Time        `json:"date_essai,omitempty"`
	Vendeur   string            `json:"vendeur"`
	Clients   []ClientGroupeDTO `json:"clients"`
	Notes     string            `json:"notes,omitempty"`
}

// UpdateLocationGroupeRequest body pour PUT /api/locations-groupees/:id.
// Le statut ne passe pas par ici (PATCH dédié).
type UpdateLocationGroupeRequest struct {
	NomGroupe *string           `json:"nom_groupe,omitempty"`
	Telephone *string           `json:"telephone,omitempty"`
	Email     *string           `json:"email,omitempty"`
	DateEssai *time.Time        `json:"date_essai,omitempty"`
	Vendeur   *string           `json:"vendeur,omitempty"`
	Clients   []ClientGroupeDTO `json:"clients,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
}

// LocationGroupeResponse représentation d'une location groupée.
type LocationGroupeResponse struct {
	ID        string            `json:"id"`
	NomGroupe string            `json:"nom_groupe"`
	Telephone string            `json:"telephone,omitempty"`
	Email     string            `json:"email,omitempty"`
	DateEssai *time.Time        `json:"date_essai,omitempty"`
	Vendeur   string            `json:"vendeur"`
	Clients   []ClientGroupeDTO `json:"clients"`
	Statut    string            `json:"statut"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// LocationGroupeListResponse page de locations groupées.
type LocationGroupeListResponse struct {
	Data       []LocationGroupeResponse `json:"data"`
	Pagination Pagination               `json:"pagination"`
}
