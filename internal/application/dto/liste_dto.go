package dto

import "time"

// CreateListeRequest body pour POST /api/listes.
type CreateListeRequest struct {
	Nom         string `json:"nom"`
	Description string `json:"description,omitempty"`
	Couleur     string `json:"couleur,omitempty"`
}

// UpdateListeRequest body pour PUT /api/listes/:id (le numéro est immuable).
type UpdateListeRequest struct {
	Nom         *string `json:"nom,omitempty"`
	Description *string `json:"description,omitempty"`
	Couleur     *string `json:"couleur,omitempty"`
}

// ParticipantDTO un contrat rattaché à une liste.
type ParticipantDTO struct {
	ContratID string `json:"contratId"`
	Role      string `json:"role,omitempty"`
	Ordre     int    `json:"ordre"`
}

// AjouterParticipantRequest body pour POST /api/listes/:listeId/contrats/:contratId.
type AjouterParticipantRequest struct {
	Role string `json:"role,omitempty"`
}

// ModifierRoleRequest body pour PATCH .../contrats/:contratId/role.
type ModifierRoleRequest struct {
	Role string `json:"role"`
}

// RemplacerParticipantsRequest body pour PUT /api/listes/:id/participants.
type RemplacerParticipantsRequest struct {
	Participants []ParticipantDTO `json:"participants"`
}

// ListeResponse représentation d'une liste ; ContratIDs est la projection
// dérivée des participants, calculée à la sérialisation.
type ListeResponse struct {
	ID           string           `json:"id"`
	Numero       string           `json:"numero"`
	Nom          string           `json:"nom"`
	Description  string           `json:"description,omitempty"`
	Couleur      string           `json:"couleur,omitempty"`
	Participants []ParticipantDTO `json:"participants"`
	ContratIDs   []string         `json:"contratIds"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ListeListResponse page de listes.
type ListeListResponse struct {
	Data       []ListeResponse `json:"data"`
	Pagination Pagination      `json:"pagination"`
}
