package dto

// Pagination métadonnées de page renvoyées par les listings.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPagination calcule les métadonnées pour un total donné.
func NewPagination(total, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// PageRequest paramètres de pagination des listings (limit/page).
type PageRequest struct {
	Page  int
	Limit int
}

// Normaliser applique les bornes et les valeurs par défaut.
func (p *PageRequest) Normaliser() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset dérive l'offset SQL de la page courante.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ChampErreurDTO détail d'une erreur de validation pour un champ.
type ChampErreurDTO struct {
	Champ   string `json:"champ"`
	Message string `json:"message"`
}

// ErrorResponse corps d'erreur HTTP.
type ErrorResponse struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Errors  []ChampErreurDTO `json:"errors,omitempty"`
}
