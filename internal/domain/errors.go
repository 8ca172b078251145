package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound            = errors.New("ressource introuvable")
	ErrUserNotFound        = errors.New("utilisateur introuvable")
	ErrEmailAlreadyExists  = errors.New("cet email est déjà enregistré")
	ErrInvalidInput        = errors.New("entrée invalide")
	ErrDuplicate           = errors.New("ressource dupliquée")
	ErrUnauthorized        = errors.New("non autorisé")
	ErrForbidden           = errors.New("accès refusé")
	ErrStockInsuffisant    = errors.New("stock insuffisant")
	ErrInvariantStock      = errors.New("les compteurs de stock deviendraient négatifs")
	ErrReservationsEnCours = errors.New("suppression impossible : réservations en cours")
	ErrStatutInvalide      = errors.New("statut hors de l'énumération autorisée")
	ErrTransitionStatut    = errors.New("transition de statut non autorisée")
)

// ChampErreur associe un champ à son message de validation.
type ChampErreur struct {
	Champ   string `json:"champ"`
	Message string `json:"message"`
}

// ValidationError porte les erreurs de validation champ par champ
// (traduites en 400 avec le détail à la frontière HTTP).
type ValidationError struct {
	Champs []ChampErreur
}

func (e *ValidationError) Error() string {
	if len(e.Champs) == 0 {
		return "validation échouée"
	}
	parts := make([]string, 0, len(e.Champs))
	for _, c := range e.Champs {
		parts = append(parts, fmt.Sprintf("%s: %s", c.Champ, c.Message))
	}
	return "validation échouée: " + strings.Join(parts, "; ")
}

// NewValidationError construit une erreur de validation pour un seul champ.
func NewValidationError(champ, message string) *ValidationError {
	return &ValidationError{Champs: []ChampErreur{{Champ: champ, Message: message}}}
}

// AsValidation extrait une *ValidationError de la chaîne d'erreurs.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
