package liste

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

// Numeroteur alloue les numéros d'affaire séquentiels (L-2025-007).
type Numeroteur interface {
	AllouerNumero(ctx context.Context, prefixe string) (string, error)
}

// ListeUseCase gère les listes de contrats et leurs participants. Toute
// mutation des participants passe par les méthodes de l'entité, qui
// maintiennent l'invariant d'ordre 1..N.
type ListeUseCase struct {
	repo       repository.ListeRepository
	numeroteur Numeroteur
}

// NewListeUseCase construit le cas d'usage.
func NewListeUseCase(repo repository.ListeRepository, numeroteur Numeroteur) *ListeUseCase {
	return &ListeUseCase{repo: repo, numeroteur: numeroteur}
}

// Create crée une liste vide et lui alloue son numéro.
func (uc *ListeUseCase) Create(ctx context.Context, req dto.CreateListeRequest) (*dto.ListeResponse, error) {
	if req.Nom == "" {
		return nil, domain.NewValidationError("nom", "le nom est obligatoire")
	}

	numero, err := uc.numeroteur.AllouerNumero(ctx, entity.PrefixeListe)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	liste := &entity.Liste{
		ID:          uuid.New().String(),
		Numero:      numero,
		Nom:         req.Nom,
		Description: req.Description,
		Couleur:     req.Couleur,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, liste); err != nil {
		return nil, err
	}
	return toListeResponse(liste), nil
}

// GetByID renvoie la liste avec ses participants.
func (uc *ListeUseCase) GetByID(ctx context.Context, id string) (*dto.ListeResponse, error) {
	liste, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}
	return toListeResponse(liste), nil
}

// Update modifie les champs descriptifs ; le numéro et les participants ne
// passent pas par ici.
func (uc *ListeUseCase) Update(ctx context.Context, id string, req dto.UpdateListeRequest) (*dto.ListeResponse, error) {
	liste, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nom != nil {
		if *req.Nom == "" {
			return nil, domain.NewValidationError("nom", "le nom est obligatoire")
		}
		liste.Nom = *req.Nom
	}
	if req.Description != nil {
		liste.Description = *req.Description
	}
	if req.Couleur != nil {
		liste.Couleur = *req.Couleur
	}
	liste.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, liste); err != nil {
		return nil, err
	}
	return toListeResponse(liste), nil
}

// List renvoie une page de listes.
func (uc *ListeUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListeListResponse, error) {
	page.Normaliser()
	listes, total, err := uc.repo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	data := make([]dto.ListeResponse, 0, len(listes))
	for _, l := range listes {
		data = append(data, *toListeResponse(l))
	}
	return &dto.ListeListResponse{
		Data:       data,
		Pagination: dto.NewPagination(total, page.Page, page.Limit),
	}, nil
}

// ListesPourContrat renvoie les listes auxquelles un contrat participe.
func (uc *ListeUseCase) ListesPourContrat(ctx context.Context, contratID string) ([]dto.ListeResponse, error) {
	listes, err := uc.repo.FindByContrat(ctx, contratID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ListeResponse, 0, len(listes))
	for _, l := range listes {
		data = append(data, *toListeResponse(l))
	}
	return data, nil
}

// AjouterParticipant rattache un contrat en fin de liste. Rattacher un
// contrat déjà présent est un no-op.
func (uc *ListeUseCase) AjouterParticipant(ctx context.Context, listeID, contratID, role string) (*dto.ListeResponse, error) {
	if contratID == "" {
		return nil, domain.NewValidationError("contratId", "l'identifiant du contrat est obligatoire")
	}

	liste, err := uc.charger(ctx, listeID)
	if err != nil {
		return nil, err
	}

	if liste.AjouterParticipant(contratID, role) {
		liste.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, liste); err != nil {
			return nil, err
		}
	}
	return toListeResponse(liste), nil
}

// RetirerParticipant détache un contrat ; les participants restants sont
// renumérotés en 1..N.
func (uc *ListeUseCase) RetirerParticipant(ctx context.Context, listeID, contratID string) (*dto.ListeResponse, error) {
	liste, err := uc.charger(ctx, listeID)
	if err != nil {
		return nil, err
	}

	if !liste.RetirerParticipant(contratID) {
		return nil, domain.ErrNotFound
	}
	liste.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, liste); err != nil {
		return nil, err
	}
	return toListeResponse(liste), nil
}

// ModifierRole change le rôle d'un participant.
func (uc *ListeUseCase) ModifierRole(ctx context.Context, listeID, contratID, role string) (*dto.ListeResponse, error) {
	liste, err := uc.charger(ctx, listeID)
	if err != nil {
		return nil, err
	}

	if !liste.ModifierRole(contratID, role) {
		return nil, domain.ErrNotFound
	}
	liste.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, liste); err != nil {
		return nil, err
	}
	return toListeResponse(liste), nil
}

// RemplacerParticipants remplace l'ensemble des participants. Les ordres
// fournis par le client ne sont pas pris au mot : la suite est renormalisée
// en 1..N et les doublons écartés.
func (uc *ListeUseCase) RemplacerParticipants(ctx context.Context, listeID string, req dto.RemplacerParticipantsRequest) (*dto.ListeResponse, error) {
	liste, err := uc.charger(ctx, listeID)
	if err != nil {
		return nil, err
	}

	participants := make([]entity.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, entity.Participant{
			ContratID: p.ContratID,
			Role:      p.Role,
			Ordre:     p.Ordre,
		})
	}
	liste.RemplacerParticipants(participants)
	liste.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, liste); err != nil {
		return nil, err
	}
	return toListeResponse(liste), nil
}

// Delete supprime la liste et ses rattachements. Les contrats eux-mêmes ne
// sont pas touchés.
func (uc *ListeUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.charger(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ListeUseCase) charger(ctx context.Context, id string) (*entity.Liste, error) {
	liste, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if liste == nil {
		return nil, domain.ErrNotFound
	}
	return liste, nil
}

func toListeResponse(l *entity.Liste) *dto.ListeResponse {
	participants := make([]dto.ParticipantDTO, 0, len(l.Participants))
	for _, p := range l.Participants {
		participants = append(participants, dto.ParticipantDTO{
			ContratID: p.ContratID,
			Role:      p.Role,
			Ordre:     p.Ordre,
		})
	}
	return &dto.ListeResponse{
		ID:           l.ID,
		Numero:       l.Numero,
		Nom:          l.Nom,
		Description:  l.Description,
		Couleur:      l.Couleur,
		Participants: participants,
		ContratIDs:   l.ContratIDs(),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
