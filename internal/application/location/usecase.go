package location

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

// LocationGroupeUseCase gère les fiches de prise de mesures groupées
// (cortèges, promotions) et leur cycle de vie brouillon -> complete ->
// transmise.
type LocationGroupeUseCase struct {
	repo repository.LocationGroupeRepository
}

// NewLocationGroupeUseCase construit le cas d'usage.
func NewLocationGroupeUseCase(repo repository.LocationGroupeRepository) *LocationGroupeUseCase {
	return &LocationGroupeUseCase{repo: repo}
}

// Create enregistre une nouvelle fiche en brouillon. Le nom du groupe est
// dérivé du client unique quand il n'est pas fourni.
func (uc *LocationGroupeUseCase) Create(ctx context.Context, req dto.CreateLocationGroupeRequest) (*dto.LocationGroupeResponse, error) {
	ve := &domain.ValidationError{}
	if len(req.Clients) == 0 {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "clients", Message: "au moins un client est requis"})
	}
	if req.Vendeur == "" {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "vendeur", Message: "le vendeur est obligatoire"})
	} else if !entity.VendeurValide(req.Vendeur) {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "vendeur", Message: fmt.Sprintf("vendeur inconnu : %s", req.Vendeur)})
	}
	for i, c := range req.Clients {
		if c.Nom == "" {
			ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: fmt.Sprintf("clients[%d].nom", i), Message: "le nom est obligatoire"})
		}
	}
	if len(ve.Champs) > 0 {
		return nil, ve
	}

	now := time.Now()
	groupe := &entity.LocationGroupe{
		ID:        uuid.New().String(),
		NomGroupe: req.NomGroupe,
		Telephone: req.Telephone,
		Email:     req.Email,
		DateEssai: req.DateEssai,
		Vendeur:   req.Vendeur,
		Clients:   versClients(req.Clients),
		Statut:    entity.GroupeBrouillon,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	groupe.AppliquerNomAuto()

	if err := uc.repo.Create(ctx, groupe); err != nil {
		return nil, err
	}
	return toLocationGroupeResponse(groupe), nil
}

// GetByID renvoie une fiche.
func (uc *LocationGroupeUseCase) GetByID(ctx context.Context, id string) (*dto.LocationGroupeResponse, error) {
	groupe, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLocationGroupeResponse(groupe), nil
}

// Update modifie la fiche hors statut. Une fiche transmise est figée.
func (uc *LocationGroupeUseCase) Update(ctx context.Context, id string, req dto.UpdateLocationGroupeRequest) (*dto.LocationGroupeResponse, error) {
	groupe, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}
	if groupe.Statut == entity.GroupeTransmise {
		return nil, domain.ErrTransitionStatut
	}

	if req.NomGroupe != nil {
		groupe.NomGroupe = *req.NomGroupe
	}
	if req.Telephone != nil {
		groupe.Telephone = *req.Telephone
	}
	if req.Email != nil {
		groupe.Email = *req.Email
	}
	if req.DateEssai != nil {
		groupe.DateEssai = req.DateEssai
	}
	if req.Vendeur != nil {
		if !entity.VendeurValide(*req.Vendeur) {
			return nil, domain.NewValidationError("vendeur", fmt.Sprintf("vendeur inconnu : %s", *req.Vendeur))
		}
		groupe.Vendeur = *req.Vendeur
	}
	if req.Clients != nil {
		if len(req.Clients) == 0 {
			return nil, domain.NewValidationError("clients", "au moins un client est requis")
		}
		groupe.Clients = versClients(req.Clients)
	}
	if req.Notes != nil {
		groupe.Notes = *req.Notes
	}
	groupe.AppliquerNomAuto()
	groupe.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, groupe); err != nil {
		return nil, err
	}
	return toLocationGroupeResponse(groupe), nil
}

// ChangerStatut fait avancer la fiche dans son cycle de vie. Un statut hors
// énumération est une erreur de valeur ; une transition hors graphe est une
// erreur de transition. Répéter le statut courant est un no-op.
func (uc *LocationGroupeUseCase) ChangerStatut(ctx context.Context, id, statut string) (*dto.LocationGroupeResponse, error) {
	if !entity.StatutGroupeValide(statut) {
		return nil, domain.ErrStatutInvalide
	}

	groupe, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.TransitionGroupeValide(groupe.Statut, statut) {
		return nil, domain.ErrTransitionStatut
	}
	if groupe.Statut == statut {
		return toLocationGroupeResponse(groupe), nil
	}

	groupe.Statut = statut
	groupe.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, groupe); err != nil {
		return nil, err
	}
	return toLocationGroupeResponse(groupe), nil
}

// List renvoie une page de fiches, filtrable par statut.
func (uc *LocationGroupeUseCase) List(ctx context.Context, statut string, page dto.PageRequest) (*dto.LocationGroupeListResponse, error) {
	if statut != "" && !entity.StatutGroupeValide(statut) {
		return nil, domain.ErrStatutInvalide
	}
	page.Normaliser()

	groupes, total, err := uc.repo.List(ctx, statut, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	data := make([]dto.LocationGroupeResponse, 0, len(groupes))
	for _, g := range groupes {
		data = append(data, *toLocationGroupeResponse(g))
	}
	return &dto.LocationGroupeListResponse{
		Data:       data,
		Pagination: dto.NewPagination(total, page.Page, page.Limit),
	}, nil
}

// Delete supprime une fiche. Une fiche transmise ne se supprime pas.
func (uc *LocationGroupeUseCase) Delete(ctx context.Context, id string) error {
	groupe, err := uc.charger(ctx, id)
	if err != nil {
		return err
	}
	if groupe.Statut == entity.GroupeTransmise {
		return domain.ErrTransitionStatut
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *LocationGroupeUseCase) charger(ctx context.Context, id string) (*entity.LocationGroupe, error) {
	groupe, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if groupe == nil {
		return nil, domain.ErrNotFound
	}
	return groupe, nil
}

func versClients(in []dto.ClientGroupeDTO) []entity.ClientGroupe {
	clients := make([]entity.ClientGroupe, 0, len(in))
	for i, c := range in {
		clients = append(clients, entity.ClientGroupe{
			Nom:          c.Nom,
			Prenom:       c.Prenom,
			Telephone:    c.Telephone,
			Mensurations: versMensurations(c.Mensurations),
			Tenue:        c.Tenue,
			Ordre:        i + 1,
		})
	}
	return clients
}

func versMensurations(m dto.MensurationsDTO) entity.Mensurations {
	return entity.Mensurations{
		TourPoitrine:   m.TourPoitrine,
		TourTaille:     m.TourTaille,
		TourHanches:    m.TourHanches,
		Hauteur:        m.Hauteur,
		LongueurManche: m.LongueurManche,
		LongueurJambe:  m.LongueurJambe,
		TourCou:        m.TourCou,
		Pointure:       m.Pointure,
	}
}

func toLocationGroupeResponse(g *entity.LocationGroupe) *dto.LocationGroupeResponse {
	clients := make([]dto.ClientGroupeDTO, 0, len(g.Clients))
	for _, c := range g.Clients {
		clients = append(clients, dto.ClientGroupeDTO{
			Nom:       c.Nom,
			Prenom:    c.Prenom,
			Telephone: c.Telephone,
			Mensurations: dto.MensurationsDTO{
				TourPoitrine:   c.Mensurations.TourPoitrine,
				TourTaille:     c.Mensurations.TourTaille,
				TourHanches:    c.Mensurations.TourHanches,
				Hauteur:        c.Mensurations.Hauteur,
				LongueurManche: c.Mensurations.LongueurManche,
				LongueurJambe:  c.Mensurations.LongueurJambe,
				TourCou:        c.Mensurations.TourCou,
				Pointure:       c.Mensurations.Pointure,
			},
			Tenue: c.Tenue,
			Ordre: c.Ordre,
		})
	}
	return &dto.LocationGroupeResponse{
		ID:        g.ID,
		NomGroupe: g.NomGroupe,
		Telephone: g.Telephone,
		Email:     g.Email,
		DateEssai: g.DateEssai,
		Vendeur:   g.Vendeur,
		Clients:   clients,
		Statut:    g.Statut,
		Notes:     g.Notes,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
