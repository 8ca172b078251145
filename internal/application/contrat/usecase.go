package contrat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	"github.com/atelier-ceremonie/location-api/pkg/normalize"
)

// ContratUseCase gère le cycle de vie des contrats de location : création en
// brouillon, transitions de statut, paiements et fiche PDF.
type ContratUseCase struct {
	repo       repository.ContratRepository
	numeroteur Numeroteur
	fiches     FicheGenerator
}

// NewContratUseCase construit le cas d'usage. fiches peut être nil quand la
// génération PDF n'est pas branchée (tests).
func NewContratUseCase(repo repository.ContratRepository, numeroteur Numeroteur, fiches FicheGenerator) *ContratUseCase {
	return &ContratUseCase{repo: repo, numeroteur: numeroteur, fiches: fiches}
}

// Create crée un contrat en brouillon et lui alloue son numéro.
func (uc *ContratUseCase) Create(ctx context.Context, req dto.CreateContratRequest) (*dto.ContratResponse, error) {
	ve := &domain.ValidationError{}
	if req.ClientNom == "" {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "client_nom", Message: "le nom du client est obligatoire"})
	}
	if req.Vendeur == "" {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "vendeur", Message: "le vendeur est obligatoire"})
	} else if !entity.VendeurValide(req.Vendeur) {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "vendeur", Message: fmt.Sprintf("vendeur inconnu : %s", req.Vendeur)})
	}
	for i, l := range req.Lignes {
		if l.Quantite <= 0 {
			ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: fmt.Sprintf("lignes[%d].quantite", i), Message: "la quantité doit être strictement positive"})
		}
		if l.PrixLocation.IsNegative() {
			ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: fmt.Sprintf("lignes[%d].prix_location", i), Message: "le prix ne peut pas être négatif"})
		}
	}
	if req.Caution.IsNegative() {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "caution", Message: "la caution ne peut pas être négative"})
	}
	if len(ve.Champs) > 0 {
		return nil, ve
	}

	numero, err := uc.numeroteur.AllouerNumero(ctx, entity.PrefixeContrat)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	contrat := &entity.ContratLocation{
		ID:              uuid.New().String(),
		Numero:          numero,
		ClientNom:       req.ClientNom,
		ClientPrenom:    req.ClientPrenom,
		Telephone:       req.Telephone,
		Email:           req.Email,
		Mensurations:    versMensurations(req.Mensurations),
		Lignes:          versLignes(req.Lignes),
		Caution:         req.Caution,
		DateEssai:       req.DateEssai,
		DateCeremonie:   req.DateCeremonie,
		DateRetrait:     req.DateRetrait,
		DateRetourPrevu: req.DateRetourPrevu,
		Vendeur:         req.Vendeur,
		Statut:          entity.ContratBrouillon,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, contrat); err != nil {
		return nil, err
	}
	return toContratResponse(contrat), nil
}

// GetByID renvoie le contrat complet, paiements et montants dérivés inclus.
func (uc *ContratUseCase) GetByID(ctx context.Context, id string) (*dto.ContratResponse, error) {
	contrat, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}
	return toContratResponse(contrat), nil
}

// Update modifie le contrat hors numéro et statut. Un contrat retourné ou
// annulé est figé.
func (uc *ContratUseCase) Update(ctx context.Context, id string, req dto.UpdateContratRequest) (*dto.ContratResponse, error) {
	contrat, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}
	if contrat.Statut == entity.ContratRetourne || contrat.Statut == entity.ContratAnnule {
		return nil, domain.ErrTransitionStatut
	}

	if req.ClientNom != nil {
		if *req.ClientNom == "" {
			return nil, domain.NewValidationError("client_nom", "le nom du client est obligatoire")
		}
		contrat.ClientNom = *req.ClientNom
	}
	if req.ClientPrenom != nil {
		contrat.ClientPrenom = *req.ClientPrenom
	}
	if req.Telephone != nil {
		contrat.Telephone = *req.Telephone
	}
	if req.Email != nil {
		contrat.Email = *req.Email
	}
	if req.Mensurations != nil {
		contrat.Mensurations = versMensurations(*req.Mensurations)
	}
	if req.Lignes != nil {
		for i, l := range req.Lignes {
			if l.Quantite <= 0 {
				return nil, domain.NewValidationError(fmt.Sprintf("lignes[%d].quantite", i), "la quantité doit être strictement positive")
			}
		}
		contrat.Lignes = versLignes(req.Lignes)
	}
	if req.Caution != nil {
		if req.Caution.IsNegative() {
			return nil, domain.NewValidationError("caution", "la caution ne peut pas être négative")
		}
		contrat.Caution = *req.Caution
	}
	if req.DateEssai != nil {
		contrat.DateEssai = req.DateEssai
	}
	if req.DateCeremonie != nil {
		contrat.DateCeremonie = req.DateCeremonie
	}
	if req.DateRetrait != nil {
		contrat.DateRetrait = req.DateRetrait
	}
	if req.DateRetourPrevu != nil {
		contrat.DateRetourPrevu = req.DateRetourPrevu
	}
	if req.Vendeur != nil {
		if !entity.VendeurValide(*req.Vendeur) {
			return nil, domain.NewValidationError("vendeur", fmt.Sprintf("vendeur inconnu : %s", *req.Vendeur))
		}
		contrat.Vendeur = *req.Vendeur
	}
	if req.Notes != nil {
		contrat.Notes = *req.Notes
	}
	contrat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, contrat); err != nil {
		return nil, err
	}
	return toContratResponse(contrat), nil
}

// ChangerStatut fait avancer le contrat dans son cycle de vie. Répéter le
// statut courant est un no-op.
func (uc *ContratUseCase) ChangerStatut(ctx context.Context, id, statut string) (*dto.ContratResponse, error) {
	if !entity.StatutContratValide(statut) {
		return nil, domain.ErrStatutInvalide
	}

	contrat, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.TransitionContratValide(contrat.Statut, statut) {
		return nil, domain.ErrTransitionStatut
	}
	if contrat.Statut == statut {
		return toContratResponse(contrat), nil
	}

	if err := uc.repo.UpdateStatut(ctx, id, statut); err != nil {
		return nil, err
	}
	contrat.Statut = statut
	contrat.UpdatedAt = time.Now()
	return toContratResponse(contrat), nil
}

// AjouterPaiement enregistre un versement sur le contrat. Un contrat annulé
// n'encaisse plus rien.
func (uc *ContratUseCase) AjouterPaiement(ctx context.Context, id string, req dto.PaiementRequest) (*dto.ContratResponse, error) {
	ve := &domain.ValidationError{}
	if !req.Montant.IsPositive() {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "montant", Message: "le montant doit être strictement positif"})
	}
	if !entity.ModePaiementValide(req.Mode) {
		ve.Champs = append(ve.Champs, domain.ChampErreur{Champ: "mode", Message: fmt.Sprintf("mode de paiement inconnu : %s", req.Mode)})
	}
	if len(ve.Champs) > 0 {
		return nil, ve
	}

	contrat, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}
	if contrat.Statut == entity.ContratAnnule {
		return nil, domain.ErrTransitionStatut
	}

	now := time.Now()
	datePaiement := now
	if req.DatePaiement != nil {
		datePaiement = *req.DatePaiement
	}
	paiement := &entity.Paiement{
		ID:           uuid.New().String(),
		ContratID:    contrat.ID,
		Montant:      req.Montant,
		Mode:         req.Mode,
		DatePaiement: datePaiement,
		CreatedAt:    now,
	}
	if err := uc.repo.AjouterPaiement(ctx, paiement); err != nil {
		return nil, err
	}

	contrat.Paiements = append(contrat.Paiements, *paiement)
	return toContratResponse(contrat), nil
}

// List renvoie une page de contrats. La recherche par nom de client est
// insensible à la casse et aux accents.
func (uc *ContratUseCase) List(ctx context.Context, statut, recherche string, page dto.PageRequest) (*dto.ContratListResponse, error) {
	if statut != "" && !entity.StatutContratValide(statut) {
		return nil, domain.ErrStatutInvalide
	}
	page.Normaliser()

	filtre := repository.FiltreContrats{
		Statut:    statut,
		Recherche: normalize.Fold(recherche),
	}
	contrats, total, err := uc.repo.List(ctx, filtre, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	data := make([]dto.ContratResponse, 0, len(contrats))
	for _, c := range contrats {
		data = append(data, *toContratResponse(c))
	}
	return &dto.ContratListResponse{
		Data:       data,
		Pagination: dto.NewPagination(total, page.Page, page.Limit),
	}, nil
}

// GenererFiche produit la fiche PDF du contrat.
func (uc *ContratUseCase) GenererFiche(ctx context.Context, id string) ([]byte, error) {
	contrat, err := uc.charger(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.fiches.GenererFiche(contrat)
}

// Delete supprime un contrat en brouillon. Au-delà, le contrat fait foi et
// se clôt par annulation, pas par suppression.
func (uc *ContratUseCase) Delete(ctx context.Context, id string) error {
	contrat, err := uc.charger(ctx, id)
	if err != nil {
		return err
	}
	if contrat.Statut != entity.ContratBrouillon {
		return domain.ErrTransitionStatut
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ContratUseCase) charger(ctx context.Context, id string) (*entity.ContratLocation, error) {
	contrat, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contrat == nil {
		return nil, domain.ErrNotFound
	}
	return contrat, nil
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

func versLignes(in []dto.LigneTenueDTO) []entity.LigneTenue {
	lignes := make([]entity.LigneTenue, 0, len(in))
	for _, l := range in {
		lignes = append(lignes, entity.LigneTenue{
			ArticleID:    l.ArticleID,
			Description:  l.Description,
			Quantite:     l.Quantite,
			PrixLocation: l.PrixLocation,
		})
	}
	return lignes
}

func toContratResponse(c *entity.ContratLocation) *dto.ContratResponse {
	lignes := make([]dto.LigneTenueDTO, 0, len(c.Lignes))
	for _, l := range c.Lignes {
		lignes = append(lignes, dto.LigneTenueDTO{
			ArticleID:    l.ArticleID,
			Description:  l.Description,
			Quantite:     l.Quantite,
			PrixLocation: l.PrixLocation,
		})
	}
	paiements := make([]dto.PaiementResponse, 0, len(c.Paiements))
	for _, p := range c.Paiements {
		paiements = append(paiements, dto.PaiementResponse{
			ID:           p.ID,
			Montant:      p.Montant,
			Mode:         p.Mode,
			DatePaiement: p.DatePaiement,
		})
	}

	total := c.MontantTotal()
	paye := c.MontantPaye()
	return &dto.ContratResponse{
		ID:           c.ID,
		Numero:       c.Numero,
		ClientNom:    c.ClientNom,
		ClientPrenom: c.ClientPrenom,
		Telephone:    c.Telephone,
		Email:        c.Email,
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
		Lignes:          lignes,
		Caution:         c.Caution,
		Paiements:       paiements,
		MontantTotal:    total,
		MontantPaye:     paye,
		Solde:           total.Sub(paye),
		DateEssai:       c.DateEssai,
		DateCeremonie:   c.DateCeremonie,
		DateRetrait:     c.DateRetrait,
		DateRetourPrevu: c.DateRetourPrevu,
		Vendeur:         c.Vendeur,
		Statut:          c.Statut,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
