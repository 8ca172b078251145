package contrat_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appcontrat "github.com/atelier-ceremonie/location-api/internal/application/contrat"
	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
)

type MockContratRepo struct{ mock.Mock }

func (m *MockContratRepo) Create(ctx context.Context, c *entity.ContratLocation) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockContratRepo) GetByID(ctx context.Context, id string) (*entity.ContratLocation, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.ContratLocation)
	return c, args.Error(1)
}
func (m *MockContratRepo) Update(ctx context.Context, c *entity.ContratLocation) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockContratRepo) UpdateStatut(ctx context.Context, id, statut string) error {
	return m.Called(ctx, id, statut).Error(0)
}
func (m *MockContratRepo) List(ctx context.Context, f repository.FiltreContrats, limit, offset int) ([]*entity.ContratLocation, int, error) {
	args := m.Called(ctx, f, limit, offset)
	l, _ := args.Get(0).([]*entity.ContratLocation)
	return l, args.Int(1), args.Error(2)
}
func (m *MockContratRepo) AjouterPaiement(ctx context.Context, p *entity.Paiement) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockContratRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type numeroteurFixe struct{ numero string }

func (n *numeroteurFixe) AllouerNumero(_ context.Context, _ string) (string, error) {
	return n.numero, nil
}

func contratConfirme() *entity.ContratLocation {
	return &entity.ContratLocation{
		ID:        "ct-1",
		Numero:    "C-2025-004",
		ClientNom: "Lefèvre",
		Vendeur:   "Nathalie",
		Statut:    entity.ContratConfirme,
		Lignes: []entity.LigneTenue{
			{ArticleID: "art-1", Description: "Jaquette grise", Quantite: 1, PrixLocation: decimal.NewFromInt(180)},
			{ArticleID: "art-2", Description: "Gilet assorti", Quantite: 2, PrixLocation: decimal.NewFromInt(40)},
		},
	}
}

func TestCreate(t *testing.T) {
	repo := new(MockContratRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ContratLocation")).Return(nil)
	uc := appcontrat.NewContratUseCase(repo, &numeroteurFixe{numero: "C-2025-001"}, nil)

	resp, err := uc.Create(context.Background(), dto.CreateContratRequest{
		ClientNom: "Moreau",
		Vendeur:   "Thomas",
		Lignes: []dto.LigneTenueDTO{
			{ArticleID: "art-1", Description: "Smoking noir", Quantite: 1, PrixLocation: decimal.NewFromInt(220)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "C-2025-001", resp.Numero)
	assert.Equal(t, entity.ContratBrouillon, resp.Statut)
	assert.True(t, resp.MontantTotal.Equal(decimal.NewFromInt(220)))
	assert.True(t, resp.Solde.Equal(decimal.NewFromInt(220)))
}

func TestCreate_Validation(t *testing.T) {
	uc := appcontrat.NewContratUseCase(new(MockContratRepo), &numeroteurFixe{}, nil)

	_, err := uc.Create(context.Background(), dto.CreateContratRequest{
		Vendeur: "Personne",
		Lignes:  []dto.LigneTenueDTO{{ArticleID: "art-1", Quantite: 0}},
	})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)

	champs := make(map[string]bool)
	for _, c := range ve.Champs {
		champs[c.Champ] = true
	}
	assert.True(t, champs["client_nom"])
	assert.True(t, champs["vendeur"])
	assert.True(t, champs["lignes[0].quantite"])
}

func TestMontantsDerives(t *testing.T) {
	repo := new(MockContratRepo)
	contrat := contratConfirme()
	contrat.Paiements = []entity.Paiement{
		{ID: "p-1", Montant: decimal.NewFromInt(100), Mode: entity.PaiementCarte},
		{ID: "p-2", Montant: decimal.NewFromInt(60), Mode: entity.PaiementEspeces},
	}
	repo.On("GetByID", mock.Anything, contrat.ID).Return(contrat, nil)
	uc := appcontrat.NewContratUseCase(repo, &numeroteurFixe{}, nil)

	resp, err := uc.GetByID(context.Background(), contrat.ID)
	require.NoError(t, err)

	// 180 + 2x40 = 260 ; payé 160 ; solde 100
	assert.True(t, resp.MontantTotal.Equal(decimal.NewFromInt(260)))
	assert.True(t, resp.MontantPaye.Equal(decimal.NewFromInt(160)))
	assert.True(t, resp.Solde.Equal(decimal.NewFromInt(100)))
}

func TestChangerStatut(t *testing.T) {
	cas := []struct {
		nom     string
		de      string
		vers    string
		wantErr error
	}{
		{"brouillon vers confirmee", entity.ContratBrouillon, entity.ContratConfirme, nil},
		{"confirmee vers retiree", entity.ContratConfirme, entity.ContratRetire, nil},
		{"retiree vers retournee", entity.ContratRetire, entity.ContratRetourne, nil},
		{"confirmee vers annulee", entity.ContratConfirme, entity.ContratAnnule, nil},
		{"brouillon direct retiree", entity.ContratBrouillon, entity.ContratRetire, domain.ErrTransitionStatut},
		{"retournee est finale", entity.ContratRetourne, entity.ContratConfirme, domain.ErrTransitionStatut},
		{"statut hors enumeration", entity.ContratBrouillon, "expediee", domain.ErrStatutInvalide},
	}
	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			repo := new(MockContratRepo)
			contrat := contratConfirme()
			contrat.Statut = c.de
			repo.On("GetByID", mock.Anything, contrat.ID).Return(contrat, nil)
			repo.On("UpdateStatut", mock.Anything, contrat.ID, c.vers).Return(nil)
			uc := appcontrat.NewContratUseCase(repo, &numeroteurFixe{}, nil)

			resp, err := uc.ChangerStatut(context.Background(), contrat.ID, c.vers)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.vers, resp.Statut)
		})
	}
}

func TestAjouterPaiement(t *testing.T) {
	repo := new(MockContratRepo)
	contrat := contratConfirme()
	repo.On("GetByID", mock.Anything, contrat.ID).Return(contrat, nil)
	repo.On("AjouterPaiement", mock.Anything, mock.AnythingOfType("*entity.Paiement")).Return(nil)
	uc := appcontrat.NewContratUseCase(repo, &numeroteurFixe{}, nil)

	resp, err := uc.AjouterPaiement(context.Background(), contrat.ID, dto.PaiementRequest{
		Montant: decimal.NewFromInt(100),
		Mode:    entity.PaiementCheque,
	})
	require.NoError(t, err)

	require.Len(t, resp.Paiements, 1)
	assert.True(t, resp.MontantPaye.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Solde.Equal(decimal.NewFromInt(160)))
}

func TestAjouterPaiement_Validation(t *testing.T) {
	uc := appcontrat.NewContratUseCase(new(MockContratRepo), &numeroteurFixe{}, nil)

	_, err := uc.AjouterPaiement(context.Background(), "ct-1", dto.PaiementRequest{
		Montant: decimal.Zero,
		Mode:    "troc",
	})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Champs, 2)
}

func TestAjouterPaiement_ContratAnnule(t *testing.T) {
	repo := new(MockContratRepo)
	contrat := contratConfirme()
	contrat.Statut = entity.ContratAnnule
	repo.On("GetByID", mock.Anything, contrat.ID).Return(contrat, nil)
	uc := appcontrat.NewContratUseCase(repo, &numeroteurFixe{}, nil)

	_, err := uc.AjouterPaiement(context.Background(), contrat.ID, dto.PaiementRequest{
		Montant: decimal.NewFromInt(50),
		Mode:    entity.PaiementEspeces,
	})
	assert.ErrorIs(t, err, domain.ErrTransitionStatut)
}

func TestList_RechercheNormalisee(t *testing.T) {
	repo := new(MockContratRepo)
	repo.On("List", mock.Anything, repository.FiltreContrats{Recherche: "lefevre"}, 20, 0).
		Return([]*entity.ContratLocation{contratConfirme()}, 1, nil)
	uc := appcontrat.NewContratUseCase(repo, &numeroteurFixe{}, nil)

	// Accents et casse ignorés : "Lefèvre" matche via "lefevre"
	resp, err := uc.List(context.Background(), "", "Lefèvre", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
}

func TestDelete_SeulBrouillon(t *testing.T) {
	repo := new(MockContratRepo)
	contrat := contratConfirme()
	repo.On("GetByID", mock.Anything, contrat.ID).Return(contrat, nil)
	uc := appcontrat.NewContratUseCase(repo, &numeroteurFixe{}, nil)

	err := uc.Delete(context.Background(), contrat.ID)
	assert.ErrorIs(t, err, domain.ErrTransitionStatut)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
