package location_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atelier-ceremonie/location-api/internal/application/dto"
	applocation "github.com/atelier-ceremonie/location-api/internal/application/location"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
)

type MockLocationRepo struct{ mock.Mock }

func (m *MockLocationRepo) Create(ctx context.Context, g *entity.LocationGroupe) error {
	return m.Called(ctx, g).Error(0)
}
func (m *MockLocationRepo) GetByID(ctx context.Context, id string) (*entity.LocationGroupe, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*entity.LocationGroupe)
	return g, args.Error(1)
}
func (m *MockLocationRepo) Update(ctx context.Context, g *entity.LocationGroupe) error {
	return m.Called(ctx, g).Error(0)
}
func (m *MockLocationRepo) List(ctx context.Context, statut string, limit, offset int) ([]*entity.LocationGroupe, int, error) {
	args := m.Called(ctx, statut, limit, offset)
	l, _ := args.Get(0).([]*entity.LocationGroupe)
	return l, args.Int(1), args.Error(2)
}
func (m *MockLocationRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreate_NomAutoClientUnique(t *testing.T) {
	repo := new(MockLocationRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.LocationGroupe")).Return(nil)
	uc := applocation.NewLocationGroupeUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateLocationGroupeRequest{
		Vendeur: "Isabelle",
		Clients: []dto.ClientGroupeDTO{{Nom: "Durand", Prenom: "Paul"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Durand", resp.NomGroupe)
	assert.Equal(t, entity.GroupeBrouillon, resp.Statut)
	assert.Equal(t, 1, resp.Clients[0].Ordre)
}

func TestCreate_NomFourniConserve(t *testing.T) {
	repo := new(MockLocationRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	uc := applocation.NewLocationGroupeUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateLocationGroupeRequest{
		NomGroupe: "Cortège Morel",
		Vendeur:   "Karim",
		Clients:   []dto.ClientGroupeDTO{{Nom: "Durand"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cortège Morel", resp.NomGroupe)
}

func TestCreate_PasDeNomAutoAPlusieurs(t *testing.T) {
	repo := new(MockLocationRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	uc := applocation.NewLocationGroupeUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateLocationGroupeRequest{
		Vendeur: "Karim",
		Clients: []dto.ClientGroupeDTO{{Nom: "Durand"}, {Nom: "Morel"}},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.NomGroupe)
}

func TestCreate_Validation(t *testing.T) {
	uc := applocation.NewLocationGroupeUseCase(new(MockLocationRepo))

	_, err := uc.Create(context.Background(), dto.CreateLocationGroupeRequest{Vendeur: "Machin"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)

	champs := make(map[string]bool)
	for _, c := range ve.Champs {
		champs[c.Champ] = true
	}
	assert.True(t, champs["clients"])
	assert.True(t, champs["vendeur"])
}

func TestChangerStatut(t *testing.T) {
	cas := []struct {
		nom     string
		de      string
		vers    string
		wantErr error
	}{
		{"brouillon vers complete", entity.GroupeBrouillon, entity.GroupeComplete, nil},
		{"complete vers transmise", entity.GroupeComplete, entity.GroupeTransmise, nil},
		{"complete retour brouillon", entity.GroupeComplete, entity.GroupeBrouillon, nil},
		{"brouillon direct transmise", entity.GroupeBrouillon, entity.GroupeTransmise, domain.ErrTransitionStatut},
		{"transmise est finale", entity.GroupeTransmise, entity.GroupeBrouillon, domain.ErrTransitionStatut},
		{"statut hors enumeration", entity.GroupeBrouillon, "annulee", domain.ErrStatutInvalide},
	}
	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			repo := new(MockLocationRepo)
			groupe := &entity.LocationGroupe{ID: "g-1", Statut: c.de}
			repo.On("GetByID", mock.Anything, "g-1").Return(groupe, nil)
			repo.On("Update", mock.Anything, groupe).Return(nil)
			uc := applocation.NewLocationGroupeUseCase(repo)

			resp, err := uc.ChangerStatut(context.Background(), "g-1", c.vers)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.vers, resp.Statut)
		})
	}
}

func TestChangerStatut_MemeStatutNoOp(t *testing.T) {
	repo := new(MockLocationRepo)
	groupe := &entity.LocationGroupe{ID: "g-1", Statut: entity.GroupeComplete}
	repo.On("GetByID", mock.Anything, "g-1").Return(groupe, nil)
	uc := applocation.NewLocationGroupeUseCase(repo)

	resp, err := uc.ChangerStatut(context.Background(), "g-1", entity.GroupeComplete)
	require.NoError(t, err)

	assert.Equal(t, entity.GroupeComplete, resp.Statut)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_TransmiseFigee(t *testing.T) {
	repo := new(MockLocationRepo)
	groupe := &entity.LocationGroupe{ID: "g-1", Statut: entity.GroupeTransmise}
	repo.On("GetByID", mock.Anything, "g-1").Return(groupe, nil)
	uc := applocation.NewLocationGroupeUseCase(repo)

	notes := "relance cliente"
	_, err := uc.Update(context.Background(), "g-1", dto.UpdateLocationGroupeRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrTransitionStatut)
}

func TestList_StatutInconnu(t *testing.T) {
	uc := applocation.NewLocationGroupeUseCase(new(MockLocationRepo))

	_, err := uc.List(context.Background(), "archivee", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrStatutInvalide)
}
