package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appstock "github.com/atelier-ceremonie/location-api/internal/application/stock"
	"github.com/atelier-ceremonie/location-api/internal/domain"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	"github.com/atelier-ceremonie/location-api/internal/domain/repository"
	domstock "github.com/atelier-ceremonie/location-api/internal/domain/stock"
)

// ─── Mocks ───────────────────────────────────────────────────────────────────

type MockArticleRepo struct{ mock.Mock }

func (m *MockArticleRepo) Create(ctx context.Context, a *entity.ArticleStock) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockArticleRepo) GetByID(ctx context.Context, id string) (*entity.ArticleStock, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*entity.ArticleStock)
	return a, args.Error(1)
}
func (m *MockArticleRepo) GetForUpdate(ctx context.Context, id string) (*entity.ArticleStock, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*entity.ArticleStock)
	return a, args.Error(1)
}
func (m *MockArticleRepo) UpdateCompteurs(ctx context.Context, a *entity.ArticleStock) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockArticleRepo) Update(ctx context.Context, a *entity.ArticleStock) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockArticleRepo) List(ctx context.Context, f repository.FiltreArticles, limit, offset int) ([]*entity.ArticleStock, int, error) {
	args := m.Called(ctx, f, limit, offset)
	l, _ := args.Get(0).([]*entity.ArticleStock)
	return l, args.Int(1), args.Error(2)
}
func (m *MockArticleRepo) ListGroupes(ctx context.Context) ([]*entity.GroupeArticles, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*entity.GroupeArticles)
	return l, args.Error(1)
}
func (m *MockArticleRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockMouvementRepo struct{ mock.Mock }

func (m *MockMouvementRepo) Create(ctx context.Context, mv *entity.MouvementStock) error {
	return m.Called(ctx, mv).Error(0)
}
func (m *MockMouvementRepo) List(ctx context.Context, articleID string, limit, offset int) ([]*entity.MouvementStock, int, error) {
	args := m.Called(ctx, articleID, limit, offset)
	l, _ := args.Get(0).([]*entity.MouvementStock)
	return l, args.Int(1), args.Error(2)
}
func (m *MockMouvementRepo) ReservationsOuvertes(ctx context.Context, articleID string) ([]domstock.FenetreReservation, error) {
	args := m.Called(ctx, articleID)
	l, _ := args.Get(0).([]domstock.FenetreReservation)
	return l, args.Error(1)
}

type MockAlerteRepo struct{ mock.Mock }

func (m *MockAlerteRepo) Upsert(ctx context.Context, a *entity.AlerteStock) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAlerteRepo) Desactiver(ctx context.Context, articleID string) error {
	return m.Called(ctx, articleID).Error(0)
}
func (m *MockAlerteRepo) ListActives(ctx context.Context) ([]*entity.AlerteStock, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*entity.AlerteStock)
	return l, args.Error(1)
}

// fauxTxRunner exécute le callback directement avec les mocks fournis :
// la sémantique Commit/Rollback est testée côté infrastructure.
type fauxTxRunner struct {
	articles   *MockArticleRepo
	mouvements *MockMouvementRepo
	alertes    *MockAlerteRepo
}

func (f *fauxTxRunner) Run(_ context.Context, fn func(
	repository.ArticleRepository,
	repository.MouvementRepository,
	repository.AlerteRepository,
) error) error {
	return fn(f.articles, f.mouvements, f.alertes)
}

func articleTest(stock, reservee, seuil int) *entity.ArticleStock {
	return &entity.ArticleStock{
		ID:                 "art-1",
		Categorie:          entity.CategorieCostume,
		Reference:          "Césaire",
		Taille:             "52",
		QuantiteStock:      stock,
		QuantiteReservee:   reservee,
		QuantiteDisponible: stock - reservee,
		SeuilAlerte:        seuil,
	}
}

func harnais(art *entity.ArticleStock) (*appstock.EnregistrerMouvementUseCase, *MockArticleRepo, *MockMouvementRepo, *MockAlerteRepo) {
	articles := new(MockArticleRepo)
	mouvements := new(MockMouvementRepo)
	alertes := new(MockAlerteRepo)
	articles.On("GetByID", mock.Anything, art.ID).Return(art, nil)
	articles.On("GetForUpdate", mock.Anything, art.ID).Return(art, nil)
	runner := &fauxTxRunner{articles: articles, mouvements: mouvements, alertes: alertes}
	return appstock.NewEnregistrerMouvementUseCase(runner, articles), articles, mouvements, alertes
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestEnregistrer_Reservation(t *testing.T) {
	art := articleTest(10, 2, 0)
	uc, articles, mouvements, alertes := harnais(art)

	articles.On("UpdateCompteurs", mock.Anything, mock.AnythingOfType("*entity.ArticleStock")).Return(nil)
	mouvements.On("Create", mock.Anything, mock.AnythingOfType("*entity.MouvementStock")).Return(nil)
	alertes.On("Desactiver", mock.Anything, art.ID).Return(nil)

	maj, err := uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID:   art.ID,
		Type:        entity.MouvementReservation,
		Quantite:    3,
		ContratID:   "C-2025-004",
		EffectuePar: "Isabelle",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, maj.QuantiteStock)
	assert.Equal(t, 5, maj.QuantiteReservee)
	assert.Equal(t, 5, maj.QuantiteDisponible)

	// Le journal porte le mouvement tel quel, lié au contrat et à l'opérateur
	mouvements.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(mv *entity.MouvementStock) bool {
		return mv.ArticleID == art.ID &&
			mv.Type == entity.MouvementReservation &&
			mv.Quantite == 3 &&
			mv.ContratID == "C-2025-004" &&
			mv.EffectuePar == "Isabelle"
	}))
}

func TestEnregistrer_ReservationAuDelaDuStock(t *testing.T) {
	art := articleTest(2, 1, 0)
	uc, articles, mouvements, _ := harnais(art)

	_, err := uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID: art.ID, Type: entity.MouvementReservation, Quantite: 5, EffectuePar: "Karim",
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuffisant)

	// Rien n'a été écrit : ni compteurs, ni journal
	articles.AssertNotCalled(t, "UpdateCompteurs", mock.Anything, mock.Anything)
	mouvements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnregistrer_SortieSousZero(t *testing.T) {
	art := articleTest(1, 0, 0)
	uc, _, _, _ := harnais(art)

	_, err := uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID: art.ID, Type: entity.MouvementSortie, Quantite: 2, EffectuePar: "Karim",
	})
	assert.ErrorIs(t, err, domain.ErrInvariantStock)
}

func TestEnregistrer_EntreeSortieAllerRetour(t *testing.T) {
	art := articleTest(0, 0, -1) // seuil -1 : jamais d'alerte dans ce scénario
	uc, articles, mouvements, alertes := harnais(art)

	articles.On("UpdateCompteurs", mock.Anything, mock.Anything).Return(nil)
	mouvements.On("Create", mock.Anything, mock.Anything).Return(nil)
	alertes.On("Desactiver", mock.Anything, art.ID).Return(nil)

	maj, err := uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID: art.ID, Type: entity.MouvementEntree, Quantite: 5, EffectuePar: "Nathalie",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, maj.QuantiteStock)

	maj, err = uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID: art.ID, Type: entity.MouvementSortie, Quantite: 5, EffectuePar: "Nathalie",
	})
	require.NoError(t, err)

	// Retour aux compteurs d'origine
	assert.Equal(t, 0, maj.QuantiteStock)
	assert.Equal(t, 0, maj.QuantiteReservee)
	assert.Equal(t, 0, maj.QuantiteDisponible)
}

func TestEnregistrer_ActiveAlerteSousSeuil(t *testing.T) {
	art := articleTest(5, 2, 3)
	uc, articles, mouvements, alertes := harnais(art)

	articles.On("UpdateCompteurs", mock.Anything, mock.Anything).Return(nil)
	mouvements.On("Create", mock.Anything, mock.Anything).Return(nil)
	alertes.On("Upsert", mock.Anything, mock.AnythingOfType("*entity.AlerteStock")).Return(nil)

	// 3 disponibles -> réservation de 1 -> 2 <= seuil 3 : alerte
	_, err := uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID: art.ID, Type: entity.MouvementReservation, Quantite: 1, EffectuePar: "Thomas",
	})
	require.NoError(t, err)

	alertes.AssertCalled(t, "Upsert", mock.Anything, mock.MatchedBy(func(a *entity.AlerteStock) bool {
		return a.ArticleID == art.ID && a.Active && a.QuantiteActuelle == 2 && a.Seuil == 3
	}))
}

func TestEnregistrer_DesactiveAlerteAuDessusDuSeuil(t *testing.T) {
	art := articleTest(5, 3, 2) // disponible 2 <= seuil 2 : alerte active
	uc, articles, mouvements, alertes := harnais(art)

	articles.On("UpdateCompteurs", mock.Anything, mock.Anything).Return(nil)
	mouvements.On("Create", mock.Anything, mock.Anything).Return(nil)
	alertes.On("Desactiver", mock.Anything, art.ID).Return(nil)

	// Retour de 2 pièces -> disponible 4 > seuil 2 : l'alerte tombe
	_, err := uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID: art.ID, Type: entity.MouvementRetour, Quantite: 2, EffectuePar: "Thomas",
	})
	require.NoError(t, err)

	alertes.AssertCalled(t, "Desactiver", mock.Anything, art.ID)
	alertes.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestEnregistrer_EntreesInvalides(t *testing.T) {
	art := articleTest(5, 0, 0)
	uc, _, _, _ := harnais(art)

	_, err := uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID: art.ID, Type: "transfert", Quantite: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID: art.ID, Type: entity.MouvementEntree, Quantite: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Enregistrer(context.Background(), appstock.MouvementInput{
		Type: entity.MouvementEntree, Quantite: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnregistrer_ArticleInconnu(t *testing.T) {
	articles := new(MockArticleRepo)
	articles.On("GetByID", mock.Anything, "absent").Return(nil, nil)
	runner := &fauxTxRunner{articles: articles, mouvements: new(MockMouvementRepo), alertes: new(MockAlerteRepo)}
	uc := appstock.NewEnregistrerMouvementUseCase(runner, articles)

	_, err := uc.Enregistrer(context.Background(), appstock.MouvementInput{
		ArticleID: "absent", Type: entity.MouvementEntree, Quantite: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RefuseAvecReservations(t *testing.T) {
	articles := new(MockArticleRepo)
	art := articleTest(5, 2, 0)
	articles.On("GetByID", mock.Anything, art.ID).Return(art, nil)
	uc := appstock.NewArticleUseCase(articles, new(MockMouvementRepo), new(MockAlerteRepo))

	err := uc.Delete(context.Background(), art.ID)
	assert.ErrorIs(t, err, domain.ErrReservationsEnCours)
	articles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_AccepteSansReservation(t *testing.T) {
	articles := new(MockArticleRepo)
	art := articleTest(7, 0, 0) // stock non nul : seule la réservation bloque
	articles.On("GetByID", mock.Anything, art.ID).Return(art, nil)
	articles.On("Delete", mock.Anything, art.ID).Return(nil)
	uc := appstock.NewArticleUseCase(articles, new(MockMouvementRepo), new(MockAlerteRepo))

	require.NoError(t, uc.Delete(context.Background(), art.ID))
	articles.AssertCalled(t, "Delete", mock.Anything, art.ID)
}
