package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appliste "github.com/atelier-ceremonie/location-api/internal/application/liste"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	apphttp "github.com/atelier-ceremonie/location-api/internal/interfaces/http"
)

// listeRepoMemoire repo en mémoire pour exercer les routes de participants.
type listeRepoMemoire struct {
	listes map[string]*entity.Liste
}

func (r *listeRepoMemoire) Create(_ context.Context, l *entity.Liste) error {
	r.listes[l.ID] = l
	return nil
}
func (r *listeRepoMemoire) GetByID(_ context.Context, id string) (*entity.Liste, error) {
	return r.listes[id], nil
}
func (r *listeRepoMemoire) Update(_ context.Context, l *entity.Liste) error {
	r.listes[l.ID] = l
	return nil
}
func (r *listeRepoMemoire) List(_ context.Context, _, _ int) ([]*entity.Liste, int, error) {
	return nil, 0, nil
}
func (r *listeRepoMemoire) FindByContrat(_ context.Context, _ string) ([]*entity.Liste, error) {
	return nil, nil
}
func (r *listeRepoMemoire) Delete(_ context.Context, id string) error {
	delete(r.listes, id)
	return nil
}

type numeroteurStatique struct{}

func (numeroteurStatique) AllouerNumero(_ context.Context, prefixe string) (string, error) {
	return prefixe + "-2025-001", nil
}

func buildListeApp(liste *entity.Liste) *fiber.App {
	repo := &listeRepoMemoire{listes: map[string]*entity.Liste{liste.ID: liste}}
	handler := apphttp.NewListeHandler(appliste.NewListeUseCase(repo, numeroteurStatique{}))

	app := fiber.New()
	app.Post("/api/listes/:listeId/contrats/:contratId", handler.AjouterParticipant)
	app.Delete("/api/listes/:listeId/contrats/:contratId", handler.RetirerParticipant)
	return app
}

func listeCortege() *entity.Liste {
	return &entity.Liste{
		ID:     "l-1",
		Numero: "L-2025-001",
		Nom:    "Mariage Dubois",
		Participants: []entity.Participant{
			{ContratID: "c-1", Role: "marié", Ordre: 1},
			{ContratID: "c-2", Role: "témoin", Ordre: 2},
		},
	}
}

func decodeListe(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAjouterParticipantHTTP(t *testing.T) {
	app := buildListeApp(listeCortege())

	req := httptest.NewRequest(http.MethodPost, "/api/listes/l-1/contrats/c-3", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeListe(t, resp)
	assert.Equal(t, []any{"c-1", "c-2", "c-3"}, out["contratIds"])
}

func TestRetirerParticipantHTTP_Renumerote(t *testing.T) {
	app := buildListeApp(listeCortege())

	req := httptest.NewRequest(http.MethodDelete, "/api/listes/l-1/contrats/c-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeListe(t, resp)
	assert.Equal(t, []any{"c-2"}, out["contratIds"])

	participants := out["participants"].([]any)
	require.Len(t, participants, 1)
	premier := participants[0].(map[string]any)
	assert.Equal(t, float64(1), premier["ordre"])
}

func TestRetirerParticipantHTTP_Absent(t *testing.T) {
	app := buildListeApp(listeCortege())

	req := httptest.NewRequest(http.MethodDelete, "/api/listes/l-1/contrats/c-99", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
