package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applocation "github.com/atelier-ceremonie/location-api/internal/application/location"
	"github.com/atelier-ceremonie/location-api/internal/domain/entity"
	apphttp "github.com/atelier-ceremonie/location-api/internal/interfaces/http"

	"github.com/gofiber/fiber/v2"
)

// locationRepoEnPanne échoue sur toute lecture, comme une base injoignable.
type locationRepoEnPanne struct {
	locationRepoMemoire
}

func (r *locationRepoEnPanne) GetByID(_ context.Context, _ string) (*entity.LocationGroupe, error) {
	return nil, errors.New(`pq: password authentication failed for user "location"`)
}

func TestErreurInattendue_NeFuitePasLeDetail(t *testing.T) {
	repo := &locationRepoEnPanne{}
	handler := apphttp.NewLocationGroupeHandler(applocation.NewLocationGroupeUseCase(repo))

	app := fiber.New()
	app.Get("/api/locations-groupees/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/api/locations-groupees/g-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INTERNAL", out["code"])
	assert.Equal(t, "erreur interne", out["message"])
	assert.NotContains(t, out["message"], "password")
}
