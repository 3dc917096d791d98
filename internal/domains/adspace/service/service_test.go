package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adbooking/config"
	"adbooking/internal/domains/adspace/client"
	"adbooking/internal/domains/adspace/model"
	"adbooking/internal/domains/adspace/model/dto"
	"adbooking/internal/domains/adspace/service"
	"adbooking/shared/failure"
	"adbooking/transport/rest"
)

type fakeCatalog struct {
	router  *chi.Mux
	spaces  []dto.AdSpaceResponse
	queries []string
	fail    bool
}

func newFakeCatalog() *fakeCatalog {
	c := &fakeCatalog{router: chi.NewRouter()}

	c.router.Get("/api/v1/ad-spaces", func(w http.ResponseWriter, r *http.Request) {
		c.queries = append(c.queries, r.URL.RawQuery)

		if c.fail {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(c.spaces)
	})

	c.router.Get("/api/v1/ad-spaces/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		for _, space := range c.spaces {
			if space.UUID == id {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(space)

				return
			}
		}

		w.WriteHeader(http.StatusNotFound)
	})

	return c
}

func newCatalog(t *testing.T, backend *fakeCatalog) service.Catalog {
	t.Helper()

	srv := httptest.NewServer(backend.router)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.TimeoutSeconds = 5

	return service.New(client.New(rest.New(cfg)))
}

func billboard() dto.AdSpaceResponse {
	return dto.AdSpaceResponse{
		UUID:        "space-1",
		Name:        "Main Street Billboard",
		Type:        string(model.TypeBillboard),
		City:        "Berlin",
		Address:     "Main St 1",
		PricePerDay: 100,
		Status:      string(model.StatusAvailable),
	}
}

func TestCatalog_Fetch(t *testing.T) {
	backend := newFakeCatalog()
	backend.spaces = []dto.AdSpaceResponse{billboard()}

	catalog := newCatalog(t, backend)
	catalog.SetFilters(client.Filters{City: "Berlin", Type: model.TypeBillboard})

	spaces, err := catalog.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, spaces, 1)

	assert.Equal(t, model.AdSpace{
		UUID:        "space-1",
		Name:        "Main Street Billboard",
		Type:        model.TypeBillboard,
		City:        "Berlin",
		Address:     "Main St 1",
		PricePerDay: 100,
		Status:      model.StatusAvailable,
	}, spaces[0])

	require.Len(t, backend.queries, 1)
	assert.Equal(t, "city=Berlin&type=BILLBOARD", backend.queries[0])
	assert.Equal(t, spaces, catalog.Spaces())
}

func TestCatalog_Fetch_EmptyFiltersOmitted(t *testing.T) {
	backend := newFakeCatalog()
	catalog := newCatalog(t, backend)

	_, err := catalog.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, backend.queries, 1)
	assert.Empty(t, backend.queries[0])
}

func TestCatalog_Fetch_FailureClearsCache(t *testing.T) {
	backend := newFakeCatalog()
	backend.spaces = []dto.AdSpaceResponse{billboard()}

	catalog := newCatalog(t, backend)

	_, err := catalog.Fetch(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, catalog.Spaces())

	backend.fail = true

	_, err = catalog.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to fetch ad spaces (500)")
	assert.Empty(t, catalog.Spaces())
}

func TestCatalog_Get(t *testing.T) {
	backend := newFakeCatalog()
	backend.spaces = []dto.AdSpaceResponse{billboard()}

	catalog := newCatalog(t, backend)

	space, err := catalog.Get(context.Background(), "space-1")
	require.NoError(t, err)
	assert.Equal(t, "Main Street Billboard", space.Name)

	_, err = catalog.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, "Ad space not found", err.Error())
}

func TestCatalog_Selection(t *testing.T) {
	backend := newFakeCatalog()
	catalog := newCatalog(t, backend)

	_, ok := catalog.Selected()
	assert.False(t, ok)

	space := model.AdSpace{UUID: "space-1", Name: "Main Street Billboard"}
	catalog.Select(space)

	selected, ok := catalog.Selected()
	require.True(t, ok)
	assert.Equal(t, space, selected)

	catalog.ClearSelection()

	_, ok = catalog.Selected()
	assert.False(t, ok)
}
