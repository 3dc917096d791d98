package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adbooking/config"
	"adbooking/internal/domains/booking/client"
	"adbooking/internal/domains/booking/model"
	"adbooking/internal/domains/booking/model/dto"
	"adbooking/shared/failure"
	"adbooking/transport/rest"
)

func testClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.TimeoutSeconds = 5

	return client.New(rest.New(cfg))
}

func TestClient_List_StatusParam(t *testing.T) {
	var gotStatus []string

	router := chi.NewRouter()
	router.Get("/api/v1/booking-requests", func(w http.ResponseWriter, r *http.Request) {
		gotStatus = append(gotStatus, r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	c := testClient(t, router)

	_, err := c.List(context.Background(), model.StatusFilter(model.StatusPending))
	require.NoError(t, err)

	_, err = c.List(context.Background(), model.FilterAll)
	require.NoError(t, err)

	_, err = c.List(context.Background(), "")
	require.NoError(t, err)

	// ALL sentinel and empty filter both mean no status parameter
	assert.Equal(t, []string{"PENDING", "", ""}, gotStatus)
}

func TestClient_Create_ErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "body text carried verbatim",
			status:  http.StatusBadRequest,
			body:    "Start date must be in the future",
			wantMsg: "Start date must be in the future",
		},
		{
			name:    "fallback when body empty",
			status:  http.StatusInternalServerError,
			body:    "",
			wantMsg: "Failed to create booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Post("/api/v1/booking-requests", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			c := testClient(t, router)

			_, err := c.Create(context.Background(), dto.CreateBookingRequest{AdSpaceUUID: "space-1"})
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.False(t, failure.IsConflict(err))
		})
	}
}

func TestClient_Transition_Conflict(t *testing.T) {
	tests := []struct {
		name    string
		action  string
		body    string
		wantMsg string
	}{
		{
			name:    "approve conflict with backend message",
			action:  "approve",
			body:    "Cannot create overlapping bookings for the same space (for approved bookings)",
			wantMsg: "Cannot create overlapping bookings for the same space (for approved bookings)",
		},
		{
			name:    "approve conflict fallback",
			action:  "approve",
			wantMsg: "Conflict: cannot approve this booking",
		},
		{
			name:    "reject conflict fallback",
			action:  "reject",
			wantMsg: "Conflict: cannot reject this booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Patch("/api/v1/booking-requests/{id}/"+tt.action, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(tt.body))
			})

			c := testClient(t, router)

			call := c.Approve
			if tt.action == "reject" {
				call = c.Reject
			}

			_, err := call(context.Background(), "booking-1")
			require.Error(t, err)
			assert.True(t, failure.IsConflict(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestClient_Transition_GenericFailure(t *testing.T) {
	router := chi.NewRouter()
	router.Patch("/api/v1/booking-requests/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := testClient(t, router)

	_, err := c.Approve(context.Background(), "booking-1")
	require.Error(t, err)
	assert.False(t, failure.IsConflict(err))
	assert.Equal(t, "Failed to approve booking", err.Error())
}

func TestClient_Get_NotFound(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/v1/booking-requests/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := testClient(t, router)

	_, err := c.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, "Booking not found", err.Error())
}
