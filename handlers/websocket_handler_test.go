package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/recleague/league-system/models"
	"github.com/recleague/league-system/services"
	"github.com/recleague/league-system/swiss"
	"github.com/stretchr/testify/assert"
)

type stubSeasonService struct {
	season *models.Season
}

func (s *stubSeasonService) CreateSeason(_ context.Context, _ services.CreateSeasonInput) (*models.Season, error) {
	return nil, nil
}

func (s *stubSeasonService) GetSeasonByID(_ context.Context, _ int) (*models.Season, error) {
	if s.season == nil {
		return nil, services.ErrSeasonNotFound
	}
	return s.season, nil
}

func (s *stubSeasonService) ListSeasons(_ context.Context) ([]models.Season, error) {
	return nil, nil
}

func (s *stubSeasonService) UpdateStatus(_ context.Context, _ int, _ models.SeasonStatus) error {
	return nil
}

func newWsRouter(seasons *stubSeasonService, allowedOrigin string) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewWebSocketHandler(swiss.NewHub(logger), seasons, allowedOrigin, logger)
	router := chi.NewRouter()
	router.Get("/ws/seasons/{seasonID}", h.ServeWs)
	return router
}

func wsHandshakeRequest(target, origin string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	return req
}

func TestServeWsRejectsForeignOrigin(t *testing.T) {
	router := newWsRouter(
		&stubSeasonService{season: &models.Season{ID: 1}},
		"https://admin.example.com",
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, wsHandshakeRequest("/ws/seasons/1", "https://elsewhere.example.com"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServeWsUnknownSeason(t *testing.T) {
	router := newWsRouter(&stubSeasonService{}, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, wsHandshakeRequest("/ws/seasons/42", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
