package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/recleague/league-system/services"
	"github.com/recleague/league-system/swiss"
)

type WebSocketHandler struct {
	hub           *swiss.Hub
	seasonService services.SeasonService
	logger        *slog.Logger
	upgrader      websocket.Upgrader
}

// NewWebSocketHandler builds the live-update endpoint. An empty allowedOrigin
// accepts handshakes from any origin; set it in production.
func NewWebSocketHandler(hub *swiss.Hub, seasonService services.SeasonService, allowedOrigin string, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:           hub,
		seasonService: seasonService,
		logger:        logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
	}
}

// ServeWs subscribes a client to live updates for one season. The room ID is
// the season ID, matching what the services broadcast to.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.seasonService.GetSeasonByID(r.Context(), seasonID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	room := chi.URLParam(r, "seasonID")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("failed to upgrade websocket connection",
			slog.String("season_id", room), slog.Any("error", err))
		return
	}

	client := swiss.NewClient(h.hub, conn, room)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
