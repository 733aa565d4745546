package handlers

import (
	"net/http"

	"github.com/recleague/league-system/services"
)

type SwissHandler struct {
	swissService services.SwissService
}

func NewSwissHandler(swissService services.SwissService) *SwissHandler {
	return &SwissHandler{swissService: swissService}
}

// GetRankings returns the season's current Swiss standings. Rankings are
// recomputed on every request, so they always reflect the latest scores.
func (h *SwissHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.swissService.GetRankings(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SwissHandler) GetSeeding(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	order, err := h.swissService.GetSeeding(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"seeding": order}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SwissHandler) SetSeeding(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Seeding []int `json:"seeding"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.swissService.SetSeeding(r.Context(), seasonID, input.Seeding); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"seeding": input.Seeding}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SwissHandler) MoveSeed(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Position  int                        `json:"position"`
		Direction services.SeedMoveDirection `json:"direction"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	order, err := h.swissService.MoveSeed(r.Context(), seasonID, input.Position, input.Direction)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"seeding": order}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SwissHandler) GetRoundPairings(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	round, err := getIDFromURL(r, "round")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	assignments, err := h.swissService.PairingsForRound(r.Context(), seasonID, round)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"round":    round,
		"pairings": assignments,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
