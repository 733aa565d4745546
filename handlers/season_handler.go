package handlers

import (
	"net/http"

	"github.com/recleague/league-system/models"
	"github.com/recleague/league-system/services"
)

type SeasonHandler struct {
	seasonService services.SeasonService
}

func NewSeasonHandler(seasonService services.SeasonService) *SeasonHandler {
	return &SeasonHandler{seasonService: seasonService}
}

func (h *SeasonHandler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	var input services.CreateSeasonInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	season, err := h.seasonService.CreateSeason(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"season": season}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SeasonHandler) GetSeason(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	season, err := h.seasonService.GetSeasonByID(r.Context(), seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"season": season}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SeasonHandler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.seasonService.ListSeasons(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"seasons": seasons}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SeasonHandler) UpdateSeasonStatus(w http.ResponseWriter, r *http.Request) {
	seasonID, err := getIDFromURL(r, "seasonID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Status models.SeasonStatus `json:"status"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.seasonService.UpdateStatus(r.Context(), seasonID, input.Status); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": input.Status}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
