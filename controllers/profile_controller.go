package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"roomie_feed/helpers"
	"roomie_feed/models"
	"roomie_feed/services"
)

// ProfileController serves the stub GET /profiles endpoint
type ProfileController struct {
	Store services.CandidateStore
}

func NewProfileController(store services.CandidateStore) *ProfileController {
	return &ProfileController{Store: store}
}

// GetProfilesHandler returns the candidate array for ?userId&genderFilter&filterOutSwipedOn
func (pc *ProfileController) GetProfilesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("userId")
	if userID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "Missing userId parameter")
		return
	}

	category := models.CategoryAll
	if filter := query.Get("genderFilter"); filter != "" {
		parsed, err := models.ParseCategory(filter)
		if err != nil {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		category = parsed
	}

	excludeSwiped := false
	if raw := query.Get("filterOutSwipedOn"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			helpers.WriteError(w, http.StatusBadRequest, "filterOutSwipedOn must be a boolean")
			return
		}
		excludeSwiped = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	candidates, err := pc.Store.ListCandidates(ctx, userID, category, excludeSwiped)
	if err != nil {
		log.Printf("❌ Failed to list %s candidates for %s: %v", category, userID, err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch profiles")
		return
	}

	log.Printf("✅ Serving %d %s candidates to %s", len(candidates), category, userID)
	helpers.WriteJSONResponse(w, http.StatusOK, candidates)
}
