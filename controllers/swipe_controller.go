package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"roomie_feed/helpers"
	"roomie_feed/models"
	"roomie_feed/services"
	"roomie_feed/socket"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// SwipeController serves the stub POST /swipes/{direction} endpoint
type SwipeController struct {
	Store    services.CandidateStore
	Notifier socket.MatchNotifier // optional
}

func NewSwipeController(store services.CandidateStore, notifier socket.MatchNotifier) *SwipeController {
	return &SwipeController{Store: store, Notifier: notifier}
}

// RecordSwipeHandler stores ?userId&swipedOnUserId under the direction from the path
func (sc *SwipeController) RecordSwipeHandler(w http.ResponseWriter, r *http.Request) {
	direction, err := models.ParseSwipeDirection(mux.Vars(r)["direction"])
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()
	userID := query.Get("userId")
	swipedOn := query.Get("swipedOnUserId")
	if userID == "" || swipedOn == "" {
		log.Println("⚠️ Missing required fields in swipe request")
		helpers.WriteError(w, http.StatusBadRequest, "userId and swipedOnUserId are required")
		return
	}
	if userID == swipedOn {
		helpers.WriteError(w, http.StatusBadRequest, "cannot swipe on yourself")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	matched, err := sc.Store.RecordSwipe(ctx, models.Swipe{
		UserID:         userID,
		SwipedOnUserID: swipedOn,
		Direction:      direction.String(),
		CreatedAt:      now,
	})
	if errors.Is(err, services.ErrCandidateNotFound) {
		helpers.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Printf("❌ Failed to record swipe %s -> %s: %v", userID, swipedOn, err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to record swipe")
		return
	}
	services.StubSwipesRecorded.WithLabelValues(direction.String()).Inc()

	response := map[string]interface{}{"message": "Swipe recorded", "matched": matched}
	if matched {
		matchID := uuid.NewString()
		response["matchId"] = matchID
		log.Printf("💘 It's a match! %s <-> %s (%s)", userID, swipedOn, matchID)
		if sc.Notifier != nil {
			sc.Notifier.NotifyMatch(models.MatchEvent{MatchID: matchID, UserID: userID, MatchedID: swipedOn, CreatedAt: now})
			sc.Notifier.NotifyMatch(models.MatchEvent{MatchID: matchID, UserID: swipedOn, MatchedID: userID, CreatedAt: now})
		}
	}
	helpers.WriteJSONResponse(w, http.StatusOK, response)
}
