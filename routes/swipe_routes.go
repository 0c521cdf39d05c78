package routes

import (
	"roomie_feed/controllers"
	"roomie_feed/helpers"
	"roomie_feed/services"
	"roomie_feed/socket"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up POST /swipes/{left|right} behind bearer auth
func RegisterSwipeRoutes(r *mux.Router, store services.CandidateStore, notifier socket.MatchNotifier, token string) {
	controller := controllers.NewSwipeController(store, notifier)

	swipeRouter := r.PathPrefix("/swipes").Subrouter()
	swipeRouter.Use(helpers.RequireBearer(token))
	swipeRouter.HandleFunc("/{direction}", controller.RecordSwipeHandler).Methods("POST")
}
