package routes

import (
	"roomie_feed/controllers"
	"roomie_feed/helpers"
	"roomie_feed/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up GET /profiles behind bearer auth
func RegisterProfileRoutes(r *mux.Router, store services.CandidateStore, token string) {
	controller := controllers.NewProfileController(store)

	profileRouter := r.PathPrefix("/profiles").Subrouter()
	profileRouter.Use(helpers.RequireBearer(token))
	profileRouter.HandleFunc("", controller.GetProfilesHandler).Methods("GET")
}
