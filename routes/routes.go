package routes

import (
	"net/http"

	"roomie_feed/helpers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the service routes: welcome, health and metrics
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Roomie stub API"})
	}).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
