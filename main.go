package main

import (
	"context"
	"log"
	"net/http"

	"roomie_feed/config"
	"roomie_feed/routes"
	"roomie_feed/services"
	"roomie_feed/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// The stub API emulates the remote directory and swipe endpoints for local development
func main() {
	cfg := config.Load()

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize candidate store: %v", err)
	}

	socketServer := socket.NewSocketServer()
	go socketServer.Serve()
	defer socketServer.Close()

	// Initialize the router
	r := mux.NewRouter()
	routes.RegisterRoutes(r)
	routes.RegisterProfileRoutes(r, store, cfg.StubToken)
	routes.RegisterSwipeRoutes(r, store, socketServer, cfg.StubToken)
	r.PathPrefix("/socket.io/").Handler(socketServer.Handler())

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler(r)

	log.Printf("Starting stub API on port %s (%s store)...", cfg.Port, cfg.StubStore)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}

func buildStore(cfg *config.Config) (services.CandidateStore, error) {
	if cfg.StubStore == "dynamo" {
		awsCfg, err := services.LoadAWSConfig(context.Background(), cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		log.Println("DynamoDB client initialized.")
		dynamo := &services.DynamoService{Client: services.InitializeDynamoDBClient(awsCfg)}
		return services.NewDynamoCandidateStore(dynamo, cfg.CandidatesTable, cfg.SwipesTable), nil
	}

	store := services.NewMemoryCandidateStore()
	if cfg.SeedFile != "" {
		candidates, err := services.LoadCandidatesFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		for _, c := range candidates {
			store.AddCandidate(c)
		}
		log.Printf("✅ Seeded %d candidates from %s", len(candidates), cfg.SeedFile)
	}
	return store, nil
}
