package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/hazelhedmine/elememory-backend/auth"
	"github.com/hazelhedmine/elememory-backend/config"
	"github.com/hazelhedmine/elememory-backend/handlers"
	"github.com/hazelhedmine/elememory-backend/router"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.Connect(env.DBURL)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	tokens := auth.NewTokenService(env.JWTSecret)
	h := &handlers.DBHandler{DB: db, Tokens: tokens}
	mux := router.New(h, tokens)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + env.Port
	log.Printf("Listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatal(err)
	}
}
