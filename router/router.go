package router

import (
	"net/http"

	"github.com/hazelhedmine/elememory-backend/auth"
	"github.com/hazelhedmine/elememory-backend/handlers"
	"github.com/hazelhedmine/elememory-backend/middleware"
)

// New builds the API route table.
func New(h *handlers.DBHandler, tokens *auth.TokenService) *http.ServeMux {
	requireToken := middleware.RequireToken(tokens)

	mux := http.NewServeMux()

	// Users
	mux.HandleFunc("GET /api/users", h.GetUsers)
	mux.HandleFunc("GET /api/users/{id}", requireToken(h.GetUserByID))
	mux.HandleFunc("POST /api/users", h.CreateUser)
	mux.HandleFunc("PUT /api/users/{id}", h.UpdateUser)
	mux.HandleFunc("DELETE /api/users/{id}", h.DeleteUser)

	// Decks
	mux.HandleFunc("GET /api/decks", h.GetDecks)
	mux.HandleFunc("GET /api/decks/{id}", h.GetDeckByID)
	mux.HandleFunc("POST /api/decks", h.CreateDeck)
	mux.HandleFunc("PUT /api/decks/{id}", h.UpdateDeck)
	mux.HandleFunc("DELETE /api/decks/{id}", h.DeleteDeck)

	// Cards. The card listing is deck-centric and shares the deck handler.
	mux.HandleFunc("GET /api/cards", h.GetDecks)
	mux.HandleFunc("POST /api/cards", h.CreateCard)
	mux.HandleFunc("PUT /api/cards/{id}", h.UpdateCard)
	mux.HandleFunc("DELETE /api/cards/{id}", h.DeleteCard)

	// Login
	mux.HandleFunc("POST /api/login", h.Login)

	return mux
}
