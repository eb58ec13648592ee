package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/hazelhedmine/elememory-backend/auth"
	"github.com/hazelhedmine/elememory-backend/models"
	"gorm.io/gorm"
)

type DBHandler struct {
	DB     *gorm.DB
	Tokens *auth.TokenService
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// deckRef is the {name, id} projection of a deck on user payloads.
type deckRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Decks     []deckRef `json:"decks"`
}

func newUserResponse(user *models.User) userResponse {
	decks := make([]deckRef, 0, len(user.Decks))
	for _, deck := range user.Decks {
		decks = append(decks, deckRef{Name: deck.Name, ID: deck.PublicID})
	}
	return userResponse{
		ID:        user.PublicID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Decks:     decks,
	}
}
