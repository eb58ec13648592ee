package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/hazelhedmine/elememory-backend/models"
)

type cardSummary struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type deckListItem struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	User  userRef       `json:"user"`
	Cards []cardSummary `json:"cards"`
}

type userRef struct {
	Username string `json:"username"`
}

// GetDecks lists every deck with its owner and cards materialized. It also
// backs GET /api/cards, whose listing has always been deck-centric.
func (h *DBHandler) GetDecks(w http.ResponseWriter, r *http.Request) {
	var decks []models.Deck
	if err := h.DB.Preload("User").Preload("Cards").Find(&decks).Error; err != nil {
		log.Printf("GetDecks: Failed to fetch decks: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch decks")
		return
	}

	items := make([]deckListItem, 0, len(decks))
	for i := range decks {
		cards := make([]cardSummary, 0, len(decks[i].Cards))
		for _, card := range decks[i].Cards {
			cards = append(cards, cardSummary{Question: card.Question, Answer: card.Answer})
		}
		items = append(items, deckListItem{
			ID:    decks[i].PublicID,
			Name:  decks[i].Name,
			User:  userRef{Username: decks[i].User.Username},
			Cards: cards,
		})
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *DBHandler) GetDeckByID(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")

	var deck models.Deck
	if err := h.DB.Preload("Cards").Where("public_id = ?", deckID).First(&deck).Error; err != nil {
		writeError(w, http.StatusNotFound, "deck not found")
		return
	}

	type cardDetail struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		ID       string `json:"id"`
	}
	cards := make([]cardDetail, 0, len(deck.Cards))
	for _, card := range deck.Cards {
		cards = append(cards, cardDetail{Question: card.Question, Answer: card.Answer, ID: card.PublicID})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":    deck.PublicID,
		"name":  deck.Name,
		"cards": cards,
	})
}

func (h *DBHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "missing user ID")
		return
	}

	var user models.User
	if err := h.DB.Where("public_id = ?", req.UserID).First(&user).Error; err != nil {
		writeError(w, http.StatusBadRequest, "user not found")
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate ID")
		return
	}

	deck := models.Deck{
		PublicID: publicID,
		Name:     req.Name,
		UserID:   user.ID,
	}

	if err := h.DB.Create(&deck).Error; err != nil {
		log.Printf("CreateDeck: Database creation error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create deck")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     deck.PublicID,
		"name":   deck.Name,
		"userId": user.PublicID,
		"cards":  []cardSummary{},
	})
}

func (h *DBHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")

	var req struct {
		Name *string `json:"name,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var deck models.Deck
	if err := h.DB.Where("public_id = ?", deckID).First(&deck).Error; err != nil {
		writeError(w, http.StatusBadRequest, "deck update failed")
		return
	}

	if req.Name != nil {
		deck.Name = *req.Name
	}

	if err := h.DB.Save(&deck).Error; err != nil {
		log.Printf("UpdateDeck: Failed to update deckID=%s: %v", deckID, err)
		writeError(w, http.StatusBadRequest, "deck update failed")
		return
	}

	writeMessage(w, http.StatusOK, "deck updated")
}

func (h *DBHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")

	var deck models.Deck
	if err := h.DB.Where("public_id = ?", deckID).First(&deck).Error; err != nil {
		// Idempotent: deleting an absent deck is still a success.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("deck_id = ?", deck.ID).Delete(&models.Card{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&deck).Error
	})
	if err != nil {
		log.Printf("DeleteDeck: Failed to delete deckID=%s: %v", deckID, err)
		writeError(w, http.StatusInternalServerError, "deck deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
