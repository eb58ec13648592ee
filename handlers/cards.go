package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/hazelhedmine/elememory-backend/models"
)

type cardResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	DeckID   string `json:"deckId"`
}

func (h *DBHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		DeckID   string `json:"deckId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "missing question")
		return
	}
	if req.Answer == "" {
		writeError(w, http.StatusBadRequest, "missing answer")
		return
	}
	if req.DeckID == "" {
		writeError(w, http.StatusBadRequest, "missing deck ID")
		return
	}

	var deck models.Deck
	if err := h.DB.Where("public_id = ?", req.DeckID).First(&deck).Error; err != nil {
		writeError(w, http.StatusBadRequest, "deck not found")
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate ID")
		return
	}

	card := models.Card{
		PublicID: publicID,
		Question: req.Question,
		Answer:   req.Answer,
		DeckID:   deck.ID,
	}

	if err := h.DB.Create(&card).Error; err != nil {
		log.Printf("CreateCard: Database creation error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create card")
		return
	}

	writeJSON(w, http.StatusCreated, cardResponse{
		ID:       card.PublicID,
		Question: card.Question,
		Answer:   card.Answer,
		DeckID:   deck.PublicID,
	})
}

func (h *DBHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardID := r.PathValue("id")

	var card models.Card
	if err := h.DB.Preload("Deck").Where("public_id = ?", cardID).First(&card).Error; err != nil {
		writeError(w, http.StatusNotFound, "card not found")
		return
	}

	var req struct {
		Question *string `json:"question,omitempty"`
		Answer   *string `json:"answer,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Question != nil {
		card.Question = *req.Question
	}
	if req.Answer != nil {
		card.Answer = *req.Answer
	}

	if err := h.DB.Save(&card).Error; err != nil {
		log.Printf("UpdateCard: Failed to update cardID=%s: %v", cardID, err)
		writeError(w, http.StatusInternalServerError, "failed to update card")
		return
	}

	writeJSON(w, http.StatusOK, cardResponse{
		ID:       card.PublicID,
		Question: card.Question,
		Answer:   card.Answer,
		DeckID:   card.Deck.PublicID,
	})
}

func (h *DBHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID := r.PathValue("id")

	var card models.Card
	if err := h.DB.Where("public_id = ?", cardID).First(&card).Error; err != nil {
		// Idempotent: deleting an absent card is still a success.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.DB.Unscoped().Delete(&card).Error; err != nil {
		log.Printf("DeleteCard: Failed to delete cardID=%s: %v", cardID, err)
		writeError(w, http.StatusInternalServerError, "failed to delete card")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
