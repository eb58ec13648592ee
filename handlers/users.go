package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hazelhedmine/elememory-backend/models"
)

func (h *DBHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := h.DB.Preload("Decks").Find(&users).Error; err != nil {
		log.Printf("GetUsers: Failed to fetch users: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	responses := make([]userResponse, 0, len(users))
	for i := range users {
		responses = append(responses, newUserResponse(&users[i]))
	}

	writeJSON(w, http.StatusOK, responses)
}

func (h *DBHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	var user models.User
	if err := h.DB.Preload("Decks").Where("public_id = ?", userID).First(&user).Error; err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(&user))
}

func (h *DBHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username  string `json:"username"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid password")
		return
	}

	var existing models.User
	if err := h.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		writeError(w, http.StatusBadRequest, "username must be unique")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("CreateUser: Failed to hash password: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate ID")
		return
	}

	user := models.User{
		PublicID:     publicID,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(passwordHash),
	}

	if err := h.DB.Create(&user).Error; err != nil {
		log.Printf("CreateUser: Database creation error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, newUserResponse(&user))
}

func (h *DBHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	var req struct {
		Username  string `json:"username"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Usernames are immutable: the submitted username must already belong to
	// a stored user, otherwise this is a rename attempt.
	var stored models.User
	if err := h.DB.Where("username = ?", req.Username).First(&stored).Error; err != nil {
		writeError(w, http.StatusBadRequest, "username cannot be changed")
		return
	}

	result := h.DB.Model(&models.User{}).Where("public_id = ?", userID).Updates(map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
	})
	if result.Error != nil {
		log.Printf("UpdateUser: Failed to update userID=%s: %v", userID, result.Error)
		writeError(w, http.StatusBadRequest, "user update failed")
		return
	}

	// Echo the submitted values merged with the path id.
	writeJSON(w, http.StatusOK, map[string]string{
		"id":        userID,
		"username":  req.Username,
		"firstName": req.FirstName,
		"lastName":  req.LastName,
	})
}

func (h *DBHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	var user models.User
	if err := h.DB.Where("public_id = ?", userID).First(&user).Error; err != nil {
		// Idempotent: deleting an absent user is still a success.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// Deletes are unscoped so the username is freed for re-registration; a
	// soft delete would leave the unique constraint occupied.
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var decks []models.Deck
		if err := tx.Where("user_id = ?", user.ID).Find(&decks).Error; err != nil {
			return err
		}

		// Children before parents, one deck at a time.
		for i := range decks {
			if err := tx.Unscoped().Where("deck_id = ?", decks[i].ID).Delete(&models.Card{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&decks[i]).Error; err != nil {
				return err
			}
		}

		return tx.Unscoped().Delete(&user).Error
	})
	if err != nil {
		log.Printf("DeleteUser: Cascade failed for userID=%s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "user deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
