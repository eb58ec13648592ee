package models

import "gorm.io/gorm"

// Card is a single question/answer pair belonging to a deck.
type Card struct {
	gorm.Model
	PublicID string `gorm:"size:100;uniqueIndex;not null" json:"id"`
	Question string `gorm:"not null;size:1000" json:"question"`
	Answer   string `gorm:"not null;size:1000" json:"answer"`

	DeckID uint `gorm:"not null;index" json:"-"`
	Deck   Deck `gorm:"foreignKey:DeckID" json:"-"`
}
