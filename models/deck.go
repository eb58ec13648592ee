package models

import "gorm.io/gorm"

// Deck represents a collection of cards owned by a single user. The owner is
// authoritative through UserID; the card list is derived from Card.DeckID at
// read time rather than stored on the deck.
type Deck struct {
	gorm.Model
	PublicID string `gorm:"size:100;uniqueIndex;not null" json:"id"`
	Name     string `gorm:"not null;size:100" json:"name"`

	UserID uint `gorm:"not null;index" json:"-"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Cards []Card `gorm:"foreignKey:DeckID" json:"cards"`
}
