package models

import "gorm.io/gorm"

// User represents a user in the system. Clients only ever see PublicID; the
// gorm primary key stays internal. PasswordHash is never serialized.
type User struct {
	gorm.Model
	PublicID     string `gorm:"size:100;uniqueIndex;not null" json:"id"`
	Username     string `gorm:"unique;not null;size:100" json:"username"`
	FirstName    string `gorm:"size:100" json:"firstName"`
	LastName     string `gorm:"size:100" json:"lastName"`
	PasswordHash string `gorm:"not null" json:"-"`

	Decks []Deck `gorm:"foreignKey:UserID" json:"decks"`
}
