package models

import "time"

// Card is a front/back text pair. It carries no owner column: ownership is
// transitive through the parent deck.
type Card struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	DeckID uint   `gorm:"not null;index" json:"deck_id"`
	Front  string `gorm:"type:text;not null" json:"front"`
	Back   string `gorm:"type:text;not null" json:"back"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Deck Deck `gorm:"foreignKey:DeckID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
