package models

import "time"

// Deck groups flashcards under a single owner. OwnerID is the opaque
// subject issued by the identity provider; there is no users table here.
//
// Description is optional: an absent description is stored and served as the
// empty string. The column stays nullable for rows written outside this code.
type Deck struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `json:"description"`
	OwnerID     string `gorm:"type:varchar(255);not null;index" json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Cards []Card `gorm:"foreignKey:DeckID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
