package store

import (
	"context"

	"github.com/decklab-dev/decklab/internal/models"
	"gorm.io/gorm"
)

// CreateCard inserts a card after resolving its parent deck under the owner.
// A card can never be attached to a deck the caller does not own.
func (s *Store) CreateCard(ctx context.Context, ownerID string, card *models.Card) error {
	if _, err := s.GetDeck(ctx, ownerID, card.DeckID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Create(card).Error
}

// ListCards returns the cards of one of the owner's decks, oldest first.
func (s *Store) ListCards(ctx context.Context, ownerID string, deckID uint) ([]models.Card, error) {
	if _, err := s.GetDeck(ctx, ownerID, deckID); err != nil {
		return nil, err
	}

	var cards []models.Card

	err := s.db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("created_at ASC, id ASC").
		Find(&cards).Error

	if err != nil {
		return nil, err
	}

	return cards, nil
}

// GetCard fetches a single card through the decks join, so ownership is
// checked in the same statement that reads the row.
func (s *Store) GetCard(ctx context.Context, ownerID string, deckID, cardID uint) (models.Card, error) {
	var card models.Card

	if ownerID == "" {
		return card, ErrMissingOwner
	}

	err := s.db.WithContext(ctx).
		Select("cards.*").
		Joins("JOIN decks ON decks.id = cards.deck_id").
		Where("cards.id = ? AND cards.deck_id = ? AND decks.owner_id = ?", cardID, deckID, ownerID).
		First(&card).Error

	return card, err
}

// UpdateCard writes the card's front and back, scoped to decks the owner
// holds via a subquery. The card cannot be moved to another deck here, and a
// foreign card surfaces as not-found. UpdatedAt is refreshed by the storage
// layer.
func (s *Store) UpdateCard(ctx context.Context, ownerID string, card *models.Card) error {
	if ownerID == "" {
		return ErrMissingOwner
	}

	if card.ID == 0 {
		return gorm.ErrRecordNotFound
	}

	ownedDecks := s.db.Model(&models.Deck{}).Select("id").Where("owner_id = ?", ownerID)

	result := s.db.WithContext(ctx).
		Model(card).
		Where("deck_id IN (?)", ownedDecks).
		Updates(map[string]interface{}{
			"front": card.Front,
			"back":  card.Back,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteCard removes one card from one of the owner's decks.
func (s *Store) DeleteCard(ctx context.Context, ownerID string, deckID, cardID uint) error {
	card, err := s.GetCard(ctx, ownerID, deckID, cardID)

	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&card).Error
}
