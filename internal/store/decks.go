package store

import (
	"context"

	"github.com/decklab-dev/decklab/internal/models"
	"gorm.io/gorm"
)

// CreateDeck inserts a new deck. CreatedAt and UpdatedAt are stamped by the
// storage layer.
func (s *Store) CreateDeck(ctx context.Context, deck *models.Deck) error {
	if deck.OwnerID == "" {
		return ErrMissingOwner
	}

	return s.db.WithContext(ctx).Create(deck).Error
}

// ListDecks returns all of the owner's decks, newest first.
func (s *Store) ListDecks(ctx context.Context, ownerID string) ([]models.Deck, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}

	var decks []models.Deck

	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&decks).Error

	if err != nil {
		return nil, err
	}

	return decks, nil
}

// GetDeck fetches one deck by id, restricted to the owner. A deck belonging
// to anyone else is indistinguishable from a missing one: both surface as
// gorm.ErrRecordNotFound.
func (s *Store) GetDeck(ctx context.Context, ownerID string, id uint) (models.Deck, error) {
	var deck models.Deck

	if ownerID == "" {
		return deck, ErrMissingOwner
	}

	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&deck).Error

	return deck, err
}

// UpdateDeck writes the deck's title and description through an owner-scoped
// WHERE, so the row never changes hands even if the caller holds a foreign
// primary key. UpdatedAt is refreshed by the storage layer.
func (s *Store) UpdateDeck(ctx context.Context, ownerID string, deck *models.Deck) error {
	if ownerID == "" {
		return ErrMissingOwner
	}

	if deck.ID == 0 {
		return gorm.ErrRecordNotFound
	}

	result := s.db.WithContext(ctx).
		Model(deck).
		Where("owner_id = ?", ownerID).
		Updates(map[string]interface{}{
			"title":       deck.Title,
			"description": deck.Description,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteDeck removes the owner's deck. Its cards are removed by the schema's
// cascade, not by this code.
func (s *Store) DeleteDeck(ctx context.Context, ownerID string, id uint) error {
	deck, err := s.GetDeck(ctx, ownerID, id)

	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&deck).Error
}
