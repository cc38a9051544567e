package store

import (
	"context"

	"github.com/decklab-dev/decklab/internal/models"
)

// CountDecks returns how many decks the owner has.
func (s *Store) CountDecks(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, ErrMissingOwner
	}

	var count int64

	err := s.db.WithContext(ctx).
		Model(&models.Deck{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error

	return count, err
}

// CountCards returns how many cards the owner has across all decks. Cards are
// counted through an inner join on decks; rows whose deck belongs to another
// owner never match.
func (s *Store) CountCards(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, ErrMissingOwner
	}

	var count int64

	err := s.db.WithContext(ctx).
		Model(&models.Card{}).
		Joins("JOIN decks ON decks.id = cards.deck_id").
		Where("decks.owner_id = ?", ownerID).
		Count(&count).Error

	return count, err
}

// RecentDecks returns up to limit of the owner's decks, newest first. The id
// tie-break keeps the order deterministic when creation timestamps collide.
func (s *Store) RecentDecks(ctx context.Context, ownerID string, limit int) ([]models.Deck, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}

	var decks []models.Deck

	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&decks).Error

	if err != nil {
		return nil, err
	}

	return decks, nil
}
