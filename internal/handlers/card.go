package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/decklab-dev/decklab/internal/logger"
	"github.com/decklab-dev/decklab/internal/models"
	"github.com/decklab-dev/decklab/internal/store"
	"github.com/decklab-dev/decklab/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCardRequest struct {
	Front string `json:"front" binding:"required"`
	Back  string `json:"back" binding:"required"`
}

type UpdateCardRequest struct {
	Front string `json:"front" binding:"required"`
	Back  string `json:"back" binding:"required"`
}

type CardResponse struct {
	ID        uint      `json:"id"`
	DeckID    uint      `json:"deck_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCardResponse(card models.Card) CardResponse {
	return CardResponse{
		ID:        card.ID,
		DeckID:    card.DeckID,
		Front:     card.Front,
		Back:      card.Back,
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}

type CardHandler struct {
	Store *store.Store
}

func NewCardHandler(s *store.Store) *CardHandler {
	return &CardHandler{Store: s}
}

func (h *CardHandler) CreateCard(ctx *gin.Context) {
	ownerID, err := utils.CurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	deckID, err := parseIDParam(ctx, "deck_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deck ID"})
		return
	}

	var body CreateCardRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card := models.Card{
		DeckID: deckID,
		Front:  body.Front,
		Back:   body.Back,
	}

	if err := h.Store.CreateCard(ctx.Request.Context(), ownerID, &card); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		} else {
			logger.Errorf("Failed to create card in deck %d: %v", deckID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		}
		return
	}

	BroadcastRefresh(ownerID)

	ctx.JSON(http.StatusCreated, toCardResponse(card))
}

func (h *CardHandler) ListCards(ctx *gin.Context) {
	ownerID, err := utils.CurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	deckID, err := parseIDParam(ctx, "deck_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deck ID"})
		return
	}

	cards, err := h.Store.ListCards(ctx.Request.Context(), ownerID, deckID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		} else {
			logger.Errorf("Failed to list cards of deck %d: %v", deckID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		}
		return
	}

	response := make([]CardResponse, 0, len(cards))

	for _, card := range cards {
		response = append(response, toCardResponse(card))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *CardHandler) GetCard(ctx *gin.Context) {
	ownerID, err := utils.CurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	deckID, cardID, ok := cardParams(ctx)

	if !ok {
		return
	}

	card, err := h.Store.GetCard(ctx.Request.Context(), ownerID, deckID, cardID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			logger.Errorf("Failed to fetch card %d: %v", cardID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toCardResponse(card))
}

func (h *CardHandler) UpdateCard(ctx *gin.Context) {
	ownerID, err := utils.CurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	deckID, cardID, ok := cardParams(ctx)

	if !ok {
		return
	}

	var body UpdateCardRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card, err := h.Store.GetCard(ctx.Request.Context(), ownerID, deckID, cardID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			logger.Errorf("Failed to fetch card %d: %v", cardID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		}
		return
	}

	card.Front = body.Front
	card.Back = body.Back

	if err := h.Store.UpdateCard(ctx.Request.Context(), ownerID, &card); err != nil {
		logger.Errorf("Failed to update card %d: %v", cardID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	BroadcastRefresh(ownerID)

	ctx.JSON(http.StatusOK, toCardResponse(card))
}

func (h *CardHandler) DeleteCard(ctx *gin.Context) {
	ownerID, err := utils.CurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	deckID, cardID, ok := cardParams(ctx)

	if !ok {
		return
	}

	if err := h.Store.DeleteCard(ctx.Request.Context(), ownerID, deckID, cardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			logger.Errorf("Failed to delete card %d: %v", cardID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		}
		return
	}

	BroadcastRefresh(ownerID)

	ctx.Status(http.StatusNoContent)
}

func cardParams(ctx *gin.Context) (deckID, cardID uint, ok bool) {
	deckID, err := parseIDParam(ctx, "deck_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deck ID"})
		return 0, 0, false
	}

	cardID, err = parseIDParam(ctx, "card_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
		return 0, 0, false
	}

	return deckID, cardID, true
}
