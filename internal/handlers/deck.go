package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/decklab-dev/decklab/internal/logger"
	"github.com/decklab-dev/decklab/internal/models"
	"github.com/decklab-dev/decklab/internal/store"
	"github.com/decklab-dev/decklab/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateDeckRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

type UpdateDeckRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

type DeckResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDeckResponse(deck models.Deck) DeckResponse {
	return DeckResponse{
		ID:          deck.ID,
		Title:       deck.Title,
		Description: deck.Description,
		OwnerID:     deck.OwnerID,
		CreatedAt:   deck.CreatedAt,
		UpdatedAt:   deck.UpdatedAt,
	}
}

type DeckHandler struct {
	Store *store.Store
}

func NewDeckHandler(s *store.Store) *DeckHandler {
	return &DeckHandler{Store: s}
}

func (h *DeckHandler) CreateDeck(ctx *gin.Context) {
	var body CreateDeckRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ownerID, err := utils.CurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	deck := models.Deck{
		Title:       body.Title,
		Description: body.Description,
		OwnerID:     ownerID,
	}

	if err := h.Store.CreateDeck(ctx.Request.Context(), &deck); err != nil {
		logger.Errorf("Failed to create deck: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deck"})
		return
	}

	BroadcastRefresh(ownerID)

	ctx.JSON(http.StatusCreated, toDeckResponse(deck))
}

func (h *DeckHandler) ListDecks(ctx *gin.Context) {
	ownerID, err := utils.CurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	decks, err := h.Store.ListDecks(ctx.Request.Context(), ownerID)

	if err != nil {
		logger.Errorf("Failed to list decks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve decks"})
		return
	}

	response := make([]DeckResponse, 0, len(decks))

	for _, deck := range decks {
		response = append(response, toDeckResponse(deck))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *DeckHandler) GetDeck(ctx *gin.Context) {
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

	deck, err := h.Store.GetDeck(ctx.Request.Context(), ownerID, deckID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		} else {
			logger.Errorf("Failed to fetch deck %d: %v", deckID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deck"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toDeckResponse(deck))
}

func (h *DeckHandler) UpdateDeck(ctx *gin.Context) {
	ownerID, err := utils.CurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var body UpdateDeckRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	deckID, err := parseIDParam(ctx, "deck_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deck ID"})
		return
	}

	deck, err := h.Store.GetDeck(ctx.Request.Context(), ownerID, deckID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		} else {
			logger.Errorf("Failed to fetch deck %d: %v", deckID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deck"})
		}
		return
	}

	deck.Title = body.Title
	deck.Description = body.Description

	if err := h.Store.UpdateDeck(ctx.Request.Context(), ownerID, &deck); err != nil {
		logger.Errorf("Failed to update deck %d: %v", deckID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update deck"})
		return
	}

	BroadcastRefresh(ownerID)

	ctx.JSON(http.StatusOK, toDeckResponse(deck))
}

func (h *DeckHandler) DeleteDeck(ctx *gin.Context) {
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

	if err := h.Store.DeleteDeck(ctx.Request.Context(), ownerID, deckID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		} else {
			logger.Errorf("Failed to delete deck %d: %v", deckID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete deck"})
		}
		return
	}

	BroadcastRefresh(ownerID)

	ctx.Status(http.StatusNoContent)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)

	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
