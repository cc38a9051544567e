package handlers

import (
	"net/http"

	"github.com/decklab-dev/decklab/internal/logger"
	"github.com/decklab-dev/decklab/internal/models"
	"github.com/decklab-dev/decklab/internal/store"
	"github.com/decklab-dev/decklab/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// RecentDeckLimit is how many decks the dashboard shows.
const RecentDeckLimit = 5

type DashboardResponse struct {
	TotalDecks  int64          `json:"total_decks"`
	TotalCards  int64          `json:"total_cards"`
	RecentDecks []DeckResponse `json:"recent_decks"`
}

type DashboardHandler struct {
	Store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{Store: s}
}

// GetDashboard answers the three owner-scoped aggregates. The reads are
// independent and touch no mutable state, so they fan out concurrently on
// the request context.
func (h *DashboardHandler) GetDashboard(ctx *gin.Context) {
	ownerID, err := utils.CurrentOwnerID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var (
		totalDecks int64
		totalCards int64
		recent     []models.Deck
	)

	g, gctx := errgroup.WithContext(ctx.Request.Context())

	g.Go(func() error {
		var err error
		totalDecks, err = h.Store.CountDecks(gctx, ownerID)
		return err
	})

	g.Go(func() error {
		var err error
		totalCards, err = h.Store.CountCards(gctx, ownerID)
		return err
	})

	g.Go(func() error {
		var err error
		recent, err = h.Store.RecentDecks(gctx, ownerID, RecentDeckLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("Failed to build dashboard: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		return
	}

	recentDecks := make([]DeckResponse, 0, len(recent))

	for _, deck := range recent {
		recentDecks = append(recentDecks, toDeckResponse(deck))
	}

	ctx.JSON(http.StatusOK, DashboardResponse{
		TotalDecks:  totalDecks,
		TotalCards:  totalCards,
		RecentDecks: recentDecks,
	})
}
