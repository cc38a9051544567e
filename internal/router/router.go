package router

import (
	"time"

	"github.com/decklab-dev/decklab/internal/handlers"
	"github.com/decklab-dev/decklab/internal/middleware"
	"github.com/decklab-dev/decklab/internal/store"
	"github.com/decklab-dev/decklab/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(s *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	deckHandler := handlers.NewDeckHandler(s)
	cardHandler := handlers.NewCardHandler(s)
	dashboardHandler := handlers.NewDashboardHandler(s)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocket)
		api.GET("/dashboard", middleware.AuthMiddleware(), dashboardHandler.GetDashboard)

		decks := api.Group("/decks", middleware.AuthMiddleware())
		{
			decks.POST("", deckHandler.CreateDeck)
			decks.GET("", deckHandler.ListDecks)
			decks.GET("/:deck_id", deckHandler.GetDeck)
			decks.PATCH("/:deck_id", deckHandler.UpdateDeck)
			decks.DELETE("/:deck_id", deckHandler.DeleteDeck)

			// Card endpoints
			decks.POST("/:deck_id/cards", cardHandler.CreateCard)
			decks.GET("/:deck_id/cards", cardHandler.ListCards)
			decks.GET("/:deck_id/cards/:card_id", cardHandler.GetCard)
			decks.PUT("/:deck_id/cards/:card_id", cardHandler.UpdateCard)
			decks.DELETE("/:deck_id/cards/:card_id", cardHandler.DeleteCard)
		}
	}

	return r
}
