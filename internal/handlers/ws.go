package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/decklab-dev/decklab/internal/logger"
	"github.com/decklab-dev/decklab/internal/types"
	"github.com/decklab-dev/decklab/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	ownerClients   = make(map[string]map[*websocket.Conn]bool)
	ownerClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BroadcastRefresh tells every open connection of one owner that their deck
// or card data changed, so dashboards can re-fetch.
func BroadcastRefresh(ownerID string) {
	ownerClientsMu.RLock()
	clients, exists := ownerClients[ownerID]
	if !exists || len(clients) == 0 {
		ownerClientsMu.RUnlock()
		return
	}

	// Copy so the lock is not held while writing to sockets
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	ownerClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			logger.Errorf("Failed to set write deadline for broadcast: %v", err)
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":    "refresh",
			"message": "Dashboard data updated",
		})

		if err != nil {
			logger.Errorf("Failed to broadcast refresh to client: %v", err)
			ownerClientsMu.Lock()
			if clients, exists := ownerClients[ownerID]; exists {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(ownerClients, ownerID)
				}
			}
			ownerClientsMu.Unlock()
			conn.Close()
		}
	}
}

// WebSocket upgrades an authenticated request and registers the connection
// under the caller's owner identifier.
func WebSocket(c *gin.Context) {
	ownerID, err := utils.CurrentOwnerID(c)

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins() {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Errorf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Errorf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	ownerClientsMu.Lock()
	if ownerClients[ownerID] == nil {
		ownerClients[ownerID] = make(map[*websocket.Conn]bool)
	}
	ownerClients[ownerID][conn] = true
	ownerClientsMu.Unlock()

	defer func() {
		ownerClientsMu.Lock()

		if clients, exists := ownerClients[ownerID]; exists {
			delete(clients, conn)

			if len(clients) == 0 {
				delete(ownerClients, ownerID)
			}
		}

		ownerClientsMu.Unlock()
		conn.Close()

		logger.Infof("WebSocket connection closed for owner %s", ownerID)
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		logger.Errorf("Failed to set write deadline for welcome message: %v", err)
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":    "connected",
		"message": "WebSocket connection established",
	})

	if err != nil {
		logger.Errorf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	// done lets the ping goroutine exit when the read loop returns; a stopped
	// ticker never closes its channel.
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					logger.Errorf("Failed to set write deadline for owner %s: %v", ownerID, err)
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					logger.Errorf("Ping failed for owner %s: %v", ownerID, err)
					return
				}
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Errorf("Failed to set read deadline for owner %s: %v", ownerID, err)
			break
		}

		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Errorf("WebSocket error for owner %s: %v", ownerID, err)
			}
			break
		}

		if messageType == websocket.TextMessage {
			logger.Infof("Received message from owner %s: %s", ownerID, string(message))
		}
	}
}
