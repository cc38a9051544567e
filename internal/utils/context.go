package utils

import (
	"fmt"

	"github.com/decklab-dev/decklab/internal/types"
	"github.com/gin-gonic/gin"
)

// CurrentOwnerID returns the owner identifier placed in the context by the
// auth middleware.
func CurrentOwnerID(ctx *gin.Context) (string, error) {
	owner, exists := ctx.Get(types.ContextOwnerKey)

	if !exists {
		return "", fmt.Errorf("no authenticated owner in context")
	}

	ownerID, ok := owner.(string)

	if !ok || ownerID == "" {
		return "", fmt.Errorf("invalid owner identifier in context")
	}

	return ownerID, nil
}
