// Package handlers adapts HTTP requests to domain operations. Handlers stay
// thin: bind the payload, run the operation through the aggregate service,
// translate domain errors to statuses.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/obradorhq/obrador/internal/domain/ledger"
)

// UserIDKey is the gin context key the auth middleware stores the
// authenticated user ID under.
const UserIDKey = "userID"

func currentUser(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// respondError maps domain errors onto the HTTP surface. Validation failures
// carry their message through; store failures stay generic.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrInsufficientStock),
		errors.Is(err, ledger.ErrDuplicateName),
		errors.Is(err, ledger.ErrOrphanedReversal):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("operation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save changes"})
	}
}
