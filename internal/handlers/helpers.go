package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/ids"
	"expensetracker/internal/middleware"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// getUsername extracts the authenticated username from the Gin context.
// Returns ErrUnauthorized if not present.
func getUsername(c *gin.Context) (string, error) {
	username := c.GetString(middleware.ContextUsername)
	if username == "" {
		return "", apperrors.ErrUnauthorized
	}
	return username, nil
}

// getSession returns the session id and token expiry set by AuthMiddleware.
func getSession(c *gin.Context) (string, time.Time) {
	return c.GetString(middleware.ContextSessionID), c.GetTime(middleware.ContextSessionExpiry)
}

// parseTransactionID normalizes the :id path parameter.
func parseTransactionID(c *gin.Context) (string, error) {
	id, err := ids.Normalize(c.Param("id"))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid transaction id")
	}
	return id, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.RespondError(c, err)
}
