package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/catalog"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
)

// CategoryHandler serves the fixed category catalog
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryResponse is one selectable category
type CategoryResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// GetCategories returns the categories allowed per transaction type
// @Summary     List categories
// @Description Categories allowed for each transaction type, with chart colors
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string false "Income or Expense"
// @Success     200 {object} map[string][]CategoryResponse
// @Failure     400 {object} ErrorResponse "Invalid kind"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	kinds := []models.TransactionKind{models.KindIncome, models.KindExpense}
	if raw := c.Query("kind"); raw != "" {
		kind := models.TransactionKind(raw)
		if !kind.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be Income or Expense"))
			return
		}
		kinds = []models.TransactionKind{kind}
	}

	resp := make(map[string][]CategoryResponse, len(kinds))
	for _, kind := range kinds {
		names := catalog.ForKind(kind)
		items := make([]CategoryResponse, 0, len(names))
		for _, name := range names {
			items = append(items, CategoryResponse{Name: name, Color: catalog.Color(name)})
		}
		resp[string(kind)] = items
	}
	c.JSON(http.StatusOK, resp)
}
