package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
	alerts        *BudgetAlerts
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer, alerts *BudgetAlerts) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService, alerts: alerts}
}

// SetBudgetRequest represents the request payload for setting the monthly budget.
// Zero clears the budget.
type SetBudgetRequest struct {
	Amount json.Number `json:"amount" binding:"required" swaggertype:"string"`
}

// BudgetResponse is the stored monthly budget. After a change it also
// carries the budget alert raised by the new limit.
type BudgetResponse struct {
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	Set           bool            `json:"set"`
	AlertStatus
}

// GetBudget returns the monthly budget.
// @Summary     Get monthly budget
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} BudgetResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	amount, err := h.budgetService.GetBudget(username)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, BudgetResponse{MonthlyBudget: amount, Set: amount.IsPositive()})
}

// SetBudget stores the monthly budget.
// @Summary     Set monthly budget
// @Description Set the monthly spending limit; 0 clears it
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetBudgetRequest true "Budget amount"
// @Success     200 {object} BudgetResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /budget [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "budget must be a number"))
		return
	}

	if err := h.budgetService.SetBudget(username, amount); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(username, services.ActionSetBudget, "budget", "", c.ClientIP(),
		map[string]any{"amount": amount.String()})
	c.JSON(http.StatusOK, BudgetResponse{
		MonthlyBudget: amount,
		Set:           amount.IsPositive(),
		AlertStatus:   h.alerts.afterChange(c, username),
	})
}
