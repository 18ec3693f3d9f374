package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/dashboard"
)

// DashboardHandler renders the dashboard for the current session
type DashboardHandler struct {
	alerts    *BudgetAlerts
	formatter *dashboard.Formatter
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(alerts *BudgetAlerts, formatter *dashboard.Formatter) *DashboardHandler {
	return &DashboardHandler{
		alerts:    alerts,
		formatter: formatter,
	}
}

// GetDashboard recomputes the summary and returns the dashboard view
// @Summary     Dashboard
// @Description Totals, charts, budget status and table rows. alert is true once per budget crossing per session.
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dashboard.View
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, sum, alert, err := h.alerts.refresh(c, username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard.Build(h.formatter, transactions, sum, alert))
}
