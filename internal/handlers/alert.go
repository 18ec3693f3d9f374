package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/dashboard"
	"expensetracker/internal/logger"
	"expensetracker/internal/models"
	"expensetracker/internal/services"
	"expensetracker/internal/summary"
)

// AlertStatus reports whether the budget alert fired on this request.
type AlertStatus struct {
	Alert        bool   `json:"alert"`
	AlertMessage string `json:"alert_message,omitempty"`
}

func newAlertStatus(fired bool) AlertStatus {
	if !fired {
		return AlertStatus{}
	}
	return AlertStatus{Alert: true, AlertMessage: dashboard.AlertMessage}
}

// BudgetAlerts recomputes the user's summary and runs the budget alert for
// the calling session. It runs on the dashboard read and after every
// transaction or budget change.
type BudgetAlerts struct {
	transactionService services.TransactionServicer
	budgetService      services.BudgetServicer
	sessions           *dashboard.Registry
	now                func() time.Time
}

// NewBudgetAlerts creates a new BudgetAlerts
func NewBudgetAlerts(transactionService services.TransactionServicer, budgetService services.BudgetServicer, sessions *dashboard.Registry) *BudgetAlerts {
	return &BudgetAlerts{
		transactionService: transactionService,
		budgetService:      budgetService,
		sessions:           sessions,
		now:                time.Now,
	}
}

// refresh loads the user's transactions and budget, computes the summary and
// evaluates the alert for the session in c.
func (a *BudgetAlerts) refresh(c *gin.Context, username string) ([]models.Transaction, summary.Summary, bool, error) {
	transactions, err := a.transactionService.ListTransactions(username)
	if err != nil {
		return nil, summary.Summary{}, false, err
	}
	budget, err := a.budgetService.GetBudget(username)
	if err != nil {
		return nil, summary.Summary{}, false, err
	}

	sum := summary.Compute(transactions, budget, a.now())
	sessionID, _ := getSession(c)
	fired := a.sessions.EvaluateAlert(sessionID, username, sum)
	return transactions, sum, fired, nil
}

// afterChange runs refresh once a change has been stored. The change already
// succeeded, so a failure here is logged and reported as no alert.
func (a *BudgetAlerts) afterChange(c *gin.Context, username string) AlertStatus {
	_, _, fired, err := a.refresh(c, username)
	if err != nil {
		logger.Get().Errorw("budget alert refresh failed", "username", username, "error", err)
		return AlertStatus{}
	}
	if fired {
		logger.Get().Infow("budget alert fired", "username", username)
	}
	return newAlertStatus(fired)
}
