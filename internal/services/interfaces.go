package services

import (
	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
)

// UserServicer defines the contract for registration and credential checks.
type UserServicer interface {
	RegisterUser(username, password string) (*models.User, error)
	Authenticate(username, password string) bool
	UserExists(username string) bool
	GetUser(username string) (*models.User, error)
}

// TransactionServicer defines the contract for per-owner transaction storage.
type TransactionServicer interface {
	ListTransactions(owner string) ([]models.Transaction, error)
	ListTransactionsPage(owner string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransaction(owner, id string) (*models.Transaction, error)
	InsertTransaction(tx *models.Transaction) error
	UpdateTransaction(tx *models.Transaction) error
	DeleteTransaction(id, owner string) error
}

// BudgetServicer defines the contract for the per-user monthly budget.
type BudgetServicer interface {
	GetBudget(owner string) (decimal.Decimal, error)
	SetBudget(owner string, amount decimal.Decimal) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(username, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
