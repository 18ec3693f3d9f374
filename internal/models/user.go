package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User owns a namespace of transactions and a monthly budget.
type User struct {
	Username      string          `gorm:"type:varchar(255);primaryKey" json:"username"`
	PasswordHash  string          `gorm:"column:password_hash;not null" json:"-"`
	MonthlyBudget decimal.Decimal `gorm:"column:budget;type:numeric;not null;default:0" json:"monthly_budget"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:Owner;references:Username" json:"transactions,omitempty"`
}
