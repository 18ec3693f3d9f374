package models

import (
	"github.com/shopspring/decimal"
)

// TransactionKind carries the direction of a transaction. Amounts are always
// positive; the kind decides whether they count as income or expense.
type TransactionKind string

const (
	KindIncome  TransactionKind = "Income"
	KindExpense TransactionKind = "Expense"
)

// Valid reports whether k is one of the known kinds.
func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// DateLayout is the canonical textual form of a transaction date.
const DateLayout = "2006-01-02"

// Transaction is a dated income or expense owned by one user.
type Transaction struct {
	Base
	Owner       string          `gorm:"column:username;type:varchar(255);not null;index" json:"-"`
	Date        string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Kind        TransactionKind `gorm:"column:type;type:varchar(16);not null" json:"type"`
	Category    string          `gorm:"not null;default:''" json:"category"`
	Description string          `gorm:"not null;default:''" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
}
