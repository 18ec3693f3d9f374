package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
)

// budgetService reads and writes the monthly budget stored on the user row.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetBudget returns owner's monthly budget, or zero when unset or when the
// user does not exist.
func (s *budgetService) GetBudget(owner string) (decimal.Decimal, error) {
	var user models.User
	err := s.db.Select("username", "budget").Where("username = ?", owner).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return user.MonthlyBudget, nil
}

// SetBudget stores amount as owner's monthly budget. Zero clears it.
func (s *budgetService) SetBudget(owner string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrValidation, "budget must not be negative")
	}

	result := s.db.Model(&models.User{}).Where("username = ?", owner).Update("budget", amount)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
