package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
)

// listOrder puts the newest dates first; same-day rows keep insertion order, newest first.
const listOrder = "date DESC, created_at DESC"

// transactionService handles transaction storage for one owner at a time.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions returns every transaction of owner, newest date first.
func (s *transactionService) ListTransactions(owner string) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := s.db.Where("username = ?", owner).Order(listOrder).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return transactions, nil
}

// ListTransactionsPage returns one page of owner's transactions in list order.
func (s *transactionService) ListTransactionsPage(owner string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	var total int64
	query := s.db.Model(&models.Transaction{}).Where("username = ?", owner).Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	var transactions []models.Transaction
	if err := query.Order(listOrder).Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	resp := pagination.NewPageResponse(transactions, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetTransaction retrieves one transaction of owner by id.
func (s *transactionService) GetTransaction(owner, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.Where("id = ? AND username = ?", id, owner).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &tx, nil
}

// InsertTransaction stores tx under a freshly generated id, which is written
// back into tx.
func (s *transactionService) InsertTransaction(tx *models.Transaction) error {
	if err := checkRecord(tx); err != nil {
		return err
	}
	tx.ID = ""
	if err := s.db.Create(tx).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// UpdateTransaction replaces every field except id and owner of the row
// matching tx.ID and tx.Owner.
func (s *transactionService) UpdateTransaction(tx *models.Transaction) error {
	if tx.ID == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "transaction id is required")
	}
	if err := checkRecord(tx); err != nil {
		return err
	}

	result := s.db.Model(&models.Transaction{}).
		Where("id = ? AND username = ?", tx.ID, tx.Owner).
		Updates(map[string]any{
			"date":        tx.Date,
			"type":        tx.Kind,
			"category":    tx.Category,
			"description": tx.Description,
			"amount":      tx.Amount,
		})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// DeleteTransaction removes the row matching id and owner.
func (s *transactionService) DeleteTransaction(id, owner string) error {
	result := s.db.Where("id = ? AND username = ?", id, owner).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func checkRecord(tx *models.Transaction) error {
	switch {
	case tx.Owner == "":
		return apperrors.WithMessage(apperrors.ErrValidation, "transaction owner is required")
	case !tx.Kind.Valid():
		return apperrors.WithMessage(apperrors.ErrValidation, "transaction type must be Income or Expense")
	case !tx.Amount.IsPositive():
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than 0")
	}
	return nil
}
