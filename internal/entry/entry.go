// Package entry validates user-entered transaction fields before they reach
// the store.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/validator"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength bounds the free-text description.
const MaxDescriptionLength = 500

// dateLayouts are tried in order; the first that parses wins.
var dateLayouts = []string{
	models.DateLayout,
	"2006/01/02",
	"02-01-2006",
	time.RFC3339,
}

var validate = validator.New()

// Intent says whether an entry creates a transaction or edits an existing one.
type Intent struct {
	id string
}

// New is the intent for a transaction that does not exist yet.
func New() Intent {
	return Intent{}
}

// Edit is the intent for replacing the transaction with the given id.
func Edit(id string) Intent {
	return Intent{id: id}
}

// IsEdit reports whether the intent targets an existing transaction.
func (i Intent) IsEdit() bool {
	return i.id != ""
}

// ID returns the target id, empty for New.
func (i Intent) ID() string {
	return i.id
}

// Input holds the raw entry fields as typed by the user.
type Input struct {
	Date        string `json:"date" validate:"required"`
	Kind        string `json:"type" validate:"required,txn_kind"`
	Category    string `json:"category" validate:"required,category_for_kind"`
	Description string `json:"description" validate:"max=500"`
	Amount      string `json:"amount" validate:"required"`
}

// Validate checks in and returns a record ready for the store. The record has
// no owner; for Edit it carries the target id, for New the id is empty.
// Failures are VALIDATION_ERROR app errors naming the offending field.
func Validate(intent Intent, in Input) (*models.Transaction, error) {
	in.Date = strings.TrimSpace(in.Date)
	in.Kind = strings.TrimSpace(in.Kind)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = normalizeNewlines(strings.TrimSpace(in.Description))
	in.Amount = strings.TrimSpace(in.Amount)

	if err := validate.Struct(in); err != nil {
		return nil, fieldError(err)
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, err.Error())
	}
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, err.Error())
	}

	return &models.Transaction{
		Base:        models.Base{ID: intent.ID()},
		Date:        date,
		Kind:        models.TransactionKind(in.Kind),
		Category:    in.Category,
		Description: in.Description,
		Amount:      amount,
	}, nil
}

// ParseDate parses s in any accepted layout and returns it as YYYY-MM-DD.
func ParseDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(models.DateLayout), nil
		}
	}
	return "", fmt.Errorf("date %q is not a valid calendar date (use YYYY-MM-DD)", s)
}

// ParseAmount parses s as a decimal strictly greater than zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a number", s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.New("amount must be greater than 0")
	}
	return amount, nil
}

// normalizeNewlines stores line breaks as \n so descriptions survive a CSV
// round trip unchanged.
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

func fieldError(err error) error {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Wrap(apperrors.ErrValidation, err)
	}
	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", fe.Field())
	case "txn_kind":
		msg = fmt.Sprintf("type must be %s or %s", models.KindIncome, models.KindExpense)
	case "category_for_kind":
		msg = fmt.Sprintf("category %q is not allowed for this type", fe.Value())
	case "max":
		msg = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		msg = fmt.Sprintf("%s is invalid", fe.Field())
	}
	return apperrors.WithMessage(apperrors.ErrValidation, msg)
}
