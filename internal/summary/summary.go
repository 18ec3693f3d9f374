// Package summary turns a user's transactions into the totals, monthly budget
// figures and category breakdown shown on the dashboard. Everything here is
// pure: no I/O, no shared state, safe for concurrent use.
package summary

import (
	"strings"
	"time"

	"expensetracker/internal/models"

	"github.com/shopspring/decimal"
)

// Status classifies monthly spending against the budget.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusUnset    Status = "unset"
)

var (
	warningRatio  = decimal.RequireFromString("0.75")
	criticalRatio = decimal.RequireFromString("0.9")
)

// Budget holds the figures derived from a positive monthly budget.
type Budget struct {
	// Ratio is MonthlyExpense / budget, not clamped.
	Ratio decimal.Decimal
	// Percent is Ratio clamped into [0, 1] for progress bars.
	Percent   decimal.Decimal
	Status    Status
	Remaining decimal.Decimal
	Overspend decimal.Decimal
	Exceeded  bool
}

// Summary is the result of Compute.
type Summary struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Balance        decimal.Decimal
	MonthlyExpense decimal.Decimal
	// Limit is the budget Compute was called with.
	Limit decimal.Decimal
	// Budget is nil when no positive budget is set.
	Budget *Budget
	// Categories sums expense amounts per category over the whole history.
	Categories map[string]decimal.Decimal
}

// Status reports the budget status, or StatusUnset when there is no budget.
func (s Summary) Status() Status {
	if s.Budget == nil {
		return StatusUnset
	}
	return s.Budget.Status
}

// Compute aggregates transactions. MonthlyExpense covers expenses whose date
// falls in the calendar month of reference, compared as YYYY-MM text.
func Compute(transactions []models.Transaction, budget decimal.Decimal, reference time.Time) Summary {
	s := Summary{
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		MonthlyExpense: decimal.Zero,
		Limit:          budget,
		Categories:     make(map[string]decimal.Decimal),
	}
	month := reference.Format("2006-01")

	for _, tx := range transactions {
		switch tx.Kind {
		case models.KindIncome:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case models.KindExpense:
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
			s.Categories[tx.Category] = s.Categories[tx.Category].Add(tx.Amount)
			if strings.HasPrefix(tx.Date, month) {
				s.MonthlyExpense = s.MonthlyExpense.Add(tx.Amount)
			}
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	if budget.IsPositive() {
		s.Budget = computeBudget(s.MonthlyExpense, budget)
	}
	return s
}

func computeBudget(spent, budget decimal.Decimal) *Budget {
	ratio := spent.Div(budget)
	b := &Budget{
		Ratio:     ratio,
		Percent:   decimal.Min(decimal.Max(ratio, decimal.Zero), decimal.NewFromInt(1)),
		Remaining: decimal.Zero,
		Overspend: decimal.Zero,
		Exceeded:  spent.GreaterThanOrEqual(budget),
	}

	// Thresholds compare against exact products; ratio is rounded.
	switch {
	case spent.LessThan(budget.Mul(warningRatio)):
		b.Status = StatusOK
	case spent.LessThan(budget.Mul(criticalRatio)):
		b.Status = StatusWarning
	default:
		b.Status = StatusCritical
	}

	if left := budget.Sub(spent); left.IsNegative() {
		b.Overspend = left.Abs()
	} else {
		b.Remaining = left
	}
	return b
}

// NextAlert decides whether a budget-exceeded alert fires for s given the
// caller's armed flag, and returns the flag to keep for the next evaluation.
// An alert fires once per crossing: it disarms after firing and re-arms only
// when monthly spending drops back below the budget.
func NextAlert(armed bool, s Summary) (fire, armedAfter bool) {
	armedAfter = armed
	if armed && s.Limit.IsPositive() && s.MonthlyExpense.GreaterThanOrEqual(s.Limit) {
		fire = true
		armedAfter = false
	}
	if s.MonthlyExpense.LessThan(s.Limit) {
		armedAfter = true
	}
	return fire, armedAfter
}
