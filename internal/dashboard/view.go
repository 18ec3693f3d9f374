// Package dashboard builds the dashboard view model from an aggregation
// summary and keeps the per-session budget alert state.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"expensetracker/internal/catalog"
	"expensetracker/internal/models"
	"expensetracker/internal/summary"
)

// Chart colors for the income/expense bars.
const (
	IncomeColor  = "#27ae60"
	ExpenseColor = "#eb5757"
)

// AlertMessage is shown when the monthly budget alert fires.
const AlertMessage = "You have exceeded your monthly budget!"

// Card is one summary tile.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// Bar is one column of the income vs expense chart.
type Bar struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Text   string          `json:"text"`
	Color  string          `json:"color"`
}

// Slice is one category of the spending breakdown.
type Slice struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	// Share is the slice's fraction of total expense.
	Share decimal.Decimal `json:"share"`
	Color string          `json:"color"`
}

// Pie is the spending breakdown chart.
type Pie struct {
	Slices []Slice `json:"slices"`
	Empty  bool    `json:"empty"`
}

// BudgetView is the monthly budget card.
type BudgetView struct {
	Set   bool            `json:"set"`
	Limit decimal.Decimal `json:"limit"`
	Spent decimal.Decimal `json:"spent"`
	// Progress is the bar fill in [0, 1].
	Progress     decimal.Decimal `json:"progress"`
	PercentLabel string          `json:"percent_label"`
	SpentLabel   string          `json:"spent_label"`
	// RemainingLabel reads "Left: ..." or "Over: ...", empty when unset.
	RemainingLabel string         `json:"remaining_label"`
	Over           bool           `json:"over"`
	Status         summary.Status `json:"status"`
	StatusColor    string         `json:"status_color"`
}

// Row is one line of the transaction table.
type Row struct {
	ID          string                 `json:"id"`
	Date        string                 `json:"date"`
	Type        models.TransactionKind `json:"type"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount"`
	AmountText  string                 `json:"amount_text"`
}

// View is everything the dashboard renders after a refresh.
type View struct {
	Cards        []Card     `json:"cards"`
	Bars         []Bar      `json:"bars"`
	Pie          Pie        `json:"pie"`
	Budget       BudgetView `json:"budget"`
	Alert        bool       `json:"alert"`
	AlertMessage string     `json:"alert_message,omitempty"`
	Rows         []Row      `json:"transactions"`
}

// Build assembles the view. transactions are rendered as table rows in the
// given order; alert comes from the caller's session.
func Build(f *Formatter, transactions []models.Transaction, s summary.Summary, alert bool) View {
	v := View{
		Cards: []Card{
			{Title: "Total Balance", Value: f.Money(s.Balance)},
			{Title: "Total Income", Value: f.Money(s.TotalIncome), Color: IncomeColor},
			{Title: "Monthly Budget", Value: percentLabel(s)},
			{Title: "Total Expenses", Value: f.Money(s.TotalExpense), Color: ExpenseColor},
		},
		Bars: []Bar{
			{Label: string(models.KindIncome), Amount: s.TotalIncome, Text: f.Whole(s.TotalIncome), Color: IncomeColor},
			{Label: string(models.KindExpense), Amount: s.TotalExpense, Text: f.Whole(s.TotalExpense), Color: ExpenseColor},
		},
		Pie:    buildPie(s),
		Budget: buildBudget(f, s),
		Alert:  alert,
		Rows:   make([]Row, 0, len(transactions)),
	}
	if alert {
		v.AlertMessage = AlertMessage
	}
	for _, tx := range transactions {
		v.Rows = append(v.Rows, Row{
			ID:          tx.ID,
			Date:        tx.Date,
			Type:        tx.Kind,
			Category:    tx.Category,
			Description: tx.Description,
			Amount:      tx.Amount,
			AmountText:  f.Money(tx.Amount),
		})
	}
	return v
}

func buildPie(s summary.Summary) Pie {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	pie := Pie{Slices: make([]Slice, 0, len(names)), Empty: len(names) == 0}
	for _, name := range names {
		amount := s.Categories[name]
		share := decimal.Zero
		if s.TotalExpense.IsPositive() {
			share = amount.Div(s.TotalExpense)
		}
		pie.Slices = append(pie.Slices, Slice{
			Category: name,
			Amount:   amount,
			Share:    share,
			Color:    catalog.Color(name),
		})
	}
	return pie
}

func buildBudget(f *Formatter, s summary.Summary) BudgetView {
	if s.Budget == nil {
		return BudgetView{
			Limit:        decimal.Zero,
			Spent:        s.MonthlyExpense,
			Progress:     decimal.Zero,
			PercentLabel: "N/A",
			SpentLabel:   "No Budget Set",
			Status:       summary.StatusUnset,
			StatusColor:  catalog.StatusColorUnset,
		}
	}

	b := s.Budget
	view := BudgetView{
		Set:          true,
		Limit:        s.Limit,
		Spent:        s.MonthlyExpense,
		Progress:     b.Percent,
		PercentLabel: percentLabel(s),
		SpentLabel:   "Spent: " + f.Whole(s.MonthlyExpense),
		Status:       b.Status,
		StatusColor:  StatusColor(b.Status),
	}
	if b.Overspend.IsPositive() {
		view.Over = true
		view.RemainingLabel = "Over: " + f.Whole(b.Overspend)
	} else {
		view.RemainingLabel = "Left: " + f.Whole(b.Remaining)
	}
	return view
}

// percentLabel truncates the unclamped ratio to a whole percent, so 150%
// overspend reads "150%".
func percentLabel(s summary.Summary) string {
	if s.Budget == nil {
		return "N/A"
	}
	return s.Budget.Ratio.Mul(decimal.NewFromInt(100)).Truncate(0).String() + "%"
}

// StatusColor maps a budget status to its display color.
func StatusColor(status summary.Status) string {
	switch status {
	case summary.StatusOK:
		return catalog.StatusColorOK
	case summary.StatusWarning:
		return catalog.StatusColorWarning
	case summary.StatusCritical:
		return catalog.StatusColorCritical
	default:
		return catalog.StatusColorUnset
	}
}
