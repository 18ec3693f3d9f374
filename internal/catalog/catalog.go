// Package catalog holds the fixed category sets per transaction kind and the
// display colors used by the dashboard.
package catalog

import (
	"slices"

	"expensetracker/internal/models"
)

var (
	expenseCategories = []string{"Food", "Transport", "Entertainment", "Shopping", "Bills", "Other"}
	incomeCategories  = []string{"Salary", "Gift", "Freelance", "Other"}
)

// DefaultColor is used for categories without an assigned color.
const DefaultColor = "#B0BEC5"

var categoryColors = map[string]string{
	"Food":          "#FF6B6B",
	"Transport":     "#4ECDC4",
	"Entertainment": "#FFA94D",
	"Shopping":      "#9B5DE5",
	"Bills":         "#F9C74F",
	"Other":         "#A0AEC0",
	"Salary":        "#2EC4B6",
	"Gift":          "#70E000",
	"Freelance":     "#3A86FF",
}

// ForKind returns the categories allowed for kind, or nil for an unknown kind.
// The returned slice is a copy.
func ForKind(kind models.TransactionKind) []string {
	switch kind {
	case models.KindExpense:
		return slices.Clone(expenseCategories)
	case models.KindIncome:
		return slices.Clone(incomeCategories)
	default:
		return nil
	}
}

// Allows reports whether category belongs to the set for kind.
func Allows(kind models.TransactionKind, category string) bool {
	switch kind {
	case models.KindExpense:
		return slices.Contains(expenseCategories, category)
	case models.KindIncome:
		return slices.Contains(incomeCategories, category)
	default:
		return false
	}
}

// Color returns the display color for a category name. Unknown names,
// including the empty string, get DefaultColor.
func Color(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return DefaultColor
}

// Budget status colors.
const (
	StatusColorOK       = "#3B8ED0"
	StatusColorWarning  = "#FFA94D"
	StatusColorCritical = "#ef5350"
	StatusColorUnset    = "#808080"
)
