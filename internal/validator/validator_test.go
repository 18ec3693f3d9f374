package validator

import (
	"testing"
)

type entryForm struct {
	Kind     string `json:"type" validate:"required,txn_kind"`
	Category string `json:"category" validate:"required,category_for_kind"`
}

func TestRules(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		form    entryForm
		wantErr bool
	}{
		{"expense category", entryForm{Kind: "Expense", Category: "Food"}, false},
		{"income category", entryForm{Kind: "Income", Category: "Salary"}, false},
		{"other allowed for both", entryForm{Kind: "Income", Category: "Other"}, false},
		{"stale category", entryForm{Kind: "Income", Category: "Food"}, true},
		{"unknown kind", entryForm{Kind: "Transfer", Category: "Food"}, true},
		{"lowercase kind", entryForm{Kind: "expense", Category: "Food"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	// Registering on the gin engine twice must not panic.
	Register()
	Register()
}
