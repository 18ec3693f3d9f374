package services

import (
	"testing"

	"expensetracker/internal/models"
	"expensetracker/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log("alice", ActionDeleteTransaction, "transaction", "tx-1", "127.0.0.1", map[string]any{"amount": "12.5"})
	svc.Log("alice", ActionSetBudget, "budget", "", "127.0.0.1", nil)

	var entries []models.AuditLog
	if err := db.Order("created_at ASC").Find(&entries).Error; err != nil {
		t.Fatalf("query audit logs: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(entries))
	}
	if entries[0].Action != ActionDeleteTransaction || entries[0].ResourceID != "tx-1" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[0].Changes != `{"amount":"12.5"}` {
		t.Errorf("unexpected changes %q", entries[0].Changes)
	}
	if entries[1].Changes != "" {
		t.Errorf("expected empty changes, got %q", entries[1].Changes)
	}
}
