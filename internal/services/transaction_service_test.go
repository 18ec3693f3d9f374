package services

import (
	"testing"

	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
	"expensetracker/internal/testutil"

	"github.com/shopspring/decimal"
)

func newExpense(owner, date, category, amount string) *models.Transaction {
	return &models.Transaction{
		Owner:    owner,
		Date:     date,
		Kind:     models.KindExpense,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestInsertTransaction(t *testing.T) {
	t.Run("assigns_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx := newExpense(user.Username, "2024-05-03", "Food", "12.50")
		tx.ID = "caller-supplied"
		testutil.AssertNoError(t, svc.InsertTransaction(tx))

		if tx.ID == "" || tx.ID == "caller-supplied" {
			t.Fatalf("expected generated id, got %q", tx.ID)
		}
		got, err := svc.GetTransaction(user.Username, tx.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "amount", got.Amount, "12.50")
		if got.Owner != user.Username || got.Kind != models.KindExpense {
			t.Errorf("unexpected stored record %+v", got)
		}
	})

	t.Run("ids_are_unique", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			tx := newExpense(user.Username, "2024-05-03", "Food", "1")
			testutil.AssertNoError(t, svc.InsertTransaction(tx))
			if seen[tx.ID] {
				t.Fatalf("duplicate id %s", tx.ID)
			}
			seen[tx.ID] = true
		}
	})

	t.Run("rejects_invalid_records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		zero := newExpense(user.Username, "2024-05-03", "Food", "0")
		testutil.AssertAppError(t, svc.InsertTransaction(zero), "VALIDATION_ERROR")

		noOwner := newExpense("", "2024-05-03", "Food", "1")
		testutil.AssertAppError(t, svc.InsertTransaction(noOwner), "VALIDATION_ERROR")

		badKind := newExpense(user.Username, "2024-05-03", "Food", "1")
		badKind.Kind = "Transfer"
		testutil.AssertAppError(t, svc.InsertTransaction(badKind), "VALIDATION_ERROR")
	})

	t.Run("store_accepts_any_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, svc.InsertTransaction(newExpense(user.Username, "2024-05-03", "Anything", "1")))
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("ordered_by_date_desc", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		for _, d := range []string{"2024-04-20", "2024-05-03", "2024-05-01"} {
			testutil.AssertNoError(t, svc.InsertTransaction(newExpense(user.Username, d, "Food", "1")))
		}

		txs, err := svc.ListTransactions(user.Username)
		testutil.AssertNoError(t, err)
		want := []string{"2024-05-03", "2024-05-01", "2024-04-20"}
		if len(txs) != len(want) {
			t.Fatalf("expected %d transactions, got %d", len(want), len(txs))
		}
		for i, d := range want {
			if txs[i].Date != d {
				t.Errorf("position %d: expected %s, got %s", i, d, txs[i].Date)
			}
		}
	})

	t.Run("empty_is_non_nil", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		txs, err := svc.ListTransactions("nobody")
		testutil.AssertNoError(t, err)
		if txs == nil || len(txs) != 0 {
			t.Errorf("expected empty slice, got %v", txs)
		}
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, alice.Username, models.KindIncome, "Salary", "2024-05-01", "100")
		testutil.CreateTestTransaction(t, db, bob.Username, models.KindExpense, "Food", "2024-05-01", "5")

		txs, err := svc.ListTransactions(alice.Username)
		testutil.AssertNoError(t, err)
		if len(txs) != 1 || txs[0].Owner != alice.Username {
			t.Errorf("expected only alice's transaction, got %+v", txs)
		}
	})

	t.Run("paged", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		for _, d := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
			testutil.CreateTestTransaction(t, db, user.Username, models.KindExpense, "Food", d, "1")
		}

		page, err := svc.ListTransactionsPage(user.Username, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 || page.TotalPages != 2 {
			t.Errorf("expected 3 items over 2 pages, got %d/%d", page.TotalItems, page.TotalPages)
		}
		if len(page.Data) != 1 || page.Data[0].Date != "2024-05-01" {
			t.Errorf("unexpected second page %+v", page.Data)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("full_replace", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		orig := testutil.CreateTestTransaction(t, db, user.Username, models.KindExpense, "Food", "2024-05-03", "12")

		err := svc.UpdateTransaction(&models.Transaction{
			Base:        models.Base{ID: orig.ID},
			Owner:       user.Username,
			Date:        "2024-05-04",
			Kind:        models.KindIncome,
			Category:    "Gift",
			Description: "",
			Amount:      decimal.RequireFromString("40"),
		})
		testutil.AssertNoError(t, err)

		got, err := svc.GetTransaction(user.Username, orig.ID)
		testutil.AssertNoError(t, err)
		if got.Date != "2024-05-04" || got.Kind != models.KindIncome || got.Category != "Gift" || got.Description != "" {
			t.Errorf("fields not replaced: %+v", got)
		}
		testutil.AssertDecimal(t, "amount", got.Amount, "40")
	})

	t.Run("other_owner_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		orig := testutil.CreateTestTransaction(t, db, alice.Username, models.KindExpense, "Food", "2024-05-03", "12")

		upd := newExpense(bob.Username, "2024-05-03", "Food", "99")
		upd.ID = orig.ID
		testutil.AssertAppError(t, svc.UpdateTransaction(upd), "TRANSACTION_NOT_FOUND")

		got, err := svc.GetTransaction(alice.Username, orig.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "amount", got.Amount, "12")
	})

	t.Run("missing_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.AssertAppError(t, svc.UpdateTransaction(newExpense("x", "2024-05-03", "Food", "1")), "VALIDATION_ERROR")
	})
}

func TestDeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)
	alice := testutil.CreateTestUser(t, db)
	bob := testutil.CreateTestUser(t, db)
	tx := testutil.CreateTestTransaction(t, db, alice.Username, models.KindExpense, "Food", "2024-05-03", "12")

	t.Run("other_owner_cannot_delete", func(t *testing.T) {
		testutil.AssertAppError(t, svc.DeleteTransaction(tx.ID, bob.Username), "TRANSACTION_NOT_FOUND")
	})

	t.Run("owner_deletes", func(t *testing.T) {
		testutil.AssertNoError(t, svc.DeleteTransaction(tx.ID, alice.Username))
		_, err := svc.GetTransaction(alice.Username, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("second_delete_is_not_found", func(t *testing.T) {
		testutil.AssertAppError(t, svc.DeleteTransaction(tx.ID, alice.Username), "TRANSACTION_NOT_FOUND")
	})
}
