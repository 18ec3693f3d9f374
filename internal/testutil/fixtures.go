package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"expensetracker/internal/models"
	"expensetracker/internal/password"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique username and TestPassword.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, _ := password.SHA256{}.Hash(TestPassword)
	user := &models.User{
		Username:      username,
		PasswordHash:  hash,
		MonthlyBudget: decimal.Zero,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction for owner. amount is decimal text.
func CreateTestTransaction(t *testing.T, db *gorm.DB, owner string, kind models.TransactionKind, category, date, amount string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Owner:       owner,
		Date:        date,
		Kind:        kind,
		Category:    category,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Amount:      decimal.RequireFromString(amount),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// SetTestBudget stores a monthly budget for username.
func SetTestBudget(t *testing.T, db *gorm.DB, username, amount string) {
	t.Helper()

	err := db.Model(&models.User{}).Where("username = ?", username).
		Update("budget", decimal.RequireFromString(amount)).Error
	if err != nil {
		t.Fatalf("failed to set test budget: %v", err)
	}
}
