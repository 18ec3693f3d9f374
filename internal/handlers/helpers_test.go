package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"expensetracker/internal/config"
	"expensetracker/internal/dashboard"
	"expensetracker/internal/logger"
	"expensetracker/internal/middleware"
	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
	"expensetracker/internal/services"
	"expensetracker/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	registerUserFn func(username, password string) (*models.User, error)
	authenticateFn func(username, password string) bool
	userExistsFn   func(username string) bool
	getUserFn      func(username string) (*models.User, error)
}

var _ services.UserServicer = (*mockUserService)(nil)

func (m *mockUserService) RegisterUser(username, password string) (*models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(username, password)
	}
	return &models.User{Username: username}, nil
}

func (m *mockUserService) Authenticate(username, password string) bool {
	if m.authenticateFn != nil {
		return m.authenticateFn(username, password)
	}
	return true
}

func (m *mockUserService) UserExists(username string) bool {
	if m.userExistsFn != nil {
		return m.userExistsFn(username)
	}
	return true
}

func (m *mockUserService) GetUser(username string) (*models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(username)
	}
	return &models.User{Username: username}, nil
}

type mockTransactionService struct {
	listFn     func(owner string) ([]models.Transaction, error)
	listPageFn func(owner string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	getFn      func(owner, id string) (*models.Transaction, error)
	insertFn   func(tx *models.Transaction) error
	updateFn   func(tx *models.Transaction) error
	deleteFn   func(id, owner string) error
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func (m *mockTransactionService) ListTransactions(owner string) ([]models.Transaction, error) {
	if m.listFn != nil {
		return m.listFn(owner)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactionsPage(owner string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listPageFn != nil {
		return m.listPageFn(owner, page)
	}
	resp := pagination.NewPageResponse[models.Transaction](nil, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransaction(owner, id string) (*models.Transaction, error) {
	if m.getFn != nil {
		return m.getFn(owner, id)
	}
	return &models.Transaction{Base: models.Base{ID: id}, Owner: owner}, nil
}

func (m *mockTransactionService) InsertTransaction(tx *models.Transaction) error {
	if m.insertFn != nil {
		return m.insertFn(tx)
	}
	tx.ID = testTxID
	return nil
}

func (m *mockTransactionService) UpdateTransaction(tx *models.Transaction) error {
	if m.updateFn != nil {
		return m.updateFn(tx)
	}
	return nil
}

func (m *mockTransactionService) DeleteTransaction(id, owner string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id, owner)
	}
	return nil
}

type mockBudgetService struct {
	getBudgetFn func(owner string) (decimal.Decimal, error)
	setBudgetFn func(owner string, amount decimal.Decimal) error
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func (m *mockBudgetService) GetBudget(owner string) (decimal.Decimal, error) {
	if m.getBudgetFn != nil {
		return m.getBudgetFn(owner)
	}
	return decimal.Zero, nil
}

func (m *mockBudgetService) SetBudget(owner string, amount decimal.Decimal) error {
	if m.setBudgetFn != nil {
		return m.setBudgetFn(owner, amount)
	}
	return nil
}

type auditCall struct {
	username, action, resourceType, resourceID string
}

type mockAuditService struct {
	calls []auditCall
}

var _ services.AuditServicer = (*mockAuditService)(nil)

func (m *mockAuditService) Log(username, action, resourceType, resourceID, _ string, _ map[string]any) {
	m.calls = append(m.calls, auditCall{username, action, resourceType, resourceID})
}

// --- test helpers ---

const (
	testUsername  = "alice"
	testSessionID = "0190b6a2-7f3c-7e3a-9b1d-2f6c1a4e5d6f"
	testTxID      = "0190b6a2-7f3c-7e3a-9b1d-aaaaaaaaaaaa"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
	validator.Register()
}

func testIssuer() *middleware.TokenIssuer {
	return middleware.NewTokenIssuer(&config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationDur:   time.Hour,
		RememberMeDuration: 30 * 24 * time.Hour,
	})
}

// testNow is the reference time for budget alerts in handler tests.
var testNow = time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

func testAlerts(txSvc services.TransactionServicer, budgetSvc services.BudgetServicer) *BudgetAlerts {
	alerts := NewBudgetAlerts(txSvc, budgetSvc, dashboard.NewRegistry())
	alerts.now = func() time.Time { return testNow }
	return alerts
}

// injectSession stands in for AuthMiddleware.
func injectSession(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUsername, username)
		c.Set(middleware.ContextSessionID, testSessionID)
		c.Set(middleware.ContextSessionExpiry, time.Now().Add(time.Hour))
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

var errTest = errors.New("database is locked")
