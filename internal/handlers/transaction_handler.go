package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/entry"
	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/export"
	"expensetracker/internal/logger"
	"expensetracker/internal/models"
	"expensetracker/internal/pagination"
	"expensetracker/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
	alerts             *BudgetAlerts
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer, alerts *BudgetAlerts) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		auditService:       auditService,
		alerts:             alerts,
	}
}

// TransactionRequest represents the create/update payload. Amount accepts a
// JSON number or a numeric string.
type TransactionRequest struct {
	Date        string      `json:"date"`
	Type        string      `json:"type"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount" swaggertype:"string"`
}

// TransactionResponse is a stored transaction plus the budget alert raised
// by the change.
type TransactionResponse struct {
	*models.Transaction
	AlertStatus
}

// DeleteResponse confirms a deletion and carries the budget alert state.
type DeleteResponse struct {
	Message string `json:"message"`
	AlertStatus
}

func (r TransactionRequest) input() entry.Input {
	return entry.Input{
		Date:        r.Date,
		Kind:        r.Type,
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount.String(),
	}
}

// GetTransactions lists the user's transactions
// @Summary     List transactions
// @Description All transactions, newest date first. Supplying page or page_size returns one page.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if page.Requested() {
		resp, err := h.transactionService.ListTransactionsPage(username, page)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	transactions, err := h.transactionService.ListTransactions(username)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagination.NewPageResponse(transactions, 1, len(transactions), int64(len(transactions))))
}

// CreateTransaction handles the creation of a transaction
// @Summary     Create transaction
// @Description Validate and store a new income or expense
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction data"
// @Success     201 {object} TransactionResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := entry.Validate(entry.New(), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}
	tx.Owner = username

	if err := h.transactionService.InsertTransaction(tx); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(username, services.ActionCreateTransaction, "transaction", tx.ID, c.ClientIP(),
		map[string]any{"type": tx.Kind, "category": tx.Category, "amount": tx.Amount.String()})
	c.JSON(http.StatusCreated, TransactionResponse{Transaction: tx, AlertStatus: h.alerts.afterChange(c, username)})
}

// GetTransaction returns one transaction
// @Summary     Get transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parseTransactionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransaction(username, id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// UpdateTransaction replaces a transaction
// @Summary     Update transaction
// @Description Replace every field of a transaction except its id
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction data"
// @Success     200 {object} TransactionResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parseTransactionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := entry.Validate(entry.Edit(id), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}
	tx.Owner = username

	if err := h.transactionService.UpdateTransaction(tx); err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.transactionService.GetTransaction(username, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(username, services.ActionUpdateTransaction, "transaction", id, c.ClientIP(),
		map[string]any{"type": tx.Kind, "category": tx.Category, "amount": tx.Amount.String()})
	c.JSON(http.StatusOK, TransactionResponse{Transaction: updated, AlertStatus: h.alerts.afterChange(c, username)})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} DeleteResponse
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parseTransactionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id, username); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(username, services.ActionDeleteTransaction, "transaction", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, DeleteResponse{
		Message:     "Transaction deleted successfully",
		AlertStatus: h.alerts.afterChange(c, username),
	})
}

// ExportTransactions downloads all transactions as CSV
// @Summary     Export transactions
// @Description CSV with header id,date,type,category,description,amount in list order. 204 with no body when there is nothing to export.
// @Tags        transactions
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV file"
// @Success     204 "No transactions to export"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if len(transactions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", export.ContentType)
	c.Status(http.StatusOK)

	if err := export.WriteCSV(c.Writer, transactions); err != nil {
		// Headers are already sent; the client sees a truncated file.
		logger.Get().Errorw("csv export failed", "username", username, "error", err)
		return
	}
	logger.Get().Infow("exported transactions", "username", username, "rows", len(transactions))
}
