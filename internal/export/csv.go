// Package export writes and reads the transaction CSV layout.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"expensetracker/internal/models"

	"github.com/shopspring/decimal"
)

// Header is the first row of every export.
var Header = []string{"id", "date", "type", "category", "description", "amount"}

// ContentType is the MIME type of the export.
const ContentType = "text/csv; charset=utf-8"

// WriteCSV writes the header and one row per transaction in the given order.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, tx := range transactions {
		row := []string{
			tx.ID,
			tx.Date,
			string(tx.Kind),
			tx.Category,
			tx.Description,
			tx.Amount.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses an export produced by WriteCSV. Returned records have no owner.
func ReadCSV(r io.Reader) ([]models.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty export: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	transactions := []models.Transaction{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(row[5])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q", line, row[5])
		}
		kind := models.TransactionKind(row[2])
		if !kind.Valid() {
			return nil, fmt.Errorf("line %d: invalid type %q", line, row[2])
		}
		transactions = append(transactions, models.Transaction{
			Base:        models.Base{ID: row[0]},
			Date:        row[1],
			Kind:        kind,
			Category:    row[3],
			Description: row[4],
			Amount:      amount,
		})
	}
	return transactions, nil
}
