package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/upitrail/upitrail/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "reference_id,date,amount,merchant,category,description,upi_id,bank,raw_message"

const (
	numFields  = 9
	dateFormat = "2006-01-02"
	colRef     = 0
	colDate    = 1
	colAmount  = 2
	colMerch   = 3
	colCat     = 4
	colDesc    = 5
	colUPI     = 6
	colBank    = 7
	colRaw     = 8
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txns {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colRef] = tx.ReferenceID
	row[colDate] = tx.OccurredAt.Format(dateFormat)
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colMerch] = tx.Merchant
	row[colCat] = tx.Category
	row[colDesc] = tx.Description
	row[colUPI] = tx.UPIHandle
	row[colBank] = tx.Bank
	row[colRaw] = tx.RawMessage
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.ParseInLocation(dateFormat, record[colDate], time.Local)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		ReferenceID: record[colRef],
		OccurredAt:  date,
		Amount:      amount,
		Merchant:    record[colMerch],
		Category:    record[colCat],
		Description: record[colDesc],
		UPIHandle:   record[colUPI],
		Bank:        record[colBank],
		RawMessage:  record[colRaw],
	}, nil
}
