package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is the transactions table row. category_id is nullable.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	TransactionType TransactionType `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	Date            time.Time       `db:"date"`
	AccountID       string          `db:"account_id"`
	CategoryID      string          `db:"category_id"`
	AuditFields
}
