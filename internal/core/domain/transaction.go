package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or removes from an account.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction represents a single income or expense entry against an account.
// Amount is positive by convention; the type carries the direction.
// CategoryID is only meaningful for expenses and may reference a deleted
// category — nothing repairs the link, aggregation just skips it.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Date            time.Time       `json:"date"` // Day the money moved; month/year aggregation keys off this
	AccountID       string          `json:"accountID"`
	CategoryID      string          `json:"categoryID"` // Empty when uncategorized
	AuditFields
}
