package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

const (
	Checking          AccountType = "checking"
	Savings           AccountType = "savings"
	InvestmentAccount AccountType = "investment"
	Cash              AccountType = "cash"
)

// Account is the accounts table row.
type Account struct {
	AccountID   string          `db:"account_id"`
	UserID      string          `db:"user_id"`
	Name        string          `db:"name"`
	AccountType AccountType     `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	Color       string          `db:"color"`
	AuditFields
}

// BalanceAdjustment is the account_balance_adjustments table row.
type BalanceAdjustment struct {
	AdjustmentID string          `db:"adjustment_id"`
	UserID       string          `db:"user_id"`
	AccountID    string          `db:"account_id"`
	OldBalance   decimal.Decimal `db:"old_balance"`
	NewBalance   decimal.Decimal `db:"new_balance"`
	Reason       string          `db:"reason"`
	AuditFields
}
