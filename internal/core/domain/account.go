package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account by where the money lives.
type AccountType string

const (
	Checking          AccountType = "checking"
	Savings           AccountType = "savings"
	InvestmentAccount AccountType = "investment"
	Cash              AccountType = "cash"
)

// Account represents a money holding owned by a single user.
// Balance is mutated only through transaction and adjustment operations.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`    // Owner, scopes every query
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	Color       string          `json:"color"` // Hex color used by the client for cards
	AuditFields
}

// BalanceAdjustment records a manual balance correction on an account.
// Kept as history so the balance trail is auditable.
type BalanceAdjustment struct {
	AdjustmentID string          `json:"adjustmentID"`
	UserID       string          `json:"userID"`
	AccountID    string          `json:"accountID"`
	OldBalance   decimal.Decimal `json:"oldBalance"`
	NewBalance   decimal.Decimal `json:"newBalance"`
	Reason       string          `json:"reason"`
	AuditFields
}
