package dto

import (
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=checking savings investment cash"`
	Balance     *decimal.Decimal   `json:"balance"` // Optional opening balance, defaults to zero
	Color       string             `json:"color"`   // Optional hex color for the dashboard card
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string             `json:"name"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=checking savings investment cash"`
	Color       *string             `json:"color"`
}

// AdjustBalanceRequest defines the data needed for a manual balance correction.
type AdjustBalanceRequest struct {
	NewBalance decimal.Decimal `json:"newBalance" binding:"required"`
	Reason     string          `json:"reason"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	Balance       decimal.Decimal    `json:"balance"`
	Color         string             `json:"color"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// BalanceAdjustmentResponse defines the data returned for a balance adjustment entry.
type BalanceAdjustmentResponse struct {
	AdjustmentID string          `json:"adjustmentID"`
	AccountID    string          `json:"accountID"`
	OldBalance   decimal.Decimal `json:"oldBalance"`
	NewBalance   decimal.Decimal `json:"newBalance"`
	Reason       string          `json:"reason"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		Color:         acc.Color,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}

// ToBalanceAdjustmentResponse converts a domain.BalanceAdjustment to its DTO
func ToBalanceAdjustmentResponse(adj *domain.BalanceAdjustment) BalanceAdjustmentResponse {
	return BalanceAdjustmentResponse{
		AdjustmentID: adj.AdjustmentID,
		AccountID:    adj.AccountID,
		OldBalance:   adj.OldBalance,
		NewBalance:   adj.NewBalance,
		Reason:       adj.Reason,
		CreatedAt:    adj.CreatedAt,
	}
}

// ToListBalanceAdjustmentResponse converts a slice of adjustments to DTOs
func ToListBalanceAdjustmentResponse(adjustments []domain.BalanceAdjustment) []BalanceAdjustmentResponse {
	res := make([]BalanceAdjustmentResponse, len(adjustments))
	for i, adj := range adjustments {
		res[i] = ToBalanceAdjustmentResponse(&adj)
	}
	return res
}
