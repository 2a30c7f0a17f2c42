package dto

import (
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount must be positive; the type carries the direction.
type CreateTransactionRequest struct {
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=income expense"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	Description     string                 `json:"description" binding:"required"`
	Date            time.Time              `json:"date" binding:"required"`
	AccountID       string                 `json:"accountID" binding:"required"`
	CategoryID      string                 `json:"categoryID"` // Optional, expenses only
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
type UpdateTransactionRequest struct {
	TransactionType *domain.TransactionType `json:"transactionType" binding:"omitempty,oneof=income expense"`
	Amount          *decimal.Decimal        `json:"amount"`
	Description     *string                 `json:"description"`
	Date            *time.Time              `json:"date"`
	AccountID       *string                 `json:"accountID"`
	CategoryID      *string                 `json:"categoryID"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	Date            time.Time              `json:"date"`
	AccountID       string                 `json:"accountID"`
	CategoryID      string                 `json:"categoryID,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor for the next page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		TransactionType: txn.TransactionType,
		Amount:          txn.Amount,
		Description:     txn.Description,
		Date:            txn.Date,
		AccountID:       txn.AccountID,
		CategoryID:      txn.CategoryID,
		CreatedAt:       txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a page of transactions to its DTO
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}
