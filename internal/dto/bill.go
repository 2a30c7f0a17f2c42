package dto

import (
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data needed to register an upcoming bill.
type CreateBillRequest struct {
	Name       string          `json:"name" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	DueDate    time.Time       `json:"dueDate" binding:"required"`
	CategoryID string          `json:"categoryID"` // Optional, carried onto the payment transaction
}

// UpdateBillRequest defines the data allowed for updating a bill.
type UpdateBillRequest struct {
	Name       *string          `json:"name"`
	Amount     *decimal.Decimal `json:"amount"`
	DueDate    *time.Time       `json:"dueDate"`
	CategoryID *string          `json:"categoryID"`
}

// PayBillRequest defines the data needed to settle a bill.
type PayBillRequest struct {
	AccountID string `json:"accountID" binding:"required"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	BillID     string          `json:"billID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"dueDate"`
	CategoryID string          `json:"categoryID,omitempty"`
	IsPaid     bool            `json:"isPaid"`
}

// PayBillResponse carries the settled bill together with the expense transaction it produced.
type PayBillResponse struct {
	Bill        BillResponse        `json:"bill"`
	Transaction TransactionResponse `json:"transaction"`
}

// ListBillsResponse wraps the list of bills.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ToBillResponse converts a domain.UpcomingBill to BillResponse DTO
func ToBillResponse(bill *domain.UpcomingBill) BillResponse {
	return BillResponse{
		BillID:     bill.BillID,
		Name:       bill.Name,
		Amount:     bill.Amount,
		DueDate:    bill.DueDate,
		CategoryID: bill.CategoryID,
		IsPaid:     bill.IsPaid,
	}
}

// ToListBillsResponse converts a slice of bills to ListBillsResponse
func ToListBillsResponse(bills []domain.UpcomingBill) ListBillsResponse {
	res := make([]BillResponse, len(bills))
	for i, bill := range bills {
		res[i] = ToBillResponse(&bill)
	}
	return ListBillsResponse{Bills: res}
}
