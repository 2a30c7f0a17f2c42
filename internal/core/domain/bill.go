package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpcomingBill is a payment the user expects to make.
// Paying a bill debits an account and records an expense transaction.
type UpcomingBill struct {
	BillID     string          `json:"billID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"dueDate"`
	CategoryID string          `json:"categoryID"` // Optional; carried onto the payment transaction
	IsPaid     bool            `json:"isPaid"`
	AuditFields
}
