package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpcomingBill is the upcoming_bills table row. category_id is nullable.
type UpcomingBill struct {
	BillID     string          `db:"bill_id"`
	UserID     string          `db:"user_id"`
	Name       string          `db:"name"`
	Amount     decimal.Decimal `db:"amount"`
	DueDate    time.Time       `db:"due_date"`
	CategoryID string          `db:"category_id"`
	IsPaid     bool            `db:"is_paid"`
	AuditFields
}
