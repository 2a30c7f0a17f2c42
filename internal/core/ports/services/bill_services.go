package services

import (
	"context"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/dto"
)

// BillReaderSvc defines read operations for upcoming bill data
type BillReaderSvc interface {
	// GetBillByID retrieves a specific bill owned by the user.
	GetBillByID(ctx context.Context, userID string, billID string) (*domain.UpcomingBill, error)

	// ListBills retrieves every bill owned by the user, soonest due first.
	ListBills(ctx context.Context, userID string) ([]domain.UpcomingBill, error)
}

// BillWriterSvc defines write operations for upcoming bill data
type BillWriterSvc interface {
	// CreateBill registers an upcoming bill.
	CreateBill(ctx context.Context, userID string, req dto.CreateBillRequest) (*domain.UpcomingBill, error)

	// UpdateBill updates an existing bill's details.
	UpdateBill(ctx context.Context, userID string, billID string, req dto.UpdateBillRequest) (*domain.UpcomingBill, error)

	// DeleteBill removes a bill owned by the user.
	DeleteBill(ctx context.Context, userID string, billID string) error

	// PayBill settles a bill against an account, recording the matching
	// expense transaction. Returns the updated bill and the transaction.
	PayBill(ctx context.Context, userID string, billID string, req dto.PayBillRequest) (*domain.UpcomingBill, *domain.Transaction, error)
}

// BillSvcFacade combines all bill-related service interfaces
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
