package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/granaflow/granaflow/internal/apperrors"
	"github.com/granaflow/granaflow/internal/core/domain"
	portsrepo "github.com/granaflow/granaflow/internal/core/ports/repositories"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"github.com/granaflow/granaflow/internal/dto"
)

// billServiceImpl implements the BillSvcFacade interface
type billServiceImpl struct {
	BaseService
	billRepo     portsrepo.BillRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewBillService creates a new bill service
func NewBillService(repo portsrepo.BillRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.BillSvcFacade {
	return &billServiceImpl{
		billRepo:     repo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.BillSvcFacade = (*billServiceImpl)(nil)

func (s *billServiceImpl) CreateBill(ctx context.Context, userID string, req dto.CreateBillRequest) (*domain.UpcomingBill, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.CategoryID != "" {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, req.CategoryID)
			}
			return nil, err
		}
	}

	now := time.Now()
	bill := domain.UpcomingBill{
		BillID:     uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Amount:     req.Amount,
		DueDate:    req.DueDate,
		CategoryID: req.CategoryID,
		IsPaid:     false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to save bill", slog.String("bill_id", bill.BillID))
		return nil, err
	}

	s.LogInfo(ctx, "Bill created", slog.String("bill_id", bill.BillID))
	return &bill, nil
}

func (s *billServiceImpl) GetBillByID(ctx context.Context, userID string, billID string) (*domain.UpcomingBill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, userID, billID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bill", slog.String("bill_id", billID))
		}
		return nil, err
	}
	return bill, nil
}

func (s *billServiceImpl) ListBills(ctx context.Context, userID string) ([]domain.UpcomingBill, error) {
	bills, err := s.billRepo.ListBills(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills")
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	if bills == nil {
		return []domain.UpcomingBill{}, nil
	}
	return bills, nil
}

func (s *billServiceImpl) UpdateBill(ctx context.Context, userID string, billID string, req dto.UpdateBillRequest) (*domain.UpcomingBill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, userID, billID)
	if err != nil {
		return nil, err
	}
	if bill.IsPaid {
		return nil, fmt.Errorf("%w: paid bills cannot be edited", apperrors.ErrValidation)
	}

	if req.Name != nil {
		bill.Name = *req.Name
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		bill.Amount = *req.Amount
	}
	if req.DueDate != nil {
		bill.DueDate = *req.DueDate
	}
	if req.CategoryID != nil {
		if *req.CategoryID != "" {
			if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.CategoryID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, *req.CategoryID)
				}
				return nil, err
			}
		}
		bill.CategoryID = *req.CategoryID
	}
	bill.LastUpdatedAt = time.Now()
	bill.LastUpdatedBy = userID

	if err := s.billRepo.UpdateBill(ctx, *bill); err != nil {
		s.LogError(ctx, err, "Failed to update bill", slog.String("bill_id", billID))
		return nil, err
	}

	s.LogInfo(ctx, "Bill updated", slog.String("bill_id", billID))
	return bill, nil
}

func (s *billServiceImpl) DeleteBill(ctx context.Context, userID string, billID string) error {
	if err := s.billRepo.DeleteBill(ctx, userID, billID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete bill", slog.String("bill_id", billID))
		}
		return err
	}
	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID))
	return nil
}

// PayBill settles a bill against an account, producing the matching expense transaction.
func (s *billServiceImpl) PayBill(ctx context.Context, userID string, billID string, req dto.PayBillRequest) (*domain.UpcomingBill, *domain.Transaction, error) {
	txn, err := s.billRepo.MarkBillPaid(ctx, userID, billID, req.AccountID, userID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrInsufficientBalance) {
			s.LogError(ctx, err, "Failed to pay bill",
				slog.String("bill_id", billID),
				slog.String("account_id", req.AccountID))
		}
		return nil, nil, err
	}

	bill, err := s.billRepo.FindBillByID(ctx, userID, billID)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Bill paid",
		slog.String("bill_id", billID),
		slog.String("account_id", req.AccountID),
		slog.String("transaction_id", txn.TransactionID))
	return bill, txn, nil
}
