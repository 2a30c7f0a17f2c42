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
	"github.com/shopspring/decimal"
)

// transactionServiceImpl implements the TransactionSvcFacade interface
type transactionServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
}

// NewTransactionService creates a new transaction service. The account and
// category readers are used to validate references before writing.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.CategoryReader) portssvc.TransactionSvcFacade {
	return &transactionServiceImpl{
		transactionRepo: repo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

// signedEffect is the change a transaction applies to its account's balance.
func signedEffect(txnType domain.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if txnType == domain.Expense {
		return amount.Neg()
	}
	return amount
}

func (s *transactionServiceImpl) validateTransaction(ctx context.Context, userID string, amount decimal.Decimal, accountID string, categoryID string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown account %s", apperrors.ErrValidation, accountID)
		}
		return err
	}

	if categoryID != "" {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, categoryID)
			}
			return err
		}
	}
	return nil
}

func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	// Categories only apply to expenses.
	if req.TransactionType == domain.Income {
		req.CategoryID = ""
	}
	if err := s.validateTransaction(ctx, userID, req.Amount, req.AccountID, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Description:     req.Description,
		Date:            req.Date,
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, signedEffect(txn.TransactionType, txn.Amount)); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionServiceImpl) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionServiceImpl) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	transactions, nextToken, err := s.transactionRepo.ListTransactions(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions")
		}
		return nil, "", err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nextToken, nil
}

func (s *transactionServiceImpl) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.TransactionType != nil {
		txn.TransactionType = *req.TransactionType
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.AccountID != nil {
		txn.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}

	if txn.TransactionType == domain.Income {
		txn.CategoryID = ""
	}
	if err := s.validateTransaction(ctx, userID, txn.Amount, txn.AccountID, txn.CategoryID); err != nil {
		return nil, err
	}

	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionServiceImpl) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
