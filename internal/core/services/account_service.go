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

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountServiceImpl{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now()

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     balance,
		Color:       req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountServiceImpl) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}
	if req.Color != nil {
		account.Color = *req.Color
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountServiceImpl) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, userID, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

// AdjustBalance sets an account's balance and records the correction.
func (s *accountServiceImpl) AdjustBalance(ctx context.Context, userID string, accountID string, req dto.AdjustBalanceRequest) (*domain.BalanceAdjustment, error) {
	adjustment, err := s.accountRepo.AdjustBalance(ctx, userID, accountID, req.NewBalance, req.Reason, userID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to adjust balance", slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Balance adjusted",
		slog.String("account_id", accountID),
		slog.String("old_balance", adjustment.OldBalance.String()),
		slog.String("new_balance", adjustment.NewBalance.String()))
	return adjustment, nil
}

func (s *accountServiceImpl) ListAdjustments(ctx context.Context, userID string, accountID string) ([]domain.BalanceAdjustment, error) {
	// The account must exist and be owned by the caller.
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, accountID); err != nil {
		return nil, err
	}

	adjustments, err := s.accountRepo.ListAdjustments(ctx, userID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list adjustments", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	if adjustments == nil {
		return []domain.BalanceAdjustment{}, nil
	}
	return adjustments, nil
}
