package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/core/finance"
	portsrepo "github.com/granaflow/granaflow/internal/core/ports/repositories"
	portssvc "github.com/granaflow/granaflow/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// reportingServiceImpl implements the ReportingService interface.
// Reports never read partial state: every one is computed from a snapshot
// fetched in full, then handed to the pure functions in the finance package.
type reportingServiceImpl struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewReportingService creates a new reporting service over the full repository set.
func NewReportingService(repos portsrepo.RepositoryProvider) portssvc.ReportingService {
	return &reportingServiceImpl{repos: repos}
}

var _ portssvc.ReportingService = (*reportingServiceImpl)(nil)

// BuildSnapshot fetches all of the user's collections concurrently.
// Any single failure fails the snapshot; aggregation never sees partial data.
func (s *reportingServiceImpl) BuildSnapshot(ctx context.Context, userID string) (*domain.Snapshot, error) {
	var snap domain.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Accounts, err = s.repos.AccountRepo.ListAccounts(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Transactions, err = s.repos.TransactionRepo.FindAllTransactions(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Categories, err = s.repos.CategoryRepo.ListCategories(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Goals, err = s.repos.GoalRepo.ListGoals(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Investments, err = s.repos.InvestmentRepo.ListInvestments(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.InvestmentTypes, err = s.repos.InvestmentTypeRepo.ListInvestmentTypes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Bills, err = s.repos.BillRepo.ListBills(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Budgets, err = s.repos.BudgetRepo.ListBudgets(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build snapshot", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}
	return &snap, nil
}

// Summary computes the headline figures for the calendar month containing now.
func (s *reportingServiceImpl) Summary(ctx context.Context, userID string, now time.Time) (*domain.SummaryReport, error) {
	snap, err := s.BuildSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := finance.Summarize(*snap, now)
	return &report, nil
}

// ExpensesByCategory breaks the month's expenses down by category.
func (s *reportingServiceImpl) ExpensesByCategory(ctx context.Context, userID string, now time.Time) ([]domain.CategorySpend, error) {
	snap, err := s.BuildSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	return finance.ExpensesByCategory(snap.Transactions, snap.Categories, now.Month(), now.Year()), nil
}

// MonthlySeries returns income and expense totals for the trailing months, oldest first.
func (s *reportingServiceImpl) MonthlySeries(ctx context.Context, userID string, now time.Time, months int) ([]domain.MonthPoint, error) {
	snap, err := s.BuildSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	return finance.MonthlySeries(snap.Transactions, now, months), nil
}

// InvestmentsByType groups the user's holdings by investment type.
func (s *reportingServiceImpl) InvestmentsByType(ctx context.Context, userID string) ([]domain.TypeHolding, error) {
	snap, err := s.BuildSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	return finance.InvestmentsByType(snap.Investments, snap.InvestmentTypes), nil
}
