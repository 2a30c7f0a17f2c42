package services

import (
	"context"
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
)

// ReportingService defines operations for the dashboard aggregates.
// Every report is computed from a freshly fetched snapshot of the user's data.
type ReportingService interface {
	// BuildSnapshot fetches all of the user's collections concurrently.
	BuildSnapshot(ctx context.Context, userID string) (*domain.Snapshot, error)

	// Summary computes the headline figures for the calendar month containing now.
	Summary(ctx context.Context, userID string, now time.Time) (*domain.SummaryReport, error)

	// ExpensesByCategory breaks the month's expenses down by category.
	// Categories without spending are omitted.
	ExpensesByCategory(ctx context.Context, userID string, now time.Time) ([]domain.CategorySpend, error)

	// MonthlySeries returns income and expense totals for the n calendar
	// months ending with the month containing now, oldest first.
	MonthlySeries(ctx context.Context, userID string, now time.Time, months int) ([]domain.MonthPoint, error)

	// InvestmentsByType groups the user's holdings by investment type.
	// Types with no holdings are omitted.
	InvestmentsByType(ctx context.Context, userID string) ([]domain.TypeHolding, error)
}
