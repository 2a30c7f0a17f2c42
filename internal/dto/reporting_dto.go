package dto

import (
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse carries the headline dashboard figures for the current month.
type SummaryResponse struct {
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	TotalInvested   decimal.Decimal `json:"totalInvested"`
	NetWorth        decimal.Decimal `json:"netWorth"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	MonthlyBalance  decimal.Decimal `json:"monthlyBalance"`
	InvestmentShare decimal.Decimal `json:"investmentShare"`
}

// CategorySpendResponse is one slice of the expenses-by-category chart.
type CategorySpendResponse struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Value      decimal.Decimal `json:"value"`
}

// ExpensesByCategoryResponse wraps the category breakdown rows.
type ExpensesByCategoryResponse struct {
	Categories []CategorySpendResponse `json:"categories"`
}

// MonthPointResponse is one row of the income/expense time series.
type MonthPointResponse struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// MonthlySeriesResponse wraps the trailing-months series, oldest first.
type MonthlySeriesResponse struct {
	Months []MonthPointResponse `json:"months"`
}

// TypeHoldingResponse is one slice of the investments-by-type chart.
type TypeHoldingResponse struct {
	TypeID string          `json:"typeID"`
	Name   string          `json:"name"`
	Value  decimal.Decimal `json:"value"`
	Count  int             `json:"count"`
}

// InvestmentsByTypeResponse wraps the holdings-by-type rows.
type InvestmentsByTypeResponse struct {
	Types []TypeHoldingResponse `json:"types"`
}

// ListMonthlySeriesParams defines query parameters for the monthly series report.
type ListMonthlySeriesParams struct {
	Months int `form:"months,default=6" binding:"omitempty,min=1,max=36"`
}

// ToSummaryResponse converts a domain.SummaryReport to its DTO
func ToSummaryResponse(report *domain.SummaryReport) SummaryResponse {
	return SummaryResponse{
		TotalBalance:    report.TotalBalance,
		TotalInvested:   report.TotalInvested,
		NetWorth:        report.NetWorth,
		MonthlyIncome:   report.MonthlyIncome,
		MonthlyExpenses: report.MonthlyExpenses,
		MonthlyBalance:  report.MonthlyBalance,
		InvestmentShare: report.InvestmentShare,
	}
}

// ToExpensesByCategoryResponse converts category spend rows to their DTO
func ToExpensesByCategoryResponse(rows []domain.CategorySpend) ExpensesByCategoryResponse {
	res := make([]CategorySpendResponse, len(rows))
	for i, row := range rows {
		res[i] = CategorySpendResponse{
			CategoryID: row.CategoryID,
			Name:       row.Name,
			Color:      row.Color,
			Value:      row.Value,
		}
	}
	return ExpensesByCategoryResponse{Categories: res}
}

// ToMonthlySeriesResponse converts month points to their DTO
func ToMonthlySeriesResponse(points []domain.MonthPoint) MonthlySeriesResponse {
	res := make([]MonthPointResponse, len(points))
	for i, p := range points {
		res[i] = MonthPointResponse{
			Month:    p.Month,
			Income:   p.Income,
			Expenses: p.Expenses,
			Balance:  p.Balance,
		}
	}
	return MonthlySeriesResponse{Months: res}
}

// ToInvestmentsByTypeResponse converts type holdings to their DTO
func ToInvestmentsByTypeResponse(rows []domain.TypeHolding) InvestmentsByTypeResponse {
	res := make([]TypeHoldingResponse, len(rows))
	for i, row := range rows {
		res[i] = TypeHoldingResponse{
			TypeID: row.TypeID,
			Name:   row.Name,
			Value:  row.Value,
			Count:  row.Count,
		}
	}
	return InvestmentsByTypeResponse{Types: res}
}
