package domain

import (
	"github.com/shopspring/decimal"
)

// CategorySpend is one slice of the expenses-by-category chart.
// Rows are only emitted for categories with spending in the period.
type CategorySpend struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Value      decimal.Decimal `json:"value"`
}

// MonthPoint is one row of the income/expense time series.
type MonthPoint struct {
	Month    string          `json:"month"` // Human-readable label, e.g. "Jan 06"
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"` // Income - Expenses; sign preserved
}

// TypeHolding is one slice of the investments-by-type chart.
type TypeHolding struct {
	TypeID string          `json:"typeID"`
	Name   string          `json:"name"`
	Value  decimal.Decimal `json:"value"`
	Count  int             `json:"count"` // Number of holdings of this type
}

// SummaryReport carries the headline dashboard figures for the current month.
type SummaryReport struct {
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	TotalInvested   decimal.Decimal `json:"totalInvested"`
	NetWorth        decimal.Decimal `json:"netWorth"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	MonthlyBalance  decimal.Decimal `json:"monthlyBalance"`
	InvestmentShare decimal.Decimal `json:"investmentShare"` // TotalInvested / NetWorth, 0 when net worth is 0
}
