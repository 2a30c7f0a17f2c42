// Package finance holds the pure aggregation functions behind the dashboard
// figures. Every function operates on collections handed to it, never mutates
// them, and treats empty input as a valid case yielding zero or no rows.
// Callers are expected to pass collections already scoped to one user.
package finance

import (
	"time"

	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalBalance sums the balance of every account. Values are assumed to share
// one currency unit; there is no conversion.
func TotalBalance(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// TotalInvested sums the persisted total_invested over all holdings.
// The stored figure is authoritative; quantity × average price is not recomputed.
func TotalInvested(investments []domain.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(inv.TotalInvested)
	}
	return total
}

// NetWorth is total account balance plus total invested.
func NetWorth(accounts []domain.Account, investments []domain.Investment) decimal.Decimal {
	return TotalBalance(accounts).Add(TotalInvested(investments))
}

// inMonth reports whether a date falls in the given calendar month and year.
// This is month-of-year semantics, not a rolling 30-day window.
func inMonth(date time.Time, month time.Month, year int) bool {
	return date.Month() == month && date.Year() == year
}

// MonthlyIncome sums income transactions dated within the given month/year.
func MonthlyIncome(transactions []domain.Transaction, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.TransactionType == domain.Income && inMonth(t.Date, month, year) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// MonthlyExpenses sums expense transactions dated within the given month/year.
func MonthlyExpenses(transactions []domain.Transaction, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.TransactionType == domain.Expense && inMonth(t.Date, month, year) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// MonthlyBalance is monthly income minus monthly expenses.
// The sign is preserved; a negative month stays negative.
func MonthlyBalance(transactions []domain.Transaction, month time.Month, year int) decimal.Decimal {
	return MonthlyIncome(transactions, month, year).Sub(MonthlyExpenses(transactions, month, year))
}

// ExpensesByCategory partitions the month's expense transactions by category
// and emits one row per category that actually has spending. Categories with
// no matching expenses are omitted entirely, and transactions whose category
// no longer exists are excluded here — they still count in MonthlyExpenses.
func ExpensesByCategory(transactions []domain.Transaction, categories []domain.ExpenseCategory, month time.Month, year int) []domain.CategorySpend {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.TransactionType != domain.Expense || t.CategoryID == "" || !inMonth(t.Date, month, year) {
			continue
		}
		totals[t.CategoryID] = totals[t.CategoryID].Add(t.Amount)
	}

	rows := make([]domain.CategorySpend, 0, len(categories))
	for _, c := range categories {
		value, ok := totals[c.CategoryID]
		if !ok || !value.IsPositive() {
			continue
		}
		rows = append(rows, domain.CategorySpend{
			CategoryID: c.CategoryID,
			Name:       c.Name,
			Color:      c.Color,
			Value:      value,
		})
	}
	return rows
}

// MonthlySeries builds one row per calendar month for the n trailing months
// ending at now's month, oldest first. Each row is computed with a fresh full
// scan through the single-month functions; n and per-user transaction volume
// are both small, so the O(n × transactions) cost is acceptable.
func MonthlySeries(transactions []domain.Transaction, now time.Time, n int) []domain.MonthPoint {
	if n <= 0 {
		return []domain.MonthPoint{}
	}

	rows := make([]domain.MonthPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		month, year := date.Month(), date.Year()

		income := MonthlyIncome(transactions, month, year)
		expenses := MonthlyExpenses(transactions, month, year)
		rows = append(rows, domain.MonthPoint{
			Month:    date.Format("Jan 06"),
			Income:   income,
			Expenses: expenses,
			Balance:  income.Sub(expenses),
		})
	}
	return rows
}

// InvestmentsByType sums total_invested per investment type, emitting one row
// per type that has at least one holding with value. Holdings referencing an
// unknown asset_type_id fall out of the chart but still count in TotalInvested.
func InvestmentsByType(investments []domain.Investment, types []domain.InvestmentType) []domain.TypeHolding {
	rows := make([]domain.TypeHolding, 0, len(types))
	for _, typ := range types {
		value := decimal.Zero
		count := 0
		for _, inv := range investments {
			if inv.AssetTypeID == typ.TypeID {
				value = value.Add(inv.TotalInvested)
				count++
			}
		}
		if !value.IsPositive() {
			continue
		}
		rows = append(rows, domain.TypeHolding{
			TypeID: typ.TypeID,
			Name:   typ.Name,
			Value:  value,
			Count:  count,
		})
	}
	return rows
}

// ShareOf returns part/total, or zero when total is zero. The zero-denominator
// case is handled explicitly rather than coercing every falsy result to zero,
// so a negative share (e.g. negative net worth) survives intact.
func ShareOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total)
}

// Summarize computes the headline figures for now's calendar month.
func Summarize(snap domain.Snapshot, now time.Time) domain.SummaryReport {
	totalBalance := TotalBalance(snap.Accounts)
	totalInvested := TotalInvested(snap.Investments)
	netWorth := totalBalance.Add(totalInvested)

	income := MonthlyIncome(snap.Transactions, now.Month(), now.Year())
	expenses := MonthlyExpenses(snap.Transactions, now.Month(), now.Year())

	return domain.SummaryReport{
		TotalBalance:    totalBalance,
		TotalInvested:   totalInvested,
		NetWorth:        netWorth,
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		MonthlyBalance:  income.Sub(expenses),
		InvestmentShare: ShareOf(totalInvested, netWorth),
	}
}
