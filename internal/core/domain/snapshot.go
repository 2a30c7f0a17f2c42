package domain

// Snapshot groups every collection owned by one user at a single point in time.
// It is built by a joined fan-out of the individual fetches and treated as an
// immutable value afterwards: aggregation never sees a partially loaded one,
// and mutations are followed by a wholesale refetch rather than a patch.
type Snapshot struct {
	Accounts        []Account
	Transactions    []Transaction
	Categories      []ExpenseCategory
	Goals           []Goal
	Investments     []Investment
	InvestmentTypes []InvestmentType
	Bills           []UpcomingBill
	Budgets         []Budget
}
