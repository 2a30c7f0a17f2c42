package domain

// ExpenseCategory labels expense transactions for the category breakdown charts.
// Seeded categories ship with the account; user-created ones carry the flag.
type ExpenseCategory struct {
	CategoryID    string `json:"categoryID"` // Primary Key (UUID)
	UserID        string `json:"userID"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	IsUserCreated bool   `json:"isUserCreated"`
	AuditFields
}
