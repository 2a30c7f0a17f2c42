package models

// ExpenseCategory is the expense_categories table row.
type ExpenseCategory struct {
	CategoryID    string `db:"category_id"`
	UserID        string `db:"user_id"`
	Name          string `db:"name"`
	Color         string `db:"color"`
	IsUserCreated bool   `db:"is_user_created"`
	AuditFields
}
