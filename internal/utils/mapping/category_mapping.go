package mapping

import (
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/models"
)

// ToModelExpenseCategory converts a domain ExpenseCategory to its model form
func ToModelExpenseCategory(d domain.ExpenseCategory) models.ExpenseCategory {
	return models.ExpenseCategory{
		CategoryID:    d.CategoryID,
		UserID:        d.UserID,
		Name:          d.Name,
		Color:         d.Color,
		IsUserCreated: d.IsUserCreated,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpenseCategory converts a model ExpenseCategory to its domain form
func ToDomainExpenseCategory(m models.ExpenseCategory) domain.ExpenseCategory {
	return domain.ExpenseCategory{
		CategoryID:    m.CategoryID,
		UserID:        m.UserID,
		Name:          m.Name,
		Color:         m.Color,
		IsUserCreated: m.IsUserCreated,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseCategorySlice converts a slice of model categories to domain form
func ToDomainExpenseCategorySlice(ms []models.ExpenseCategory) []domain.ExpenseCategory {
	ds := make([]domain.ExpenseCategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpenseCategory(m)
	}
	return ds
}
