package mapping

import (
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/models"
)

// ToModelUpcomingBill converts a domain UpcomingBill to its model form
func ToModelUpcomingBill(d domain.UpcomingBill) models.UpcomingBill {
	return models.UpcomingBill{
		BillID:      d.BillID,
		UserID:      d.UserID,
		Name:        d.Name,
		Amount:      d.Amount,
		DueDate:     d.DueDate,
		CategoryID:  d.CategoryID,
		IsPaid:      d.IsPaid,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUpcomingBill converts a model UpcomingBill to its domain form
func ToDomainUpcomingBill(m models.UpcomingBill) domain.UpcomingBill {
	return domain.UpcomingBill{
		BillID:      m.BillID,
		UserID:      m.UserID,
		Name:        m.Name,
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		CategoryID:  m.CategoryID,
		IsPaid:      m.IsPaid,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUpcomingBillSlice converts a slice of model bills to domain form
func ToDomainUpcomingBillSlice(ms []models.UpcomingBill) []domain.UpcomingBill {
	ds := make([]domain.UpcomingBill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUpcomingBill(m)
	}
	return ds
}
