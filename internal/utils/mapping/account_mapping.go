package mapping

import (
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		UserID:      d.UserID,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		Balance:     d.Balance,
		Color:       d.Color,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Balance:     m.Balance,
		Color:       m.Color,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainBalanceAdjustment converts a model BalanceAdjustment to its domain form
func ToDomainBalanceAdjustment(m models.BalanceAdjustment) domain.BalanceAdjustment {
	return domain.BalanceAdjustment{
		AdjustmentID: m.AdjustmentID,
		UserID:       m.UserID,
		AccountID:    m.AccountID,
		OldBalance:   m.OldBalance,
		NewBalance:   m.NewBalance,
		Reason:       m.Reason,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
