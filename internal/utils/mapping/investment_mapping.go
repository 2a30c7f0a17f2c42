package mapping

import (
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/granaflow/granaflow/internal/models"
)

// ToModelInvestment converts a domain Investment to a model Investment
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:  d.InvestmentID,
		UserID:        d.UserID,
		AssetName:     d.AssetName,
		AssetTypeID:   d.AssetTypeID,
		Quantity:      d.Quantity,
		AveragePrice:  d.AveragePrice,
		TotalInvested: d.TotalInvested,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestment converts a model Investment to a domain Investment
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:  m.InvestmentID,
		UserID:        m.UserID,
		AssetName:     m.AssetName,
		AssetTypeID:   m.AssetTypeID,
		Quantity:      m.Quantity,
		AveragePrice:  m.AveragePrice,
		TotalInvested: m.TotalInvested,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvestmentSlice converts a slice of model Investments to domain form
func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	ds := make([]domain.Investment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}

// ToDomainInvestmentType converts a model InvestmentType to its domain form
func ToDomainInvestmentType(m models.InvestmentType) domain.InvestmentType {
	return domain.InvestmentType{
		TypeID: m.TypeID,
		Name:   m.Name,
	}
}

// ToDomainInvestmentTypeSlice converts a slice of model InvestmentTypes to domain form
func ToDomainInvestmentTypeSlice(ms []models.InvestmentType) []domain.InvestmentType {
	ds := make([]domain.InvestmentType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestmentType(m)
	}
	return ds
}
