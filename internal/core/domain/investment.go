package domain

import (
	"github.com/shopspring/decimal"
)

// InvestmentType is a reference row ("Ações", "FIIs", "Renda Fixa", ...).
// Types are global, not user-scoped.
type InvestmentType struct {
	TypeID string `json:"typeID"` // Primary Key (UUID)
	Name   string `json:"name"`
}

// Investment is a holding of a single asset.
// TotalInvested is persisted as quantity × average price at write time and is
// treated as authoritative on read; it is never recomputed from the factors.
type Investment struct {
	InvestmentID  string          `json:"investmentID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	AssetName     string          `json:"assetName"`
	AssetTypeID   string          `json:"assetTypeID"` // FK -> investment_types
	Quantity      decimal.Decimal `json:"quantity"`
	AveragePrice  decimal.Decimal `json:"averagePrice"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	AuditFields
}
