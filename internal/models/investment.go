package models

import (
	"github.com/shopspring/decimal"
)

// InvestmentType is the investment_types reference table row.
type InvestmentType struct {
	TypeID string `db:"type_id"`
	Name   string `db:"name"`
}

// Investment is the investments table row. total_invested is persisted
// redundantly at write time, never derived on read.
type Investment struct {
	InvestmentID  string          `db:"investment_id"`
	UserID        string          `db:"user_id"`
	AssetName     string          `db:"asset_name"`
	AssetTypeID   string          `db:"asset_type_id"`
	Quantity      decimal.Decimal `db:"quantity"`
	AveragePrice  decimal.Decimal `db:"average_price"`
	TotalInvested decimal.Decimal `db:"total_invested"`
	AuditFields
}
