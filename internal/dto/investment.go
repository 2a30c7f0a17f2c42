package dto

import (
	"github.com/granaflow/granaflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the data needed to record an investment holding.
// The total invested is computed as quantity times average price at save time.
type CreateInvestmentRequest struct {
	AssetName    string          `json:"assetName" binding:"required"`
	AssetTypeID  string          `json:"assetTypeID" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	AveragePrice decimal.Decimal `json:"averagePrice" binding:"required"`
}

// UpdateInvestmentRequest defines the data allowed for updating an investment.
type UpdateInvestmentRequest struct {
	AssetName    *string          `json:"assetName"`
	AssetTypeID  *string          `json:"assetTypeID"`
	Quantity     *decimal.Decimal `json:"quantity"`
	AveragePrice *decimal.Decimal `json:"averagePrice"`
}

// CreateInvestmentTypeRequest defines the data needed to add an investment type.
type CreateInvestmentTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// InvestmentResponse defines the data returned for an investment.
type InvestmentResponse struct {
	InvestmentID  string          `json:"investmentID"`
	AssetName     string          `json:"assetName"`
	AssetTypeID   string          `json:"assetTypeID"`
	Quantity      decimal.Decimal `json:"quantity"`
	AveragePrice  decimal.Decimal `json:"averagePrice"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
}

// InvestmentTypeResponse defines the data returned for an investment type.
type InvestmentTypeResponse struct {
	TypeID string `json:"typeID"`
	Name   string `json:"name"`
}

// ListInvestmentsResponse wraps the list of investments.
type ListInvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// ListInvestmentTypesResponse wraps the list of investment types.
type ListInvestmentTypesResponse struct {
	Types []InvestmentTypeResponse `json:"types"`
}

// ToInvestmentResponse converts a domain.Investment to InvestmentResponse DTO
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:  inv.InvestmentID,
		AssetName:     inv.AssetName,
		AssetTypeID:   inv.AssetTypeID,
		Quantity:      inv.Quantity,
		AveragePrice:  inv.AveragePrice,
		TotalInvested: inv.TotalInvested,
	}
}

// ToListInvestmentsResponse converts a slice of investments to ListInvestmentsResponse
func ToListInvestmentsResponse(investments []domain.Investment) ListInvestmentsResponse {
	res := make([]InvestmentResponse, len(investments))
	for i, inv := range investments {
		res[i] = ToInvestmentResponse(&inv)
	}
	return ListInvestmentsResponse{Investments: res}
}

// ToInvestmentTypeResponse converts a domain.InvestmentType to its DTO
func ToInvestmentTypeResponse(t *domain.InvestmentType) InvestmentTypeResponse {
	return InvestmentTypeResponse{
		TypeID: t.TypeID,
		Name:   t.Name,
	}
}

// ToListInvestmentTypesResponse converts a slice of investment types to its DTO
func ToListInvestmentTypesResponse(types []domain.InvestmentType) ListInvestmentTypesResponse {
	res := make([]InvestmentTypeResponse, len(types))
	for i, t := range types {
		res[i] = ToInvestmentTypeResponse(&t)
	}
	return ListInvestmentTypesResponse{Types: res}
}
