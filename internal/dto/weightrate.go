package dto

import (
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWeightRateRequest defines one band of the dynamic rate table.
type CreateWeightRateRequest struct {
	MinWeight    decimal.Decimal `json:"minWeight"`
	MaxWeight    decimal.Decimal `json:"maxWeight" binding:"required"`
	BoardingRate decimal.Decimal `json:"boardingRate" binding:"required"`
	DaycareRate  decimal.Decimal `json:"daycareRate" binding:"required"`
}

// WeightRateResponse defines the data returned for a rate band.
type WeightRateResponse struct {
	WeightRateID string          `json:"weightRateID"`
	MinWeight    decimal.Decimal `json:"minWeight"`
	MaxWeight    decimal.Decimal `json:"maxWeight"`
	BoardingRate decimal.Decimal `json:"boardingRate"`
	DaycareRate  decimal.Decimal `json:"daycareRate"`
}

// ToWeightRateResponse converts a domain.WeightRate to its DTO.
func ToWeightRateResponse(r *domain.WeightRate) WeightRateResponse {
	return WeightRateResponse{
		WeightRateID: r.WeightRateID,
		MinWeight:    r.MinWeight,
		MaxWeight:    r.MaxWeight,
		BoardingRate: r.BoardingRate,
		DaycareRate:  r.DaycareRate,
	}
}

// ListWeightRatesResponse wraps the full rate table, sorted ascending.
type ListWeightRatesResponse struct {
	Rates []WeightRateResponse `json:"rates"`
}
