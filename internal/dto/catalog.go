package dto

import (
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest defines the data needed to create a care offering.
type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice" binding:"required"`
}

// UpdateServiceRequest defines the fields allowed for updating an offering.
type UpdateServiceRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	BasePrice   *decimal.Decimal `json:"basePrice"`
	IsActive    *bool            `json:"isActive"`
}

// ServiceResponse defines the data returned for a care offering.
type ServiceResponse struct {
	ServiceID   string          `json:"serviceID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Kind        string          `json:"kind"`
	IsActive    bool            `json:"isActive"`
}

// CreateExtraServiceRequest defines the data needed to create an add-on.
type CreateExtraServiceRequest struct {
	Name   string          `json:"name" binding:"required"`
	Price  decimal.Decimal `json:"price" binding:"required"`
	PerDay bool            `json:"perDay"`
}

// UpdateExtraServiceRequest defines the fields allowed for updating an add-on.
type UpdateExtraServiceRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	PerDay   *bool            `json:"perDay"`
	IsActive *bool            `json:"isActive"`
}

// ExtraServiceResponse defines the data returned for an add-on.
type ExtraServiceResponse struct {
	ExtraServiceID string          `json:"extraServiceID"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	PerDay         bool            `json:"perDay"`
	IsActive       bool            `json:"isActive"`
}

// ToServiceResponse converts a domain.Service to ServiceResponse DTO. Kind
// is derived from the name so the dashboard can adjust its date controls.
func ToServiceResponse(s *domain.Service, kind string) ServiceResponse {
	return ServiceResponse{
		ServiceID:   s.ServiceID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		Kind:        kind,
		IsActive:    s.IsActive,
	}
}

// ToExtraServiceResponse converts a domain.ExtraService to its DTO.
func ToExtraServiceResponse(e *domain.ExtraService) ExtraServiceResponse {
	return ExtraServiceResponse{
		ExtraServiceID: e.ExtraServiceID,
		Name:           e.Name,
		Price:          e.Price,
		PerDay:         e.PerDay,
		IsActive:       e.IsActive,
	}
}
