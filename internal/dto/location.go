package dto

import "github.com/petcarehq/petcare-backend/internal/core/domain"

// CreateLocationRequest defines the data needed to create a branch.
type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateLocationRequest defines the fields allowed for updating a branch.
type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

// LocationResponse defines the data returned for a branch.
type LocationResponse struct {
	LocationID string `json:"locationID"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
}

// ToLocationResponse converts a domain.Location to LocationResponse DTO.
func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID: l.LocationID,
		Name:       l.Name,
		Address:    l.Address,
		Phone:      l.Phone,
		IsActive:   l.IsActive,
	}
}
