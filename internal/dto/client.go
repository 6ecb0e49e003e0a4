package dto

import (
	"time"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a client.
// ConsentGiven must be true; creation is rejected otherwise.
type CreateClientRequest struct {
	FirstName    string  `json:"firstName" binding:"required"`
	LastName     string  `json:"lastName"`
	Phone        string  `json:"phone" binding:"required"`
	Email        string  `json:"email" binding:"omitempty,email"`
	Address      string  `json:"address"`
	Notes        string  `json:"notes"`
	LocationID   *string `json:"locationID"`
	ConsentGiven bool    `json:"consentGiven"`
}

// UpdateClientRequest defines the fields allowed for updating a client.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateClientRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Address    *string `json:"address"`
	Notes      *string `json:"notes"`
	LocationID *string `json:"locationID"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	LocationID    *string   `json:"locationID"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`
	ConsentGiven  bool      `json:"consentGiven"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		LocationID:    c.LocationID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		Notes:         c.Notes,
		ConsentGiven:  c.ConsentGiven,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ListClientsResponse wraps a page of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
