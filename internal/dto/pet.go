package dto

import (
	"time"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
)

// FeedingProtocolPayload mirrors domain.FeedingProtocol on the wire.
type FeedingProtocolPayload struct {
	FoodBrand string `json:"foodBrand"`
	Quantity  string `json:"quantity"`
	Frequency string `json:"frequency"`
	Times     string `json:"times"`
	Notes     string `json:"notes"`
}

// SpecialCarePayload mirrors domain.SpecialCare on the wire.
type SpecialCarePayload struct {
	Medication    string `json:"medication"`
	Diet          string `json:"diet"`
	GeriatricCare bool   `json:"geriatricCare"`
	Notes         string `json:"notes"`
}

// CreatePetRequest defines the data needed to register a pet. Weight is a
// free-form field ("7,5", "7.5 kg") parsed defensively; unparseable input
// prices through the service base rate.
type CreatePetRequest struct {
	ClientID    string                  `json:"clientID" binding:"required"`
	Name        string                  `json:"name" binding:"required"`
	Species     string                  `json:"species" binding:"required"`
	Breed       string                  `json:"breed"`
	Weight      string                  `json:"weight"`
	BirthDate   *time.Time              `json:"birthDate"`
	Feeding     *FeedingProtocolPayload `json:"feeding"`
	SpecialCare *SpecialCarePayload     `json:"specialCare"`
}

// UpdatePetRequest defines the fields allowed for updating a pet.
type UpdatePetRequest struct {
	Name        *string                 `json:"name"`
	Species     *string                 `json:"species"`
	Breed       *string                 `json:"breed"`
	Weight      *string                 `json:"weight"`
	BirthDate   *time.Time              `json:"birthDate"`
	Feeding     *FeedingProtocolPayload `json:"feeding"`
	SpecialCare *SpecialCarePayload     `json:"specialCare"`
}

// DeactivatePetRequest carries the mandatory inactivation reason.
type DeactivatePetRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// PetResponse defines the data returned for a pet.
type PetResponse struct {
	PetID              string                  `json:"petID"`
	ClientID           string                  `json:"clientID"`
	Name               string                  `json:"name"`
	Species            string                  `json:"species"`
	Breed              string                  `json:"breed"`
	Weight             string                  `json:"weight"`
	BirthDate          *time.Time              `json:"birthDate,omitempty"`
	Feeding            *FeedingProtocolPayload `json:"feeding,omitempty"`
	SpecialCare        *SpecialCarePayload     `json:"specialCare,omitempty"`
	IsActive           bool                    `json:"isActive"`
	InactivationReason string                  `json:"inactivationReason,omitempty"`
	CreatedAt          time.Time               `json:"createdAt"`
}

// ToFeedingProtocol converts the payload to its domain shape.
func (p *FeedingProtocolPayload) ToFeedingProtocol() *domain.FeedingProtocol {
	if p == nil {
		return nil
	}
	return &domain.FeedingProtocol{
		FoodBrand: p.FoodBrand,
		Quantity:  p.Quantity,
		Frequency: p.Frequency,
		Times:     p.Times,
		Notes:     p.Notes,
	}
}

// ToSpecialCare converts the payload to its domain shape.
func (p *SpecialCarePayload) ToSpecialCare() *domain.SpecialCare {
	if p == nil {
		return nil
	}
	return &domain.SpecialCare{
		Medication:    p.Medication,
		Diet:          p.Diet,
		GeriatricCare: p.GeriatricCare,
		Notes:         p.Notes,
	}
}

func fromFeedingProtocol(f *domain.FeedingProtocol) *FeedingProtocolPayload {
	if f == nil {
		return nil
	}
	return &FeedingProtocolPayload{
		FoodBrand: f.FoodBrand,
		Quantity:  f.Quantity,
		Frequency: f.Frequency,
		Times:     f.Times,
		Notes:     f.Notes,
	}
}

func fromSpecialCare(s *domain.SpecialCare) *SpecialCarePayload {
	if s == nil {
		return nil
	}
	return &SpecialCarePayload{
		Medication:    s.Medication,
		Diet:          s.Diet,
		GeriatricCare: s.GeriatricCare,
		Notes:         s.Notes,
	}
}

// ToPetResponse converts a domain.Pet to PetResponse DTO.
func ToPetResponse(p *domain.Pet) PetResponse {
	return PetResponse{
		PetID:              p.PetID,
		ClientID:           p.ClientID,
		Name:               p.Name,
		Species:            p.Species,
		Breed:              p.Breed,
		Weight:             p.Weight.String(),
		BirthDate:          p.BirthDate,
		Feeding:            fromFeedingProtocol(p.Feeding),
		SpecialCare:        fromSpecialCare(p.SpecialCare),
		IsActive:           p.IsActive,
		InactivationReason: p.InactivationReason,
		CreatedAt:          p.CreatedAt,
	}
}

// ListPetsResponse wraps a page of pets.
type ListPetsResponse struct {
	Pets []PetResponse `json:"pets"`
}

// ListPetsParams defines query parameters for listing pets.
type ListPetsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
