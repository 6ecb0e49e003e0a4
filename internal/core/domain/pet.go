package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeedingProtocol is a pet's saved default feeding plan, reusable across
// bookings. A reservation snapshots a copy of it at creation time.
type FeedingProtocol struct {
	FoodBrand string `json:"foodBrand"`
	Quantity  string `json:"quantity"`  // e.g. "1 cup", "200g"
	Frequency string `json:"frequency"` // e.g. "twice daily"
	Times     string `json:"times"`     // e.g. "08:00, 18:00"
	Notes     string `json:"notes"`
}

// SpecialCare holds special-care notes for a pet.
type SpecialCare struct {
	Medication    string `json:"medication"`
	Diet          string `json:"diet"`
	GeriatricCare bool   `json:"geriatricCare"`
	Notes         string `json:"notes"`
}

// Pet represents an animal belonging to exactly one client.
type Pet struct {
	PetID     string          `json:"petID"` // Primary Key (UUID)
	ClientID  string          `json:"clientID"`
	Name      string          `json:"name"`
	Species   string          `json:"species"`
	Breed     string          `json:"breed"`
	Weight    decimal.Decimal `json:"weight"` // kilograms
	BirthDate *time.Time      `json:"birthDate"`

	Feeding     *FeedingProtocol `json:"feeding,omitempty"`
	SpecialCare *SpecialCare     `json:"specialCare,omitempty"`

	IsActive           bool   `json:"isActive"`
	InactivationReason string `json:"inactivationReason,omitempty"`
	AuditFields
}
