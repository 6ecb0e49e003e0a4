package domain

import "github.com/shopspring/decimal"

// Service is a named care offering such as "Boarding" (overnight, priced
// per night) or "Daycare" (single day). BasePrice is the daily rate used
// when no weight band overrides it.
type Service struct {
	ServiceID   string          `json:"serviceID"` // Primary Key (UUID)
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// ExtraService is an add-on attachable to a reservation. PerDay extras
// are charged once per stay day, flat extras once per reservation.
type ExtraService struct {
	ExtraServiceID string          `json:"extraServiceID"` // Primary Key (UUID)
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	PerDay         bool            `json:"perDay"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
