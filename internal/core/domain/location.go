package domain

// Location represents a physical branch of the boarding business.
type Location struct {
	LocationID string `json:"locationID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
