package domain

// Client represents a pet owner registered with the business.
// ConsentGiven records explicit data-processing consent; a client row
// must never be created without it.
type Client struct {
	ClientID     string  `json:"clientID"` // Primary Key (UUID)
	LocationID   *string `json:"locationID"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Notes        string  `json:"notes"`
	ConsentGiven bool    `json:"consentGiven"`
	AuditFields
}

// FullName returns the client's display name.
func (c Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
