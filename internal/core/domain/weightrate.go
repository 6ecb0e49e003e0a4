package domain

import "github.com/shopspring/decimal"

// WeightRate is one band of the weight-tiered rate table. A weight w
// matches the band when MinWeight < w <= MaxWeight; the lowest band also
// admits w == MinWeight.
type WeightRate struct {
	WeightRateID string          `json:"weightRateID"` // Primary Key (UUID)
	MinWeight    decimal.Decimal `json:"minWeight"`
	MaxWeight    decimal.Decimal `json:"maxWeight"`
	BoardingRate decimal.Decimal `json:"boardingRate"`
	DaycareRate  decimal.Decimal `json:"daycareRate"`
	AuditFields
}
