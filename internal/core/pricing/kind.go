// Package pricing implements the reservation pricing and closing rules:
// weight-tiered daily rate resolution, stay cost aggregation, proportional
// deposit splitting and the closing state machine. Everything here is pure;
// persistence and HTTP concerns live in the services and handlers layers.
package pricing

import "strings"

// ServiceKind distinguishes the two rate columns of the weight table.
type ServiceKind string

const (
	Boarding ServiceKind = "BOARDING" // overnight, priced per night
	Daycare  ServiceKind = "DAYCARE"  // single day, end date forced to start date
)

// daycare keyword stems, matched against the lowered service name. Stems
// keep the match accent- and suffix-tolerant ("Guardería", "guarderia").
var daycareKeywords = []string{"guarder", "daycare", "day care"}

// ResolveKind maps a service name to its kind by fuzzy keyword matching.
// Unrecognized names resolve to Boarding, which charges through the base
// price fallback unless a weight band matches.
func ResolveKind(name string) ServiceKind {
	lowered := strings.ToLower(name)
	for _, kw := range daycareKeywords {
		if strings.Contains(lowered, kw) {
			return Daycare
		}
	}
	return Boarding
}

// perDayMarkers flag add-on names that charge per stay day. Catalog rows
// carry an explicit per-day column; this only backfills legacy names that
// encode the convention in the label.
var perDayMarkers = []string{"/día", "/dia", "per day", "por día", "por dia"}

// PerDayName reports whether an add-on name follows the per-day naming
// convention.
func PerDayName(name string) bool {
	lowered := strings.ToLower(name)
	for _, marker := range perDayMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
