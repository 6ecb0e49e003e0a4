package handlers

import (
	"fmt"
	"time"
)

const dateParamLayout = "2006-01-02"

// parseDateParam parses an optional YYYY-MM-DD query value. Empty means unset.
func parseDateParam(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateParamLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date, expected YYYY-MM-DD: %s", name, value)
	}
	return &t, nil
}
