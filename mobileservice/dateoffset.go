// Package mobileservice defines client-side value types for a Windows Azure
// Mobile Service: the authenticated end user and a date wrapper used when
// exchanging timestamps with the service.
package mobileservice

import "time"

// DateOffset wraps a single point in time exchanged with the mobile service,
// marking service date values apart from plain client dates. The wrapped
// value is held as-is; no transformation or validation is applied.
type DateOffset struct {
	Date time.Time
}

// NewDateOffset wraps the given date. Any value is accepted, including the
// zero time.
func NewDateOffset(date time.Time) DateOffset {
	return DateOffset{Date: date}
}
