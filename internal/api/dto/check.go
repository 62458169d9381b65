package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckRequest struct {
	// Set when the proposed booking is an edit of an existing record, so
	// the stored original is excluded from the conflict scan.
	BookingID       string          `json:"booking_id"`
	SiteID          string          `json:"site_id"`
	Start           *time.Time      `json:"start"`
	DurationMinutes int             `json:"duration_minutes"`
	QuantityM3      decimal.Decimal `json:"quantity_m3"`
}

type WarningResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type CheckResponse struct {
	Warnings []WarningResponse `json:"warnings"`
}
