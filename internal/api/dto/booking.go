package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	BookingID       string          `json:"booking_id"`
	SiteID          string          `json:"site_id"`
	Start           time.Time       `json:"start"`
	DurationMinutes int             `json:"duration_minutes"`
	QuantityM3      decimal.Decimal `json:"quantity_m3"`
}

type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type CreateBookingRequest struct {
	SiteID          string          `json:"site_id"`
	Start           *time.Time      `json:"start"`
	DurationMinutes int             `json:"duration_minutes"`
	QuantityM3      decimal.Decimal `json:"quantity_m3"`
}

type CreateBookingResponse struct {
	Booking  BookingResponse   `json:"booking"`
	Warnings []WarningResponse `json:"warnings"`
}
