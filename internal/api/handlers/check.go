package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"concrete-booking-service/internal/api/dto"
	"concrete-booking-service/internal/domain"
	"concrete-booking-service/internal/ports"
	"concrete-booking-service/internal/schedule"

	"github.com/shopspring/decimal"
)

type CheckHandler struct {
	Repo   ports.BookingRepository
	Sites  ports.SiteDirectory
	Config schedule.CheckConfig
}

// Check runs the advisory scheduling-conflict check for a proposed booking
// without persisting anything. Warnings never block a save; the caller
// decides whether to proceed.
func (h *CheckHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CheckRequest

	defer r.Body.Close()
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	event, msg := proposedEvent(req.BookingID, req.SiteID, req.Start, req.DurationMinutes, req.QuantityM3)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	warnings, err := schedule.CheckBooking(r.Context(), event, h.Repo, h.Sites, h.Config)
	if err != nil {
		log.Printf("check booking failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CheckResponse{Warnings: warningsResponse(warnings)})
}

// Validate the form fields of a proposed booking and build the event under
// evaluation. Returns a user-facing message on the first violation.
func proposedEvent(
	bookingID, siteID string,
	start *time.Time,
	durationMinutes int,
	quantity decimal.Decimal,
) (domain.DeliveryEvent, string) {
	if strings.TrimSpace(siteID) == "" {
		return domain.DeliveryEvent{}, "site_id is required"
	}
	if start == nil {
		return domain.DeliveryEvent{}, "start is required"
	}
	if durationMinutes < 1 || durationMinutes > 720 {
		return domain.DeliveryEvent{}, "duration_minutes must be between 1 and 720"
	}
	if quantity.IsNegative() {
		return domain.DeliveryEvent{}, "quantity_m3 must not be negative"
	}

	return domain.DeliveryEvent{
		ID:              domain.BookingID(strings.TrimSpace(bookingID)),
		Site:            domain.SiteID(strings.TrimSpace(siteID)),
		Start:           start.UTC(),
		DurationMinutes: durationMinutes,
		Quantity:        quantity,
	}, ""
}

func warningsResponse(warnings []domain.Warning) []dto.WarningResponse {
	out := make([]dto.WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, dto.WarningResponse{Kind: string(w.Kind), Text: w.Text})
	}
	return out
}
