package handlers

import (
	"log"
	"net/http"
	"time"

	"concrete-booking-service/internal/api/dto"
	"concrete-booking-service/internal/domain"
	"concrete-booking-service/internal/ports"
	"concrete-booking-service/internal/schedule"

	"github.com/google/uuid"
)

type BookingHandler struct {
	Repo   ports.BookingRepository
	Sites  ports.SiteDirectory
	Config schedule.CheckConfig
}

func (h *BookingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// list returns the active bookings of one calendar day (?date=YYYY-MM-DD).
func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		writeError(w, r, http.StatusBadRequest, "date query parameter is required (YYYY-MM-DD)")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", dateParam, time.UTC)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}

	events, err := h.Repo.ListBookingsForDay(r.Context(), day)
	if err != nil {
		log.Printf("list bookings failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListBookingsResponse{Bookings: make([]dto.BookingResponse, 0, len(events))}
	for _, e := range events {
		res.Bookings = append(res.Bookings, bookingResponse(e))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// create stores a new booking and returns it together with the conflict
// check's warnings. Warnings are advisory only and never prevent the save.
func (h *BookingHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest

	defer r.Body.Close()
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	event, msg := proposedEvent(uuid.NewString(), req.SiteID, req.Start, req.DurationMinutes, req.QuantityM3)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	// The check runs against the day as stored before this booking exists,
	// exactly as it would from the booking form.
	warnings, err := schedule.CheckBooking(r.Context(), event, h.Repo, h.Sites, h.Config)
	if err != nil {
		log.Printf("check booking failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.Repo.CreateBooking(r.Context(), event); err != nil {
		log.Printf("create booking failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CreateBookingResponse{
		Booking:  bookingResponse(event),
		Warnings: warningsResponse(warnings),
	}
	writeJSON(w, r, http.StatusCreated, res)
}

func bookingResponse(e domain.DeliveryEvent) dto.BookingResponse {
	return dto.BookingResponse{
		BookingID:       string(e.ID),
		SiteID:          string(e.Site),
		Start:           e.Start,
		DurationMinutes: e.DurationMinutes,
		QuantityM3:      e.Quantity,
	}
}
