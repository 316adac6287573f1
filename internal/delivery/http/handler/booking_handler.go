package handler

import (
	"context"
	"net/http"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
	"hotel-frontdesk/pkg/validator"

	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// CreateBooking handles booking creation
// @Summary Create a booking
// @Description Registers or reuses the guest, records the initial payment and marks the room Booked in one transaction
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create booking")
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// QuoteBooking prices a stay without saving anything
// @Summary Quote a stay
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.QuoteBookingRequest true "Quote Request"
// @Success 200 {object} response.Response
// @Router /bookings/quote [post]
func (h *BookingHandler) QuoteBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteBookingRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	quote, err := h.bookingUsecase.QuoteBooking(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to quote booking")
		return
	}

	response.Success(w, http.StatusOK, "Quote calculated successfully", quote)
}

// GetBookings handles listing bookings
// @Summary List bookings
// @Tags Bookings
// @Produce json
// @Param status query string false "active, completed or cancelled"
// @Param room_id query string false "Room ID"
// @Param guest_id query string false "Guest ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /bookings [get]
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	roomID, err := queryUUID(r, "room_id")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}
	guestID, err := queryUUID(r, "guest_id")
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
		return
	}

	page, limit := pagination(r)

	bookings, total, err := h.bookingUsecase.ListBookings(r.Context(), r.URL.Query().Get("status"), roomID, guestID, page, limit)
	if err != nil {
		writeError(w, err, "Failed to get bookings")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Bookings retrieved successfully", bookings, response.NewMeta(page, limit, total))
}

func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.bookingUsecase.CheckIn, "Guest checked in successfully", "Failed to check in")
}

func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.bookingUsecase.CheckOut, "Guest checked out successfully", "Failed to check out")
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.bookingUsecase.CancelBooking, "Booking cancelled successfully", "Failed to cancel booking")
}

type bookingAction func(ctx context.Context, id uuid.UUID, req *dto.BookingActionRequest) (*dto.BookingDetailResponse, error)

func (h *BookingHandler) action(w http.ResponseWriter, r *http.Request, run bookingAction, okMessage, failMessage string) {
	id, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.BookingActionRequest
	if err := decodeJSON(r, &req, true); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := run(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, failMessage)
		return
	}

	response.Success(w, http.StatusOK, okMessage, booking)
}
