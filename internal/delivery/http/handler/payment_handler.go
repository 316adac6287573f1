package handler

import (
	"net/http"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
	"hotel-frontdesk/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// RecordPayment handles an additional payment against a booking
// @Summary Record a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.RecordPaymentRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.RecordPayment(r.Context(), bookingID, &req)
	if err != nil {
		writeError(w, err, "Failed to record payment")
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", payment)
}

func (h *PaymentHandler) GetBookingPayments(w http.ResponseWriter, r *http.Request) {
	bookingID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	payments, err := h.paymentUsecase.ListPaymentsByBooking(r.Context(), bookingID)
	if err != nil {
		writeError(w, err, "Failed to get payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	payments, total, err := h.paymentUsecase.ListPayments(r.Context(), r.URL.Query().Get("status"), page, limit)
	if err != nil {
		writeError(w, err, "Failed to get payments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Payments retrieved successfully", payments, response.NewMeta(page, limit, total))
}

func (h *PaymentHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	payment, err := h.paymentUsecase.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}
