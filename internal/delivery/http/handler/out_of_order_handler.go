package handler

import (
	"net/http"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
	"hotel-frontdesk/pkg/validator"
)

type OutOfOrderHandler struct {
	outOfOrderUsecase usecase.OutOfOrderUsecase
	validator         *validator.CustomValidator
}

func NewOutOfOrderHandler(outOfOrderUsecase usecase.OutOfOrderUsecase, validator *validator.CustomValidator) *OutOfOrderHandler {
	return &OutOfOrderHandler{
		outOfOrderUsecase: outOfOrderUsecase,
		validator:         validator,
	}
}

// MarkOutOfOrder takes a room out of service
// @Summary Mark a room out of order
// @Tags Out of Order
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.MarkOutOfOrderRequest true "Reason and details"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/{id}/out-of-order [post]
func (h *OutOfOrderHandler) MarkOutOfOrder(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	var req dto.MarkOutOfOrderRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.outOfOrderUsecase.MarkOutOfOrder(r.Context(), roomID, &req)
	if err != nil {
		writeError(w, err, "Failed to mark room out of order")
		return
	}

	response.Success(w, http.StatusOK, "Room marked out of order", room)
}

func (h *OutOfOrderHandler) GetOutOfOrderRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.outOfOrderUsecase.ListOutOfOrder(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get out of order rooms")
		return
	}

	response.Success(w, http.StatusOK, "Out of order rooms retrieved successfully", rooms)
}

// MarkAvailable returns an out-of-order room to the default status.
func (h *OutOfOrderHandler) MarkAvailable(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	var req dto.MarkAvailableRequest
	if err := decodeJSON(r, &req, true); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.outOfOrderUsecase.MarkAvailable(r.Context(), roomID, &req)
	if err != nil {
		writeError(w, err, "Failed to mark room available")
		return
	}

	response.Success(w, http.StatusOK, "Room marked available", entry)
}
