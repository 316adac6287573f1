package handler

import (
	"net/http"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
	"hotel-frontdesk/pkg/validator"
)

type GuestHandler struct {
	guestUsecase usecase.GuestUsecase
	validator    *validator.CustomValidator
}

func NewGuestHandler(guestUsecase usecase.GuestUsecase, validator *validator.CustomValidator) *GuestHandler {
	return &GuestHandler{
		guestUsecase: guestUsecase,
		validator:    validator,
	}
}

// Create handles guest registration
// @Summary Register a guest
// @Tags Guests
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /guests [post]
func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGuestRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	guest, err := h.guestUsecase.CreateGuest(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create guest")
		return
	}

	response.Success(w, http.StatusCreated, "Guest created successfully", guest)
}

// GetAll handles listing guests
// @Summary List guests
// @Tags Guests
// @Produce json
// @Param search query string false "Name, phone, email or document number"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /guests [get]
func (h *GuestHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	guests, total, err := h.guestUsecase.ListGuests(r.Context(), r.URL.Query().Get("search"), page, limit)
	if err != nil {
		writeError(w, err, "Failed to get guests")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Guests retrieved successfully", guests, response.NewMeta(page, limit, total))
}

func (h *GuestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
		return
	}

	guest, err := h.guestUsecase.GetGuest(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get guest")
		return
	}

	response.Success(w, http.StatusOK, "Guest retrieved successfully", guest)
}

func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
		return
	}

	var req dto.UpdateGuestRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	guest, err := h.guestUsecase.UpdateGuest(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update guest")
		return
	}

	response.Success(w, http.StatusOK, "Guest updated successfully", guest)
}

func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid guest ID")
		return
	}

	if err := h.guestUsecase.DeleteGuest(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete guest")
		return
	}

	response.Success(w, http.StatusOK, "Guest deleted successfully", nil)
}
