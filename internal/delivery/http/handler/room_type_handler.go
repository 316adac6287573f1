package handler

import (
	"net/http"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
	"hotel-frontdesk/pkg/validator"
)

type RoomTypeHandler struct {
	roomTypeUsecase usecase.RoomTypeUsecase
	validator       *validator.CustomValidator
}

func NewRoomTypeHandler(roomTypeUsecase usecase.RoomTypeUsecase, validator *validator.CustomValidator) *RoomTypeHandler {
	return &RoomTypeHandler{
		roomTypeUsecase: roomTypeUsecase,
		validator:       validator,
	}
}

// Create handles room type creation
// @Summary Create a room type
// @Tags Room Types
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /room-types [post]
func (h *RoomTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomTypeRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	roomType, err := h.roomTypeUsecase.CreateRoomType(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create room type")
		return
	}

	response.Success(w, http.StatusCreated, "Room type created successfully", roomType)
}

func (h *RoomTypeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.roomTypeUsecase.ListRoomTypes(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get room types")
		return
	}

	response.Success(w, http.StatusOK, "Room types retrieved successfully", roomTypes)
}

func (h *RoomTypeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room type ID")
		return
	}

	roomType, err := h.roomTypeUsecase.GetRoomType(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get room type")
		return
	}

	response.Success(w, http.StatusOK, "Room type retrieved successfully", roomType)
}

func (h *RoomTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room type ID")
		return
	}

	var req dto.UpdateRoomTypeRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	roomType, err := h.roomTypeUsecase.UpdateRoomType(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update room type")
		return
	}

	response.Success(w, http.StatusOK, "Room type updated successfully", roomType)
}

// Delete moves a room type to the recycle bin
// @Summary Soft delete a room type
// @Tags Room Types
// @Accept json
// @Produce json
// @Param id path int true "Room Type ID"
// @Param request body dto.RoomTypeActionRequest false "Performer"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /room-types/{id} [delete]
func (h *RoomTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	if err := h.roomTypeUsecase.DeleteRoomType(r.Context(), id, req.PerformedBy); err != nil {
		writeError(w, err, "Failed to delete room type")
		return
	}

	response.Success(w, http.StatusOK, "Room type moved to recycle bin", nil)
}

func (h *RoomTypeHandler) GetDeleted(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.roomTypeUsecase.ListDeletedRoomTypes(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get deleted room types")
		return
	}

	response.Success(w, http.StatusOK, "Deleted room types retrieved successfully", roomTypes)
}

func (h *RoomTypeHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	roomType, err := h.roomTypeUsecase.RestoreRoomType(r.Context(), id, req.PerformedBy)
	if err != nil {
		writeError(w, err, "Failed to restore room type")
		return
	}

	response.Success(w, http.StatusOK, "Room type restored successfully", roomType)
}

// PermanentDelete removes a room type that is already in the recycle bin.
func (h *RoomTypeHandler) PermanentDelete(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	if err := h.roomTypeUsecase.PermanentlyDeleteRoomType(r.Context(), id, req.PerformedBy); err != nil {
		writeError(w, err, "Failed to permanently delete room type")
		return
	}

	response.Success(w, http.StatusOK, "Room type permanently deleted", nil)
}

// GetHistory lists room type history, optionally narrowed by ?room_type_id=.
func (h *RoomTypeHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.roomTypeUsecase.ListRoomTypeHistory(r.Context(), queryInt(r, "room_type_id"))
	if err != nil {
		writeError(w, err, "Failed to get room type history")
		return
	}

	response.Success(w, http.StatusOK, "Room type history retrieved successfully", history)
}

func (h *RoomTypeHandler) GetHistoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room type ID")
		return
	}

	history, err := h.roomTypeUsecase.ListRoomTypeHistory(r.Context(), &id)
	if err != nil {
		writeError(w, err, "Failed to get room type history")
		return
	}

	response.Success(w, http.StatusOK, "Room type history retrieved successfully", history)
}

func (h *RoomTypeHandler) actionRequest(w http.ResponseWriter, r *http.Request) (int, *dto.RoomTypeActionRequest, bool) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room type ID")
		return 0, nil, false
	}

	var req dto.RoomTypeActionRequest
	if err := decodeJSON(r, &req, true); err != nil {
		response.BadRequest(w, "Invalid request body")
		return 0, nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return 0, nil, false
	}

	return id, &req, true
}
