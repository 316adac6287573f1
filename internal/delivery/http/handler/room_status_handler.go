package handler

import (
	"net/http"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
	"hotel-frontdesk/pkg/validator"
)

type RoomStatusHandler struct {
	statusUsecase usecase.RoomStatusUsecase
	validator     *validator.CustomValidator
}

func NewRoomStatusHandler(statusUsecase usecase.RoomStatusUsecase, validator *validator.CustomValidator) *RoomStatusHandler {
	return &RoomStatusHandler{
		statusUsecase: statusUsecase,
		validator:     validator,
	}
}

// Create handles room status creation
// @Summary Create a room status
// @Description Setting is_default moves the default flag to the new status
// @Tags Room Statuses
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomStatusRequest true "Create Room Status Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /room-statuses [post]
func (h *RoomStatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomStatusRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, err := h.statusUsecase.CreateStatus(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create room status")
		return
	}

	response.Success(w, http.StatusCreated, "Room status created successfully", status)
}

// GetAll handles listing room statuses
// @Summary List room statuses
// @Tags Room Statuses
// @Produce json
// @Param active query bool false "Only active statuses"
// @Success 200 {object} response.Response
// @Router /room-statuses [get]
func (h *RoomStatusHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	statuses, err := h.statusUsecase.ListStatuses(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err, "Failed to get room statuses")
		return
	}

	response.Success(w, http.StatusOK, "Room statuses retrieved successfully", statuses)
}

func (h *RoomStatusHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room status ID")
		return
	}

	status, err := h.statusUsecase.GetStatus(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get room status")
		return
	}

	response.Success(w, http.StatusOK, "Room status retrieved successfully", status)
}

func (h *RoomStatusHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room status ID")
		return
	}

	var req dto.UpdateRoomStatusRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, err := h.statusUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update room status")
		return
	}

	response.Success(w, http.StatusOK, "Room status updated successfully", status)
}

func (h *RoomStatusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room status ID")
		return
	}

	if err := h.statusUsecase.DeleteStatus(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete room status")
		return
	}

	response.Success(w, http.StatusOK, "Room status deleted successfully", nil)
}

// UpdateRoomStatus handles moving a room to another status
// @Summary Change the current status of a room
// @Description Maintenance and Out of Order require notes. Appends one status history entry.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomCurrentStatusRequest true "Status change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/{id}/status [put]
func (h *RoomStatusHandler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	var req dto.UpdateRoomCurrentStatusRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.statusUsecase.UpdateRoomCurrentStatus(r.Context(), roomID, &req)
	if err != nil {
		writeError(w, err, "Failed to update room status")
		return
	}

	response.Success(w, http.StatusOK, "Room status updated successfully", entry)
}

func (h *RoomStatusHandler) GetRoomStatusHistory(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	history, err := h.statusUsecase.GetRoomStatusHistory(r.Context(), roomID)
	if err != nil {
		writeError(w, err, "Failed to get room status history")
		return
	}

	response.Success(w, http.StatusOK, "Room status history retrieved successfully", history)
}
