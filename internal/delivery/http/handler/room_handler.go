package handler

import (
	"net/http"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
	"hotel-frontdesk/pkg/validator"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
	validator   *validator.CustomValidator
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, validator *validator.CustomValidator) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
		validator:   validator,
	}
}

// Create handles room creation
// @Summary Create a room
// @Description New rooms start in the default status
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.CreateRoom(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create room")
		return
	}

	response.Success(w, http.StatusCreated, "Room created successfully", room)
}

// GetAll handles listing rooms
// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Param category_id query int false "Filter by category"
// @Param status_id query int false "Filter by current status"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /rooms [get]
func (h *RoomHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	rooms, total, err := h.roomUsecase.ListRooms(r.Context(), queryInt(r, "category_id"), queryInt(r, "status_id"), page, limit)
	if err != nil {
		writeError(w, err, "Failed to get rooms")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Rooms retrieved successfully", rooms, response.NewMeta(page, limit, total))
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	room, err := h.roomUsecase.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get room")
		return
	}

	response.Success(w, http.StatusOK, "Room retrieved successfully", room)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	var req dto.UpdateRoomRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update room")
		return
	}

	response.Success(w, http.StatusOK, "Room updated successfully", room)
}
