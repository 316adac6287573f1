package handler

import (
	"net/http"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
	"hotel-frontdesk/pkg/validator"
)

type RoomCategoryHandler struct {
	categoryUsecase usecase.RoomCategoryUsecase
	validator       *validator.CustomValidator
}

func NewRoomCategoryHandler(categoryUsecase usecase.RoomCategoryUsecase, validator *validator.CustomValidator) *RoomCategoryHandler {
	return &RoomCategoryHandler{
		categoryUsecase: categoryUsecase,
		validator:       validator,
	}
}

// Create handles room category creation
// @Summary Create a room category
// @Tags Room Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomCategoryRequest true "Create Room Category Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /room-categories [post]
func (h *RoomCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomCategoryRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.categoryUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create room category")
		return
	}

	response.Success(w, http.StatusCreated, "Room category created successfully", category)
}

// GetAll handles listing room categories
// @Summary List room categories
// @Tags Room Categories
// @Produce json
// @Success 200 {object} response.Response
// @Router /room-categories [get]
func (h *RoomCategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.GetAll(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get room categories")
		return
	}

	response.Success(w, http.StatusOK, "Room categories retrieved successfully", categories)
}

func (h *RoomCategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room category ID")
		return
	}

	category, err := h.categoryUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get room category")
		return
	}

	response.Success(w, http.StatusOK, "Room category retrieved successfully", category)
}

func (h *RoomCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room category ID")
		return
	}

	var req dto.UpdateRoomCategoryRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.categoryUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update room category")
		return
	}

	response.Success(w, http.StatusOK, "Room category updated successfully", category)
}

func (h *RoomCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid room category ID")
		return
	}

	if err := h.categoryUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete room category")
		return
	}

	response.Success(w, http.StatusOK, "Room category deleted successfully", nil)
}
