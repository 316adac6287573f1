package handler

import (
	"net/http"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
	"hotel-frontdesk/pkg/validator"
)

type SettingHandler struct {
	settingUsecase usecase.SettingUsecase
	validator      *validator.CustomValidator
}

func NewSettingHandler(settingUsecase usecase.SettingUsecase, validator *validator.CustomValidator) *SettingHandler {
	return &SettingHandler{
		settingUsecase: settingUsecase,
		validator:      validator,
	}
}

func (h *SettingHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingUsecase.GetSettings(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

// UpdateSettings replaces the system settings
// @Summary Update system settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /settings [put]
func (h *SettingHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	if err := decodeJSON(r, &req, false); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingUsecase.UpdateSettings(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to update settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings updated successfully", settings)
}
