package handler

import (
	"io"
	"net/http"

	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"

	"github.com/gorilla/mux"
)

type PreferenceHandler struct {
	preferenceUsecase usecase.PreferenceUsecase
}

func NewPreferenceHandler(preferenceUsecase usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUsecase: preferenceUsecase,
	}
}

func (h *PreferenceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	preferences, err := h.preferenceUsecase.ListPreferences(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get preferences")
		return
	}

	response.Success(w, http.StatusOK, "Preferences retrieved successfully", preferences)
}

func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	preference, err := h.preferenceUsecase.GetPreference(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		writeError(w, err, "Failed to get preference")
		return
	}

	response.Success(w, http.StatusOK, "Preference retrieved successfully", preference)
}

// Set stores the raw JSON body as the preference value.
func (h *PreferenceHandler) Set(w http.ResponseWriter, r *http.Request) {
	// One byte over the limit so the usecase can report the oversize.
	body, err := io.ReadAll(io.LimitReader(r.Body, usecase.MaxPreferenceSize+1))
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	preference, err := h.preferenceUsecase.SetPreference(r.Context(), mux.Vars(r)["key"], body)
	if err != nil {
		writeError(w, err, "Failed to save preference")
		return
	}

	response.Success(w, http.StatusOK, "Preference saved successfully", preference)
}

func (h *PreferenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.preferenceUsecase.DeletePreference(r.Context(), mux.Vars(r)["key"]); err != nil {
		writeError(w, err, "Failed to delete preference")
		return
	}

	response.Success(w, http.StatusOK, "Preference deleted successfully", nil)
}
