package handler

import (
	"net/http"

	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetSummary returns room, booking and payment counters for the front desk
// @Summary Dashboard summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardUsecase.GetSummary(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get dashboard summary")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}
