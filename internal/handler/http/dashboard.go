package http

import (
	"net/http"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/dashboard"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/handler/http/middleware"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Summary implements DashboardHandler.
func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.FromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.dashboardService.Summary(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
