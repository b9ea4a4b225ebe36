package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/services"
)

type DashboardHandler struct {
	Service *services.InsightsService
}

func NewDashboardHandler(service *services.InsightsService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// Get assembles the home-page view: balance, goal totals, category
// breakdown, six-month trend and the recent-activity feed.
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.Service.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
