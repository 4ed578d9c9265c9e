package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
	"github.com/featherworks/aviary_backend/internal/dto"
)

// statisticsHandler serves the dashboard aggregate.
type statisticsHandler struct {
	statisticsService portssvc.StatisticsSvcFacade
}

// registerStatisticsRoutes registers routes related to statistics.
func registerStatisticsRoutes(rg *gin.RouterGroup, statisticsService portssvc.StatisticsSvcFacade) {
	h := &statisticsHandler{statisticsService: statisticsService}

	stats := rg.Group("/statistics")
	{
		stats.GET("/overview", h.getOverview)
	}
}

// getOverview godoc
// @Summary Get the flock overview
// @Description Returns flock-wide counters: status breakdown, species counts, open-sale revenue and archived cycles
// @Tags statistics
// @Produce  json
// @Success 200 {object} dto.StatisticsOverviewResponse
// @Failure 500 {object} map[string]string "Failed to load statistics"
// @Router /statistics/overview [get]
func (h *statisticsHandler) getOverview(c *gin.Context) {
	overview, err := h.statisticsService.GetOverview(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to load statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatisticsOverviewResponse(overview))
}
