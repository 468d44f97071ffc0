package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/middleware"
)

// StatisticsController serves the public landing-page statistics
type StatisticsController struct {
	statisticsService services.StatisticsService
}

// NewStatisticsController creates a new StatisticsController
func NewStatisticsController(statisticsService services.StatisticsService) *StatisticsController {
	return &StatisticsController{statisticsService: statisticsService}
}

// GetStatistics returns association activity counters
// @Summary Get association statistics
// @Description Returns aggregate counters shown on the public landing page
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.StatisticsResponse "Statistics"
// @Router /statistics [get]
func (c *StatisticsController) GetStatistics(ctx *gin.Context) {
	stats, err := c.statisticsService.GetStatistics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatisticsResponse{Success: true, Statistics: *stats})
}
