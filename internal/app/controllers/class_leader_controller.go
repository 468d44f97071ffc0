package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/middleware"
)

// ClassLeaderController handles class leader endpoints
type ClassLeaderController struct {
	leaderService services.ClassLeaderService
}

// NewClassLeaderController creates a new ClassLeaderController
func NewClassLeaderController(leaderService services.ClassLeaderService) *ClassLeaderController {
	return &ClassLeaderController{
		leaderService: leaderService,
	}
}

// GetClassLeaders lists class leaders, optionally filtered by year
// @Summary List class leaders
// @Tags class-leaders
// @Produce json
// @Param year query int false "Year of study filter"
// @Param all query bool false "Include inactive leaders"
// @Success 200 {object} dto.ClassLeaderListResponse "Class leaders"
// @Router /class-leaders [get]
func (c *ClassLeaderController) GetClassLeaders(ctx *gin.Context) {
	var year *int
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid year filter"))
			return
		}
		year = &parsed
	}

	activeOnly := ctx.Query("all") != "true"
	leaders, err := c.leaderService.GetClassLeaders(ctx, year, activeOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClassLeaderListResponse{Success: true, Leaders: leaders})
}

// GetStats tallies class leaders per year of study
// @Summary Class leader statistics
// @Tags class-leaders
// @Produce json
// @Success 200 {object} dto.ClassLeaderStatsResponse "Per-year counts"
// @Router /class-leaders/stats [get]
func (c *ClassLeaderController) GetStats(ctx *gin.Context) {
	stats, err := c.leaderService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// GetClassLeaderByID retrieves a single class leader
// @Summary Get class leader details
// @Tags class-leaders
// @Produce json
// @Param id path int true "Class leader ID"
// @Success 200 {object} dto.ClassLeaderResponse "Class leader"
// @Failure 404 {object} dto.ErrorResponse "Class leader not found"
// @Router /class-leaders/{id} [get]
func (c *ClassLeaderController) GetClassLeaderByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	leader, err := c.leaderService.GetClassLeaderByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClassLeaderResponse{Success: true, Leader: leader})
}

// CreateClassLeader creates a class leader from a multipart form
// @Summary Create a class leader
// @Tags class-leaders
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param position formData string true "Position"
// @Param yearOfStudy formData int true "Year of study"
// @Param image formData file false "Portrait"
// @Success 201 {object} dto.ClassLeaderResponse "Class leader created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /class-leaders [post]
func (c *ClassLeaderController) CreateClassLeader(ctx *gin.Context) {
	var req dto.ClassLeaderCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	image, _ := ctx.FormFile("image")
	leader, err := c.leaderService.CreateClassLeader(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ClassLeaderResponse{Success: true, Leader: leader})
}

// UpdateClassLeader applies a partial update to a class leader
// @Summary Update a class leader
// @Tags class-leaders
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class leader ID"
// @Success 200 {object} dto.ClassLeaderResponse "Updated class leader"
// @Failure 404 {object} dto.ErrorResponse "Class leader not found"
// @Router /class-leaders/{id} [put]
func (c *ClassLeaderController) UpdateClassLeader(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ClassLeaderUpdateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	image, _ := ctx.FormFile("image")
	leader, err := c.leaderService.UpdateClassLeader(ctx, id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClassLeaderResponse{Success: true, Leader: leader})
}

// DeleteClassLeader removes a class leader
// @Summary Delete a class leader
// @Tags class-leaders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class leader ID"
// @Success 200 {object} dto.SuccessResponse "Class leader deleted"
// @Failure 404 {object} dto.ErrorResponse "Class leader not found"
// @Router /class-leaders/{id} [delete]
func (c *ClassLeaderController) DeleteClassLeader(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.leaderService.DeleteClassLeader(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Class leader deleted"))
}
