package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/middleware"
)

// ExecutiveController handles executive board endpoints
type ExecutiveController struct {
	executiveService services.ExecutiveService
}

// NewExecutiveController creates a new ExecutiveController
func NewExecutiveController(executiveService services.ExecutiveService) *ExecutiveController {
	return &ExecutiveController{
		executiveService: executiveService,
	}
}

// GetExecutives lists the executive board
// @Summary List executives
// @Tags executives
// @Produce json
// @Param all query bool false "Include inactive executives"
// @Success 200 {object} dto.ExecutiveListResponse "Executives"
// @Router /executives [get]
func (c *ExecutiveController) GetExecutives(ctx *gin.Context) {
	activeOnly := ctx.Query("all") != "true"
	executives, err := c.executiveService.GetExecutives(ctx, activeOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExecutiveListResponse{Success: true, Executives: executives})
}

// GetExecutiveByID retrieves a single executive
// @Summary Get executive details
// @Tags executives
// @Produce json
// @Param id path int true "Executive ID"
// @Success 200 {object} dto.ExecutiveResponse "Executive"
// @Failure 404 {object} dto.ErrorResponse "Executive not found"
// @Router /executives/{id} [get]
func (c *ExecutiveController) GetExecutiveByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	executive, err := c.executiveService.GetExecutiveByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExecutiveResponse{Success: true, Executive: executive})
}

// CreateExecutive creates an executive from a multipart form
// @Summary Create an executive
// @Tags executives
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param position formData string true "Position"
// @Param image formData file false "Portrait"
// @Success 201 {object} dto.ExecutiveResponse "Executive created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /executives [post]
func (c *ExecutiveController) CreateExecutive(ctx *gin.Context) {
	var req dto.ExecutiveCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	image, _ := ctx.FormFile("image")
	executive, err := c.executiveService.CreateExecutive(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ExecutiveResponse{Success: true, Executive: executive})
}

// UpdateExecutive applies a partial update to an executive
// @Summary Update an executive
// @Tags executives
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Executive ID"
// @Success 200 {object} dto.ExecutiveResponse "Updated executive"
// @Failure 404 {object} dto.ErrorResponse "Executive not found"
// @Router /executives/{id} [put]
func (c *ExecutiveController) UpdateExecutive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ExecutiveUpdateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	image, _ := ctx.FormFile("image")
	executive, err := c.executiveService.UpdateExecutive(ctx, id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExecutiveResponse{Success: true, Executive: executive})
}

// DeleteExecutive removes an executive
// @Summary Delete an executive
// @Tags executives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Executive ID"
// @Success 200 {object} dto.SuccessResponse "Executive deleted"
// @Failure 404 {object} dto.ErrorResponse "Executive not found"
// @Router /executives/{id} [delete]
func (c *ExecutiveController) DeleteExecutive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.executiveService.DeleteExecutive(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Executive deleted"))
}
