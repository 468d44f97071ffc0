package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/middleware"
)

// ResourceController handles study resource endpoints
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// GetResources lists study resources matching the query filters
// @Summary List resources
// @Description Lists active study resources, filterable by type, year and subject
// @Tags resources
// @Produce json
// @Param type query string false "Resource type (exam, cat, notes)"
// @Param year query int false "Year of study"
// @Param subject query string false "Subject substring"
// @Param all query bool false "Include inactive resources (admin view)"
// @Success 200 {object} dto.ResourceListResponse "Resources"
// @Router /resources [get]
func (c *ResourceController) GetResources(ctx *gin.Context) {
	var filter dto.ResourceFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	includeInactive := ctx.Query("all") == "true"
	resources, err := c.resourceService.GetResources(ctx, &filter, includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResourceListResponse{
		Success:   true,
		Resources: resources,
		Total:     int64(len(resources)),
	})
}

// GetResourceByID retrieves a single resource
// @Summary Get resource details
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.ResourceResponse "Resource"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [get]
func (c *ResourceController) GetResourceByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	resource, err := c.resourceService.GetResourceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResourceResponse{Success: true, Resource: resource})
}

// CreateResource stores a new resource record
// @Summary Create a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResourceCreateRequest true "Resource data"
// @Success 201 {object} dto.ResourceResponse "Resource created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.ResourceCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resource, err := c.resourceService.CreateResource(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ResourceResponse{Success: true, Resource: resource})
}

// UpdateResource applies a partial update to a resource
// @Summary Update a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param request body dto.ResourceUpdateRequest true "Fields to update"
// @Success 200 {object} dto.ResourceResponse "Updated resource"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [put]
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ResourceUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resource, err := c.resourceService.UpdateResource(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResourceResponse{Success: true, Resource: resource})
}

// ToggleResource flips a resource's public visibility
// @Summary Toggle resource visibility
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.SuccessResponse "Resource toggled"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id}/toggle [patch]
func (c *ResourceController) ToggleResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.resourceService.ToggleResource(ctx, id, req.Active); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Resource updated"))
}

// DeleteResource removes a resource record
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.SuccessResponse "Resource deleted"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.resourceService.DeleteResource(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Resource deleted"))
}
