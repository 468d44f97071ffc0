package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/middleware"
)

// CarouselController handles homepage carousel image endpoints
type CarouselController struct {
	carouselService services.CarouselService
}

// NewCarouselController creates a new CarouselController
func NewCarouselController(carouselService services.CarouselService) *CarouselController {
	return &CarouselController{carouselService: carouselService}
}

// GetImages lists carousel images in display order
// @Summary List carousel images
// @Description Lists active carousel images in display order. Pass all=true to include inactive images; type narrows to a single image type.
// @Tags carousel
// @Produce json
// @Param all query bool false "Include inactive images"
// @Param type query string false "Image type" Enums(student, event, activity, achievement)
// @Success 200 {object} dto.CarouselListResponse "Carousel images"
// @Router /carousel [get]
func (c *CarouselController) GetImages(ctx *gin.Context) {
	activeOnly := ctx.Query("all") != "true"

	images, err := c.carouselService.GetImages(ctx, activeOnly, ctx.Query("type"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CarouselListResponse{Success: true, Images: images})
}

// GetImageByID returns a single carousel image
// @Summary Get a carousel image
// @Tags carousel
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} dto.CarouselResponse "Carousel image"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Router /carousel/{id} [get]
func (c *CarouselController) GetImageByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	img, err := c.carouselService.GetImageByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CarouselResponse{Success: true, Image: img})
}

// CreateImage uploads a new carousel image
// @Summary Upload a carousel image
// @Tags carousel
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Image title"
// @Param description formData string false "Description"
// @Param imageType formData string false "Image type" Enums(student, event, activity, achievement)
// @Param displayOrder formData int false "Display order"
// @Param aspectRatio formData string false "Aspect ratio" Enums(landscape, portrait, square)
// @Param imageUrl formData string false "Externally hosted image URL (used when no file is sent)"
// @Param image formData file false "Image file"
// @Success 201 {object} dto.CarouselResponse "Created image"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Router /carousel [post]
func (c *CarouselController) CreateImage(ctx *gin.Context) {
	var req dto.CarouselCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	// The file is optional; records can also point at an imageUrl
	file, _ := ctx.FormFile("image")

	img, err := c.carouselService.CreateImage(ctx, &req, file, middleware.SubjectName(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CarouselResponse{Success: true, Image: img})
}

// UpdateImage applies a partial update to a carousel image
// @Summary Update a carousel image
// @Tags carousel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Param request body dto.CarouselUpdateRequest true "Fields to update"
// @Success 200 {object} dto.CarouselResponse "Updated image"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Router /carousel/{id} [put]
func (c *CarouselController) UpdateImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CarouselUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	img, err := c.carouselService.UpdateImage(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CarouselResponse{Success: true, Image: img})
}

// ToggleImage flips a carousel image's visibility
// @Summary Toggle a carousel image
// @Tags carousel
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} dto.CarouselResponse "Toggled image"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Router /carousel/{id}/toggle [patch]
func (c *CarouselController) ToggleImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	img, err := c.carouselService.ToggleImage(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CarouselResponse{Success: true, Image: img})
}

// DeleteImage removes a carousel image and its stored file
// @Summary Delete a carousel image
// @Tags carousel
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} dto.SuccessResponse "Image deleted"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Router /carousel/{id} [delete]
func (c *CarouselController) DeleteImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.carouselService.DeleteImage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Carousel image deleted"))
}
