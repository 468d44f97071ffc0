package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/middleware"
)

// EventController handles event endpoints
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// GetEvents lists events
// @Summary List events
// @Description Lists events, newest first. Pass all=true to include inactive events.
// @Tags events
// @Produce json
// @Param all query bool false "Include inactive events"
// @Success 200 {object} dto.EventListResponse "Events"
// @Router /events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	activeOnly := ctx.Query("all") != "true"
	events, err := c.eventService.GetEvents(ctx, activeOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventListResponse{
		Success: true,
		Events:  events,
		Total:   int64(len(events)),
	})
}

// GetEventByID retrieves a single event
// @Summary Get event details
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.EventResponse "Event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.GetEventByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventResponse{Success: true, Event: event})
}

// CreateEvent creates an event from a multipart form
// @Summary Create an event
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param date formData string true "Date (YYYY-MM-DD)"
// @Param image formData file false "Cover image"
// @Success 201 {object} dto.EventResponse "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.EventCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	image, _ := ctx.FormFile("image")
	event, err := c.eventService.CreateEvent(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EventResponse{Success: true, Event: event})
}

// UpdateEvent applies a partial update to an event
// @Summary Update an event
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.EventResponse "Updated event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.EventUpdateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	event, err := c.eventService.UpdateEvent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventResponse{Success: true, Event: event})
}

// AddMedia appends uploaded media files to an event
// @Summary Add event media
// @Description Uploads up to 5 media files and appends them to the event's media list
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param media formData file true "Media files"
// @Success 200 {object} dto.EventResponse "Updated event"
// @Failure 400 {object} dto.ErrorResponse "Invalid files"
// @Router /events/{id}/media [post]
func (c *EventController) AddMedia(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Media files are required"))
		return
	}

	files := form.File["media"]
	event, err := c.eventService.AddMedia(ctx, id, files)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventResponse{Success: true, Event: event})
}

// DeleteEvent removes an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.SuccessResponse "Event deleted"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Event deleted"))
}
