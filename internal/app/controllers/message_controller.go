package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/middleware"
	"github.com/kemumsa/backend/internal/pkg/helpers"
)

// MessageController handles contact message endpoints
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// SubmitMessage accepts a contact form submission
// @Summary Submit a contact message
// @Description Stores an incoming contact message in the admin inbox
// @Tags messages
// @Accept json
// @Produce json
// @Param request body dto.MessageSubmitRequest true "Message"
// @Success 201 {object} dto.MessageResponse "Message received"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Router /messages [post]
func (c *MessageController) SubmitMessage(ctx *gin.Context) {
	var req dto.MessageSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	// Link the message to the sender's account when they are logged in
	var memberID *int64
	if id, ok := middleware.SubjectID(ctx); ok {
		memberID = &id
	}

	message, err := c.messageService.SubmitMessage(ctx, &req, memberID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Success: true, Message: message})
}

// ListMessages pages through a moderation folder
// @Summary List messages by folder
// @Description Lists non-deleted messages in the inbox or viewed folder
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param folder query string false "Folder (inbox or viewed)" default(inbox)
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.MessageListResponse "Messages"
// @Router /admin/messages [get]
func (c *MessageController) ListMessages(ctx *gin.Context) {
	folder := ctx.DefaultQuery("folder", string(models.FolderInbox))
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.messageService.ListMessages(ctx, folder, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetMessageByID retrieves a single message. Fetching a new message counts
// as opening it, so the row is advanced to the viewed folder on first read.
// @Summary Get message details
// @Description Returns the message. A new message is moved to the viewed folder on first fetch.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.MessageResponse "Message"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /admin/messages/{id} [get]
func (c *MessageController) GetMessageByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	message, err := c.messageService.OpenMessage(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: message})
}

// OpenMessage marks a message as viewed
// @Summary Mark message viewed
// @Description Moves an inbox message to the viewed folder. Re-opening is a no-op.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.MessageResponse "Message"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /admin/messages/{id}/open [patch]
func (c *MessageController) OpenMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	message, err := c.messageService.OpenMessage(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: message})
}

// MarkViewed forces a message into the viewed folder
// @Summary Mark a message viewed
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.MessageResponse "Updated message"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /admin/messages/{id}/mark-viewed [patch]
func (c *MessageController) MarkViewed(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	message, err := c.messageService.MarkViewed(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: message})
}

// ReplyToMessage attaches an admin reply to a message
// @Summary Reply to a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Param request body dto.MessageReplyRequest true "Reply text"
// @Success 200 {object} dto.MessageResponse "Replied message"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /admin/messages/{id}/reply [post]
func (c *MessageController) ReplyToMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.MessageReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	message, err := c.messageService.ReplyToMessage(ctx, id, req.ReplyMessage, middleware.SubjectName(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: message})
}

// DeleteMessage soft-deletes a viewed message
// @Summary Delete a message
// @Description Soft-deletes a message. Only messages in the viewed folder can be deleted.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.SuccessResponse "Message deleted"
// @Failure 403 {object} dto.ErrorResponse "Message still in inbox"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /admin/messages/{id} [delete]
func (c *MessageController) DeleteMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.messageService.DeleteMessage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Message deleted"))
}

// GetStats counts messages per workflow state
// @Summary Message statistics
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageStatsResponse "Counters"
// @Router /admin/messages/stats [get]
func (c *MessageController) GetStats(ctx *gin.Context) {
	stats, err := c.messageService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageStatsResponse{Success: true, Stats: *stats})
}
