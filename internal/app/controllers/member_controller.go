package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/middleware"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/auth"
)

// MemberController handles member registration, login and directory endpoints
type MemberController struct {
	memberService services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid ID"))
		return 0, false
	}
	return id, true
}

// requireSelf ensures the path id belongs to the authenticated member.
// Admin tokens may act on any member record.
func requireSelf(ctx *gin.Context, id int64) bool {
	if middleware.SubjectRole(ctx) == auth.RoleAdmin {
		return true
	}
	subjectID, ok := middleware.SubjectID(ctx)
	if !ok || subjectID != id {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("you can only modify your own profile"))
		return false
	}
	return true
}

// Register handles member self-registration
// @Summary Register a new member
// @Description Registers a member with a student email. The account stays pending until an admin approves it.
// @Tags members
// @Accept json
// @Produce json
// @Param request body dto.MemberRegisterRequest true "Registration data"
// @Success 201 {object} dto.MemberResponse "Member registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid data or duplicate email"
// @Router /members/register [post]
func (c *MemberController) Register(ctx *gin.Context) {
	var req dto.MemberRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	member, err := c.memberService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MemberResponse{Success: true, Member: member})
}

// Login handles member authentication
// @Summary Member login
// @Description Authenticates an approved member and returns an access token
// @Tags members
// @Accept json
// @Produce json
// @Param request body dto.MemberLoginRequest true "Credentials"
// @Success 200 {object} dto.MemberAuthResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account pending approval"
// @Router /members/login [post]
func (c *MemberController) Login(ctx *gin.Context) {
	var req dto.MemberLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.memberService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetDirectory lists the public member directory
// @Summary Public member directory
// @Description Lists approved members who opted into the directory, with aggregate stats
// @Tags members
// @Produce json
// @Success 200 {object} dto.MemberDirectoryResponse "Directory"
// @Router /members [get]
func (c *MemberController) GetDirectory(ctx *gin.Context) {
	resp, err := c.memberService.GetDirectory(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetMemberByID retrieves a single member
// @Summary Get member details
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} dto.MemberResponse "Member"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Router /members/{id} [get]
func (c *MemberController) GetMemberByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	member, err := c.memberService.GetMemberByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MemberResponse{Success: true, Member: member})
}

// UpdateMember applies a partial update to a member profile
// @Summary Update member profile
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body dto.MemberUpdateRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse "Updated member"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Router /members/{id} [put]
func (c *MemberController) UpdateMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if !requireSelf(ctx, id) {
		return
	}

	var req dto.MemberUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	member, err := c.memberService.UpdateMember(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MemberResponse{Success: true, Member: member})
}

// UpdateStatus sets a member's presence status
// @Summary Update presence status
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} dto.SuccessResponse "Status updated"
// @Router /members/{id}/status [patch]
func (c *MemberController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if !requireSelf(ctx, id) {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=online away offline"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.memberService.UpdateStatus(ctx, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status updated"))
}

// UploadProfilePicture stores a new avatar for the member
// @Summary Upload profile picture
// @Tags members
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param image formData file true "Image file"
// @Success 200 {object} dto.MemberResponse "Updated member"
// @Failure 400 {object} dto.ErrorResponse "Invalid file"
// @Router /members/{id}/profile-picture [post]
func (c *MemberController) UploadProfilePicture(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if !requireSelf(ctx, id) {
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("image file is required"))
		return
	}

	member, err := c.memberService.UpdateProfilePicture(ctx, id, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MemberResponse{Success: true, Member: member})
}

// VerifyPassword re-checks the member's password
// @Summary Verify member password
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.VerifyPasswordResponse "Verification result"
// @Router /members/verify-password [post]
func (c *MemberController) VerifyPassword(ctx *gin.Context) {
	subjectID, ok := middleware.SubjectID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.VerifyPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	valid, err := c.memberService.VerifyPassword(ctx, subjectID, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyPasswordResponse{Success: true, Valid: valid})
}
