package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/services"
	"github.com/kemumsa/backend/internal/middleware"
)

// AdminController handles admin authentication, profile, member moderation
// and contact-settings endpoints
type AdminController struct {
	adminService  services.AdminService
	memberService services.MemberService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, memberService services.MemberService) *AdminController {
	return &AdminController{
		adminService:  adminService,
		memberService: memberService,
	}
}

// Login handles admin authentication
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} dto.AdminAuthResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.adminService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetProfile returns the authenticated admin's account record
// @Summary Get admin profile
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminProfileResponse "Admin profile"
// @Router /admin/profile [get]
func (c *AdminController) GetProfile(ctx *gin.Context) {
	subjectID, ok := middleware.SubjectID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	admin, err := c.adminService.GetProfile(ctx, subjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminProfileResponse{Success: true, Admin: admin})
}

// UpdateProfile changes the admin's username and/or password
// @Summary Update admin profile
// @Description Changes the admin's username and/or password after verifying the current password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminProfileUpdateRequest true "Profile changes"
// @Success 200 {object} dto.AdminProfileResponse "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Username taken or confirmation mismatch"
// @Failure 401 {object} dto.ErrorResponse "Wrong current password"
// @Router /admin/profile [put]
func (c *AdminController) UpdateProfile(ctx *gin.Context) {
	subjectID, ok := middleware.SubjectID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.AdminProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	admin, err := c.adminService.UpdateProfile(ctx, subjectID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminProfileResponse{Success: true, Admin: admin})
}

// VerifyPassword re-checks the admin's password
// @Summary Verify admin password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VerifyPasswordRequest true "Password"
// @Success 200 {object} dto.VerifyPasswordResponse "Verification result"
// @Router /admin/verify-password [post]
func (c *AdminController) VerifyPassword(ctx *gin.Context) {
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

	valid, err := c.adminService.VerifyPassword(ctx, subjectID, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyPasswordResponse{Success: true, Valid: valid})
}

// GetCommunication returns the contact settings
// @Summary Get contact settings
// @Description Returns the stored contact settings, or the built-in defaults when none are stored
// @Tags admin
// @Produce json
// @Success 200 {object} dto.CommunicationResponse "Contact settings"
// @Router /communication [get]
func (c *AdminController) GetCommunication(ctx *gin.Context) {
	comm, err := c.adminService.GetCommunication(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CommunicationResponse{Success: true, Communication: comm})
}

// UpdateCommunication patches the contact settings singleton
// @Summary Update contact settings
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CommunicationUpdateRequest true "Fields to update"
// @Success 200 {object} dto.CommunicationResponse "Updated settings"
// @Router /admin/communication [put]
func (c *AdminController) UpdateCommunication(ctx *gin.Context) {
	var req dto.CommunicationUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	comm, err := c.adminService.UpdateCommunication(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CommunicationResponse{Success: true, Communication: comm})
}

// ListMembers returns the full roster for the admin panel
// @Summary List all members
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminMemberListResponse "Roster with stats"
// @Router /admin/members [get]
func (c *AdminController) ListMembers(ctx *gin.Context) {
	resp, err := c.memberService.GetAdminList(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ApproveMember flags a pending member as approved
// @Summary Approve a member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} dto.MemberResponse "Approved member"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Router /admin/members/{id}/approve [patch]
func (c *AdminController) ApproveMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	member, err := c.memberService.ApproveMember(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MemberResponse{Success: true, Member: member})
}

// UpdateMember applies an admin-level partial update to a member
// @Summary Update a member (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body dto.MemberAdminUpdateRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse "Updated member"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Router /admin/members/{id} [put]
func (c *AdminController) UpdateMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.MemberAdminUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	member, err := c.memberService.AdminUpdateMember(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MemberResponse{Success: true, Member: member})
}

// DeleteMember removes a member account
// @Summary Delete a member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} dto.SuccessResponse "Member deleted"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Router /admin/members/{id} [delete]
func (c *AdminController) DeleteMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.memberService.DeleteMember(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Member deleted"))
}
