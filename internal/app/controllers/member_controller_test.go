package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/middleware"
	"github.com/kemumsa/backend/internal/pkg/auth"
)

// stubMemberService records which member records were touched
type stubMemberService struct {
	updatedID int64
	statusID  int64
}

func (s *stubMemberService) Register(_ context.Context, _ *dto.MemberRegisterRequest) (*models.Member, error) {
	return &models.Member{}, nil
}

func (s *stubMemberService) Login(_ context.Context, _, _ string) (*dto.MemberAuthResponse, error) {
	return &dto.MemberAuthResponse{}, nil
}

func (s *stubMemberService) GetDirectory(_ context.Context) (*dto.MemberDirectoryResponse, error) {
	return &dto.MemberDirectoryResponse{}, nil
}

func (s *stubMemberService) GetAdminList(_ context.Context) (*dto.AdminMemberListResponse, error) {
	return &dto.AdminMemberListResponse{}, nil
}

func (s *stubMemberService) GetMemberByID(_ context.Context, id int64) (*models.Member, error) {
	return &models.Member{ID: id}, nil
}

func (s *stubMemberService) UpdateMember(_ context.Context, id int64, _ *dto.MemberUpdateRequest) (*models.Member, error) {
	s.updatedID = id
	return &models.Member{ID: id}, nil
}

func (s *stubMemberService) AdminUpdateMember(_ context.Context, id int64, _ *dto.MemberAdminUpdateRequest) (*models.Member, error) {
	return &models.Member{ID: id}, nil
}

func (s *stubMemberService) ApproveMember(_ context.Context, id int64) (*models.Member, error) {
	return &models.Member{ID: id, Approved: true}, nil
}

func (s *stubMemberService) DeleteMember(_ context.Context, _ int64) error { return nil }

func (s *stubMemberService) UpdateProfilePicture(_ context.Context, id int64, _ *multipart.FileHeader) (*models.Member, error) {
	return &models.Member{ID: id}, nil
}

func (s *stubMemberService) UpdateStatus(_ context.Context, id int64, _ string) error {
	s.statusID = id
	return nil
}

func (s *stubMemberService) VerifyPassword(_ context.Context, _ int64, _ string) (bool, error) {
	return true, nil
}

// claimsAs stands in for JWTAuth, planting the subject claims directly
func claimsAs(subjectID int64, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextSubjectID, subjectID)
		c.Set(middleware.ContextName, "Test Subject")
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func newMemberTestRouter(svc *stubMemberService, subjectID int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewMemberController(svc)
	authed := router.Group("/api/members", claimsAs(subjectID, role))
	authed.PUT("/:id", controller.UpdateMember)
	authed.PATCH("/:id/status", controller.UpdateStatus)
	return router
}

func TestUpdateMember_OwnProfile(t *testing.T) {
	svc := &stubMemberService{}
	router := newMemberTestRouter(svc, 5, auth.RoleMember)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/members/5", strings.NewReader(`{"bio":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), svc.updatedID)
}

func TestUpdateMember_OtherProfileForbidden(t *testing.T) {
	svc := &stubMemberService{}
	router := newMemberTestRouter(svc, 5, auth.RoleMember)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/members/6", strings.NewReader(`{"bio":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, svc.updatedID)
}

func TestUpdateStatus_OtherProfileForbidden(t *testing.T) {
	svc := &stubMemberService{}
	router := newMemberTestRouter(svc, 5, auth.RoleMember)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/members/8/status", strings.NewReader(`{"status":"online"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, svc.statusID)
}

func TestUpdateMember_AdminMayEditAnyMember(t *testing.T) {
	svc := &stubMemberService{}
	router := newMemberTestRouter(svc, 1, auth.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/members/42", strings.NewReader(`{"bio":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), svc.updatedID)
}
