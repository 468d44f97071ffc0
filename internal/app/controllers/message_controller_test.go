package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
)

// stubMessageService returns canned results per method
type stubMessageService struct {
	submitted  *dto.MessageSubmitRequest
	submitErr  error
	message    *models.Message
	deleteErr  error
	deletedID  int64
	openedID   int64
	listFolder string
}

func (s *stubMessageService) SubmitMessage(_ context.Context, req *dto.MessageSubmitRequest, _ *int64) (*models.Message, error) {
	s.submitted = req
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.message, nil
}

func (s *stubMessageService) GetMessageByID(_ context.Context, _ int64) (*models.Message, error) {
	if s.message == nil {
		return nil, apperrors.ErrMessageNotFound
	}
	return s.message, nil
}

func (s *stubMessageService) ListMessages(_ context.Context, folder string, _, _ int) (*dto.MessageListResponse, error) {
	s.listFolder = folder
	return &dto.MessageListResponse{Success: true, Folder: folder}, nil
}

func (s *stubMessageService) OpenMessage(_ context.Context, id int64) (*models.Message, error) {
	s.openedID = id
	if s.message == nil {
		return nil, apperrors.ErrMessageNotFound
	}
	if s.message.Status == models.MessageStatusNew {
		s.message.Status = models.MessageStatusViewed
		s.message.Folder = models.FolderViewed
	}
	return s.message, nil
}

func (s *stubMessageService) MarkViewed(_ context.Context, _ int64) (*models.Message, error) {
	return s.message, nil
}

func (s *stubMessageService) ReplyToMessage(_ context.Context, _ int64, _, _ string) (*models.Message, error) {
	return s.message, nil
}

func (s *stubMessageService) DeleteMessage(_ context.Context, id int64) error {
	s.deletedID = id
	return s.deleteErr
}

func (s *stubMessageService) GetStats(_ context.Context) (*dto.MessageStats, error) {
	return &dto.MessageStats{Total: 3}, nil
}

func newMessageTestRouter(svc *stubMessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewMessageController(svc)
	router.POST("/api/messages", controller.SubmitMessage)
	router.GET("/api/admin/messages", controller.ListMessages)
	router.GET("/api/admin/messages/:id", controller.GetMessageByID)
	router.DELETE("/api/admin/messages/:id", controller.DeleteMessage)
	return router
}

func TestSubmitMessage_Created(t *testing.T) {
	svc := &stubMessageService{message: &models.Message{ID: 1, Subject: "Hi"}}
	router := newMessageTestRouter(svc)

	body := `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"Hello there"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.submitted)
	assert.Equal(t, "Jane", svc.submitted.Name)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.Message.ID)
}

func TestSubmitMessage_MissingFields(t *testing.T) {
	svc := &stubMessageService{}
	router := newMessageTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"name":"Jane"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.submitted)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestListMessages_DefaultsToInbox(t *testing.T) {
	svc := &stubMessageService{}
	router := newMessageTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "inbox", svc.listFolder)
}

func TestListMessages_FolderQuery(t *testing.T) {
	svc := &stubMessageService{}
	router := newMessageTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages?folder=viewed&page=2&size=10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "viewed", svc.listFolder)
}

func TestGetMessageByID_OpensNewMessage(t *testing.T) {
	svc := &stubMessageService{message: &models.Message{
		ID:     7,
		Status: models.MessageStatusNew,
		Folder: models.FolderInbox,
	}}
	router := newMessageTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages/7", nil)
	router.ServeHTTP(w, req)

	// Fetching a new message is what opens it
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.openedID)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.MessageStatusViewed, resp.Message.Status)
	assert.Equal(t, models.FolderViewed, resp.Message.Folder)
}

func TestGetMessageByID_NotFound(t *testing.T) {
	svc := &stubMessageService{}
	router := newMessageTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMessageByID_BadID(t *testing.T) {
	svc := &stubMessageService{message: &models.Message{ID: 1}}
	router := newMessageTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMessage_NotInTrash(t *testing.T) {
	svc := &stubMessageService{deleteErr: apperrors.ErrMessageNotInTrash}
	router := newMessageTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/messages/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(5), svc.deletedID)
}
