package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baris/okulport/internal/app/models"
	"github.com/baris/okulport/internal/app/services"
	"github.com/baris/okulport/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAccessService lets each test script the service behavior per method.
type stubAccessService struct {
	attemptLogin func(code, deviceID string) (*services.LoginResult, error)
	studentView  func(studentID int64) (*services.StudentView, error)
	listRequests func(status models.RequestStatus) ([]*models.AccessRequestInfo, error)
	approve      func(studentID int64) error
	reject       func(studentID int64, reason string) error
	reset        func(studentID int64) error
}

func (s *stubAccessService) AttemptLogin(_ context.Context, code, deviceID string) (*services.LoginResult, error) {
	return s.attemptLogin(code, deviceID)
}

func (s *stubAccessService) GetStudentView(_ context.Context, studentID int64) (*services.StudentView, error) {
	return s.studentView(studentID)
}

func (s *stubAccessService) ListRequests(_ context.Context, status models.RequestStatus) ([]*models.AccessRequestInfo, error) {
	return s.listRequests(status)
}

func (s *stubAccessService) Approve(_ context.Context, studentID int64) error {
	return s.approve(studentID)
}

func (s *stubAccessService) Reject(_ context.Context, studentID int64, reason string) error {
	return s.reject(studentID, reason)
}

func (s *stubAccessService) Reset(_ context.Context, studentID int64) error {
	return s.reset(studentID)
}

func performJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rec)
	detail, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error detail: %s", rec.Body.String())
	return detail["code"].(string)
}

func loginRouter(svc services.AccessService) *gin.Engine {
	router := gin.New()
	ctrl := NewAuthController(svc, zerolog.Nop())
	router.POST("/auth/login", ctrl.Login)
	return router
}

func TestLogin_Success(t *testing.T) {
	svc := &stubAccessService{
		attemptLogin: func(code, deviceID string) (*services.LoginResult, error) {
			assert.Equal(t, "K7TQ2M9A", code)
			assert.Equal(t, "phone-1", deviceID)
			return &services.LoginResult{
				Student: &models.Student{ID: 1, FullName: "Ayşe Kaya", Code: "K7TQ2M9A"},
				Status:  models.StatusPending,
			}, nil
		},
	}

	rec := performJSON(t, loginRouter(svc), http.MethodPost, "/auth/login",
		`{"code":"K7TQ2M9A","deviceId":"phone-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	student := body["student"].(map[string]any)
	assert.Equal(t, "PENDING", student["status"])
	assert.Equal(t, "K7TQ2M9A", student["secretCode"])
	assert.NotContains(t, student, "message")
}

func TestLogin_RejectedCarriesMessage(t *testing.T) {
	reason := "late payment"
	svc := &stubAccessService{
		attemptLogin: func(string, string) (*services.LoginResult, error) {
			return &services.LoginResult{
				Student: &models.Student{ID: 1, FullName: "Ayşe Kaya", Code: "K7TQ2M9A"},
				Status:  models.StatusRejected,
				Message: &reason,
			}, nil
		},
	}

	rec := performJSON(t, loginRouter(svc), http.MethodPost, "/auth/login",
		`{"code":"K7TQ2M9A","deviceId":"phone-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	student := decodeBody(t, rec)["student"].(map[string]any)
	assert.Equal(t, "REJECTED", student["status"])
	assert.Equal(t, "late payment", student["message"])
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown code", apperrors.ErrInvalidCode, http.StatusNotFound, "ACC_001"},
		{"device mismatch", apperrors.ErrDeviceMismatch, http.StatusConflict, "ACC_002"},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, "VAL_001"},
		{"store failure", assert.AnError, http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAccessService{
				attemptLogin: func(string, string) (*services.LoginResult, error) {
					return nil, tt.err
				},
			}

			rec := performJSON(t, loginRouter(svc), http.MethodPost, "/auth/login",
				`{"code":"K7TQ2M9A","deviceId":"phone-1"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	svc := &stubAccessService{
		attemptLogin: func(string, string) (*services.LoginResult, error) {
			t.Fatal("service must not be called on a malformed body")
			return nil, nil
		},
	}

	rec := performJSON(t, loginRouter(svc), http.MethodPost, "/auth/login", `{"code":"K7TQ2M9A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", errorCode(t, rec))
}

func studentRouter(svc services.AccessService) *gin.Engine {
	router := gin.New()
	ctrl := NewStudentController(svc)
	router.GET("/students/:id/view", ctrl.GetStudentView)
	return router
}

func TestGetStudentView_LockedShape(t *testing.T) {
	svc := &stubAccessService{
		studentView: func(studentID int64) (*services.StudentView, error) {
			assert.Equal(t, int64(1), studentID)
			return &services.StudentView{
				Student:  &models.Student{ID: 1, FullName: "Ayşe Kaya", Code: "K7TQ2M9A"},
				Locked:   true,
				Absences: []*models.Absence{{ID: 1, StudentID: 1, Lesson: "Physics"}},
			}, nil
		},
	}

	rec := performJSON(t, studentRouter(svc), http.MethodGet, "/students/1/view", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["locked"])
	assert.Len(t, body["absences"], 1)
	// Arrays are materialized even when empty, never null.
	assert.NotNil(t, body["grades"])
	assert.Len(t, body["grades"], 0)
	assert.NotNil(t, body["notifications"])
}

func TestGetStudentView_InvalidID(t *testing.T) {
	rec := performJSON(t, studentRouter(&stubAccessService{}), http.MethodGet, "/students/abc/view", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", errorCode(t, rec))
}

func TestGetStudentView_NotFound(t *testing.T) {
	svc := &stubAccessService{
		studentView: func(int64) (*services.StudentView, error) {
			return nil, apperrors.ErrStudentNotFound
		},
	}

	rec := performJSON(t, studentRouter(svc), http.MethodGet, "/students/42/view", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RES_001", errorCode(t, rec))
}

type stubRosterService struct {
	importRoster func(file io.Reader) (*services.ImportResult, error)
	listStudents func() ([]*models.Student, error)
}

func (s *stubRosterService) ImportRoster(_ context.Context, file io.Reader) (*services.ImportResult, error) {
	return s.importRoster(file)
}

func (s *stubRosterService) ListStudents(context.Context) ([]*models.Student, error) {
	return s.listStudents()
}

type stubRecordService struct {
	addGrade        func(grade *models.Grade) error
	addAbsence      func(absence *models.Absence) error
	addNotification func(notification *models.Notification) error
}

func (s *stubRecordService) AddGrade(_ context.Context, grade *models.Grade) error {
	return s.addGrade(grade)
}

func (s *stubRecordService) AddAbsence(_ context.Context, absence *models.Absence) error {
	return s.addAbsence(absence)
}

func (s *stubRecordService) AddNotification(_ context.Context, notification *models.Notification) error {
	return s.addNotification(notification)
}

func adminRouter(access services.AccessService, roster services.RosterService, record services.RecordService) *gin.Engine {
	router := gin.New()
	ctrl := NewAdminController(access, roster, record, zerolog.Nop())
	admin := router.Group("/admin")
	admin.GET("/requests", ctrl.ListRequests)
	admin.POST("/requests/:id/approve", ctrl.ApproveRequest)
	admin.POST("/requests/:id/reject", ctrl.RejectRequest)
	admin.DELETE("/requests/:id", ctrl.ResetRequest)
	admin.GET("/students", ctrl.ListStudents)
	admin.POST("/students/import", ctrl.ImportRoster)
	admin.POST("/students/:id/grades", ctrl.AddGrade)
	return router
}

func TestListRequests_EmptyIsArray(t *testing.T) {
	svc := &stubAccessService{
		listRequests: func(status models.RequestStatus) ([]*models.AccessRequestInfo, error) {
			assert.Equal(t, models.StatusPending, status)
			return nil, nil
		},
	}

	rec := performJSON(t, adminRouter(svc, nil, nil), http.MethodGet, "/admin/requests?status=PENDING", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestApproveRequest(t *testing.T) {
	approved := int64(0)
	svc := &stubAccessService{
		approve: func(studentID int64) error {
			approved = studentID
			return nil
		},
	}

	rec := performJSON(t, adminRouter(svc, nil, nil), http.MethodPost, "/admin/requests/7/approve", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), approved)
}

func TestApproveRequest_NoBinding(t *testing.T) {
	svc := &stubAccessService{
		approve: func(int64) error { return apperrors.ErrRequestNotFound },
	}

	rec := performJSON(t, adminRouter(svc, nil, nil), http.MethodPost, "/admin/requests/7/approve", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RES_001", errorCode(t, rec))
}

func TestRejectRequest_RequiresBody(t *testing.T) {
	svc := &stubAccessService{
		reject: func(int64, string) error {
			t.Fatal("service must not be called without a reason")
			return nil
		},
	}

	rec := performJSON(t, adminRouter(svc, nil, nil), http.MethodPost, "/admin/requests/7/reject", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", errorCode(t, rec))
}

func TestResetRequest(t *testing.T) {
	reset := int64(0)
	svc := &stubAccessService{
		reset: func(studentID int64) error {
			reset = studentID
			return nil
		},
	}

	rec := performJSON(t, adminRouter(svc, nil, nil), http.MethodDelete, "/admin/requests/7", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), reset)
	assert.True(t, strings.Contains(rec.Body.String(), `"success":true`))
}

func TestAdmin_InvalidStudentID(t *testing.T) {
	rec := performJSON(t, adminRouter(&stubAccessService{}, nil, nil), http.MethodPost, "/admin/requests/abc/approve", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", errorCode(t, rec))
}

func TestListStudents(t *testing.T) {
	roster := &stubRosterService{
		listStudents: func() ([]*models.Student, error) {
			return []*models.Student{{ID: 1, FullName: "Ayşe Kaya", Code: "K7TQ2M9A"}}, nil
		},
	}

	rec := performJSON(t, adminRouter(nil, roster, nil), http.MethodGet, "/admin/students", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "K7TQ2M9A")
}

func TestImportRoster_Multipart(t *testing.T) {
	roster := &stubRosterService{
		importRoster: func(file io.Reader) (*services.ImportResult, error) {
			content, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, "fake-xlsx-bytes", string(content))
			return &services.ImportResult{BatchID: "batch-1", Imported: 2}, nil
		},
	}
	router := adminRouter(nil, roster, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "roster.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-xlsx-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/students/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "batch-1")
}

func TestImportRoster_MissingFile(t *testing.T) {
	rec := performJSON(t, adminRouter(nil, &stubRosterService{}, nil), http.MethodPost, "/admin/students/import", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_001", errorCode(t, rec))
}

func TestAddGrade(t *testing.T) {
	var recorded *models.Grade
	record := &stubRecordService{
		addGrade: func(grade *models.Grade) error {
			recorded = grade
			return nil
		},
	}

	rec := performJSON(t, adminRouter(nil, nil, record), http.MethodPost, "/admin/students/3/grades",
		`{"course":"Mathematics","term":"2025-FALL","score":87.5}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, recorded)
	assert.Equal(t, int64(3), recorded.StudentID)
	assert.Equal(t, "Mathematics", recorded.Course)
	assert.InDelta(t, 87.5, recorded.Score, 0.001)
}
