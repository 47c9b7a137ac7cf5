package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lifemate-backend/internal/delivery/http/middleware"
	"lifemate-backend/internal/delivery/http/response"
	"lifemate-backend/internal/domain"
	"lifemate-backend/pkg/apperror"
)

const testUserID = "user-1"

type MockResumeUsecase struct {
	mock.Mock
}

func (m *MockResumeUsecase) ListTemplates() []domain.ResumeTemplate {
	return m.Called().Get(0).([]domain.ResumeTemplate)
}

func (m *MockResumeUsecase) Create(ctx context.Context, userID string, input *domain.CreateResumeInput) (*domain.Resume, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeUsecase) List(ctx context.Context, userID string) ([]domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeUsecase) Get(ctx context.Context, userID, id string) (*domain.Resume, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeUsecase) Preview(ctx context.Context, userID, id string) (*domain.Resume, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeUsecase) Update(ctx context.Context, userID, id string, input *domain.UpdateResumeInput) (*domain.Resume, error) {
	args := m.Called(ctx, userID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeUsecase) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockResumeUsecase) GeneratePDF(ctx context.Context, userID, id string) (*domain.Artifact, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockResumeUsecase) Download(ctx context.Context, userID, id string) (*domain.DownloadResult, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DownloadResult), args.Error(1)
}

func (m *MockResumeUsecase) SetDefault(ctx context.Context, userID, id string) (*domain.Resume, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func newTestRouter(uc domain.ResumeUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	v1 := r.Group("/v1")
	v1.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), testUserID)
		c.Set(string(domain.KeyUserRole), domain.RoleJobSeeker)
		c.Next()
	})
	NewResumeHandler(v1, uc, nil)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestBuild_MapsRequestAndReturnsCreated(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(in *domain.CreateResumeInput) bool {
		return in.AutoPopulate && in.Title == "CV" && len(in.Skills) == 1 && in.Skills[0].Name == "Go" &&
			len(in.WorkExperience) == 1 && in.WorkExperience[0].StartDate.Year() == 2021
	})).Return(&domain.Resume{ID: "r1", Title: "CV"}, nil)

	w := do(newTestRouter(uc), http.MethodPost, "/v1/resume/build", `{
		"title": "CV",
		"auto_populate": true,
		"skills": [{"name": "Go"}],
		"work_experience": [{"position": "Dev", "company": "Acme", "start_date": "2021-04"}]
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.True(t, body.Success)
	uc.AssertExpectations(t)
}

func TestBuild_MalformedJSON(t *testing.T) {
	uc := new(MockResumeUsecase)

	w := do(newTestRouter(uc), http.MethodPost, "/v1/resume/build", `{"title": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(newTestRouter(uc), http.MethodPost, "/v1/resume/build", `{"work_experience": [{"start_date": "yesterday"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuild_ValidationErrorsAreListed(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("Create", mock.Anything, testUserID, mock.Anything).
		Return(nil, apperror.Validation([]apperror.FieldError{{Field: "title", Message: "title must be at most 100 characters"}}))

	w := do(newTestRouter(uc), http.MethodPost, "/v1/resume/build", `{"title": "x"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "title", body.Errors[0].Field)
}

func TestUpdate_RejectsServerManagedFields(t *testing.T) {
	uc := new(MockResumeUsecase)

	w := do(newTestRouter(uc), http.MethodPut, "/v1/resume/r1", `{"title": "X", "stats": {"views": 1000}, "user_id": "someone"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "stats", body.Errors[0].Field)
	assert.Equal(t, "user_id", body.Errors[1].Field)
	uc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_OnlySuppliedFieldsAreSet(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("Update", mock.Anything, testUserID, "r1", mock.MatchedBy(func(in *domain.UpdateResumeInput) bool {
		return in.Title != nil && *in.Title == "X" && in.WorkExperience == nil && in.Skills == nil &&
			in.Styling == nil && in.IsDefault == nil && in.RegeneratePDF
	})).Return(&domain.Resume{ID: "r1", Title: "X"}, nil)

	w := do(newTestRouter(uc), http.MethodPut, "/v1/resume/r1", `{"title": "X", "regenerate_pdf": true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestUpdate_ExplicitEmptyListIsSupplied(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("Update", mock.Anything, testUserID, "r1", mock.MatchedBy(func(in *domain.UpdateResumeInput) bool {
		return in.Skills != nil && len(*in.Skills) == 0
	})).Return(&domain.Resume{ID: "r1"}, nil)

	w := do(newTestRouter(uc), http.MethodPut, "/v1/resume/r1", `{"skills": []}`)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestGet_NotFound(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("Get", mock.Anything, testUserID, "missing").Return(nil, apperror.NotFound("Resume not found"))

	w := do(newTestRouter(uc), http.MethodGet, "/v1/resume/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Resume not found", decodeBody(t, w).Message)
}

func TestStaticRoutesDoNotHitIDRoute(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("ListTemplates").Return(domain.ResumeTemplates)
	uc.On("List", mock.Anything, testUserID).Return([]domain.Resume{{ID: "a", IsDefault: true}, {ID: "b"}}, nil)
	r := newTestRouter(uc)

	w := do(r, http.MethodGet, "/v1/resume/templates", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/v1/resume/list", "")
	assert.Equal(t, http.StatusOK, w.Code)

	uc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestPreview(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("Preview", mock.Anything, testUserID, "r1").Return(&domain.Resume{ID: "r1"}, nil)

	w := do(newTestRouter(uc), http.MethodGet, "/v1/resume/r1/preview", "")

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestDownload(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("Download", mock.Anything, testUserID, "r1").
		Return(&domain.DownloadResult{URL: "https://cdn/r1.pdf", Filename: "Jane_Resume.pdf", Downloads: 1}, nil)

	w := do(newTestRouter(uc), http.MethodPost, "/v1/resume/r1/download", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body.Data.(map[string]interface{})
	assert.Equal(t, "https://cdn/r1.pdf", data["url"])
	assert.Equal(t, float64(1), data["downloads"])
}

func TestGeneratePDF_FailureIs500(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("GeneratePDF", mock.Anything, testUserID, "r1").
		Return(nil, apperror.New(http.StatusInternalServerError, "Failed to store resume PDF", domain.ErrStoreFailure))

	w := do(newTestRouter(uc), http.MethodPost, "/v1/resume/r1/generate-pdf", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, decodeBody(t, w).Success)
}

func TestDeleteAndSetDefault(t *testing.T) {
	uc := new(MockResumeUsecase)
	uc.On("Delete", mock.Anything, testUserID, "r1").Return(nil)
	uc.On("SetDefault", mock.Anything, testUserID, "r2").Return(&domain.Resume{ID: "r2", IsDefault: true}, nil)
	r := newTestRouter(uc)

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/v1/resume/r1", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/v1/resume/r2/set-default", "").Code)
	uc.AssertExpectations(t)
}

type stubAuthUsecase struct {
	user *domain.User
	err  error
}

func (s stubAuthUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.user, s.err
}

func TestAuthMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	g := r.Group("/v1")
	g.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), testUserID)
		c.Next()
	})
	NewAuthHandler(g, stubAuthUsecase{user: &domain.User{ID: testUserID, Role: domain.RoleJobSeeker}})

	w := do(r, http.MethodGet, "/v1/auth/me", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w).Data.(map[string]interface{})
	assert.Equal(t, testUserID, data["id"])
	assert.Equal(t, domain.RoleJobSeeker, data["role"])
}
