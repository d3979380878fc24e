package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/mock"
	"github.com/MKhiriev/portfolio-cms/internal/service"
	"github.com/MKhiriev/portfolio-cms/internal/store"
	"github.com/MKhiriev/portfolio-cms/internal/validators"
	"github.com/MKhiriev/portfolio-cms/models"
)

// apiMocks bundles the mocked service layer behind a ready-to-serve router.
type apiMocks struct {
	auth      *mock.MockAuthService
	content   *mock.MockContentService
	portfolio *mock.MockPortfolioService
	contacts  *mock.MockContactService

	router http.Handler
}

func newAPIMocks(t *testing.T) *apiMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &apiMocks{
		auth:      mock.NewMockAuthService(ctrl),
		content:   mock.NewMockContentService(ctrl),
		portfolio: mock.NewMockPortfolioService(ctrl),
		contacts:  mock.NewMockContactService(ctrl),
	}

	h := &Handler{
		services: &service.Services{
			AuthService:      m.auth,
			ContentService:   m.content,
			PortfolioService: m.portfolio,
			ContactService:   m.contacts,
		},
		logger: logger.Nop(),
	}
	m.router = h.Init()

	return m
}

func (m *apiMocks) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	m.router.ServeHTTP(rr, req)
	return rr
}

// ---- Auth ----

func TestLogin_Success(t *testing.T) {
	m := newAPIMocks(t)

	m.auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Username: "admin", Password: "admin123"}).
		Return(models.LoginUser{Username: "admin", Role: "admin"}, nil)

	rr := m.do(t, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Login successful", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	m := newAPIMocks(t)

	m.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.LoginUser{}, service.ErrInvalidCredentials)

	rr := m.do(t, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid credentials"}`, rr.Body.String())
}

// ---- Overview ----

func TestGetOverview_Absent(t *testing.T) {
	m := newAPIMocks(t)

	m.content.EXPECT().GetOverview(gomock.Any()).Return(nil, nil)

	rr := m.do(t, http.MethodGet, "/api/overview", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "null", rr.Body.String(), "absent singleton is JSON null, not an error")
}

func TestUpdateOverview_ValidationError(t *testing.T) {
	m := newAPIMocks(t)

	validationErr := &validators.ValidationError{Fields: []validators.FieldError{
		{Field: "expertise", Message: "at least one expertise entry is required"},
	}}
	m.content.EXPECT().
		UpdateOverview(gomock.Any(), gomock.Any()).
		Return(models.Overview{}, validationErr)

	rr := m.do(t, http.MethodPut, "/api/overview", models.InsertOverview{
		Title:       "T",
		Subtitle:    "S",
		Description: "D",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Message string                  `json:"message"`
		Errors  []validators.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid overview data", resp.Message)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "expertise", resp.Errors[0].Field)
}

// ---- Skills ----

func TestCreateSkill_Created(t *testing.T) {
	m := newAPIMocks(t)

	insert := models.InsertSkill{Category: "Backend", Name: "Go", Level: models.LevelExpert}
	created := models.Skill{
		ID:       "s1",
		Category: "Backend",
		Name:     "Go",
		Level:    models.LevelExpert,
		IsActive: true,
		Order:    "0",
	}
	m.portfolio.EXPECT().CreateSkill(gomock.Any(), insert).Return(created, nil)

	rr := m.do(t, http.MethodPost, "/api/skills", insert)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.Skill
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, "0", got.Order)
	assert.True(t, got.IsActive)
}

func TestCreateSkill_InvalidJSON(t *testing.T) {
	m := newAPIMocks(t)

	req := httptest.NewRequest(http.MethodPost, "/api/skills", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	m.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid skill data"}`, rr.Body.String())
}

func TestUpdateSkill_NotFound(t *testing.T) {
	m := newAPIMocks(t)

	m.portfolio.EXPECT().
		UpdateSkill(gomock.Any(), "ghost", gomock.Any()).
		Return(models.Skill{}, store.ErrSkillNotFound)

	rr := m.do(t, http.MethodPut, "/api/skills/ghost", models.SkillUpdate{})

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Skill not found"}`, rr.Body.String())
}

func TestDeleteSkill_Success(t *testing.T) {
	m := newAPIMocks(t)

	m.portfolio.EXPECT().DeleteSkill(gomock.Any(), "s1").Return(nil)

	rr := m.do(t, http.MethodDelete, "/api/skills/s1", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Skill deleted successfully"}`, rr.Body.String())
}

func TestReorderSkills_Success(t *testing.T) {
	m := newAPIMocks(t)

	entries := []models.ReorderEntry{{ID: "a", Order: "1"}, {ID: "b", Order: "0"}}
	m.portfolio.EXPECT().ReorderSkills(gomock.Any(), entries).Return(nil)

	rr := m.do(t, http.MethodPatch, "/api/skills/reorder", models.ReorderSkillsRequest{Skills: entries})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Skills order updated successfully"}`, rr.Body.String())
}

// ---- Projects ----

func TestListFeaturedProjects(t *testing.T) {
	m := newAPIMocks(t)

	m.portfolio.EXPECT().
		ListFeaturedProjects(gomock.Any()).
		Return([]models.Project{{ID: "p1", Featured: true, IsActive: true}}, nil)

	rr := m.do(t, http.MethodGet, "/api/projects/featured", nil)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestDeleteProject_StoreFault(t *testing.T) {
	m := newAPIMocks(t)

	m.portfolio.EXPECT().
		DeleteProject(gomock.Any(), "p1").
		Return(assert.AnError)

	rr := m.do(t, http.MethodDelete, "/api/projects/p1", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Failed to delete project"}`, rr.Body.String())
}

// ---- Contacts ----

func TestCreateContact_Created(t *testing.T) {
	m := newAPIMocks(t)

	insert := models.InsertContact{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "A long enough message",
	}
	m.contacts.EXPECT().
		SubmitContact(gomock.Any(), insert).
		Return(models.Contact{ID: "c1", Name: "Jane"}, nil)

	rr := m.do(t, http.MethodPost, "/api/contacts", insert)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestMarkContactRead_NotFound(t *testing.T) {
	m := newAPIMocks(t)

	m.contacts.EXPECT().
		MarkContactRead(gomock.Any(), "ghost").
		Return(models.Contact{}, store.ErrContactNotFound)

	rr := m.do(t, http.MethodPatch, "/api/contacts/ghost/read", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Contact not found"}`, rr.Body.String())
}
