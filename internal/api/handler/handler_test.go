package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/service"
	"time4swim/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult      *dto.TokenResponse
	loginErr         error
	refreshResult    *dto.TokenResponse
	refreshErr       error
	logoutErr        error
	getCurrentResult *dto.UserResponse
	getCurrentErr    error
	changePassErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock HeatService ──

type mockHeatService struct {
	createResult []dto.LaneResponse
	createErr    error
	assignResult *dto.LaneResponse
	assignErr    error
	recordResult *dto.LaneResponse
	recordErr    error
	listResult   []dto.HeatResponse
	listErr      error
}

func (m *mockHeatService) CreateHeat(_ context.Context, _ string, _ *dto.CreateHeatRequest, _, _, _ string) ([]dto.LaneResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockHeatService) AssignSwimmer(_ context.Context, _, _, _ string, _, _, _ string) (*dto.LaneResponse, error) {
	return m.assignResult, m.assignErr
}
func (m *mockHeatService) RecordFinalTime(_ context.Context, _, _ string, _ int64, _, _, _ string) (*dto.LaneResponse, error) {
	return m.recordResult, m.recordErr
}
func (m *mockHeatService) ListHeats(_ context.Context, _ string) ([]dto.HeatResponse, error) {
	return m.listResult, m.listErr
}

// ── Mock TimerService ──

type mockTimerService struct {
	snap *dto.TimerResponse
}

func (m *mockTimerService) Start(_ string, _ int) *dto.TimerResponse   { return m.snap }
func (m *mockTimerService) Stop(_ string, _ *int64) *dto.TimerResponse { return m.snap }
func (m *mockTimerService) Reset(_ string) *dto.TimerResponse          { return m.snap }
func (m *mockTimerService) Query(_ string) *dto.TimerResponse          { return m.snap }

// ── Mock EventService ──

type mockEventService struct {
	getResult *dto.EventResponse
	getErr    error
}

func (m *mockEventService) Create(_ context.Context, _ *dto.CreateEventRequest, _, _ string) (*dto.EventResponse, error) {
	return nil, nil
}
func (m *mockEventService) GetByID(_ context.Context, _ string) (*dto.EventResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockEventService) List(_ context.Context, _ string, _, _ int) ([]dto.EventResponse, int64, error) {
	return nil, 0, nil
}
func (m *mockEventService) Update(_ context.Context, _ string, _ *dto.UpdateEventRequest, _, _, _ string) (*dto.EventResponse, error) {
	return nil, nil
}
func (m *mockEventService) Delete(_ context.Context, _ string, _, _, _ string) error {
	return nil
}

// ── Mock ResultService ──

type mockResultService struct {
	boards []dto.BoardResponse
	err    error
}

func (m *mockResultService) ComputeResults(_ context.Context, _ string) ([]dto.BoardResponse, error) {
	return m.boards, m.err
}

// ── helpers ──

// injectAuth stands in for the JWT middleware.
func injectAuth(role, clubID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "test-user-id")
		c.Set("role", role)
		c.Set("club_id", clubID)
		c.Set("jti", "test-jti")
		c.Set("token_exp", time.Now().Add(15*time.Minute))
		c.Next()
	}
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ── AuthHandler ──

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "ana@club.example",
		Password: "secreta123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "ana@club.example",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

// ── HeatHandler ──

func TestHeatHandler_CreateHeat_Created(t *testing.T) {
	h := NewHeatHandler(&mockHeatService{
		createResult: []dto.LaneResponse{
			{ID: "lane-1", HeatNumber: 1, LaneNumber: 1, CoachID: "coach-1"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events/event-a/heats", jsonBody(dto.CreateHeatRequest{
		HeatNumber: 1,
		Lanes: []dto.LaneSlotRequest{
			{LaneNumber: 1, CoachID: "6a1f6a60-1111-4222-8333-444455556666"},
		},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/events/:id/heats", injectAuth("operator", "club-1"), h.CreateHeat)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHeatHandler_CreateHeat_DuplicateLane(t *testing.T) {
	h := NewHeatHandler(&mockHeatService{createErr: service.ErrLaneNumberTaken})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events/event-a/heats", jsonBody(dto.CreateHeatRequest{
		HeatNumber: 1,
		Lanes: []dto.LaneSlotRequest{
			{LaneNumber: 1, CoachID: "6a1f6a60-1111-4222-8333-444455556666"},
		},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/events/:id/heats", injectAuth("operator", "club-1"), h.CreateHeat)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 15002 {
		t.Errorf("expected error code 15002, got %d", resp.Code)
	}
}

func TestHeatHandler_AssignSwimmer_Conflict(t *testing.T) {
	h := NewHeatHandler(&mockHeatService{assignErr: service.ErrSwimmerAlreadyEntered})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/events/event-a/lanes/lane-1/swimmer", jsonBody(dto.AssignSwimmerRequest{
		SwimmerID: "6a1f6a60-1111-4222-8333-444455556666",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/events/:id/lanes/:laneId/swimmer", injectAuth("operator", "club-1"), h.AssignSwimmer)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestHeatHandler_RecordFinalTime_LaneClosed(t *testing.T) {
	h := NewHeatHandler(&mockHeatService{recordErr: service.ErrLaneClosed})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/events/event-a/lanes/lane-1/time", jsonBody(dto.RecordTimeRequest{
		ElapsedMs: 29800,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/events/:id/lanes/:laneId/time", injectAuth("coach", "club-1"), h.RecordFinalTime)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestHeatHandler_ListHeats_OK(t *testing.T) {
	h := NewHeatHandler(&mockHeatService{
		listResult: []dto.HeatResponse{{HeatNumber: 1}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events/event-a/heats", nil)

	r := gin.New()
	r.GET("/events/:id/heats", h.ListHeats)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ── TimerHandler ──

func timerFixture(role, clubID string) (*gin.Engine, *mockTimerService) {
	timerMock := &mockTimerService{snap: &dto.TimerResponse{
		ElapsedMs:  1500,
		Running:    true,
		HeatNumber: 2,
		ServerTime: time.Now().UnixMilli(),
	}}
	eventMock := &mockEventService{getResult: &dto.EventResponse{ID: "event-a", ClubID: "club-1"}}
	h := NewTimerHandler(timerMock, eventMock)

	r := gin.New()
	auth := injectAuth(role, clubID)
	r.POST("/events/:id/timer/start", auth, h.Start)
	r.POST("/events/:id/timer/stop", auth, h.Stop)
	r.POST("/events/:id/timer/reset", auth, h.Reset)
	r.GET("/events/:id/timer", auth, h.Query)
	return r, timerMock
}

func TestTimerHandler_Start_OK(t *testing.T) {
	r, _ := timerFixture("operator", "club-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events/event-a/timer/start", jsonBody(dto.TimerStartRequest{
		HeatNumber: 2,
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTimerHandler_Start_ForbiddenForOtherClub(t *testing.T) {
	r, _ := timerFixture("operator", "club-2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events/event-a/timer/start", jsonBody(dto.TimerStartRequest{
		HeatNumber: 1,
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestTimerHandler_Stop_EmptyBodyAllowed(t *testing.T) {
	r, _ := timerFixture("operator", "club-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/events/event-a/timer/stop", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTimerHandler_Query_OK(t *testing.T) {
	r, _ := timerFixture("coach", "club-9")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events/event-a/timer", nil)
	r.ServeHTTP(w, req)

	// Query is read-only; club ownership is not required.
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ── ResultHandler ──

func TestResultHandler_GetResults_OK(t *testing.T) {
	h := NewResultHandler(&mockResultService{
		boards: []dto.BoardResponse{{CategoryCode: "infantil_b1", Gender: "MALE"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events/event-a/results", nil)

	r := gin.New()
	r.GET("/events/:id/results", h.GetResults)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestResultHandler_GetResults_EventNotFound(t *testing.T) {
	h := NewResultHandler(&mockResultService{err: service.ErrEventNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events/nope/results", nil)

	r := gin.New()
	r.GET("/events/:id/results", h.GetResults)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
