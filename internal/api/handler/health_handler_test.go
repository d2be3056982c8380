package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/NesterenkoAlexander/project-tt4u/internal/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock HealthService ──

type mockHealthService struct {
	resp *dto.HealthResponse
	ok   bool
}

func (m *mockHealthService) Ready(_ context.Context) (*dto.HealthResponse, bool) {
	return m.resp, m.ok
}

// ── 测试辅助 ──

type envelope struct {
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Data    dto.HealthResponse `json:"data"`
}

func doRequest(t *testing.T, h *HealthHandler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := gin.New()
	r.GET("/health", h.Live)
	r.GET("/ready", h.Ready)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应不是合法 JSON: %v, body=%s", err, w.Body.String())
	}
	return w, body
}

// ── 测试 ──

func TestHealthHandler_Live(t *testing.T) {
	h := NewHealthHandler(&mockHealthService{})

	w, body := doRequest(t, h, "/health")
	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
	if body.Code != 0 || body.Data.Status != "ok" {
		t.Errorf("响应不符: %+v", body)
	}
}

func TestHealthHandler_Ready_OK(t *testing.T) {
	h := NewHealthHandler(&mockHealthService{
		resp: &dto.HealthResponse{Status: "ok", Checks: map[string]string{"store": "ok"}},
		ok:   true,
	})

	w, body := doRequest(t, h, "/ready")
	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
	if body.Data.Checks["store"] != "ok" {
		t.Errorf("响应不符: %+v", body)
	}
}

func TestHealthHandler_Ready_Unavailable(t *testing.T) {
	h := NewHealthHandler(&mockHealthService{
		resp: &dto.HealthResponse{Status: "degraded", Checks: map[string]string{"store": "unavailable"}},
		ok:   false,
	})

	w, body := doRequest(t, h, "/ready")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("期望 503，实际=%d", w.Code)
	}
	if body.Code != 50300 || body.Data.Status != "degraded" {
		t.Errorf("响应不符: %+v", body)
	}
}
