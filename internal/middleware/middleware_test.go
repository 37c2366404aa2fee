package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "house-info-api/internal/errors"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(PerMinute(1), 2)
	r := gin.New()
	r.Use(RateLimitMiddleware(rl))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		if w := perform(r, http.MethodGet, "/", nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := perform(r, http.MethodGet, "/", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Success || body.Message != apperrors.MsgRateLimited || body.Error.Code != apperrors.ErrCodeRateLimited {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	// limits are per client address
	other := perform(r, http.MethodGet, "/", map[string]string{"X-Forwarded-For": "203.0.113.9"})
	if other.Code != http.StatusOK {
		t.Errorf("expected other client to pass, got %d", other.Code)
	}
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(PerMinute(60), 1)
	rl.getLimiter("198.51.100.1")
	rl.getLimiter("198.51.100.2").Allow()

	if removed := rl.sweep(); removed != 1 {
		t.Errorf("expected one idle limiter removed, got %d", removed)
	}
	if rl.size() != 1 {
		t.Errorf("expected one limiter left, got %d", rl.size())
	}
}

func TestRateLimiterCleanupStopsOnCancel(t *testing.T) {
	rl := NewRateLimiter(PerMinute(60), 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Cleanup(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop after cancellation")
	}
}

func TestPerMinute(t *testing.T) {
	if got := PerMinute(60); got != 1 {
		t.Errorf("expected 1 event per second, got %v", got)
	}
	if PerMinute(0) <= PerMinute(1_000_000) {
		t.Error("expected a non-positive budget to disable limiting")
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := perform(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" || w.Body.String() != generated {
		t.Errorf("expected generated id in header and context, got %q and %q", generated, w.Body.String())
	}

	w = perform(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "abc-123"})
	if w.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("expected caller id to be propagated, got %q", w.Header().Get(RequestIDHeader))
	}
}

func TestErrorHandler(t *testing.T) {
	testCases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: text/plain", apperrors.ErrNotImage), http.StatusBadRequest, apperrors.ErrCodeInvalidFile},
		{apperrors.ErrUploadTooLarge, http.StatusRequestEntityTooLarge, apperrors.ErrCodeFileTooLarge},
		{apperrors.ErrMapsNotConfigured, http.StatusServiceUnavailable, apperrors.ErrCodeServiceUnavailable},
		{fmt.Errorf("boom"), http.StatusInternalServerError, apperrors.ErrCodeAnalysisFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/", func(c *gin.Context) { c.Error(tc.err) })

			w := perform(r, http.MethodGet, "/", nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["success"] != false {
				t.Errorf("expected success=false, got %v", body["success"])
			}
			errBody, _ := body["error"].(map[string]interface{})
			if errBody["code"] != tc.code {
				t.Errorf("expected code %s, got %v", tc.code, errBody["code"])
			}
		})
	}
}

func TestSecureHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecureHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := perform(r, http.MethodGet, "/", nil)
	for _, header := range []string{"X-Content-Type-Options", "X-Frame-Options", "Strict-Transport-Security"} {
		if w.Header().Get(header) == "" {
			t.Errorf("expected %s to be set", header)
		}
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := perform(r, http.MethodGet, "/", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != apperrors.MsgInternalError {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
