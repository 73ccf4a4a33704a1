package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdelaplana/marvin/internal/log"
)

func mountTestController(rs *RouterService) {
	ctrl := NewRESTController("TestController", "/", func(rs *RouterService, c *RESTController) {
		rs.AddGetHandler(c, nil, "ip", func(ctx *RequestContext) *ServiceResult {
			return OKResult(ctx.ClientIP(), "ok")
		})

		rs.AddPostHandler(c, nil, "echo", func(ctx *RequestContext) *ServiceResult {
			var payload map[string]any
			if err := ctx.ShouldBindJSON(&payload); err != nil {
				return BadRequestResult("bad", nil)
			}
			return OKResult(payload, "ok")
		})
	})

	rs.MountController(ctrl)
}

func newTestRouterService(t *testing.T) *RouterService {
	t.Helper()

	logger := log.NewLoggerWithJSONOutput()
	return CreateRouterService(logger, nil, &RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
	})
}

func TestTrustedProxies_DisabledByDefault(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")

	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	req.Header.Set("X-Forwarded-For", "1.1.1.1")

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Data    string `json:"data"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Data != "10.0.0.2" {
		t.Fatalf("expected ClientIP to use RemoteAddr when trusted proxies disabled; got %q", resp.Data)
	}
}

func TestTrustedProxies_StarTrustsForwardedFor(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "*")

	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	req.Header.Set("X-Forwarded-For", "1.1.1.1")

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Data    string `json:"data"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Data != "1.1.1.1" {
		t.Fatalf("expected ClientIP to use X-Forwarded-For when trusted proxies enabled; got %q", resp.Data)
	}
}

func TestMaxBodySize_Returns413(t *testing.T) {
	t.Setenv("MAX_REQUEST_BODY_BYTES", "10")

	rs := newTestRouterService(t)
	mountTestController(rs)

	body := bytes.Repeat([]byte{'a'}, 50)
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPreflight_ShortCircuitsWithOK(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set("Origin", "https://landing.example.com")

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "ok" {
		t.Fatalf("expected plain %q body, got %q", "ok", w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard Allow-Origin by default, got %q", got)
	}
}

func TestCORS_ConfiguredOriginIsEchoedBack(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://allowed.example.com")

	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("Origin", "https://allowed.example.com")

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://allowed.example.com" {
		t.Fatalf("expected configured origin to be echoed back, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("Origin", "https://other.example.com")

	w = httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no Allow-Origin for unlisted origin, got %q", got)
	}
}

func TestNoMethod_Returns405Envelope(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	// /echo only accepts POST.
	req := httptest.NewRequest(http.MethodDelete, "/echo", nil)

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Fatal("expected success=false on 405")
	}
	if resp.Message != "Method not allowed" {
		t.Fatalf("expected %q, got %q", "Method not allowed", resp.Message)
	}
}

func TestNoRoute_Returns404Envelope(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Route not found" {
		t.Fatalf("expected %q, got %q", "Route not found", resp.Message)
	}
}
