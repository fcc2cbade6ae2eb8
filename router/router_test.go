// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/food-del/cliparse"
	"github.com/danielhkuo/food-del/testutil"
	"github.com/danielhkuo/food-del/uploads"
)

func newTestHandler(t *testing.T) (http.Handler, cliparse.Config) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	store, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		t.Fatal(err)
	}

	h, err := NewHandler(cfg, NewMountTable(db, cfg, store))
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}
	return h, cfg
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	testCases := []struct {
		name    string
		headers map[string]string
		body    string
	}{
		{"plain", nil, ""},
		{"json content type with broken body", map[string]string{"Content-Type": "application/json"}, "{broken"},
		{"arbitrary headers", map[string]string{"Authorization": "Bearer x", "Accept": "text/html"}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/health", strings.NewReader(tc.body))
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
			if w.Body.String() != `{"status":"ok"}` {
				t.Errorf(`Expected body '{"status":"ok"}', got '%s'`, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected JSON content type, got %s", ct)
			}
		})
	}
}

func TestRootEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "API Working" {
		t.Errorf("Expected body 'API Working', got '%s'", w.Body.String())
	}
}

func TestUnmatchedRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, path := range []string{"/nope", "/health/extra", "/api"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 for %s, got %d", path, w.Code)
		}
	}
}

func TestMalformedJSONRejectedBeforeRouting(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, path := range []string{"/api/food/remove", "/api/cart/add", "/api/user/login"} {
		req := httptest.NewRequest("POST", path, strings.NewReader(`{"id":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		// 501 would mean the cart/user collaborator saw the request
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for %s, got %d", path, w.Code)
		}
	}
}

func TestPrefixDispatch(t *testing.T) {
	h, _ := newTestHandler(t)

	testCases := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/api/food/list", http.StatusOK},
		{"GET", "/api/user/profile", http.StatusNotImplemented},
		{"POST", "/api/user/login", http.StatusNotImplemented},
		{"POST", "/api/cart/add", http.StatusNotImplemented},
		{"GET", "/api/order/list", http.StatusNotImplemented},
		// the food router owns its own 404s
		{"GET", "/api/food/", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != tc.status {
				t.Errorf("Expected %d, got %d. Body: %s", tc.status, w.Code, w.Body.String())
			}
			body := w.Body.String()
			if body == "API Working" || body == `{"status":"ok"}` {
				t.Errorf("%s must not reach the inline handlers", tc.path)
			}
		})
	}
}

func TestStaticImages(t *testing.T) {
	h, cfg := newTestHandler(t)

	img := testutil.PNG(t, 3, 3)
	testutil.WriteTestFile(t, cfg.UploadDir, "pizza.png", img)

	t.Run("existing file", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/images/pizza.png", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		got, _ := io.ReadAll(w.Body)
		if string(got) != string(img) {
			t.Error("Expected raw file bytes")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/images/missing.png", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("directory is not listed", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/images/", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("index.html is served, not redirected", func(t *testing.T) {
		testutil.WriteTestFile(t, cfg.UploadDir, "index.html", []byte("<p>menu</p>"))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/images/index.html", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d (Location %q)", w.Code, w.Header().Get("Location"))
		}
		if w.Body.String() != "<p>menu</p>" {
			t.Errorf("Expected file contents, got %q", w.Body.String())
		}
	})

	t.Run("HEAD has headers and no body", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("HEAD", "/images/pizza.png", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "image/png" {
			t.Errorf("Expected image/png, got %q", w.Header().Get("Content-Type"))
		}
		if w.Body.Len() != 0 {
			t.Errorf("Expected empty body, got %d bytes", w.Body.Len())
		}
	})

	t.Run("path traversal stays inside the root", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/images/x", nil)
		req.URL.Path = "/images/../router.go"
		h.ServeHTTP(w, req)

		if w.Code == http.StatusOK {
			t.Error("Expected traversal outside the upload dir to fail")
		}
	})
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("OPTIONS", "/api/food/add", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected any origin to be allowed")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/api/food/list"},
		{"POST", "/images/pizza.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPanicIsLoggedAsCompletedRequest(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := testutil.GetTestConfig(t)
	h, err := NewHandler(cfg, []Mount{{
		Prefix: "/api/order",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("order exploded")
		}),
	}})
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/order/list", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}

	out := logs.String()
	if !strings.Contains(out, "panic recovered") {
		t.Error("Expected the panic to be logged")
	}
	if !strings.Contains(out, "request completed") || !strings.Contains(out, "status=500") {
		t.Errorf("Expected a completed request with status=500, got:\n%s", out)
	}
}
