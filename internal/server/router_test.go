package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/spotirelay/internal/services"
	"github.com/desertthunder/spotirelay/internal/shared"
	tu "github.com/desertthunder/spotirelay/internal/testing"
)

func TestBasicRouter(t *testing.T) {
	t.Run("Handle", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		}))

		t.Run("Registered Route", func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

			if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
				t.Errorf("expected pong, got %d %s", rec.Code, rec.Body.String())
			}
		})

		t.Run("Method Mismatch", func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))

			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected 405, got %d", rec.Code)
			}
		})

		t.Run("Unknown Route", func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

			if rec.Code != http.StatusNotFound {
				t.Errorf("expected 404, got %d", rec.Code)
			}
		})
	})

	t.Run("Middleware Ordering", func(t *testing.T) {
		var order []string

		tag := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(tag("first"), tag("second"))
		router.Handle(http.MethodGet, "/ping", okHandler())

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		if strings.Join(order, ",") != "first,second" {
			t.Errorf("expected first,second, got %v", order)
		}
	})
}

func TestNew(t *testing.T) {
	cfg := shared.DefaultConfig()
	cfg.Client.Origin = "http://client.example"

	auth := &tu.MockAuthenticator{
		AuthURL: "https://accounts.spotify.com/authorize",
		Tokens:  &services.TokenSet{AccessToken: "a", RefreshToken: "r", ExpiresIn: 3600},
	}
	forwarder := &tu.MockForwarder{Body: []byte(`{}`)}

	srv := New(cfg, auth, forwarder, shared.NewLogger(io.Discard))

	if srv.Addr != cfg.Addr() {
		t.Errorf("expected server addr %s, got %s", cfg.Addr(), srv.Addr)
	}

	t.Run("Welcome Route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "spotirelay") {
			t.Errorf("expected welcome text, got %s", rec.Body.String())
		}
	})

	t.Run("Routes Are Wired", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
		if rec.Code != http.StatusFound {
			t.Errorf("expected login redirect, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
		req.Header.Set("Authorization", "Bearer token")
		srv.Handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected forwarded profile, got %d", rec.Code)
		}
	})

	t.Run("CORS Applies Everywhere", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/user/profile", nil))

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected preflight 204, got %d", rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "http://client.example" {
			t.Error("expected configured origin on preflight response")
		}
	})
}
