package middleware

import (
	"net/http"
	"net/http/httptest"
	"slot_machine/pkg/token"
	"testing"
	"time"

	"go.uber.org/zap"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := SessionIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(id))
	})
}

func TestSessionAcceptsSignedCookie(t *testing.T) {
	tok, err := token.GenerateSessionToken("abc", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok})
	w := httptest.NewRecorder()

	Session(secret, zap.NewNop())(sessionEcho()).ServeHTTP(w, r)

	if w.Code != http.StatusOK || w.Body.String() != "abc" {
		t.Fatalf("expected 200 abc, got %d %q", w.Code, w.Body.String())
	}
}

func TestSessionRejects(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"unsigned id", &http.Cookie{Name: SessionCookieName, Value: "abc"}},
		{"empty cookie", &http.Cookie{Name: SessionCookieName, Value: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			Session(secret, zap.NewNop())(sessionEcho()).ServeHTTP(w, r)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestSetSessionCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetSessionCookie(w, "tok", 24*time.Hour, false)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookieName || c.Value != "tok" || !c.HttpOnly || c.MaxAge != 86400 {
		t.Fatalf("unexpected cookie %+v", c)
	}
}
