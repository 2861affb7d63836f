package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var testKey = []byte("test-signing-key-for-unit-tests!")

func signedToken(t *testing.T, role Role) (string, *Claims) {
	t.Helper()
	signer := NewTokenSigner(testKey, time.Hour)
	token, claims, err := signer.Issue(uuid.New(), "testuser", role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token, claims
}

func runMiddleware(cfg JWTConfig, req *http.Request) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware(cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return rec, handler(c)
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	token, _ := signedToken(t, RoleDoctor)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, err := runMiddleware(JWTConfig{SigningKey: testKey}, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestJWTMiddleware_SetsContextValues(t *testing.T) {
	signer := NewTokenSigner(testKey, time.Hour)
	userID := uuid.New()
	token, _, err := signer.Issue(userID, "drwho", RoleDoctor)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware(JWTConfig{SigningKey: testKey})(func(c echo.Context) error {
		ctx := c.Request().Context()
		if got := UserIDFromContext(ctx); got != userID {
			t.Errorf("expected user id %s, got %s", userID, got)
		}
		if got := RoleFromContext(ctx); got != RoleDoctor {
			t.Errorf("expected role doctor, got %s", got)
		}
		if claims := ClaimsFromContext(ctx); claims == nil || claims.Username != "drwho" {
			t.Errorf("claims missing or wrong: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := runMiddleware(JWTConfig{SigningKey: testKey}, req)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_BadSignature(t *testing.T) {
	signer := NewTokenSigner([]byte("a-completely-different-key-12345"), time.Hour)
	token, _, _ := signer.Issue(uuid.New(), "eve", RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	_, err := runMiddleware(JWTConfig{SigningKey: testKey}, req)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_RevokedToken(t *testing.T) {
	store := NewTokenRevocationStore()
	defer store.Close()

	token, claims := signedToken(t, RolePatient)
	store.Revoke(claims.ID, claims.Subject, claims.ExpiresAt.Time)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	_, err := runMiddleware(JWTConfig{SigningKey: testKey, Revoked: store}, req)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for revoked token, got %v", err)
	}
}

func TestJWTMiddleware_SkipperBypassesAuth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/login")

	handler := JWTMiddleware(JWTConfig{SigningKey: testKey, Skipper: AuthSkipper})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("expected skipper to bypass auth, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	signer := NewTokenSigner(testKey, -time.Minute)
	token, _, _ := signer.Issue(uuid.New(), "late", RoleNurse)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	_, err := runMiddleware(JWTConfig{SigningKey: testKey}, req)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %v", err)
	}
}
