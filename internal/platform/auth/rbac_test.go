package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func contextWithRole(c echo.Context, role Role) echo.Context {
	ctx := context.WithValue(c.Request().Context(), UserRoleKey, role)
	c.SetRequest(c.Request().WithContext(ctx))
	return c
}

func callRequireRole(role Role, required ...Role) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c = contextWithRole(c, role)
	}

	handler := RequireRole(required...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRequireRole_Allows(t *testing.T) {
	if err := callRequireRole(RoleAdmin, RoleAdmin); err != nil {
		t.Errorf("admin should pass admin gate: %v", err)
	}
	if err := callRequireRole(RolePatient, RoleAdmin, RolePatient); err != nil {
		t.Errorf("patient should pass admin-or-patient gate: %v", err)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	err := callRequireRole(RoleNurse, RoleAdmin)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403 for nurse on admin gate, got %v", err)
	}
}

// Admin carries no implicit pass: a gate listing only the patient role
// rejects admins too. Booking an appointment works this way.
func TestRequireRole_NoImplicitAdmin(t *testing.T) {
	err := callRequireRole(RoleAdmin, RolePatient)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403 for admin on patient-only gate, got %v", err)
	}
}

func TestRequireRole_Unauthenticated(t *testing.T) {
	err := callRequireRole("", RoleAdmin)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403 without a role, got %v", err)
	}
}
