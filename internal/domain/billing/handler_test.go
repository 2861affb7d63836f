package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/lamasamir/hms/internal/platform/auth"
)

func newTestHandler() *Handler {
	return NewHandler(NewService(newMockBillRepo()))
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestHandlerCreateBill_ClientTotalIgnored(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	// The client smuggles a total field; the write shape has none, so it
	// must fall out of the computation entirely.
	body := `{"patient_id":"` + uuid.NewString() + `","description":"consultation","amount":"1000.00","tax":"130.00","discount":"50.00","total":"1.00","payment_method":"cash"}`
	req := jsonRequest(http.MethodPost, "/billing", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateBill(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var b Bill
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !b.Total.Equal(decimal.RequireFromString("1080.00")) {
		t.Errorf("expected computed total 1080.00, got %s", b.Total)
	}
	if b.Description != "consultation" {
		t.Errorf("expected description to persist, got %q", b.Description)
	}
}

func TestHandlerUpdateBill_Recomputes(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	body := `{"patient_id":"` + uuid.NewString() + `","amount":"500.00","tax":"65.00","payment_method":"card"}`
	req := jsonRequest(http.MethodPost, "/billing", body)
	rec := httptest.NewRecorder()
	if err := h.CreateBill(e.NewContext(req, rec)); err != nil {
		t.Fatalf("create: %v", err)
	}
	var created Bill
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	body = `{"patient_id":"` + created.PatientID.String() + `","amount":"800.00","tax":"65.00","discount":"100.00","total":"9999.00","payment_method":"card","payment_status":"paid"}`
	req = jsonRequest(http.MethodPut, "/billing/"+created.ID.String(), body)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	if err := h.UpdateBill(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var updated Bill
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !updated.Total.Equal(decimal.RequireFromString("765.00")) {
		t.Errorf("expected recomputed total 765.00, got %s", updated.Total)
	}
	if updated.PaymentStatus != PaymentStatusPaid {
		t.Errorf("expected status paid, got %s", updated.PaymentStatus)
	}
}

func TestHandlerCreateBill_BadMethod(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	body := `{"patient_id":"` + uuid.NewString() + `","amount":"10.00","payment_method":"bitcoin"}`
	req := jsonRequest(http.MethodPost, "/billing", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateBill(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandlerGetBill_NotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/billing/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := h.GetBill(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestRoutesBillingCreateRequiresAdmin(t *testing.T) {
	e := echo.New()
	bills := newMockBillRepo()
	h := NewHandler(NewService(bills))
	h.RegisterRoutes(e.Group("/api/v1"))

	body := `{"patient_id":"` + uuid.NewString() + `","amount":"10.00","payment_method":"cash"}`
	req := jsonRequest(http.MethodPost, "/api/v1/billing", body)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserRoleKey, auth.RoleNurse))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if len(bills.items) != 0 {
		t.Errorf("forbidden create must not persist, found %d bills", len(bills.items))
	}
}

func TestRoutesBillingUpdateRequiresAdmin(t *testing.T) {
	e := echo.New()
	bills := newMockBillRepo()
	h := NewHandler(NewService(bills))
	h.RegisterRoutes(e.Group("/api/v1"))

	body := `{"patient_id":"` + uuid.NewString() + `","amount":"10.00","payment_method":"cash"}`
	req := jsonRequest(http.MethodPut, "/api/v1/billing/"+uuid.NewString(), body)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserRoleKey, auth.RolePatient))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
