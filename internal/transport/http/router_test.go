package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports/mocks"
	rest "github.com/Gunvolt24/pos_printer/internal/transport/http"
	"github.com/Gunvolt24/pos_printer/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

const burgerJSON = `{"id":"abc123","items":[{"name":"Burger","quantity":2,"unitPrice":5.5,
"options":[{"name":"Cheese","price":1}],"note":"no onion"}],"totalAmount":13,"paymentMethod":"card"}`

func newRouter(t *testing.T) (*mocks.MockReceiptPrinter, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockReceiptPrinter(ctrl)
	h := rest.NewHandler(svc, noopLogger{}, 0)
	return svc, rest.NewRouter(h, "")
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPrintKitchen_OK(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().PrintKitchenReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.OrderSnapshot) bool {
			if o.ID != "abc123" || len(o.Items) != 1 || o.Items[0].Quantity != 2 {
				t.Fatalf("unexpected order: %+v", o)
			}
			if !o.Items[0].UnitPrice.Equal(decimal.RequireFromString("5.5")) {
				t.Fatalf("unit price: %s", o.Items[0].UnitPrice)
			}
			return true
		})

	w := do(r, http.MethodPost, "/print/kitchen", burgerJSON)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !got["printed"] {
		t.Fatalf("want printed=true, got %v", got)
	}
}

func TestPrintCashier_Failed_502(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().PrintCashierReceipt(gomock.Any(), gomock.Any()).Return(false)

	w := do(r, http.MethodPost, "/print/cashier", burgerJSON)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("want 502, got %d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"printed":false`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPrint_MalformedBody_400(t *testing.T) {
	_, r := newRouter(t)

	for _, body := range []string{`{"id":`, `[1,2,3]`} {
		w := do(r, http.MethodPost, "/print/kitchen", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: want 400, got %d", body, w.Code)
		}
	}
}

func TestTestPrint(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().TestPrint(gomock.Any(), domain.RoleCashier).Return(true)

	if w := do(r, http.MethodPost, "/print/test/CASHIER", ""); w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodPost, "/print/test/bar", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestReprint(t *testing.T) {
	svc, r := newRouter(t)

	gomock.InOrder(
		svc.EXPECT().Reprint(gomock.Any(), domain.RoleKitchen, "abc123").Return(true, nil),
		svc.EXPECT().Reprint(gomock.Any(), domain.RoleKitchen, "missing").Return(false, usecase.ErrSnapshotNotFound),
		svc.EXPECT().Reprint(gomock.Any(), domain.RoleCashier, "broken").Return(false, errors.New("db error")),
	)

	if w := do(r, http.MethodPost, "/print/reprint/kitchen/abc123", ""); w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodPost, "/print/reprint/kitchen/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/print/reprint/cashier/broken", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/print/reprint/bar/abc123", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestListPrinters(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().Printers().Return([]domain.PrinterProfile{
		{Role: domain.RoleKitchen, DeviceType: domain.DeviceEpson, DeviceName: "KITCHEN-1", CharacterSet: domain.CharsetPC858Euro, WidthColumns: 42},
	})

	w := do(r, http.MethodGet, "/printers", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	var got []domain.PrinterProfile
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].DeviceName != "KITCHEN-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestRecent_Limits(t *testing.T) {
	svc, r := newRouter(t)

	gomock.InOrder(
		svc.EXPECT().RecentSnapshots(gomock.Any(), 20).Return([]*domain.OrderSnapshot{{ID: "a"}, {ID: "b"}}, nil),
		svc.EXPECT().RecentSnapshots(gomock.Any(), 100).Return(nil, nil),
		svc.EXPECT().RecentSnapshots(gomock.Any(), 3).Return(nil, errors.New("db error")),
	)

	w := do(r, http.MethodGet, "/print/recent", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	var got []*domain.OrderSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Fatalf("unexpected result: %+v", got)
	}

	if w := do(r, http.MethodGet, "/print/recent?limit=5000", ""); w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/print/recent?limit=3", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestNoRoute_404(t *testing.T) {
	_, r := newRouter(t)

	if w := do(r, http.MethodGet, "/no-such-route", ""); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	_, r := newRouter(t)

	w := do(r, http.MethodPost, "/printers", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow != "GET" {
		t.Fatalf("want Allow: GET, got %q", allow)
	}
}

func TestPing_200(t *testing.T) {
	_, r := newRouter(t)

	if w := do(r, http.MethodGet, "/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	_, r := newRouter(t)

	w := do(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
