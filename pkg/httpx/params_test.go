package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/pkg/httpx"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rawQuery     string
		defaultLimit int
		maxLimit     int
		want         int
	}{
		{"default", "", 20, 50, 20},
		{"default_above_max", "", 100, 50, 50},
		{"default_zero", "", 0, 50, 1},
		{"ok", "limit=25", 20, 50, 25},
		{"zero_clamped_to_min", "limit=0", 20, 50, 1},
		{"negative_clamped_to_min", "limit=-5", 20, 50, 1},
		{"above_max_clamped", "limit=999", 20, 50, 50},
		{"non_int_uses_default", "limit=foo", 20, 50, 20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := ctxWithQuery(tt.rawQuery)
			if got := httpx.ParseLimit(c, tt.defaultLimit, tt.maxLimit); got != tt.want {
				t.Fatalf("got limit=%d, want %d (query=%q)", got, tt.want, tt.rawQuery)
			}
		})
	}
}

func TestRoleParam(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	tests := []struct {
		raw    string
		want   domain.Role
		wantOK bool
	}{
		{"kitchen", domain.RoleKitchen, true},
		{"Cashier", domain.RoleCashier, true},
		{"bar", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "role", Value: tt.raw}}
		got, ok := httpx.RoleParam(c, "role")
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("RoleParam(%q) = %q,%v want %q,%v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}
