//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/pos_printer/internal/cache/memory"
	"github.com/Gunvolt24/pos_printer/internal/dispatch"
	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/escpos"
	"github.com/Gunvolt24/pos_printer/internal/receipt"
	"github.com/Gunvolt24/pos_printer/internal/registry"
	pgrepo "github.com/Gunvolt24/pos_printer/internal/repo/postgres"
	"github.com/Gunvolt24/pos_printer/internal/testutil"
	rest "github.com/Gunvolt24/pos_printer/internal/transport/http"
	"github.com/Gunvolt24/pos_printer/internal/usecase"
	"github.com/Gunvolt24/pos_printer/pkg/logger"
	"github.com/Gunvolt24/pos_printer/pkg/validate"
)

// printRig — сервис печати, у которого «принтеры» — обычные файлы во временном каталоге.
type printRig struct {
	dir     string
	journal *pgrepo.PrintJournal
	server  *httptest.Server
}

func (r printRig) printed(t *testing.T, device string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(r.dir, device))
	require.NoError(t, err)
	return b
}

func startRig(t *testing.T, ctx context.Context) printRig {
	t.Helper()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	dir := t.TempDir()
	for _, dev := range []string{"KITCHEN-1", "FRONT-1"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, dev), nil, 0o600))
	}

	reg, err := registry.New(
		domain.PrinterProfile{Role: domain.RoleKitchen, DeviceType: domain.DeviceEpson, DeviceName: "KITCHEN-1", CharacterSet: domain.CharsetPC858Euro, WidthColumns: 42},
		domain.PrinterProfile{Role: domain.RoleCashier, DeviceType: domain.DeviceStar, DeviceName: "FRONT-1", CharacterSet: domain.CharsetPC858Euro, WidthColumns: 48},
	)
	require.NoError(t, err)

	v := validate.NewOrderValidator()
	journal := pgrepo.NewPrintJournal(pg.Pool)
	svc := usecase.NewPrintService(
		reg,
		receipt.NewComposer(receipt.DefaultSettings(), v, nil),
		escpos.NewEncoder(logg),
		dispatch.NewDispatcher(dispatch.NewDeviceSender(filepath.Join(dir, "{printer}"), logg), logg),
		v,
		cachemem.NewLRUCacheTTL(100, time.Minute),
		journal,
		logg,
	)

	ts := httptest.NewServer(rest.NewRouter(rest.NewHandler(svc, logg, 2*time.Second), ""))
	t.Cleanup(ts.Close)

	return printRig{dir: dir, journal: journal, server: ts}
}

func post(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	return resp.StatusCode, got
}

// 1) POST /print/kitchen и /print/cashier — байты доходят до устройства, заказ попадает в журнал.
func TestHTTP_PrintAndJournal_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	rig := startRig(t, ctx)
	id := "http-" + testutil.UniqSuffix()
	body := `{"id":"` + id + `","items":[{"name":"Café crème","quantity":1,"unitPrice":"2.40"}],"totalAmount":2.4,"paymentMethod":"cash"}`

	code, got := post(t, rig.server.URL+"/print/kitchen", body)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, got["printed"])

	code, _ = post(t, rig.server.URL+"/print/cashier", body)
	require.Equal(t, http.StatusOK, code)

	kitchen := rig.printed(t, "KITCHEN-1")
	require.True(t, bytes.HasPrefix(kitchen, []byte{0x1B, '@', 0x1B, 't', 19}))
	require.True(t, bytes.HasSuffix(kitchen, []byte{0x1D, 'V', 'A', 0x00}))

	cashier := rig.printed(t, "FRONT-1")
	require.True(t, bytes.HasPrefix(cashier, []byte{0x1B, '@', 0x1B, 0x1D, 't', 4}))
	require.True(t, bytes.Contains(cashier, []byte("2.40 EUR")))

	snap, err := rig.journal.LastSnapshot(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, "Café crème", snap.Items[0].Name)
}

// 2) Перепечатка: 200 для известного заказа, 404 для неизвестного.
func TestHTTP_Reprint_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	rig := startRig(t, ctx)
	id := "reprint-" + testutil.UniqSuffix()
	body := `{"id":"` + id + `","items":[{"name":"Soup","quantity":2,"unitPrice":3}],"totalAmount":6}`

	code, _ := post(t, rig.server.URL+"/print/kitchen", body)
	require.Equal(t, http.StatusOK, code)
	first := len(rig.printed(t, "KITCHEN-1"))

	code, got := post(t, rig.server.URL+"/print/reprint/kitchen/"+id, "{}")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, got["printed"])
	require.Greater(t, len(rig.printed(t, "KITCHEN-1")), first)

	code, got = post(t, rig.server.URL+"/print/reprint/kitchen/not-existing-id", "{}")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "order snapshot not found", got["error"])
}

// 3) Недоступное устройство — 502 и printed=false.
func TestHTTP_DeviceMissing_502_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	rig := startRig(t, ctx)
	require.NoError(t, os.Remove(filepath.Join(rig.dir, "FRONT-1")))

	code, got := post(t, rig.server.URL+"/print/test/cashier", "{}")
	require.Equal(t, http.StatusBadGateway, code)
	require.Equal(t, false, got["printed"])
}

// 4) /ping, /metrics, 404 и 405 с JSON-телом.
func TestHTTP_Health_Metrics_And_Errors_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	ts := httptest.NewServer(rest.NewRouter(rest.NewHandler(nil, logg, 0), ""))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(readAll(t, resp.Body)))

	respM, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer respM.Body.Close()
	require.Equal(t, http.StatusOK, respM.StatusCode)
	require.NotEmpty(t, readAll(t, respM.Body))

	resp404, err := http.Get(ts.URL + "/no/such/route")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp404.Body).Decode(&got))
	require.Equal(t, "route not found", got["error"])

	code, got := post(t, ts.URL+"/printers", "{}")
	require.Equal(t, http.StatusMethodNotAllowed, code)
	require.Equal(t, "method not allowed", got["error"])
}

// readAll — просто прочитать тело.
func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
