package dispatch_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Gunvolt24/pos_printer/internal/dispatch"
	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports/mocks"
	"github.com/Gunvolt24/pos_printer/pkg/metrics"
)

func job(role domain.Role) domain.PrintJob {
	return domain.PrintJob{
		Profile: domain.PrinterProfile{Role: role, DeviceType: domain.DeviceEpson, DeviceName: "POS-80", CharacterSet: domain.CharsetPC437USA, WidthColumns: 48},
		Buffer:  []byte{0x1B, '@'},
	}
}

func TestDispatch_SenderResultPassesThrough(t *testing.T) {
	metrics.MustRegister()
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)

	okBefore := testutil.ToFloat64(metrics.PrintJobs.WithLabelValues("kitchen", "ok"))
	failedBefore := testutil.ToFloat64(metrics.PrintJobs.WithLabelValues("kitchen", "failed"))

	gomock.InOrder(
		sender.EXPECT().Send(gomock.Any(), []byte{0x1B, '@'}, "POS-80").Return(true),
		sender.EXPECT().Send(gomock.Any(), []byte{0x1B, '@'}, "POS-80").Return(false),
	)

	d := dispatch.NewDispatcher(sender, noopLogger{})
	if !d.Dispatch(context.Background(), job(domain.RoleKitchen)) {
		t.Fatalf("expected true")
	}
	if d.Dispatch(context.Background(), job(domain.RoleKitchen)) {
		t.Fatalf("expected false")
	}

	if got := testutil.ToFloat64(metrics.PrintJobs.WithLabelValues("kitchen", "ok")); got != okBefore+1 {
		t.Fatalf("ok counter: got=%v want=%v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(metrics.PrintJobs.WithLabelValues("kitchen", "failed")); got != failedBefore+1 {
		t.Fatalf("failed counter: got=%v want=%v", got, failedBefore+1)
	}
}

func TestDispatch_PanicBecomesFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, []byte, string) bool { panic("usb gone") },
	)

	d := dispatch.NewDispatcher(sender, noopLogger{})
	if d.Dispatch(context.Background(), job(domain.RoleCashier)) {
		t.Fatalf("expected false after panic")
	}
}

func TestDispatch_EmptyBufferNotSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)

	j := job(domain.RoleCashier)
	j.Buffer = nil

	d := dispatch.NewDispatcher(sender, noopLogger{})
	if d.Dispatch(context.Background(), j) {
		t.Fatalf("expected false for empty buffer")
	}
}
