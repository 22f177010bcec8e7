package dispatch

import (
	"context"
	"time"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/ports"
	"github.com/Gunvolt24/pos_printer/pkg/metrics"
)

// Dispatcher — передаёт PrintJob отправителю; метрики, логи, паника → false.
type Dispatcher struct {
	sender ports.Sender
	log    ports.Logger
}

func NewDispatcher(sender ports.Sender, log ports.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, log: log}
}

// Dispatch — true только если отправитель подтвердил приём задания.
func (d *Dispatcher) Dispatch(ctx context.Context, job domain.PrintJob) (ok bool) {
	role := string(job.Profile.Role)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			d.log.Errorf(ctx, "dispatch: panic in sender for %s/%q: %v", role, job.Profile.DeviceName, r)
			ok = false
		}
		metrics.PrintDispatchSeconds.WithLabelValues(role).Observe(time.Since(start).Seconds())
		result := "ok"
		if !ok {
			result = "failed"
		}
		metrics.PrintJobs.WithLabelValues(role, result).Inc()
	}()

	if len(job.Buffer) == 0 {
		d.log.Warnf(ctx, "dispatch: empty buffer for %s", role)
		return false
	}

	ok = d.sender.Send(ctx, job.Buffer, job.Profile.DeviceName)
	if !ok {
		d.log.Warnf(ctx, "dispatch: %s job to %q not confirmed (%d bytes)", role, job.Profile.DeviceName, len(job.Buffer))
	}
	return ok
}
