package ports

import "context"

// Sender — узкая возможность «отдать байты принтеру».
// true — только при подтверждённой передаче ОС; любые сбои сводятся к false.
type Sender interface {
	Send(ctx context.Context, buf []byte, deviceName string) bool
}
