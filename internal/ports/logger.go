package ports

import "context"

// Logger — логгер сервиса печати. Метаданные запроса (request_id, order_id, роль, trace_id)
// реализация берёт из ctx, поэтому в format их не дублируют.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
