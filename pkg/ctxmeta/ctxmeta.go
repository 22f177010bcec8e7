// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, order_id, роль принтера).
// HTTP-слой, сервис печати и логгер зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyOrderID   ctxKey = "order_id"
	KeyRole      ctxKey = "print_role"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithOrderID — id заказа, который сейчас печатается.
func WithOrderID(ctx context.Context, orderID string) context.Context {
	return withString(ctx, KeyOrderID, orderID)
}

func OrderIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyOrderID)
}

// WithRole — роль принтера (kitchen/cashier).
func WithRole(ctx context.Context, role string) context.Context {
	return withString(ctx, KeyRole, role)
}

func RoleFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRole)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
