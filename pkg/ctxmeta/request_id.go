package ctxmeta

import (
	"context"

	"github.com/google/uuid"
)

// MaxRequestIDLen — длиннее этого чужой request_id не принимается.
const MaxRequestIDLen = 128

// EnsureRequestID — кладёт в контекст присланный request_id (HTTP-заголовок, заголовок
// сообщения Kafka) или новый UUID, если присланный пуст или некорректен.
func EnsureRequestID(ctx context.Context, candidate string) (context.Context, string) {
	id := candidate
	if !validRequestID(id) {
		id = uuid.NewString()
	}
	return WithRequestID(ctx, id), id
}

// validRequestID — печатный ASCII без пробелов; иначе значение попадёт в логи и заголовки как есть.
func validRequestID(s string) bool {
	if s == "" || len(s) > MaxRequestIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}
