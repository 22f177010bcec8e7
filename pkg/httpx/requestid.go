package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/pos_printer/pkg/ctxmeta"
)

// HeaderRequestID — заголовок сквозного идентификатора запроса.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware берёт X-Request-ID клиента (если он корректен) или генерирует UUID,
// кладёт его в контекст запроса и возвращает в ответе.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, requestID := ctxmeta.EnsureRequestID(c.Request.Context(), c.GetHeader(HeaderRequestID))
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
