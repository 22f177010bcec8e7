package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/pos_printer/internal/ports"
	"github.com/Gunvolt24/pos_printer/pkg/ctxmeta"
)

// quietRoutes — служебные маршруты, которые опрашиваются часто и в журнал не пишутся.
var quietRoutes = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger — строка лога на запрос; уровень по статусу: 5xx — error, 4xx — warn.
// request_id и trace_id логгер добавляет сам из контекста.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, quiet := quietRoutes[route]; quiet {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		span, _ := ctxmeta.SpanIDFromContext(ctx)

		logAt(log, status)(ctx, "%s %s status=%d took=%s bytes=%d ip=%s span=%s",
			c.Request.Method, route, status, time.Since(start), c.Writer.Size(), c.ClientIP(), span)
	}
}

func logAt(log ports.Logger, status int) func(context.Context, string, ...any) {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Errorf
	case status >= http.StatusBadRequest:
		return log.Warnf
	default:
		return log.Infof
	}
}
