package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/pos_printer/internal/domain"
	"github.com/Gunvolt24/pos_printer/internal/normalize"
	"github.com/Gunvolt24/pos_printer/internal/ports"
	"github.com/Gunvolt24/pos_printer/internal/usecase"
	"github.com/Gunvolt24/pos_printer/pkg/httpx"
)

const (
	maxBodyBytes  = 1 << 20
	defaultRecent = 20
	maxRecent     = 100
)

type Handler struct {
	service        ports.ReceiptPrinter
	log            ports.Logger
	requestTimeout time.Duration
}

// NewHandler — requestTimeout <= 0 означает «без собственного таймаута».
func NewHandler(service ports.ReceiptPrinter, log ports.Logger, requestTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, requestTimeout: requestTimeout}
}

func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/printers", h.listPrinters)

	pg := r.Group("/print")
	pg.POST("/kitchen", h.printOrder(domain.RoleKitchen))
	pg.POST("/cashier", h.printOrder(domain.RoleCashier))
	pg.POST("/test/:role", h.testPrint)
	pg.POST("/reprint/:role/:id", h.reprint)
	pg.GET("/recent", h.recent)

	return r
}

func (h *Handler) listPrinters(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Printers())
}

func (h *Handler) printOrder(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
			return
		}
		order, err := normalize.Order(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := h.withTimeout(c.Request.Context())
		defer cancel()

		var printed bool
		switch role {
		case domain.RoleKitchen:
			printed = h.service.PrintKitchenReceipt(ctx, order)
		case domain.RoleCashier:
			printed = h.service.PrintCashierReceipt(ctx, order)
		}
		respondPrinted(c, printed)
	}
}

func (h *Handler) testPrint(c *gin.Context) {
	role, ok := httpx.RoleParam(c, "role")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown printer role"})
		return
	}

	ctx, cancel := h.withTimeout(c.Request.Context())
	defer cancel()

	respondPrinted(c, h.service.TestPrint(ctx, role))
}

func (h *Handler) reprint(c *gin.Context) {
	role, ok := httpx.RoleParam(c, "role")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown printer role"})
		return
	}
	id := c.Param("id")

	ctx, cancel := h.withTimeout(c.Request.Context())
	defer cancel()

	printed, err := h.service.Reprint(ctx, role, id)
	switch {
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order snapshot not found"})
	case err != nil:
		h.log.Errorf(c.Request.Context(), "Reprint failed id=%s role=%s err=%v", id, role, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		respondPrinted(c, printed)
	}
}

func (h *Handler) recent(c *gin.Context) {
	limit := httpx.ParseLimit(c, defaultRecent, maxRecent)

	list, err := h.service.RecentSnapshots(c.Request.Context(), limit)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "RecentSnapshots failed limit=%d err=%v", limit, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.requestTimeout)
}

func respondPrinted(c *gin.Context, printed bool) {
	if printed {
		c.JSON(http.StatusOK, gin.H{"printed": true})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"printed": false})
}
