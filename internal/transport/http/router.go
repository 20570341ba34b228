// Пакет rest — HTTP-слой витрины: только чтение заказов,
// каждая операция выполняется от имени владельца сессии.
package rest

import (
	"net/http"

	"github.com/Gunvolt24/storefront_api/internal/apperr"
	"github.com/Gunvolt24/storefront_api/internal/ports"
	"github.com/Gunvolt24/storefront_api/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — обработчики заказов + верификация сессии.
type Handler struct {
	service    ports.OrderReadService
	verifier   ports.SessionVerifier
	log        ports.Logger
	cookieName string
}

// NewHandler — конструктор.
func NewHandler(service ports.OrderReadService, verifier ports.SessionVerifier, log ports.Logger, cookieName string) *Handler {
	return &Handler{service: service, verifier: verifier, log: log, cookieName: cookieName}
}

// NewRouter — роутер с базовыми middleware.
// otelServiceName != "" включает трейсинг запросов (otelgin).
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/orders", h.listMyOrders)
	r.GET("/orders/:id", h.getMyOrder)

	return r
}

// authenticate — верифицирует сессионную куку и возвращает userID.
// При провале сам пишет ответ (единый 401) и возвращает ok=false.
func (h *Handler) authenticate(c *gin.Context) (string, bool) {
	token := httpx.SessionToken(c, h.cookieName)
	identity, err := h.verifier.Verify(c.Request.Context(), token)
	if err != nil {
		h.respondError(c, err)
		return "", false
	}
	return identity.UserID, true
}

// respondError — единая точка формирования ответа об ошибке:
// прикладная ошибка проходит как есть, остальное — 500 без деталей.
func (h *Handler) respondError(c *gin.Context, err error) {
	msg, status := apperr.Classify(err)
	if status == http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "internal error path=%s err=%v", c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": msg})
}

// listMyOrders — GET /orders: сводки заказов владельца сессии.
// Пустой список — 200 и {"orders": []}.
func (h *Handler) listMyOrders(c *gin.Context) {
	userID, ok := h.authenticate(c)
	if !ok {
		return
	}

	summaries, err := h.service.MyOrders(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": summaries})
}

// getMyOrder — GET /orders/:id: полный заказ владельца сессии.
// Чужой и несуществующий заказ отвечают одинаковым 404.
func (h *Handler) getMyOrder(c *gin.Context) {
	userID, ok := h.authenticate(c)
	if !ok {
		return
	}

	order, err := h.service.MyOrder(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
