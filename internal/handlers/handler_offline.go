package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// offlineHandler handles the offline invoice queue. The queue may be absent.
type offlineHandler struct {
	queue portssvc.OfflineQueueSvcFacade
}

// registerOfflineRoutes registers the offline queue routes. Without a queue
// every route answers 503.
func registerOfflineRoutes(rg *gin.RouterGroup, queue portssvc.OfflineQueueSvcFacade) {
	h := &offlineHandler{queue: queue}

	offline := rg.Group("/offline", h.requireQueue)
	{
		offline.GET("/invoices", h.listInvoices)
		offline.POST("/invoices", h.enqueueInvoice)
		offline.POST("/sync", h.sync)
	}
}

func (h *offlineHandler) requireQueue(c *gin.Context) {
	if h.queue == nil {
		respondError(c, apperrors.ErrNotConfigured, "Offline queue is not configured")
		c.Abort()
		return
	}
	c.Next()
}

func (h *offlineHandler) listInvoices(c *gin.Context) {
	var params dto.ListOfflineInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	invoices, err := h.queue.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list offline invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// enqueueInvoice godoc
// @Summary Queue an invoice while offline
// @Tags offline
// @Accept json
// @Produce json
// @Param invoice body dto.EnqueueInvoiceRequest true "Invoice"
// @Success 201 {object} domain.OfflineInvoice
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 503 {object} map[string]string "Offline queue is not configured"
// @Router /offline/invoices [post]
func (h *offlineHandler) enqueueInvoice(c *gin.Context) {
	var req dto.EnqueueInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	inv, err := h.queue.Enqueue(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save invoice offline")
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func (h *offlineHandler) sync(c *gin.Context) {
	res, err := h.queue.Sync(c.Request.Context())
	if err != nil {
		respondError(c, err, "Offline sync failed")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Offline sync requested",
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed),
		slog.Bool("skipped", res.Skipped),
	)
	c.JSON(http.StatusOK, res)
}
