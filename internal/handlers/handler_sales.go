package handlers

import (
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/utils"
	"github.com/gin-gonic/gin"
)

// salesHandler handles HTTP requests related to sales invoices.
type salesHandler struct {
	salesService portssvc.SalesSvcFacade
}

// registerSalesRoutes registers routes related to sales invoices.
func registerSalesRoutes(rg *gin.RouterGroup, salesService portssvc.SalesSvcFacade) {
	h := &salesHandler{salesService: salesService}

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.POST("", h.createSale)
		sales.GET("/export.csv", h.exportSales)
		sales.GET("/:id", h.getSale)
		sales.PUT("/:id", h.updateSale)
		sales.DELETE("/:id", h.deleteSale)
	}
}

func (h *salesHandler) listSales(c *gin.Context) {
	var params dto.SearchParams
	_ = c.ShouldBindQuery(&params)
	sales, err := h.salesService.ListSales(c.Request.Context(), params.Query)
	if err != nil {
		respondError(c, err, "Failed to fetch sales data")
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *salesHandler) getSale(c *gin.Context) {
	sale, err := h.salesService.GetSale(c.Request.Context(), domain.RecordID(c.Param("id")))
	if err != nil {
		respondError(c, err, "Failed to fetch invoice")
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *salesHandler) createSale(c *gin.Context) {
	var req dto.SaleRequest
	if !bindJSON(c, &req) {
		return
	}
	sale, err := h.salesService.CreateSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save invoice")
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *salesHandler) updateSale(c *gin.Context) {
	var req dto.SaleRequest
	if !bindJSON(c, &req) {
		return
	}
	sale, err := h.salesService.UpdateSale(c.Request.Context(), domain.RecordID(c.Param("id")), req)
	if err != nil {
		respondError(c, err, "Failed to save invoice")
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *salesHandler) deleteSale(c *gin.Context) {
	if err := h.salesService.DeleteSale(c.Request.Context(), domain.RecordID(c.Param("id"))); err != nil {
		respondError(c, err, "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *salesHandler) exportSales(c *gin.Context) {
	var params dto.SearchParams
	_ = c.ShouldBindQuery(&params)
	sales, err := h.salesService.ListSales(c.Request.Context(), params.Query)
	if err != nil {
		respondError(c, err, "Failed to fetch sales data")
		return
	}
	writeCSVAttachment(c, "sales.csv", func(c *gin.Context) error {
		return utils.WriteCSV(c.Writer, sales)
	})
}
