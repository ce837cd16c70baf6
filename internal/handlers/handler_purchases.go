package handlers

import (
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/utils"
	"github.com/gin-gonic/gin"
)

type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// registerPurchaseRoutes registers routes related to purchase bills.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := &purchaseHandler{purchaseService: purchaseService}

	purchases := rg.Group("/purchases")
	{
		purchases.GET("", h.listPurchases)
		purchases.POST("", h.createPurchase)
		purchases.GET("/export.csv", h.exportPurchases)
		purchases.GET("/:id", h.getPurchase)
		purchases.PUT("/:id", h.updatePurchase)
		purchases.DELETE("/:id", h.deletePurchase)
	}
}

func (h *purchaseHandler) listPurchases(c *gin.Context) {
	var params dto.SearchParams
	_ = c.ShouldBindQuery(&params)
	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), params.Query)
	if err != nil {
		respondError(c, err, "Failed to fetch purchases data")
		return
	}
	c.JSON(http.StatusOK, purchases)
}

func (h *purchaseHandler) getPurchase(c *gin.Context) {
	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), domain.RecordID(c.Param("id")))
	if err != nil {
		respondError(c, err, "Failed to fetch bill")
		return
	}
	c.JSON(http.StatusOK, purchase)
}

func (h *purchaseHandler) createPurchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save bill")
		return
	}
	c.JSON(http.StatusCreated, purchase)
}

func (h *purchaseHandler) updatePurchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}
	purchase, err := h.purchaseService.UpdatePurchase(c.Request.Context(), domain.RecordID(c.Param("id")), req)
	if err != nil {
		respondError(c, err, "Failed to save bill")
		return
	}
	c.JSON(http.StatusOK, purchase)
}

func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	if err := h.purchaseService.DeletePurchase(c.Request.Context(), domain.RecordID(c.Param("id"))); err != nil {
		respondError(c, err, "Failed to delete bill")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *purchaseHandler) exportPurchases(c *gin.Context) {
	var params dto.SearchParams
	_ = c.ShouldBindQuery(&params)
	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), params.Query)
	if err != nil {
		respondError(c, err, "Failed to fetch purchases data")
		return
	}
	writeCSVAttachment(c, "purchases.csv", func(c *gin.Context) error {
		return utils.WriteCSV(c.Writer, purchases)
	})
}
