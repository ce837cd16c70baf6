package handlers

import (
	"net/http"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/utils"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests related to products.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// registerInventoryRoutes registers routes related to products.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/export.csv", h.exportProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param q query string false "Case-insensitive search on name, SKU, category and supplier"
// @Success 200 {array} domain.Product
// @Failure 401 {object} map[string]string "Please log in first"
// @Router /products [get]
func (h *inventoryHandler) listProducts(c *gin.Context) {
	var params dto.SearchParams
	_ = c.ShouldBindQuery(&params)
	products, err := h.inventoryService.ListProducts(c.Request.Context(), params.Query)
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *inventoryHandler) getProduct(c *gin.Context) {
	product, err := h.inventoryService.GetProduct(c.Request.Context(), domain.RecordID(c.Param("id")))
	if err != nil {
		respondError(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *inventoryHandler) createProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.inventoryService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *inventoryHandler) updateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	product, err := h.inventoryService.UpdateProduct(c.Request.Context(), domain.RecordID(c.Param("id")), req)
	if err != nil {
		respondError(c, err, "Failed to save product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *inventoryHandler) deleteProduct(c *gin.Context) {
	if err := h.inventoryService.DeleteProduct(c.Request.Context(), domain.RecordID(c.Param("id"))); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *inventoryHandler) exportProducts(c *gin.Context) {
	var params dto.SearchParams
	_ = c.ShouldBindQuery(&params)
	products, err := h.inventoryService.ListProducts(c.Request.Context(), params.Query)
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	writeCSVAttachment(c, "products.csv", func(c *gin.Context) error {
		return utils.WriteCSV(c.Writer, products)
	})
}
