package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-store/models"
	"shoe-store/repositories"
)

// InventoryController backs the admin inventory screen.
type InventoryController struct {
	Catalog *repositories.CatalogRepository
	Logger  *zap.Logger
}

// @Summary List inventory
// @Description Get the full product list for the admin inventory table
// @Tags Admin - Inventory
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/products [get]
func (ctrl *InventoryController) GetInventory(c *gin.Context) {
	products, err := ctrl.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch inventory", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Inventory retrieved", Data: products})
}

// @Summary Create product
// @Description Save a new product to the catalog
// @Tags Admin - Inventory
// @Accept json
// @Produce json
// @Param product body models.NewProduct true "Product data"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *InventoryController) CreateProduct(c *gin.Context) {
	var product models.NewProduct
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product payload",
			Error:   err.Error(),
		})
		return
	}
	if product.FechaCreacion == "" {
		product.FechaCreacion = time.Now().UTC().Format(time.RFC3339)
	}

	if err := ctrl.Catalog.CreateProduct(c.Request.Context(), product); err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to add product", err)
		return
	}
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Product created"})
}
