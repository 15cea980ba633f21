package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-store/models"
	"shoe-store/repositories"
)

type ProductController struct {
	Catalog *repositories.CatalogRepository
	Logger  *zap.Logger
}

// @Summary List products
// @Description Get the storefront catalog
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /productos [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch products", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Products retrieved", Data: products})
}

// @Summary Get product details
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /productos/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	product, err := ctrl.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
			return
		}
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch product", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// @Summary Popular products
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /ecommerce/productos/populares [get]
func (ctrl *ProductController) GetPopularProducts(c *gin.Context) {
	products, err := ctrl.Catalog.PopularProducts(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch popular products", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Popular products retrieved", Data: products})
}

// @Summary Best sellers by audience
// @Tags Products
// @Produce json
// @Param segment path string true "Audience segment"
// @Success 200 {object} models.Response
// @Router /ecommerce/productos/audience/{segment} [get]
func (ctrl *ProductController) GetAudienceProducts(c *gin.Context) {
	products, err := ctrl.Catalog.AudienceProducts(c.Request.Context(), c.Param("segment"))
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch audience products", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Audience products retrieved", Data: products})
}

// respondUpstreamError converts backend failures into a user-facing message:
// the upstream's own message and status when one exists, a 502 for transport
// errors. Nothing here retries and nothing crashes the view.
func respondUpstreamError(c *gin.Context, logger *zap.Logger, fallback string, err error) {
	var upErr *repositories.UpstreamError
	if errors.As(err, &upErr) {
		c.JSON(upErr.StatusCode, models.ErrorResponse{Success: false, Message: upErr.Message})
		return
	}
	logger.Warn(fallback, zap.Error(err))
	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Success: false,
		Message: fallback,
		Error:   err.Error(),
	})
}
