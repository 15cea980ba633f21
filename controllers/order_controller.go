package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-store/models"
	"shoe-store/repositories"
)

type OrderController struct {
	Orders *repositories.OrderRepository
	Logger *zap.Logger
}

// @Summary List orders
// @Description Get all orders for the admin order table
// @Tags Admin - Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.Orders.ListOrders(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Orders retrieved", Data: orders})
}
