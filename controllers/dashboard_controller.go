package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-store/models"
	"shoe-store/repositories"
)

// DashboardController serves the overview widgets. Each widget loads
// independently so one slow endpoint only stalls its own panel.
type DashboardController struct {
	Dashboard *repositories.DashboardRepository
	Logger    *zap.Logger
}

// @Summary Dashboard stats
// @Tags Admin - Dashboard
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard/stats [get]
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	stats, err := ctrl.Dashboard.Stats(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch statistics", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Statistics retrieved", Data: stats})
}

// @Summary Sales summary
// @Tags Admin - Dashboard
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard/sales-summary [get]
func (ctrl *DashboardController) GetSalesSummary(c *gin.Context) {
	points, err := ctrl.Dashboard.SalesSummary(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch sales summary", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Sales summary retrieved", Data: points})
}

// @Summary Recent orders
// @Tags Admin - Dashboard
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard/recent-orders [get]
func (ctrl *DashboardController) GetRecentOrders(c *gin.Context) {
	orders, err := ctrl.Dashboard.RecentOrders(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch recent orders", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Recent orders retrieved", Data: orders})
}

// @Summary Low stock alerts
// @Tags Admin - Dashboard
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard/low-stock [get]
func (ctrl *DashboardController) GetLowStockAlerts(c *gin.Context) {
	alerts, err := ctrl.Dashboard.LowStockAlerts(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch low stock alerts", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Low stock alerts retrieved", Data: alerts})
}
