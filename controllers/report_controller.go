package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-store/models"
	"shoe-store/repositories"
)

var reportTypes = map[string]bool{
	"sales":     true,
	"inventory": true,
	"customers": true,
	"products":  true,
}

type ReportController struct {
	Reports *repositories.ReportRepository
	Logger  *zap.Logger
}

// @Summary Export report
// @Description Generate a report upstream and stream it back as a download
// @Tags Admin - Reports
// @Accept json
// @Produce application/octet-stream
// @Param type path string true "Report type" Enums(sales, inventory, customers, products)
// @Param request body models.ReportRequest true "Date range"
// @Success 200 {file} binary
// @Router /admin/reports/{type} [post]
func (ctrl *ReportController) Export(c *gin.Context) {
	reportType := c.Param("type")
	if !reportTypes[reportType] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Unknown report type"})
		return
	}

	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid report request",
			Error:   err.Error(),
		})
		return
	}
	if req.DateRange != "custom" {
		req.CustomDateRange = nil
	}

	blob, contentType, err := ctrl.Reports.Export(c.Request.Context(), reportType, req)
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to generate report", err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-report.pdf"`, reportType))
	c.Data(http.StatusOK, contentType, blob)
}
