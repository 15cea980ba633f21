package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-store/models"
	"shoe-store/repositories"
)

type CustomerController struct {
	Users   *repositories.UserRepository
	Reports *repositories.ReportRepository
	Logger  *zap.Logger
}

// @Summary List customers
// @Tags Admin - Customers
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/customers [get]
func (ctrl *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := ctrl.Users.ListUsers(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch customers", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Customers retrieved", Data: customers})
}

// @Summary Delete customer
// @Tags Admin - Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Response
// @Router /admin/customers/{id} [delete]
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid customer id"})
		return
	}

	if err := ctrl.Users.DeleteUser(c.Request.Context(), id); err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to delete customer", err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Customer deleted successfully"})
}

// @Summary Export customers
// @Description Download the current customer list as a report
// @Tags Admin - Customers
// @Produce application/octet-stream
// @Success 200 {file} binary
// @Router /admin/customers/export [post]
func (ctrl *CustomerController) ExportCustomers(c *gin.Context) {
	customers, err := ctrl.Users.ListUsers(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to fetch customers", err)
		return
	}

	blob, contentType, err := ctrl.Reports.ExportCustomers(c.Request.Context(), customers)
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Failed to export data", err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", `attachment; filename="customers.pdf"`)
	c.Data(http.StatusOK, contentType, blob)
}
