package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoe-store/config"
	"shoe-store/middleware"
	"shoe-store/models"
	"shoe-store/services"
)

type AuthController struct {
	Auth   *services.AuthService
	Logger *zap.Logger
}

// @Summary Register
// @Description Register a customer upstream and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.Response
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid registration payload",
			Error:   err.Error(),
		})
		return
	}

	resp, token, err := ctrl.Auth.Register(c.Request.Context(), req)
	if err != nil {
		respondUpstreamError(c, ctrl.Logger, "Registration failed", err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token,
		int(config.AppConfig.SessionExpiry.Seconds()), "/", "", false, true)

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Registration successful",
		Data:    resp,
	})
}

// @Summary Check session
// @Description Verify the upstream cookie session is still live
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/check [get]
func (ctrl *AuthController) Check(c *gin.Context) {
	if err := ctrl.Auth.CheckAuth(c.Request.Context(), c.Request.Header.Get("Cookie")); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Authenticated"})
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out"})
}
