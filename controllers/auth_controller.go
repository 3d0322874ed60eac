package controllers

import (
	"net/http"

	"food-store/libs"
	"food-store/models"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	API *libs.APIClient
}

// roleHome mirrors the storefront's post-login redirect: admins land on the
// dashboard, everyone else on the shop.
func roleHome(role string) string {
	if role == models.RoleAdmin {
		return "/admin/dashboard"
	}
	return "/"
}

// @Summary Login
// @Description Authenticate against the upstream API and return its token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	auth, err := ctrl.API.Login(c.Request.Context(), req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: gin.H{
			"token": auth.Token,
			"user":  auth.User,
			"home":  roleHome(auth.User.Role),
		},
	})
}

// @Summary Register
// @Description Create an account on the upstream API
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "New account"
// @Success 201 {object} models.Response
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	auth, err := ctrl.API.Register(c.Request.Context(), req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Registration successful",
		Data: gin.H{
			"token": auth.Token,
			"user":  auth.User,
			"home":  roleHome(auth.User.Role),
		},
	})
}
