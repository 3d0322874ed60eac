package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"food-store/libs"
	"food-store/models"
	"food-store/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	API      *libs.APIClient
	Carts    *services.CartManager
	Checkout *services.CheckoutService
}

// @Summary Checkout
// @Description Submit the current cart as an order; the cart is cleared only when the upstream accepts it
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Delivery details"
// @Success 201 {object} models.Response
// @Router /checkout [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	cart := ctrl.Carts.For(currentUserID(c))
	order, err := ctrl.Checkout.Checkout(c.Request.Context(), cart, currentUserID(c), currentToken(c), req)
	if errors.Is(err, services.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Cart is empty",
		})
		return
	}
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

// @Summary My order history
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	orders, err := ctrl.API.GetMyOrders(c.Request.Context(), currentToken(c))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved",
		Data:    orders,
	})
}

// @Summary Get order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} models.Response
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order id",
		})
		return
	}

	order, err := ctrl.API.GetOrder(c.Request.Context(), currentToken(c), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved",
		Data:    order,
	})
}

// @Summary All orders
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.API.GetAllOrders(c.Request.Context(), currentToken(c))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved",
		Data:    orders,
	})
}

// @Summary Update order status
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order id"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order id",
		})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	order, err := ctrl.API.UpdateOrderStatus(c.Request.Context(), currentToken(c), id, req.Status)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order status updated",
		Data:    order,
	})
}
