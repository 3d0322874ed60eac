package controllers

import (
	"net/http"
	"strconv"

	"food-store/models"
	"food-store/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Carts   *services.CartManager
	Catalog *services.CatalogService
}

// @Summary Get cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.Carts.For(currentUserID(c))
	lines := cart.GetCart(c.Request.Context())
	summary := cart.Summary(c.Request.Context())

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    gin.H{"items": lines, "summary": summary},
	})
}

// @Summary Get cart summary
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/summary [get]
func (ctrl *CartController) GetSummary(c *gin.Context) {
	summary := ctrl.Carts.For(currentUserID(c)).Summary(c.Request.Context())

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Summary calculated",
		Data:    summary,
	})
}

// @Summary Add product to cart
// @Description Fetches the product upstream, clamps quantity to stock, merges into the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.Response
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := ctrl.Catalog.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if !product.Available {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Product is not available",
		})
		return
	}
	if product.Stock < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Product is out of stock",
		})
		return
	}

	// Stock limit is enforced here, not inside the store.
	if req.Quantity > product.Stock {
		req.Quantity = product.Stock
	}

	cart := ctrl.Carts.For(currentUserID(c))
	cart.AddToCart(c.Request.Context(), *product, req.Quantity)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product added to cart",
		Data:    gin.H{"items": cart.GetCart(c.Request.Context())},
	})
}

// @Summary Change line quantity
// @Description Applies a signed delta; reaching zero removes the line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path int true "Product id"
// @Param request body models.UpdateCartItemRequest true "Quantity delta"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product id",
		})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	cart := ctrl.Carts.For(currentUserID(c))
	cart.UpdateCartItem(c.Request.Context(), productID, req.Delta)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    gin.H{"items": cart.GetCart(c.Request.Context())},
	})
}

// @Summary Remove line
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product id"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product id",
		})
		return
	}

	cart := ctrl.Carts.For(currentUserID(c))
	cart.RemoveFromCart(c.Request.Context(), productID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product removed from cart",
		Data:    gin.H{"items": cart.GetCart(c.Request.Context())},
	})
}

// @Summary Empty the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.Carts.For(currentUserID(c)).ClearCart(c.Request.Context())

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
	})
}
