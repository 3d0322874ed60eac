package controllers

import (
	"net/http"
	"strconv"

	"food-store/libs"
	"food-store/models"
	"food-store/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	API     *libs.APIClient
	Catalog *services.CatalogService
}

// @Summary List products
// @Description Available products, filtered and sorted for the storefront
// @Tags Products
// @Produce json
// @Param category query int false "Category id (0 = all)"
// @Param search query string false "Match against name and description"
// @Param sort query string false "name_asc | name_desc | price_asc | price_desc"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.DefaultQuery("category", "0"))

	filters := services.CatalogFilters{
		CategoryID: categoryID,
		Search:     c.Query("search"),
		Sort:       c.DefaultQuery("sort", "default"),
	}

	products, err := ctrl.Catalog.ListProducts(c.Request.Context(), filters)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    gin.H{"products": products, "count": len(products)},
	})
}

// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} models.Response
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product id",
		})
		return
	}

	product, err := ctrl.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}

// @Summary Create product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.API.CreateProduct(c.Request.Context(), currentToken(c), req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created",
		Data:    product,
	})
}

// @Summary Update product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product id",
		})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.API.UpdateProduct(c.Request.Context(), currentToken(c), id, req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated",
		Data:    product,
	})
}

// @Summary Delete product
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product id",
		})
		return
	}

	if err := ctrl.API.DeleteProduct(c.Request.Context(), currentToken(c), id); err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted",
	})
}
