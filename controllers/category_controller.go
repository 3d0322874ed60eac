package controllers

import (
	"net/http"
	"strconv"

	"food-store/libs"
	"food-store/models"
	"food-store/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	API     *libs.APIClient
	Catalog *services.CatalogService
}

// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// @Summary Create category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	category, err := ctrl.API.CreateCategory(c.Request.Context(), currentToken(c), req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Category created",
		Data:    category,
	})
}

// @Summary Update category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category id"
// @Param request body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid category id",
		})
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	category, err := ctrl.API.UpdateCategory(c.Request.Context(), currentToken(c), id, req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category updated",
		Data:    category,
	})
}

// @Summary Delete category
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid category id",
		})
		return
	}

	if err := ctrl.API.DeleteCategory(c.Request.Context(), currentToken(c), id); err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category deleted",
	})
}
