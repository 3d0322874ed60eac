package controllers

import (
	"errors"
	"net/http"

	"food-store/libs"
	"food-store/models"

	"github.com/gin-gonic/gin"
)

// respondUpstreamError maps an upstream failure onto our envelope: API errors
// keep their status and message, anything else is a bad gateway.
func respondUpstreamError(c *gin.Context, err error) {
	var apiErr *libs.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, models.ErrorResponse{
			Success: false,
			Message: apiErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Success: false,
		Message: "Upstream service unavailable",
		Error:   err.Error(),
	})
}

func currentUserID(c *gin.Context) int {
	id, _ := c.Get("user_id")
	userID, _ := id.(int)
	return userID
}

func currentToken(c *gin.Context) string {
	token, _ := c.Get("access_token")
	raw, _ := token.(string)
	return raw
}
