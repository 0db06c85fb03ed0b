package utils

import (
	"net/http"

	"github.com/osa911/cateringform/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}
