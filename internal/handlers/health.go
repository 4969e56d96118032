package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/internal/models"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "TaskMaster API"})
}
