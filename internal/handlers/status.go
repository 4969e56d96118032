package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskmaster/internal/models"
)

func (h *Handler) CreateStatusCheck(c *gin.Context) {
	request := &models.StatusCheckCreate{}
	err := c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
		return
	}

	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: request.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	err = h.status.Insert(c.Request.Context(), check)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, check)
}

func (h *Handler) ListStatusChecks(c *gin.Context) {
	checks, err := h.status.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, checks)
}
