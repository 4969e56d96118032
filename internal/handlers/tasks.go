package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskmaster/internal/models"
	"taskmaster/internal/store"
)

func (h *Handler) CreateTask(c *gin.Context) {
	request := &models.TaskCreate{}
	err := c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
		return
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
		Priority:    request.Priority,
		Category:    request.Category,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Category == "" {
		task.Category = models.CategoryPersonal
	}

	err = h.tasks.Insert(c.Request.Context(), task)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c *gin.Context) {
	query := store.TaskQuery{
		Category: models.Category(c.Query("category")),
		Priority: models.Priority(c.Query("priority")),
		Status:   models.TaskStatus(c.Query("status")),
		SortBy:   c.DefaultQuery("sort_by", "created_at"),
		Order:    c.DefaultQuery("order", "desc"),
	}

	// Unknown filter values are rejected, unlike sort_by/order which
	// deliberately fall back to defaults.
	if query.Category != "" && !query.Category.Valid() {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "invalid category filter"})
		return
	}
	if query.Priority != "" && !query.Priority.Valid() {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "invalid priority filter"})
		return
	}
	if query.Status != "" && !query.Status.Valid() {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "invalid status filter"})
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c *gin.Context) {
	task, err := h.tasks.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	request := &models.TaskUpdate{}
	err := c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), c.Param("id"), *request)
	if errors.Is(err, store.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	err := h.tasks.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Task deleted successfully"})
}
