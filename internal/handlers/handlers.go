package handlers

import (
	"context"

	"taskmaster/internal/models"
	"taskmaster/internal/store"
)

type TaskStore interface {
	Insert(ctx context.Context, task models.Task) error
	List(ctx context.Context, q store.TaskQuery) ([]models.Task, error)
	Get(ctx context.Context, id string) (models.Task, error)
	Update(ctx context.Context, id string, update models.TaskUpdate) (models.Task, error)
	Delete(ctx context.Context, id string) error
}

type StatusStore interface {
	Insert(ctx context.Context, check models.StatusCheck) error
	List(ctx context.Context) ([]models.StatusCheck, error)
}

type Handler struct {
	tasks  TaskStore
	status StatusStore
}

func New(tasks TaskStore, status StatusStore) *Handler {
	return &Handler{tasks: tasks, status: status}
}
