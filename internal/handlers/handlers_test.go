package handlers

import (
	"bytes"
	"context"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskmaster/internal/models"
	"taskmaster/internal/store"
)

// fakeTaskStore mirrors the Mongo store's observable behavior in memory,
// including the sort/filter semantics of List.
type fakeTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]models.Task
	order []string
	err   error
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]models.Task)}
}

func (f *fakeTaskStore) Insert(_ context.Context, task models.Task) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tasks[task.ID] = task
	f.order = append(f.order, task.ID)
	return nil
}

var fakeSortable = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"due_date":   true,
	"title":      true,
	"priority":   true,
}

func taskLess(a, b models.Task, field string) bool {
	switch field {
	case "title":
		return a.Title < b.Title
	case "priority":
		return a.Priority < b.Priority
	case "updated_at":
		return a.UpdatedAt.Before(b.UpdatedAt)
	case "due_date":
		at, bt := time.Time{}, time.Time{}
		if a.DueDate != nil {
			at = *a.DueDate
		}
		if b.DueDate != nil {
			bt = *b.DueDate
		}
		return at.Before(bt)
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func (f *fakeTaskStore) List(_ context.Context, q store.TaskQuery) ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]models.Task, 0)
	for _, id := range f.order {
		task := f.tasks[id]
		if q.Category != "" && task.Category != q.Category {
			continue
		}
		if q.Priority != "" && task.Priority != q.Priority {
			continue
		}
		if q.Status != "" && task.Status != q.Status {
			continue
		}
		result = append(result, task)
	}

	field := q.SortBy
	if !fakeSortable[field] {
		field = "created_at"
	}
	asc := q.Order == "asc"
	sort.SliceStable(result, func(i, j int) bool {
		if asc {
			return taskLess(result[i], result[j], field)
		}
		return taskLess(result[j], result[i], field)
	})

	if len(result) > 1000 {
		result = result[:1000]
	}
	return result, nil
}

func (f *fakeTaskStore) Get(_ context.Context, id string) (models.Task, error) {
	if f.err != nil {
		return models.Task{}, f.err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	task, ok := f.tasks[id]
	if !ok {
		return models.Task{}, store.ErrTaskNotFound
	}
	return task, nil
}

func (f *fakeTaskStore) Update(_ context.Context, id string, update models.TaskUpdate) (models.Task, error) {
	if f.err != nil {
		return models.Task{}, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	task, ok := f.tasks[id]
	if !ok {
		return models.Task{}, store.ErrTaskNotFound
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.DueDate != nil {
		task.DueDate = update.DueDate
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.Category != nil {
		task.Category = *update.Category
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	task.UpdatedAt = time.Now().UTC()

	f.tasks[id] = task
	return task, nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(f.tasks, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeStatusStore struct {
	mu     sync.Mutex
	checks []models.StatusCheck
	err    error
}

func (f *fakeStatusStore) Insert(_ context.Context, check models.StatusCheck) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.checks = append(f.checks, check)
	return nil
}

func (f *fakeStatusStore) List(_ context.Context) ([]models.StatusCheck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	return append(make([]models.StatusCheck, 0), f.checks...), nil
}

func setupRouter(t *testing.T) (*gin.Engine, *fakeTaskStore, *fakeStatusStore) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	tasks := newFakeTaskStore()
	status := &fakeStatusStore{}
	return Routes(New(tasks, status)), tasks, status
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedTask(t *testing.T, tasks *fakeTaskStore, task models.Task) models.Task {
	t.Helper()

	if err := tasks.Insert(context.Background(), task); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}
