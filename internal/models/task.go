package models

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryOther    Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryStudy, CategoryOther:
		return true
	}
	return false
}

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	DueDate     *time.Time `bson:"due_date,omitempty" json:"due_date"`
	Priority    Priority   `bson:"priority" json:"priority"`
	Category    Category   `bson:"category" json:"category"`
	Status      TaskStatus `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

type TaskCreate struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    Priority   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category    Category   `json:"category" binding:"omitempty,oneof=work personal study other"`
}

// TaskUpdate is a sparse update: a nil field (absent from the request
// body, or an explicit JSON null) leaves the stored value untouched.
type TaskUpdate struct {
	Title       *string     `json:"title" binding:"omitempty,min=1"`
	Description *string     `json:"description"`
	DueDate     *time.Time  `json:"due_date"`
	Priority    *Priority   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category    *Category   `json:"category" binding:"omitempty,oneof=work personal study other"`
	Status      *TaskStatus `json:"status" binding:"omitempty,oneof=pending completed"`
}
