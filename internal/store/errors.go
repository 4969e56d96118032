package store

import "errors"

// ErrTaskNotFound indicates no task record matches the requested id.
var ErrTaskNotFound = errors.New("task not found")
