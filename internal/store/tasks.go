package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskmaster/internal/models"
)

// listLimit caps every list query; callers beyond it are truncated.
const listLimit = 1000

// TaskQuery describes an optional equality filter plus sort for listing
// tasks. Empty filter fields mean "no filter". SortBy falls back to
// created_at when it is not a sortable field, and any Order other than
// exactly "asc" sorts descending.
type TaskQuery struct {
	Category models.Category
	Priority models.Priority
	Status   models.TaskStatus
	SortBy   string
	Order    string
}

var sortableFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"due_date":   true,
	"title":      true,
	"priority":   true,
}

func (q TaskQuery) filter() bson.M {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Priority != "" {
		filter["priority"] = q.Priority
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	return filter
}

func (q TaskQuery) sort() bson.D {
	field := q.SortBy
	if !sortableFields[field] {
		field = "created_at"
	}
	direction := -1
	if q.Order == "asc" {
		direction = 1
	}
	return bson.D{{Key: field, Value: direction}}
}

// updateDoc builds the $set document for a sparse update. Only fields
// the caller provided are written; updated_at is always refreshed.
func updateDoc(u models.TaskUpdate, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.DueDate != nil {
		set["due_date"] = *u.DueDate
	}
	if u.Priority != nil {
		set["priority"] = *u.Priority
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	return set
}

type TaskStore struct {
	col *mongo.Collection
}

func NewTaskStore(db *mongo.Database) *TaskStore {
	return &TaskStore{col: db.Collection("tasks")}
}

func (s *TaskStore) Insert(ctx context.Context, task models.Task) error {
	_, err := s.col.InsertOne(ctx, task)
	return err
}

func (s *TaskStore) List(ctx context.Context, q TaskQuery) ([]models.Task, error) {
	opts := options.Find().SetSort(q.sort()).SetLimit(listLimit)

	cursor, err := s.col.Find(ctx, q.filter(), opts)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s *TaskStore) Get(ctx context.Context, id string) (models.Task, error) {
	task := models.Task{}
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskStore) Update(ctx context.Context, id string, update models.TaskUpdate) (models.Task, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	set := updateDoc(update, time.Now().UTC())

	task := models.Task{}
	err := s.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}

	return nil
}
