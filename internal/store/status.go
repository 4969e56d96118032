package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskmaster/internal/models"
)

// StatusStore holds append-only status-check records. There is no
// update or delete path for this collection.
type StatusStore struct {
	col *mongo.Collection
}

func NewStatusStore(db *mongo.Database) *StatusStore {
	return &StatusStore{col: db.Collection("status_checks")}
}

func (s *StatusStore) Insert(ctx context.Context, check models.StatusCheck) error {
	_, err := s.col.InsertOne(ctx, check)
	return err
}

func (s *StatusStore) List(ctx context.Context) ([]models.StatusCheck, error) {
	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, err
	}

	checks := make([]models.StatusCheck, 0)
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, err
	}

	return checks, nil
}
