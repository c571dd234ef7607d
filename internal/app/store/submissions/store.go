// internal/app/store/submissions/store.go
package submissions

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Row is one appended submission, stored as the ordered column slice
// exactly as the handler produced it. The _id and received time are
// storage bookkeeping, not part of the submission contract: rows carry
// no deduplication key and identical payloads produce distinct rows.
type Row struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Columns    []string           `bson:"columns"`
	ReceivedAt time.Time          `bson:"received_at"`
}

// Store manages the append-only submissions collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new submissions Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("submissions")}
}

// AppendRow appends one row. There is no update or delete: a row, once
// appended, is immutable and permanent.
func (s *Store) AppendRow(ctx context.Context, columns []string) error {
	row := Row{
		Columns:    append([]string(nil), columns...),
		ReceivedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, row); err != nil {
		return fmt.Errorf("append submission row: %w", err)
	}
	return nil
}

// Recent returns the most recently received rows, newest first. This
// is an operator convenience for inspecting intake; the submission
// contract itself has no read path.
func (s *Store) Recent(ctx context.Context, limit int64) ([]Row, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "received_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent submissions: %w", err)
	}
	defer cur.Close(ctx)

	var rows []Row
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return rows, nil
}

// EnsureIndexes creates the received-time index used by Recent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "received_at", Value: -1}},
	})
	return err
}
