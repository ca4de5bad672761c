package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"huntboard/internal/domain"
	"huntboard/internal/domain/board"
)

// columnDoc is the BSON shape of a board column.
type columnDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Position  int       `bson:"position"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d columnDoc) toDomain() board.Column {
	return board.Column{
		ID:        d.ID,
		Name:      d.Name,
		Position:  d.Position,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ListColumns returns all columns sorted by board position ascending.
func (s *Store) ListColumns(ctx context.Context) ([]board.Column, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := s.columns().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}

	var docs []columnDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding columns: %w", err)
	}

	columns := make([]board.Column, len(docs))
	for i, d := range docs {
		columns[i] = d.toDomain()
	}
	return columns, nil
}

// GetColumn returns a single column by ID.
func (s *Store) GetColumn(ctx context.Context, id string) (*board.Column, error) {
	var doc columnDoc
	if err := s.columns().FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mapError(err, "column", id)
	}
	col := doc.toDomain()
	return &col, nil
}

// InsertColumn persists a new column, assigning creation timestamps.
func (s *Store) InsertColumn(ctx context.Context, col *board.Column) error {
	ts := now()
	col.CreatedAt = ts
	col.UpdatedAt = ts

	doc := columnDoc{
		ID:        col.ID,
		Name:      col.Name,
		Position:  col.Position,
		CreatedAt: col.CreatedAt,
		UpdatedAt: col.UpdatedAt,
	}
	if _, err := s.columns().InsertOne(ctx, doc); err != nil {
		return mapError(err, "column", col.ID)
	}
	return nil
}

// RenameColumn updates a column's name and returns the updated entity.
func (s *Store) RenameColumn(ctx context.Context, id, name string) (*board.Column, error) {
	update := bson.M{"$set": bson.M{"name": name, "updated_at": now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc columnDoc
	if err := s.columns().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		return nil, mapError(err, "column", id)
	}
	col := doc.toDomain()
	return &col, nil
}

// DeleteColumn removes a column and every card it holds in one transaction,
// so readers never observe orphaned cards.
func (s *Store) DeleteColumn(ctx context.Context, id string) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		res, err := s.columns().DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return nil, fmt.Errorf("deleting column: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, fmt.Errorf("column %s: %w", id, domain.ErrNotFound)
		}
		if _, err := s.cards().DeleteMany(ctx, bson.M{"column_id": id}); err != nil {
			return nil, fmt.Errorf("deleting column cards: %w", err)
		}
		return nil, nil
	})
	return err
}
