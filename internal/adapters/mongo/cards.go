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

// cardDoc is the BSON shape of a card. The compound {column_id, order} index
// makes the sorted-by-order scan in CardsSorted an index walk.
type cardDoc struct {
	ID         string    `bson:"_id"`
	ColumnID   string    `bson:"column_id"`
	Company    string    `bson:"company"`
	Role       string    `bson:"role"`
	Notes      string    `bson:"notes,omitempty"`
	PostingURL string    `bson:"posting_url,omitempty"`
	Order      int       `bson:"order"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func (d cardDoc) toDomain() board.Card {
	return board.Card{
		ID:         d.ID,
		ColumnID:   d.ColumnID,
		Company:    d.Company,
		Role:       d.Role,
		Notes:      d.Notes,
		PostingURL: d.PostingURL,
		Order:      d.Order,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// CardsSorted returns the cards of a column sorted ascending by order value.
// An existing empty column yields an empty slice, not an error.
func (s *Store) CardsSorted(ctx context.Context, columnID string) ([]board.Card, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := s.cards().Find(ctx, bson.M{"column_id": columnID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing cards for column %s: %w", columnID, err)
	}

	var docs []cardDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding cards for column %s: %w", columnID, err)
	}

	cards := make([]board.Card, len(docs))
	for i, d := range docs {
		cards[i] = d.toDomain()
	}
	return cards, nil
}

// GetCard returns a single card by ID.
func (s *Store) GetCard(ctx context.Context, id string) (*board.Card, error) {
	var doc cardDoc
	if err := s.cards().FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, mapError(err, "card", id)
	}
	card := doc.toDomain()
	return &card, nil
}

// InsertCard persists a new card, assigning creation timestamps.
func (s *Store) InsertCard(ctx context.Context, card *board.Card) error {
	ts := now()
	card.CreatedAt = ts
	card.UpdatedAt = ts

	doc := cardDoc{
		ID:         card.ID,
		ColumnID:   card.ColumnID,
		Company:    card.Company,
		Role:       card.Role,
		Notes:      card.Notes,
		PostingURL: card.PostingURL,
		Order:      card.Order,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
	if _, err := s.cards().InsertOne(ctx, doc); err != nil {
		return mapError(err, "card", card.ID)
	}
	return nil
}

// UpdateCard updates a card's metadata fields and returns the updated entity.
// Column membership and order are deliberately absent from the update
// document; ApplyWriteSet is the only write path allowed to touch them.
func (s *Store) UpdateCard(ctx context.Context, card *board.Card) (*board.Card, error) {
	update := bson.M{"$set": bson.M{
		"company":     card.Company,
		"role":        card.Role,
		"notes":       card.Notes,
		"posting_url": card.PostingURL,
		"updated_at":  now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc cardDoc
	if err := s.cards().FindOneAndUpdate(ctx, bson.M{"_id": card.ID}, update, opts).Decode(&doc); err != nil {
		return nil, mapError(err, "card", card.ID)
	}
	updated := doc.toDomain()
	return &updated, nil
}

// DeleteCard removes a card. Surviving neighbors keep their order values;
// the gaps left behind are absorbed by later insertions.
func (s *Store) DeleteCard(ctx context.Context, id string) error {
	res, err := s.cards().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting card %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
