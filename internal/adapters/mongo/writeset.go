package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"huntboard/internal/domain"
	"huntboard/internal/ordering"
)

// ApplyWriteSet applies every column/order reassignment in a single
// multi-document transaction, so a concurrent board read sees either the
// pre-move or the post-move sequence and never a half-renumbered column.
// An empty write-set returns immediately without touching the session pool.
func (s *Store) ApplyWriteSet(ctx context.Context, ws ordering.WriteSet) error {
	if len(ws) == 0 {
		return nil
	}

	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		ts := now()
		for _, w := range ws {
			update := bson.M{"$set": bson.M{
				"column_id":  w.ColumnID,
				"order":      w.Order,
				"updated_at": ts,
			}}
			res, err := s.cards().UpdateByID(ctx, w.CardID, update)
			if err != nil {
				return nil, fmt.Errorf("updating card %s: %w", w.CardID, err)
			}
			if res.MatchedCount == 0 {
				return nil, fmt.Errorf("card %s: %w", w.CardID, domain.ErrNotFound)
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("applying write-set of %d cards: %w", len(ws), err)
	}

	s.logger.DebugContext(ctx, "write-set applied", "writes", len(ws))
	return nil
}
