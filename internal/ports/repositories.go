package ports

import (
	"context"

	"huntboard/internal/domain/board"
	"huntboard/internal/ordering"
)

// BoardRepository defines the storage port for board state. Implemented by
// the MongoDB adapter; called by the application layer. The sort-by-order
// view returned by CardsSorted is the single source of truth for column
// membership and sequence.
type BoardRepository interface {
	// ListColumns returns all columns sorted by board position ascending,
	// without cards populated.
	ListColumns(ctx context.Context) ([]board.Column, error)

	// GetColumn returns a single column by ID without cards populated.
	// Returns domain.ErrNotFound if the column does not exist.
	GetColumn(ctx context.Context, id string) (*board.Column, error)

	// InsertColumn persists a new column.
	// Returns domain.ErrConflict on an ID collision.
	InsertColumn(ctx context.Context, column *board.Column) error

	// RenameColumn updates a column's name.
	// Returns domain.ErrNotFound if the column does not exist.
	RenameColumn(ctx context.Context, id, name string) (*board.Column, error)

	// DeleteColumn removes a column and all cards belonging to it.
	// Returns domain.ErrNotFound if the column does not exist.
	DeleteColumn(ctx context.Context, id string) error

	// CardsSorted returns the cards of a column sorted ascending by order
	// value. Returns an empty slice for an existing empty column.
	CardsSorted(ctx context.Context, columnID string) ([]board.Card, error)

	// GetCard returns a single card by ID.
	// Returns domain.ErrNotFound if the card does not exist.
	GetCard(ctx context.Context, id string) (*board.Card, error)

	// InsertCard persists a new card with its pre-allocated order value.
	// Returns domain.ErrConflict on an ID collision.
	InsertCard(ctx context.Context, card *board.Card) error

	// UpdateCard updates a card's metadata fields, leaving column membership
	// and order untouched.
	// Returns domain.ErrNotFound if the card does not exist.
	UpdateCard(ctx context.Context, card *board.Card) (*board.Card, error)

	// DeleteCard removes a card.
	// Returns domain.ErrNotFound if the card does not exist.
	DeleteCard(ctx context.Context, id string) error

	// ApplyWriteSet applies every write in the set atomically: either all
	// column/order reassignments land or none do, from the perspective of
	// any reader. An empty write-set is a no-op.
	ApplyWriteSet(ctx context.Context, ws ordering.WriteSet) error
}
