package ports

import (
	"context"

	"huntboard/internal/domain/board"
)

// BoardService defines the service port for board operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type BoardService interface {
	// GetBoard returns all columns in board position order with their cards
	// populated, each column's cards sorted by order value ascending.
	GetBoard(ctx context.Context) ([]board.Column, error)

	// ListColumns returns all columns in board position order without
	// populating their cards.
	ListColumns(ctx context.Context) ([]board.Column, error)

	// CreateColumn appends a new column to the board and returns the created
	// entity with server-assigned fields (ID, position, timestamps).
	// Returns domain.ErrValidation if the column fails validation.
	CreateColumn(ctx context.Context, column *board.Column) (*board.Column, error)

	// RenameColumn updates a column's name and returns the updated entity.
	// Returns domain.ErrNotFound if the column does not exist.
	RenameColumn(ctx context.Context, id, name string) (*board.Column, error)

	// DeleteColumn deletes a column and every card it holds. Surviving
	// columns are not renumbered; position gaps absorb the removal.
	// Returns domain.ErrNotFound if the column does not exist.
	DeleteColumn(ctx context.Context, id string) error

	// ListCards returns the cards of a single column sorted by order value
	// ascending. Returns domain.ErrNotFound if the column does not exist.
	ListCards(ctx context.Context, columnID string) ([]board.Card, error)

	// CreateCard creates a new card appended to the end of the given column.
	// The card's order value is allocated with the gap strategy.
	// Returns domain.ErrNotFound if the column does not exist and
	// domain.ErrValidation if the card fails validation.
	CreateCard(ctx context.Context, columnID string, card *board.Card) (*board.Card, error)

	// GetCard returns a single card by ID.
	// Returns domain.ErrNotFound if the card does not exist.
	GetCard(ctx context.Context, id string) (*board.Card, error)

	// UpdateCard updates a card's metadata (company, role, notes, URL).
	// Position and column membership change only through MoveCard.
	// Returns domain.ErrNotFound if the card does not exist.
	UpdateCard(ctx context.Context, id string, card *board.Card) (*board.Card, error)

	// DeleteCard deletes a card. Neighbors keep their order values; the gap
	// left behind absorbs the removal.
	// Returns domain.ErrNotFound if the card does not exist.
	DeleteCard(ctx context.Context, id string) error

	// MoveCard relocates a card according to the intent, allocating a new
	// order value and applying the resulting write-set atomically. A move
	// that leaves the card where it is performs no storage write.
	// Returns domain.ErrInvalidMove if the card is not in the claimed source
	// column and domain.ErrNotFound if either column does not exist. On any
	// error the persisted board state is unchanged and callers should roll
	// back optimistic client state.
	MoveCard(ctx context.Context, intent board.MoveIntent) error
}
