// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and storage through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"huntboard/internal/app/fanout"
	"huntboard/internal/domain/board"
	"huntboard/internal/ordering"
	"huntboard/internal/platform/telemetry"
	"huntboard/internal/ports"
)

// cardFetchWorkers bounds the concurrent per-column card fetches in GetBoard.
const cardFetchWorkers = 4

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// BoardService implements ports.BoardService by orchestrating the ordering
// planner and the board repository. It handles validation, structured
// logging, and metrics; position arithmetic lives in the ordering package
// and persistence in the repository adapter.
type BoardService struct {
	repo    ports.BoardRepository
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewBoardService creates a BoardService. metrics may be nil, in which case
// instrument recording is skipped. A nil logger is replaced with a no-op one.
func NewBoardService(repo ports.BoardRepository, metrics *telemetry.Metrics, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BoardService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// GetBoard returns all columns with their cards populated. Card fetches are
// fanned out across columns with bounded concurrency; the first fetch error
// fails the whole read.
func (s *BoardService) GetBoard(ctx context.Context) ([]board.Column, error) {
	s.logger.InfoContext(ctx, "fetching board")

	columns, err := s.repo.ListColumns(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list columns",
			slog.String("operation", "GetBoard"),
			slog.Any("error", err),
		)
		return nil, err
	}

	results := fanout.Run(ctx, cardFetchWorkers, columns,
		func(ctx context.Context, col board.Column) ([]board.Card, error) {
			return s.repo.CardsSorted(ctx, col.ID)
		})

	for i, res := range results {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch column cards",
				slog.String("operation", "GetBoard"),
				slog.String("column_id", columns[i].ID),
				slog.Any("error", res.Err),
			)
			return nil, fmt.Errorf("fetching cards for column %s: %w", columns[i].ID, res.Err)
		}
		columns[i].Cards = res.Value
	}

	return columns, nil
}

// ListColumns returns all columns without populating their cards.
func (s *BoardService) ListColumns(ctx context.Context) ([]board.Column, error) {
	s.logger.InfoContext(ctx, "listing columns")

	columns, err := s.repo.ListColumns(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list columns",
			slog.String("operation", "ListColumns"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return columns, nil
}

// CreateColumn validates and appends a new column to the board. Its position
// is allocated with the same gap strategy as card orders.
func (s *BoardService) CreateColumn(ctx context.Context, col *board.Column) (*board.Column, error) {
	s.logger.InfoContext(ctx, "creating column", slog.String("name", col.Name))

	if err := col.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListColumns(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list columns",
			slog.String("operation", "CreateColumn"),
			slog.Any("error", err),
		)
		return nil, err
	}

	maxPos := 0
	if len(existing) > 0 {
		maxPos = existing[len(existing)-1].Position
	}

	col.ID = uuid.NewString()
	col.Position = ordering.AppendOrder(maxPos)

	if err := s.repo.InsertColumn(ctx, col); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert column",
			slog.String("operation", "CreateColumn"),
			slog.String("column_id", col.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return col, nil
}

// RenameColumn updates a column's name.
func (s *BoardService) RenameColumn(ctx context.Context, id, name string) (*board.Column, error) {
	s.logger.InfoContext(ctx, "renaming column", slog.String("column_id", id))

	probe := board.Column{Name: name}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	renamed, err := s.repo.RenameColumn(ctx, id, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to rename column",
			slog.String("operation", "RenameColumn"),
			slog.String("column_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return renamed, nil
}

// DeleteColumn deletes a column and its cards. No renumbering of surviving
// columns is needed; position gaps absorb the removal.
func (s *BoardService) DeleteColumn(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting column", slog.String("column_id", id))

	if err := s.repo.DeleteColumn(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete column",
			slog.String("operation", "DeleteColumn"),
			slog.String("column_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ListCards returns a single column's cards in display order, verifying the
// column exists so an unknown ID yields not-found rather than an empty list.
func (s *BoardService) ListCards(ctx context.Context, columnID string) ([]board.Card, error) {
	if _, err := s.repo.GetColumn(ctx, columnID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify column",
			slog.String("operation", "ListCards"),
			slog.String("column_id", columnID),
			slog.Any("error", err),
		)
		return nil, err
	}

	cards, err := s.repo.CardsSorted(ctx, columnID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch column cards",
			slog.String("operation", "ListCards"),
			slog.String("column_id", columnID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return cards, nil
}

// CreateCard validates and appends a new card to the end of the given column,
// allocating its order value with the gap strategy.
func (s *BoardService) CreateCard(ctx context.Context, columnID string, card *board.Card) (*board.Card, error) {
	s.logger.InfoContext(ctx, "creating card", slog.String("column_id", columnID))

	if err := card.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetColumn(ctx, columnID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify column",
			slog.String("operation", "CreateCard"),
			slog.String("column_id", columnID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying column: %w", err)
	}

	cards, err := s.repo.CardsSorted(ctx, columnID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch column cards",
			slog.String("operation", "CreateCard"),
			slog.String("column_id", columnID),
			slog.Any("error", err),
		)
		return nil, err
	}

	card.ID = uuid.NewString()
	card.ColumnID = columnID
	card.Order = ordering.PlanInsert(toPositions(cards))

	if err := s.repo.InsertCard(ctx, card); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert card",
			slog.String("operation", "CreateCard"),
			slog.String("card_id", card.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return card, nil
}

// GetCard returns a single card by ID.
func (s *BoardService) GetCard(ctx context.Context, id string) (*board.Card, error) {
	card, err := s.repo.GetCard(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch card",
			slog.String("operation", "GetCard"),
			slog.String("card_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return card, nil
}

// UpdateCard updates a card's metadata. Column membership and order are
// immutable here; MoveCard owns every write path that changes them.
func (s *BoardService) UpdateCard(ctx context.Context, id string, card *board.Card) (*board.Card, error) {
	s.logger.InfoContext(ctx, "updating card", slog.String("card_id", id))

	if err := card.Validate(); err != nil {
		return nil, err
	}

	card.ID = id
	updated, err := s.repo.UpdateCard(ctx, card)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update card",
			slog.String("operation", "UpdateCard"),
			slog.String("card_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteCard deletes a card. Neighbors keep their order values.
func (s *BoardService) DeleteCard(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting card", slog.String("card_id", id))

	if err := s.repo.DeleteCard(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete card",
			slog.String("operation", "DeleteCard"),
			slog.String("card_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// MoveCard relocates a card per the intent: it resolves current column
// membership, asks the planner for a write-set, and applies it atomically.
// An empty write-set (no-op move) skips the storage round trip.
func (s *BoardService) MoveCard(ctx context.Context, intent board.MoveIntent) error {
	s.logger.InfoContext(ctx, "moving card",
		slog.String("card_id", intent.CardID),
		slog.String("source_column_id", intent.SourceColumn),
		slog.String("destination_column_id", intent.DestColumn),
		slog.Int("destination_index", intent.DestIndex),
	)

	if err := intent.Validate(); err != nil {
		return err
	}

	if _, err := s.repo.GetColumn(ctx, intent.DestColumn); err != nil {
		s.logger.ErrorContext(ctx, "destination column not found",
			slog.String("operation", "MoveCard"),
			slog.String("column_id", intent.DestColumn),
			slog.Any("error", err),
		)
		return fmt.Errorf("verifying destination column: %w", err)
	}

	sourceCards, err := s.repo.CardsSorted(ctx, intent.SourceColumn)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch source column cards",
			slog.String("operation", "MoveCard"),
			slog.String("column_id", intent.SourceColumn),
			slog.Any("error", err),
		)
		return err
	}

	destCards := sourceCards
	if intent.SourceColumn != intent.DestColumn {
		destCards, err = s.repo.CardsSorted(ctx, intent.DestColumn)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch destination column cards",
				slog.String("operation", "MoveCard"),
				slog.String("column_id", intent.DestColumn),
				slog.Any("error", err),
			)
			return err
		}
	}

	ws, err := ordering.PlanMove(intent, toPositions(sourceCards), toPositions(destCards))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to plan move",
			slog.String("operation", "MoveCard"),
			slog.String("card_id", intent.CardID),
			slog.Any("error", err),
		)
		return err
	}

	if len(ws) == 0 {
		s.logger.InfoContext(ctx, "move is a no-op, skipping write",
			slog.String("card_id", intent.CardID),
		)
		return nil
	}

	if err := s.repo.ApplyWriteSet(ctx, ws); err != nil {
		s.logger.ErrorContext(ctx, "failed to apply write-set",
			slog.String("operation", "MoveCard"),
			slog.String("card_id", intent.CardID),
			slog.Int("writes", len(ws)),
			slog.Any("error", err),
		)
		return err
	}

	s.recordMove(ctx, ws)
	return nil
}

// recordMove emits move metrics. A write-set larger than one card means the
// destination column was rebalanced.
func (s *BoardService) recordMove(ctx context.Context, ws ordering.WriteSet) {
	if s.metrics == nil {
		return
	}
	s.metrics.MovesTotal.Add(ctx, 1)
	s.metrics.WriteSetSize.Record(ctx, int64(len(ws)))
	if len(ws) > 1 {
		s.metrics.RebalancesTotal.Add(ctx, 1)
	}
}

// toPositions projects cards onto the planner's ID/order pairs.
func toPositions(cards []board.Card) []ordering.CardPosition {
	out := make([]ordering.CardPosition, len(cards))
	for i, c := range cards {
		out[i] = ordering.CardPosition{ID: c.ID, Order: c.Order}
	}
	return out
}
