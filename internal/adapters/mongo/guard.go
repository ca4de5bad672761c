package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"huntboard/internal/domain"
	"huntboard/internal/domain/board"
	"huntboard/internal/ordering"
	"huntboard/internal/platform/config"
	"huntboard/internal/ports"
)

// Compile-time check: the guarded repository still satisfies the port.
var _ ports.BoardRepository = (*GuardedRepository)(nil)

// GuardedRepository wraps a BoardRepository with a circuit breaker. When the
// database accumulates consecutive failures the breaker opens, subsequent
// calls fail fast with domain.ErrUnavailable instead of queueing on a dead
// connection pool, and half-open probes decide when to resume traffic.
//
// Domain sentinel errors (not-found, conflict, invalid-move) do not count as
// failures; only infrastructure errors trip the breaker.
type GuardedRepository struct {
	next    ports.BoardRepository
	breaker *gobreaker.CircuitBreaker[any]
}

// Guard wraps repo with a circuit breaker configured from cfg.
func Guard(repo ports.BoardRepository, cfg config.BreakerConfig, logger *slog.Logger) *GuardedRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "mongodb",
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isDomainError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &GuardedRepository{next: repo, breaker: cb}
}

// Name identifies the guarded store in health check results.
func (g *GuardedRepository) Name() string { return "mongodb" }

// HealthCheck reports degraded or failing states from the breaker without
// touching the database, and delegates to the wrapped store when closed.
func (g *GuardedRepository) HealthCheck(ctx context.Context) error {
	switch state := g.breaker.State(); state {
	case gobreaker.StateOpen:
		return errors.New("mongodb: failing (circuit breaker open)")
	case gobreaker.StateHalfOpen:
		return errors.New("mongodb: degraded (circuit breaker half-open)")
	}
	if hc, ok := g.next.(ports.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

func (g *GuardedRepository) ListColumns(ctx context.Context) ([]board.Column, error) {
	return execute(g, func() ([]board.Column, error) { return g.next.ListColumns(ctx) })
}

func (g *GuardedRepository) GetColumn(ctx context.Context, id string) (*board.Column, error) {
	return execute(g, func() (*board.Column, error) { return g.next.GetColumn(ctx, id) })
}

func (g *GuardedRepository) InsertColumn(ctx context.Context, column *board.Column) error {
	_, err := execute(g, func() (any, error) { return nil, g.next.InsertColumn(ctx, column) })
	return err
}

func (g *GuardedRepository) RenameColumn(ctx context.Context, id, name string) (*board.Column, error) {
	return execute(g, func() (*board.Column, error) { return g.next.RenameColumn(ctx, id, name) })
}

func (g *GuardedRepository) DeleteColumn(ctx context.Context, id string) error {
	_, err := execute(g, func() (any, error) { return nil, g.next.DeleteColumn(ctx, id) })
	return err
}

func (g *GuardedRepository) CardsSorted(ctx context.Context, columnID string) ([]board.Card, error) {
	return execute(g, func() ([]board.Card, error) { return g.next.CardsSorted(ctx, columnID) })
}

func (g *GuardedRepository) GetCard(ctx context.Context, id string) (*board.Card, error) {
	return execute(g, func() (*board.Card, error) { return g.next.GetCard(ctx, id) })
}

func (g *GuardedRepository) InsertCard(ctx context.Context, card *board.Card) error {
	_, err := execute(g, func() (any, error) { return nil, g.next.InsertCard(ctx, card) })
	return err
}

func (g *GuardedRepository) UpdateCard(ctx context.Context, card *board.Card) (*board.Card, error) {
	return execute(g, func() (*board.Card, error) { return g.next.UpdateCard(ctx, card) })
}

func (g *GuardedRepository) DeleteCard(ctx context.Context, id string) error {
	_, err := execute(g, func() (any, error) { return nil, g.next.DeleteCard(ctx, id) })
	return err
}

func (g *GuardedRepository) ApplyWriteSet(ctx context.Context, ws ordering.WriteSet) error {
	_, err := execute(g, func() (any, error) { return nil, g.next.ApplyWriteSet(ctx, ws) })
	return err
}

// execute runs fn through the breaker and maps breaker rejections to the
// domain unavailable sentinel.
func execute[T any](g *GuardedRepository, fn func() (T, error)) (T, error) {
	var out T
	res, err := g.breaker.Execute(func() (any, error) {
		v, err := fn()
		return v, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return out, fmt.Errorf("storage circuit open: %w", domain.ErrUnavailable)
	}
	if err != nil {
		return out, err
	}
	if v, ok := res.(T); ok {
		out = v
	}
	return out, nil
}

// isDomainError reports whether err is an expected business outcome rather
// than an infrastructure failure.
func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrInvalidMove)
}

// toUint32 clamps a non-negative int into uint32 range.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
