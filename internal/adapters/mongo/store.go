// Package mongo provides the outbound MongoDB adapter implementing the board
// repository port. The handle returned by Connect is lifecycle-scoped: wire it
// at startup, close it on shutdown, and never cache it in package state.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"huntboard/internal/domain"
	"huntboard/internal/platform/config"
	"huntboard/internal/ports"
)

// Collection names.
const (
	collColumns = "columns"
	collCards   = "cards"
)

// Compile-time checks: Store implements the repository and health ports.
var (
	_ ports.BoardRepository = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
)

// Store implements ports.BoardRepository on a MongoDB database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// and returns a Store bound to the configured database. The caller owns the
// handle and must Close it on shutdown.
func Connect(ctx context.Context, cfg config.MongoConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxPoolSize))
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	logger.Info("connected to mongodb", slog.String("database", cfg.Database))

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

// Close releases the underlying client and its connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Name identifies the store in health check results.
func (s *Store) Name() string { return "mongodb" }

// HealthCheck pings the server, implementing ports.HealthChecker for the
// readiness probe.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the adapter's query paths rely on. Safe
// to call on every startup; existing indexes are left untouched.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	cardIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "column_id", Value: 1}, {Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "column_id", Value: 1}}},
	}
	if _, err := s.cards().Indexes().CreateMany(ctx, cardIndexes); err != nil {
		return fmt.Errorf("creating card indexes: %w", err)
	}

	columnIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "position", Value: 1}}},
	}
	if _, err := s.columns().Indexes().CreateMany(ctx, columnIndexes); err != nil {
		return fmt.Errorf("creating column indexes: %w", err)
	}
	return nil
}

// --- Collection accessors ---

func (s *Store) columns() *mongo.Collection { return s.db.Collection(collColumns) }
func (s *Store) cards() *mongo.Collection   { return s.db.Collection(collCards) }

// --- Error mapping ---

// mapError translates driver errors into domain sentinels. Anything that is
// neither a missing document nor a duplicate key is wrapped as-is.
func mapError(err error, resource, id string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s %s: %w", resource, id, domain.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s %s: %w", resource, id, domain.ErrConflict)
	default:
		return fmt.Errorf("%s %s: %w", resource, id, err)
	}
}

// now returns the timestamp stored on inserts and updates, truncated to
// millisecond precision to match BSON datetime resolution.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
