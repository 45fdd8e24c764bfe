package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/repository"
)

// Store is an open handle on the configured document store.
type Store struct {
	Driver    string
	Employees repository.EmployeeRepository

	ping    func(ctx context.Context) error
	prepare func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// NewStore assembles a Store from its parts. prepare and close may be nil.
func NewStore(driver string, employees repository.EmployeeRepository, ping, prepare, closeFn func(ctx context.Context) error) *Store {
	return &Store{Driver: driver, Employees: employees, ping: ping, prepare: prepare, close: closeFn}
}

// Open builds the client for cfg.Store.Driver. It fails only on invalid
// configuration; reachability is checked by Connect.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := NewMongoClient(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("mongo client: %w", err)
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		return NewStore(cfg.Store.Driver,
			repository.NewEmployeeMongoRepository(coll),
			func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
			nil,
			client.Disconnect,
		), nil

	case config.DriverPostgres:
		pool, err := NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("postgres pool: %w", err)
		}
		return NewStore(cfg.Store.Driver,
			repository.NewEmployeePostgresRepository(pool),
			pool.Ping,
			func(ctx context.Context) error { return ApplySchema(ctx, pool, logger) },
			func(context.Context) error { pool.Close(); return nil },
		), nil

	case config.DriverRedis:
		client := NewRedisClient(cfg.Redis)
		return NewStore(cfg.Store.Driver,
			repository.NewEmployeeRedisRepository(client, cfg.Redis.KeyPrefix),
			func(ctx context.Context) error { return client.Ping(ctx).Err() },
			nil,
			func(context.Context) error { return client.Close() },
		), nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// Connect verifies the store is reachable and prepares it for use.
func (s *Store) Connect(ctx context.Context) error {
	if err := s.Ping(ctx); err != nil {
		return err
	}
	if s.prepare != nil {
		return s.prepare(ctx)
	}
	return nil
}

// Ping verifies store connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.ping == nil {
		return errors.New("store not configured")
	}
	return s.ping(ctx)
}

// Close releases client resources.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}
