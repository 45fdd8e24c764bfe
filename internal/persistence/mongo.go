package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/employee-service/internal/config"
)

// NewMongoClient builds a MongoDB client for cfg.URI. The driver connects in
// the background; use Ping to verify reachability.
func NewMongoClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout()).
		SetConnectTimeout(cfg.ConnectTimeout())
	return mongo.Connect(ctx, opts)
}
