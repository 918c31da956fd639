package dbrule

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/formkit"
)

// DocumentCounter is the slice of the mongo driver a rule needs.
// mongo.Collection satisfies it.
type DocumentCounter interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// UniqueInCollection builds a rule that fails when a document with the value
// in the given field already exists.
func UniqueInCollection(coll DocumentCounter, field string) formkit.RuleFunc {
	return func(ctx context.Context, in formkit.Input) error {
		count, err := coll.CountDocuments(ctx, bson.M{field: in.Value}, options.Count().SetLimit(1))
		if err != nil {
			return errors.Join(ErrQueryFailed, err)
		}
		if count > 0 {
			return formkit.Fail("validation.unique", "is already taken", map[string]any{
				"field": in.Field,
			})
		}
		return nil
	}
}

// ExistsInCollection builds a rule that fails unless a document with the
// value in the given field exists.
func ExistsInCollection(coll DocumentCounter, field string) formkit.RuleFunc {
	return func(ctx context.Context, in formkit.Input) error {
		count, err := coll.CountDocuments(ctx, bson.M{field: in.Value}, options.Count().SetLimit(1))
		if err != nil {
			return errors.Join(ErrQueryFailed, err)
		}
		if count == 0 {
			return formkit.Fail("validation.exists", "does not exist", map[string]any{
				"field": in.Field,
			})
		}
		return nil
	}
}

// MongoConfig configures the mongo connection for rules owned here.
type MongoConfig struct {
	ConnectionURL  string        `env:"MONGODB_URL,required"`                      // ConnectionURL is the URL of the database.
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`  // ConnectTimeout bounds each connection attempt.
	MaxPoolSize    uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`    // MaxPoolSize is the connection pool ceiling.
	RetryAttempts  int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`     // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`    // RetryInterval is the interval between attempts.
	Database       string        `env:"MONGODB_DATABASE" envDefault:"validation"`  // Database is the database rules read from.
}

// ConnectMongo establishes a mongo client verified with a ping, retrying on
// failure, and returns the configured database handle.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Database, error) {
	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client.Database(cfg.Database), nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToConnectToMongo
}
