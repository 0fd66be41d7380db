package databases

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/parsa000721/records/config"
)

// Storage drivers accepted in STORE_DRIVER
const (
	DriverFile     = "file"     // one JSON file per key (default)
	DriverMemory   = "memory"   // process memory only
	DriverSQLite   = "sqlite"   // embedded sqlite file
	DriverPostgres = "postgres" // PostgreSQL server at DB_URI
	DriverRedis    = "redis"    // redis server at REDIS_ADDR
	DriverMongo    = "mongo"    // MongoDB at DB_URI / DB_NAME
)

// ErrUnknownDriver is returned for an unsupported STORE_DRIVER
var ErrUnknownDriver = errors.New("unknown storage driver")

// OpenKeyValueStore selects and connects the backend named by conf.StoreDriver
func OpenKeyValueStore(ctx context.Context, conf *config.Config) (KeyValueStore, error) {
	driver := conf.StoreDriver
	if driver == "" {
		driver = DriverFile
	}
	zap.S().Infow("opening state store", "driver", driver)

	switch driver {
	case DriverFile:
		f, err := NewFileStore(conf.StorePath)
		if err != nil {
			return nil, err
		}
		return f, nil
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		s, err := NewSQLiteStore(ctx, filepath.Join(conf.StorePath, "records.db"))
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		s, err := NewPostgresStore(ctx, conf.URL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverRedis:
		r := NewRedisStore(conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return r, nil
	case DriverMongo:
		client, err := NewClient(conf)
		if err != nil {
			return nil, fmt.Errorf("create mongo client: %w", err)
		}
		if err := client.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return NewMongoStore(NewDatabase(conf, client)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
