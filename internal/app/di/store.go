// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"
	"os"

	"stock_ingest/internal/feature/stocks/adapters/store"
	"stock_ingest/internal/feature/stocks/usecase"
	"stock_ingest/internal/platform/config"
	"stock_ingest/internal/platform/db"
	"stock_ingest/internal/platform/http/handler"
	platformmongo "stock_ingest/internal/platform/mongo"
)

// Store bundles the configured StockStore with its health check and cleanup.
type Store struct {
	usecase.StockStore
	Check handler.Checker
	Close func()
}

// NewStockStore creates the StockStore selected by STORE_BACKEND.
func NewStockStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Backend {
	case config.StoreFile:
		fs, err := store.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return nil, err
		}
		check := func(ctx context.Context) error {
			_, err := os.Stat(cfg.Store.DataDir)
			return err
		}
		return &Store{StockStore: fs, Check: check, Close: func() {}}, nil

	case config.StoreSQL:
		gdb, err := db.OpenDB(db.LoadConfigFromEnv(), &store.StockRecordModel{})
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		return &Store{
			StockStore: store.NewSQLStore(gdb),
			Check:      sqlDB.PingContext,
			Close:      func() { _ = sqlDB.Close() },
		}, nil

	case config.StoreMongo:
		client, err := platformmongo.NewMongoClient(ctx, cfg.Store.MongoURI)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.Store.MongoDatabase)
		return &Store{
			StockStore: store.NewMongoStore(database, cfg.Store.MongoCollection),
			Check:      func(ctx context.Context) error { return client.Ping(ctx, nil) },
			Close:      func() { _ = client.Disconnect(context.Background()) },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
