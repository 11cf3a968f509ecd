// Package mongo はMongoDBクライアントの生成を提供します。
package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// NewMongoClient は uri に接続し、Ping で疎通確認したクライアントを返します。
func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		slog.Error("MongoDB connection failed", "error", err)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	slog.Info("MongoDB connection successful")
	return client, nil
}
