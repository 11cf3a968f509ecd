package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
	"stock_ingest/internal/feature/stocks/usecase"
)

// DefaultMongoCollection はレコードを保存するコレクション名です。
const DefaultMongoCollection = "stocks"

// MongoStore は1銘柄1ドキュメント（_id = 銘柄名）で保存します。
type MongoStore struct {
	coll *mongo.Collection
}

var _ usecase.StockStore = (*MongoStore)(nil)

func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	if collection == "" {
		collection = DefaultMongoCollection
	}
	return &MongoStore{coll: db.Collection(collection)}
}

// Upsert は _id が一致するドキュメントを丸ごと置き換えます。
func (s *MongoStore) Upsert(ctx context.Context, record entity.StockRecord) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: record.Name.String()}},
		ToDocument(record),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return persistenceError("upsert", record.Name, err)
	}
	return nil
}

func (s *MongoStore) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	var names []string
	if err := s.coll.Distinct(ctx, "_id", bson.D{}).Decode(&names); err != nil {
		return nil, persistenceError("list", "", err)
	}
	sort.Strings(names)
	out := make([]entity.Symbol, 0, len(names))
	for _, n := range names {
		out = append(out, entity.Symbol(n))
	}
	return out, nil
}

func (s *MongoStore) Exists(ctx context.Context, symbol entity.Symbol) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: symbol.String()}}, options.Count().SetLimit(1))
	if err != nil {
		return false, persistenceError("count", symbol, err)
	}
	return n > 0, nil
}

func (s *MongoStore) Get(ctx context.Context, symbol entity.Symbol) (entity.StockRecord, error) {
	var doc Document
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: symbol.String()}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.StockRecord{}, fmt.Errorf("%w: %s", domain.ErrNotFound, symbol)
	}
	if err != nil {
		return entity.StockRecord{}, persistenceError("get", symbol, err)
	}
	return doc.ToRecord(), nil
}
