package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
	"stock_ingest/internal/feature/stocks/usecase"
)

type sqlStore struct {
	db *gorm.DB
}

var _ usecase.StockStore = (*sqlStore)(nil)

// NewSQLStore は gorm を使う StockStore を返します。テーブルは StockRecordModel を AutoMigrate してください。
func NewSQLStore(db *gorm.DB) *sqlStore {
	return &sqlStore{db: db}
}

// StockRecordModel は1銘柄1行のテーブルです。ドキュメント全体をJSON列に保存します。
type StockRecordModel struct {
	Name      string    `gorm:"primaryKey;size:32"`
	Document  []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (StockRecordModel) TableName() string {
	return "stock_records"
}

func (r *sqlStore) Upsert(ctx context.Context, record entity.StockRecord) error {
	b, err := json.Marshal(ToDocument(record))
	if err != nil {
		return persistenceError("encode", record.Name, err)
	}
	m := StockRecordModel{Name: record.Name.String(), Document: b, UpdatedAt: time.Now().UTC()}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return persistenceError("upsert", record.Name, err)
	}
	return nil
}

func (r *sqlStore) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&StockRecordModel{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, persistenceError("list", "", err)
	}
	out := make([]entity.Symbol, 0, len(names))
	for _, n := range names {
		out = append(out, entity.Symbol(n))
	}
	return out, nil
}

func (r *sqlStore) Exists(ctx context.Context, symbol entity.Symbol) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&StockRecordModel{}).Where("name = ?", symbol.String()).Count(&count).Error; err != nil {
		return false, persistenceError("count", symbol, err)
	}
	return count > 0, nil
}

func (r *sqlStore) Get(ctx context.Context, symbol entity.Symbol) (entity.StockRecord, error) {
	var m StockRecordModel
	err := r.db.WithContext(ctx).Where("name = ?", symbol.String()).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.StockRecord{}, fmt.Errorf("%w: %s", domain.ErrNotFound, symbol)
	}
	if err != nil {
		return entity.StockRecord{}, persistenceError("get", symbol, err)
	}
	var doc Document
	if err := json.Unmarshal(m.Document, &doc); err != nil {
		return entity.StockRecord{}, persistenceError("decode", symbol, err)
	}
	return doc.ToRecord(), nil
}
