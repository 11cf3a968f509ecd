package usecase

import (
	"context"

	"stock_ingest/internal/feature/stocks/domain/entity"
)

// stockUsecase は保存済みレコードの読み取りユースケースです。
type stockUsecase struct {
	store StockStore
}

// NewStockUsecase は stockUsecase の新しいインスタンスを生成します。
func NewStockUsecase(store StockStore) *stockUsecase {
	return &stockUsecase{store: store}
}

// ListSymbols は保存済みの銘柄一覧を返します。
func (su *stockUsecase) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	symbols, err := su.store.ListSymbols(ctx)
	if err != nil {
		return nil, err
	}
	if symbols == nil {
		symbols = []entity.Symbol{}
	}
	return symbols, nil
}

// GetStock は指定銘柄のレコードを返します。
func (su *stockUsecase) GetStock(ctx context.Context, symbol entity.Symbol) (entity.StockRecord, error) {
	return su.store.Get(ctx, symbol)
}
