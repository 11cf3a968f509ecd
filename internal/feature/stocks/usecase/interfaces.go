// Package usecase はフラグメント抽出・集約・永続化からなる取り込みパイプラインを実装します。
package usecase

import (
	"context"

	"stock_ingest/internal/feature/stocks/domain/entity"
)

// FragmentExtractor は1銘柄分のフラグメントを1つのリモートリソースから取得します。
// HTMLスクレイピングかJSON APIかといった取得形式は呼び出し側から隠蔽されます。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type FragmentExtractor[T any] interface {
	Fetch(ctx context.Context, symbol entity.Symbol) (T, error)
}

// Extractors は1銘柄の処理で使う4つのエクストラクタの組です。
type Extractors struct {
	Details FragmentExtractor[entity.DetailsFragment]
	Holders FragmentExtractor[[]entity.HolderEntry]
	Events  FragmentExtractor[[]entity.DividendEvent]
	History FragmentExtractor[entity.HistorySeries]
}

// StockStore は銘柄名をキーとしたStockRecordの保存先を抽象化します。
// ファイルシステムでもドキュメントストアでも同じ契約で扱えます。
type StockStore interface {
	// Upsert はレコード全体を銘柄名キーで置き換えます（冪等、部分書き込みなし）。
	Upsert(ctx context.Context, record entity.StockRecord) error
	// ListSymbols は保存済みの銘柄一覧を返します。
	ListSymbols(ctx context.Context) ([]entity.Symbol, error)
	// Exists は銘柄のレコードが保存済みかを返します。
	Exists(ctx context.Context, symbol entity.Symbol) (bool, error)
	// Get は保存済みのレコードを返します。存在しない場合は domain.ErrNotFound です。
	Get(ctx context.Context, symbol entity.Symbol) (entity.StockRecord, error)
}

// SymbolDirectory はリモートの銘柄ディレクトリです。
type SymbolDirectory interface {
	ListSymbols(ctx context.Context) ([]entity.DirectoryEntry, error)
}

// SymbolUniverse は今回の実行で処理する銘柄リスト（作業リスト）を決定します。
type SymbolUniverse interface {
	Resolve(ctx context.Context) ([]entity.Symbol, error)
}
