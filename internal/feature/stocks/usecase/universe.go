package usecase

import (
	"context"
	"fmt"
	"strings"

	"stock_ingest/internal/feature/stocks/domain/entity"
)

// ProcessedSymbolLister は保存済み銘柄のスナップショットを返します。
type ProcessedSymbolLister interface {
	ListSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// StaticUniverse は固定の銘柄リストから保存済みの銘柄を除いたものを作業リストとします。
// 途中で停止した実行を再開しても、完了済みの銘柄はやり直しません。
type StaticUniverse struct {
	symbols   []entity.Symbol
	processed ProcessedSymbolLister
}

// NewStaticUniverse は新しい StaticUniverse を作成します。
func NewStaticUniverse(symbols []entity.Symbol, processed ProcessedSymbolLister) *StaticUniverse {
	return &StaticUniverse{symbols: symbols, processed: processed}
}

// Resolve は未処理の銘柄を固定リストの順序で返します。重複は除去されます。
func (u *StaticUniverse) Resolve(ctx context.Context) ([]entity.Symbol, error) {
	stored, err := u.processed.ListSymbols(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processed symbols: %w", err)
	}
	skip := make(map[entity.Symbol]struct{}, len(stored))
	for _, s := range stored {
		skip[s] = struct{}{}
	}

	out := make([]entity.Symbol, 0, len(u.symbols))
	for _, s := range u.symbols {
		s = entity.Symbol(strings.TrimSpace(s.String()))
		if s == "" {
			continue
		}
		if _, ok := skip[s]; ok {
			continue
		}
		skip[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}

// DirectoryUniverse はリモートディレクトリの全銘柄を毎回作業リストとします（差分なし）。
// 保存先が自然なupsertを提供し、過去分のスキップが不要な場合に使います。
type DirectoryUniverse struct {
	directory SymbolDirectory
}

// NewDirectoryUniverse は新しい DirectoryUniverse を作成します。
func NewDirectoryUniverse(directory SymbolDirectory) *DirectoryUniverse {
	return &DirectoryUniverse{directory: directory}
}

// Resolve はディレクトリ上の順序で銘柄を返します。
func (u *DirectoryUniverse) Resolve(ctx context.Context) ([]entity.Symbol, error) {
	entries, err := u.directory.ListSymbols(ctx)
	if err != nil {
		return nil, fmt.Errorf("list directory symbols: %w", err)
	}
	out := make([]entity.Symbol, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Symbol)
	}
	return out, nil
}
