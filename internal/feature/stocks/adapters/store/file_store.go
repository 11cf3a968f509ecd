package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
	"stock_ingest/internal/feature/stocks/usecase"
)

const fileExt = ".json"

// FileStore は銘柄ごとに <dir>/<SYMBOL>.json を1ファイル保存します。
type FileStore struct {
	dir string
}

var _ usecase.StockStore = (*FileStore)(nil)

// NewFileStore は保存ディレクトリを作成して FileStore を返します。
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, persistenceError("create data dir", "", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(symbol entity.Symbol) (string, error) {
	name := symbol.String()
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid symbol %q", name)
	}
	return filepath.Join(s.dir, name+fileExt), nil
}

// Upsert はレコードを一時ファイルに書き出してから rename で置き換えます。
// 読み手が書きかけのファイルを見ることはありません。
func (s *FileStore) Upsert(ctx context.Context, record entity.StockRecord) error {
	if err := ctx.Err(); err != nil {
		return persistenceError("upsert", record.Name, err)
	}
	dst, err := s.path(record.Name)
	if err != nil {
		return persistenceError("upsert", record.Name, err)
	}
	b, err := json.MarshalIndent(ToDocument(record), "", "  ")
	if err != nil {
		return persistenceError("encode", record.Name, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+record.Name.String()+"-*.tmp")
	if err != nil {
		return persistenceError("create temp file for", record.Name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // rename 成功後は何もしない

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return persistenceError("write", record.Name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return persistenceError("sync", record.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return persistenceError("close", record.Name, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return persistenceError("rename", record.Name, err)
	}
	return nil
}

// ListSymbols はディレクトリ内の *.json を名前順に返します。
func (s *FileStore) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, persistenceError("list", "", err)
	}
	out := make([]entity.Symbol, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, fileExt) {
			continue
		}
		out = append(out, entity.Symbol(strings.TrimSuffix(name, fileExt)))
	}
	return out, nil
}

func (s *FileStore) Exists(ctx context.Context, symbol entity.Symbol) (bool, error) {
	p, err := s.path(symbol)
	if err != nil {
		return false, persistenceError("stat", symbol, err)
	}
	_, err = os.Stat(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, persistenceError("stat", symbol, err)
	}
}

func (s *FileStore) Get(ctx context.Context, symbol entity.Symbol) (entity.StockRecord, error) {
	p, err := s.path(symbol)
	if err != nil {
		return entity.StockRecord{}, fmt.Errorf("%w: %s", domain.ErrNotFound, symbol)
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.StockRecord{}, fmt.Errorf("%w: %s", domain.ErrNotFound, symbol)
	}
	if err != nil {
		return entity.StockRecord{}, persistenceError("read", symbol, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return entity.StockRecord{}, persistenceError("decode", symbol, err)
	}
	return doc.ToRecord(), nil
}
