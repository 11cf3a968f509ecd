package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"stock_ingest/internal/feature/stocks/domain/entity"
)

func TestStaticUniverse_Resolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		static   []entity.Symbol
		stored   []entity.Symbol
		expected []entity.Symbol
	}{
		{
			name:     "fresh store: all symbols in list order",
			static:   []entity.Symbol{"PETR4", "VALE3", "ITUB4"},
			expected: []entity.Symbol{"PETR4", "VALE3", "ITUB4"},
		},
		{
			name:     "resume: stored symbols are skipped",
			static:   []entity.Symbol{"PETR4", "VALE3", "ITUB4"},
			stored:   []entity.Symbol{"VALE3"},
			expected: []entity.Symbol{"PETR4", "ITUB4"},
		},
		{
			name:     "duplicates and blanks are removed",
			static:   []entity.Symbol{"PETR4", " ", "PETR4", " VALE3 "},
			expected: []entity.Symbol{"PETR4", "VALE3"},
		},
		{
			name:     "everything already processed",
			static:   []entity.Symbol{"PETR4"},
			stored:   []entity.Symbol{"PETR4", "BBAS3"},
			expected: []entity.Symbol{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			u := NewStaticUniverse(tc.static, newMockStore(tc.stored...))
			got, err := u.Resolve(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Resolve() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestStaticUniverse_Resolve_StoreError(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	store.ListErr = ErrDB
	_, err := NewStaticUniverse([]entity.Symbol{"PETR4"}, store).Resolve(context.Background())
	if !errors.Is(err, ErrDB) {
		t.Fatalf("expected %v, got %v", ErrDB, err)
	}
}

func TestDirectoryUniverse_Resolve(t *testing.T) {
	t.Parallel()

	dir := &mockDirectory{
		ListSymbolsFunc: func(ctx context.Context) ([]entity.DirectoryEntry, error) {
			return []entity.DirectoryEntry{
				{Symbol: "PETR4", Description: "Petrobras"},
				{Symbol: "VALE3", Description: "Vale"},
			}, nil
		},
	}
	got, err := NewDirectoryUniverse(dir).Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []entity.Symbol{"PETR4", "VALE3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}

	dir.ListSymbolsFunc = func(ctx context.Context) ([]entity.DirectoryEntry, error) { return nil, ErrSource }
	if _, err := NewDirectoryUniverse(dir).Resolve(context.Background()); !errors.Is(err, ErrSource) {
		t.Errorf("expected %v, got %v", ErrSource, err)
	}
}
