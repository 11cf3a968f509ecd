package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
)

var (
	ErrSource = errors.New("source error")
	ErrDB     = errors.New("db error")
)

// mockExtractor is a mock implementation of FragmentExtractor.
type mockExtractor[T any] struct {
	FetchFunc  func(ctx context.Context, symbol entity.Symbol) (T, error)
	FetchCalls int
}

func (m *mockExtractor[T]) Fetch(ctx context.Context, symbol entity.Symbol) (T, error) {
	m.FetchCalls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, symbol)
	}
	var zero T
	return zero, errors.New("FetchFunc is not implemented")
}

// mockStore is an in-memory StockStore. UpsertFunc, when set, overrides the write path.
type mockStore struct {
	records     map[entity.Symbol]entity.StockRecord
	UpsertFunc  func(ctx context.Context, record entity.StockRecord) error
	UpsertCalls int
	ListErr     error
}

func newMockStore(seed ...entity.Symbol) *mockStore {
	s := &mockStore{records: map[entity.Symbol]entity.StockRecord{}}
	for _, sym := range seed {
		s.records[sym] = entity.StockRecord{Name: sym}
	}
	return s
}

func (m *mockStore) Upsert(ctx context.Context, record entity.StockRecord) error {
	m.UpsertCalls++
	if m.UpsertFunc != nil {
		if err := m.UpsertFunc(ctx, record); err != nil {
			return err
		}
	}
	m.records[record.Name] = record
	return nil
}

func (m *mockStore) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]entity.Symbol, 0, len(m.records))
	for s := range m.records {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (m *mockStore) Exists(ctx context.Context, symbol entity.Symbol) (bool, error) {
	_, ok := m.records[symbol]
	return ok, nil
}

func (m *mockStore) Get(ctx context.Context, symbol entity.Symbol) (entity.StockRecord, error) {
	r, ok := m.records[symbol]
	if !ok {
		return entity.StockRecord{}, domain.ErrNotFound
	}
	return r, nil
}

// mockDirectory is a mock implementation of SymbolDirectory.
type mockDirectory struct {
	ListSymbolsFunc  func(ctx context.Context) ([]entity.DirectoryEntry, error)
	ListSymbolsCalls int
}

func (m *mockDirectory) ListSymbols(ctx context.Context) ([]entity.DirectoryEntry, error) {
	m.ListSymbolsCalls++
	if m.ListSymbolsFunc != nil {
		return m.ListSymbolsFunc(ctx)
	}
	return nil, errors.New("ListSymbolsFunc is not implemented")
}

// mockUniverse is a mock implementation of SymbolUniverse.
type mockUniverse struct {
	symbols []entity.Symbol
	err     error
}

func (m *mockUniverse) Resolve(ctx context.Context) ([]entity.Symbol, error) {
	return m.symbols, m.err
}

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// fixtureExtractors returns extractors that succeed for every symbol with deterministic data.
type fixtureExtractors struct {
	details *mockExtractor[entity.DetailsFragment]
	holders *mockExtractor[[]entity.HolderEntry]
	events  *mockExtractor[[]entity.DividendEvent]
	history *mockExtractor[entity.HistorySeries]
}

func newFixtureExtractors() *fixtureExtractors {
	return &fixtureExtractors{
		details: &mockExtractor[entity.DetailsFragment]{
			FetchFunc: func(ctx context.Context, symbol entity.Symbol) (entity.DetailsFragment, error) {
				return entity.DetailsFragment{Price: dec("10.50"), Business: "Petróleo", PriceToEarnings: dec("4.2")}, nil
			},
		},
		holders: &mockExtractor[[]entity.HolderEntry]{
			FetchFunc: func(ctx context.Context, symbol entity.Symbol) ([]entity.HolderEntry, error) {
				return []entity.HolderEntry{
					{Name: "UNIÃO FEDERAL", OrdinaryShares: dec("50.5"), PreferredShares: dec("0"), TotalShares: dec("28.67")},
					{Name: "OUTROS", OrdinaryShares: dec("49.5")},
				}, nil
			},
		},
		events: &mockExtractor[[]entity.DividendEvent]{
			FetchFunc: func(ctx context.Context, symbol entity.Symbol) ([]entity.DividendEvent, error) {
				return []entity.DividendEvent{{Amount: dec("1.23"), Type: "DIVIDENDO"}}, nil
			},
		},
		history: &mockExtractor[entity.HistorySeries]{
			FetchFunc: func(ctx context.Context, symbol entity.Symbol) (entity.HistorySeries, error) {
				return entity.HistorySeries{DebtByAnnualEquity: dec("45.3")}, nil
			},
		},
	}
}

func (f *fixtureExtractors) extractors() Extractors {
	return Extractors{Details: f.details, Holders: f.holders, Events: f.events, History: f.history}
}
