package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
)

// Stage は1銘柄の処理がどこまで進んだかを表します。
type Stage string

const (
	StageStart              Stage = "start"
	StageDetailsFetched     Stage = "details_fetched"
	StagePresenceChecked    Stage = "presence_checked"
	StageFragmentsCollected Stage = "fragments_collected"
	StageAggregated         Stage = "aggregated"
	StagePersisted          Stage = "persisted"
)

// StageError は失敗した銘柄について、最後に到達したステージを保持します。
type StageError struct {
	Symbol entity.Symbol
	Stage  Stage
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s (after %s): %v", e.Symbol, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// IngestSummary は1回の実行結果です。
type IngestSummary struct {
	Attempted int
	Succeeded []entity.Symbol
	Failed    []entity.Symbol
}

// IngestUsecase は作業リストの各銘柄についてフラグメントを取得・集約し、保存します。
type IngestUsecase struct {
	universe   SymbolUniverse
	extractors Extractors
	store      StockStore
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(universe SymbolUniverse, extractors Extractors, store StockStore) *IngestUsecase {
	return &IngestUsecase{universe: universe, extractors: extractors, store: store}
}

// Run は作業リストを決定してから IngestAll を実行します。
func (iu *IngestUsecase) Run(ctx context.Context) (IngestSummary, error) {
	symbols, err := iu.universe.Resolve(ctx)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("resolve symbols: %w", err)
	}
	slog.Info("symbols fetched", "count", len(symbols))
	return iu.IngestAll(ctx, symbols)
}

// IngestAll は銘柄を1つずつ順番に処理します。
// 1銘柄の失敗はログに出力して次へ進みます。コンテキストがキャンセルされた場合のみ
// 残りを未処理のまま中断し、ctx.Err() を返します。
func (iu *IngestUsecase) IngestAll(ctx context.Context, symbols []entity.Symbol) (IngestSummary, error) {
	summary := IngestSummary{
		Succeeded: make([]entity.Symbol, 0, len(symbols)),
		Failed:    []entity.Symbol{},
	}
	for _, s := range symbols {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Attempted++
		if err := iu.ingestOne(ctx, s); err != nil {
			summary.Failed = append(summary.Failed, s)
			slog.Error("failed to process "+s.String(), "symbol", s, "error", err)
			continue
		}
		summary.Succeeded = append(summary.Succeeded, s)
		slog.Info("success processing "+s.String(), "symbol", s)
	}
	return summary, nil
}

// ingestOne は1銘柄分のパイプラインを実行します。
// 価格が取得できない銘柄は domain.ErrPresenceCheckFailed で打ち切り、以降の取得は行いません。
func (iu *IngestUsecase) ingestOne(ctx context.Context, symbol entity.Symbol) error {
	stage := StageStart
	fail := func(err error) error {
		return &StageError{Symbol: symbol, Stage: stage, Err: err}
	}

	details, err := iu.extractors.Details.Fetch(ctx, symbol)
	if err != nil {
		return fail(err)
	}
	stage = StageDetailsFetched

	if !details.Price.Valid {
		return fail(domain.ErrPresenceCheckFailed)
	}
	stage = StagePresenceChecked

	holders, err := iu.extractors.Holders.Fetch(ctx, symbol)
	if err != nil {
		return fail(err)
	}
	events, err := iu.extractors.Events.Fetch(ctx, symbol)
	if err != nil {
		return fail(err)
	}
	history, err := iu.extractors.History.Fetch(ctx, symbol)
	if err != nil {
		return fail(err)
	}
	stage = StageFragmentsCollected

	record := Combine(symbol, details, holders, events, history)
	stage = StageAggregated

	if err := iu.store.Upsert(ctx, record); err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			err = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		return fail(err)
	}
	return nil
}
