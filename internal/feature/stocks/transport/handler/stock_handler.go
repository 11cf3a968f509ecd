// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
	"stock_ingest/internal/feature/stocks/transport/http/dto"
)

// StockUsecase は保存済みレコードの読み取りユースケースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StockUsecase interface {
	ListSymbols(ctx context.Context) ([]entity.Symbol, error)
	GetStock(ctx context.Context, symbol entity.Symbol) (entity.StockRecord, error)
}

// StockHandler は保存済み銘柄データのHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は指定されたusecaseでStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List は保存済みの銘柄一覧を返します。
//
// GET /stocks
func (h *StockHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListSymbols(c.Request.Context())
	if err != nil {
		slog.Error("failed to list stocks", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to list stocks"})
		return
	}
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, s.String())
	}
	c.JSON(http.StatusOK, dto.SymbolsResponse{Symbols: out})
}

// Get は1銘柄のレコードを返します。存在しない場合は404です。
//
// GET /stocks/:symbol
func (h *StockHandler) Get(c *gin.Context) {
	symbol := entity.Symbol(strings.ToUpper(strings.TrimSpace(c.Param("symbol"))))

	rec, err := h.uc.GetStock(c.Request.Context(), symbol)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "stock not found"})
		return
	case err != nil:
		slog.Error("failed to get stock", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to get stock"})
		return
	}

	c.JSON(http.StatusOK, dto.NewStockResponse(rec))
}
