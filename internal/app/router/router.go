package router

import (
	"github.com/gin-gonic/gin"

	stockhandler "stock_ingest/internal/feature/stocks/transport/handler"
	"stock_ingest/internal/platform/http/handler"
	jwtmw "stock_ingest/internal/platform/jwt"
)

// NewRouter は読み取り専用APIのルーティングを構築します。書き込み系のエンドポイントはありません。
// jwtSecret が空でなければ /stocks 以下に Bearer トークンを要求します。
func NewRouter(stocks *stockhandler.StockHandler, health handler.Checker, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	h := handler.NewHealth(health)
	r.GET("/healthz", h)
	r.HEAD("/healthz", h)

	api := r.Group("/stocks")
	if jwtSecret != "" {
		api.Use(jwtmw.AuthRequired(jwtSecret))
	}
	{
		api.GET("", stocks.List)
		api.GET("/:symbol", stocks.Get)
	}

	return r
}
