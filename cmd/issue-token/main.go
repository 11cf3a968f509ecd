// issue-token は読み取りAPI（API_JWT_SECRET 設定時）用のBearerトークンを発行します。
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	jwtmw "stock_ingest/internal/platform/jwt"
)

func main() {
	subject := flag.String("sub", "", "consumer name stored in the sub claim")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	if *subject == "" {
		slog.Error("-sub is required")
		os.Exit(2)
	}

	token, err := jwtmw.NewGenerator(os.Getenv("API_JWT_SECRET"), *ttl).GenerateToken(*subject)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
