package twelvedata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
)

func TestNewDirectory(t *testing.T) {
	t.Parallel()

	cfg := Config{
		TwelveDataAPIKey: "test-key",
		BaseURL:          "https://api.test.com",
		Exchange:         "BVMF",
		Timeout:          10 * time.Second,
	}
	client := &http.Client{}

	dir := NewDirectory(cfg, client)

	if dir == nil {
		t.Fatal("expected non-nil directory")
	}
	if dir.cfg.TwelveDataAPIKey != cfg.TwelveDataAPIKey {
		t.Errorf("expected API key %q, got %q", cfg.TwelveDataAPIKey, dir.cfg.TwelveDataAPIKey)
	}
}

func TestDirectory_ListSymbols_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Path != "/stocks" {
			t.Errorf("expected path /stocks, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("exchange") != "BVMF" {
			t.Errorf("expected exchange BVMF, got %s", r.URL.Query().Get("exchange"))
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("expected apikey test-key, got %s", r.URL.Query().Get("apikey"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"data": [
				{"symbol": "PETR4", "name": "Petróleo Brasileiro S.A. - Petrobras", "exchange": "BVMF", "type": "Preferred Stock"},
				{"symbol": "VALE3", "name": "Vale S.A.", "exchange": "BVMF", "type": "Common Stock"},
				{"symbol": "PETR4", "name": "duplicate row", "exchange": "BVMF"},
				{"symbol": " ", "name": "blank symbol"}
			]
		}`))
	}))
	defer server.Close()

	cfg := Config{TwelveDataAPIKey: "test-key", BaseURL: server.URL, Exchange: "BVMF"}
	dir := NewDirectory(cfg, server.Client())

	entries, err := dir.ListSymbols(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []entity.DirectoryEntry{
		{Symbol: "PETR4", Description: "Petróleo Brasileiro S.A. - Petrobras"},
		{Symbol: "VALE3", Description: "Vale S.A."},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry[%d] mismatch: got %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestDirectory_ListSymbols_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			dir := NewDirectory(Config{BaseURL: server.URL, Exchange: "BVMF"}, server.Client())

			_, err := dir.ListSymbols(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "http") {
				t.Errorf("expected HTTP error message, got %v", err)
			}
			if !errors.Is(err, domain.ErrTransport) {
				t.Errorf("expected ErrTransport, got %v", err)
			}
		})
	}
}

func TestDirectory_ListSymbols_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"status": "error",
			"message": "Invalid API key"
		}`))
	}))
	defer server.Close()

	dir := NewDirectory(Config{TwelveDataAPIKey: "invalid-key", BaseURL: server.URL}, server.Client())

	_, err := dir.ListSymbols(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Invalid API key") {
		t.Errorf("expected API error message, got %v", err)
	}
}

func TestDirectory_ListSymbols_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	dir := NewDirectory(Config{BaseURL: server.URL}, server.Client())

	_, err := dir.ListSymbols(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDirectory_ListSymbols_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dir := NewDirectory(Config{BaseURL: server.URL}, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := dir.ListSymbols(ctx)
	if err == nil {
		t.Fatal("expected error due to context cancellation, got nil")
	}
	if !strings.Contains(err.Error(), "transport error") {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TWELVE_DATA_BASE_URL", "")
	t.Setenv("TWELVE_DATA_EXCHANGE", "")

	cfg := LoadConfig()

	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Timeout)
	}
	if cfg.Exchange != "BVMF" {
		t.Errorf("expected default exchange BVMF, got %q", cfg.Exchange)
	}
	if cfg.BaseURL != "https://api.twelvedata.com" {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
}
