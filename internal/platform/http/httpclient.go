package http

import (
	"net"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// NewHTTPClient は外部ソース取得用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト（デフォルトより短い）
//   - MaxIdleConnsPerHost: 逐次取得なので同一ホストへのアイドル接続は少数で足りる
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間
//   - Client.Timeout: リクエスト全体のタイムアウト。超過はTransportErrorになる
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にカスタムクライアントを使用すること
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout, Transport: newTransport()}
}

// NewHTTPClientWithCookies はCookieJar付きのクライアントを作成します。
// Cookie + crumb によるハンドシェイクが必要なAPI（Yahoo Finance）で使用します。
func NewHTTPClientWithCookies(timeout time.Duration) *http.Client {
	// cookiejar.New はオプションがnilの場合エラーを返さない
	jar, _ := cookiejar.New(nil)
	return &http.Client{Timeout: timeout, Transport: newTransport(), Jar: jar}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
}
