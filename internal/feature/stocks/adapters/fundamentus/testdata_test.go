package fundamentus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infrahttp "stock_ingest/internal/platform/http"
)

const detailsHTML = `<!DOCTYPE html><html><body><div class="center"><div class="conteudo clearfix">
<div class="headerTicker">PETR4</div>
<table class="w728">
  <tr><td class="label w15">Papel</td><td class="data w35">PETR4</td><td class="label w15">Cotação</td><td class="data destaque w3"><span class="txt">28,45</span></td></tr>
  <tr><td class="label">Tipo</td><td class="data">PN</td></tr>
  <tr><td class="label">Empresa</td><td class="data">PETROBRAS PN</td></tr>
  <tr><td class="label">Setor</td><td class="data">Petróleo</td></tr>
  <tr><td class="label">Subsetor</td><td class="data"><span class="txt">Exploração, Refino e Distribuição</span></td></tr>
</table>
<table class="w728"><tr><td class="label">Valor de mercado</td><td class="data">1.000.000</td></tr></table>
<table class="w728">
  <tr><td class="nivel1" colspan="4">Indicadores fundamentalistas</td></tr>
  <tr><td class="label">Dia</td><td class="data">0,1%</td><td class="label">P/L</td><td class="data"><span class="txt">3,98</span></td></tr>
</table>
</div></div></body></html>`

const detailsNoPriceHTML = `<!DOCTYPE html><html><body><div class="center"><div class="conteudo clearfix">
<h1>Nenhum papel encontrado</h1>
</div></div></body></html>`

const holdersHTML = `<!DOCTYPE html><html><body>
<ul class="my-menu">
  <li><span>Ações</span>
    <ul>
      <li><a href="#">UNIAO FEDERAL<table><tr><td>50,26%</td><td>0,00%</td><td>28,67%</td></tr></table></a></li>
      <li><a href="#">Outros<table><tr><td>40,00%</td><td>90,00%</td><td>60,00%</td></tr></table></a></li>
      <li><a href="#">AcoesTesouraria<table><tr><td>0,01%</td></tr></table></a></li>
    </ul>
  </li>
</ul>
</body></html>`

const eventsHTML = `<!DOCTYPE html><html><body>
<table id="resultado">
  <thead><tr><th>Data</th><th>Valor</th><th>Tipo</th><th>Data de Pagamento</th></tr></thead>
  <tbody>
    <tr><td>15/03/2021</td><td>0,5</td><td>DIVIDENDO</td><td>30/04/2021</td></tr>
    <tr><td>01/01/2020</td><td>1,25</td><td>JRS CAP PROPRIO</td><td>-</td></tr>
    <tr><td>31/02/2020</td><td>x</td><td>DIVIDENDO</td><td>-</td></tr>
  </tbody>
</table>
</body></html>`

// newTestServer は指定されたパスにHTMLを返すテストサーバーを起動します。
// 各リクエストはcheckで検証されます。
func newTestServer(t *testing.T, path, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// newTestFetcher はレート制限なしのFetcherを作成します。
func newTestFetcher(server *httptest.Server) DocumentFetcher {
	return infrahttp.NewFetcher(server.Client(), "", nil)
}

func testConfig(baseURL string) Config {
	return Config{BaseURL: baseURL, EventCategory: "2", Location: time.UTC}
}

// fetcherFunc は関数をDocumentFetcherとして扱うためのアダプタです。
type fetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetcherFunc) Get(ctx context.Context, url string) ([]byte, error) { return f(ctx, url) }
