package app

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"coindash/internal/view"

	"go.uber.org/zap"
)

//go:embed web/index.html.tmpl
var indexHTML string

var pageTmpl = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	LastUpdate     string
	TotalExchanges string
	MeanPrice      string
	TopCoin        string
	TableCoins     template.HTML
	TableExchanges template.HTML
	SearchCoin     string
	SearchExchange string
	Charts         []view.Patch
}

type tablesResponse struct {
	TableCoins     string `json:"tableCoins"`
	TableExchanges string `json:"tableExchanges"`
}

type reloadResponse struct {
	OK      bool         `json:"ok"`
	Error   string       `json:"error,omitempty"`
	Patches []view.Patch `json:"patches"`
}

func (a *App) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", a.handleIndex)
	mux.HandleFunc("GET /ws", a.handleWS)
	mux.HandleFunc("POST /api/search/coins", a.handleSearchCoins)
	mux.HandleFunc("POST /api/search/exchanges", a.handleSearchExchanges)
	mux.HandleFunc("POST /api/reload", a.handleReload)
	mux.HandleFunc("GET /healthz", a.handleHealth)
	return mux
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc := a.renderer.Document()

	data := pageData{
		LastUpdate:     doc.Text(view.LastUpdate),
		TotalExchanges: doc.Text(view.TotalExchanges),
		MeanPrice:      doc.Text(view.MeanPrice),
		TopCoin:        doc.Text(view.TopCoin),
		TableCoins:     doc.HTML(view.TableCoins),
		TableExchanges: doc.HTML(view.TableExchanges),
		SearchCoin:     doc.Text(view.SearchCoin),
		SearchExchange: doc.Text(view.SearchExchange),
	}
	for _, id := range []string{view.ChartCoins, view.ChartExchanges} {
		if p, ok := doc.Chart(id); ok {
			data.Charts = append(data.Charts, p)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		a.logger.Error("failed to render page", zap.Error(err))
	}
}

func (a *App) handleSearchCoins(w http.ResponseWriter, r *http.Request) {
	a.writeTables(w, a.controller.SearchCoins(r.FormValue("q")))
}

func (a *App) handleSearchExchanges(w http.ResponseWriter, r *http.Request) {
	a.writeTables(w, a.controller.SearchExchanges(r.FormValue("q")))
}

func (a *App) handleReload(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	resp := reloadResponse{OK: true}

	if err := a.controller.Reload(r.Context()); err != nil {
		status = http.StatusBadGateway
		resp = reloadResponse{OK: false, Error: err.Error()}
	}
	resp.Patches = a.renderer.Document().Snapshot()

	a.writeJSON(w, status, resp)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	s := a.store.Load()

	var last string
	if !s.LastUpdate.IsZero() {
		last = s.LastUpdate.UTC().Format(time.RFC3339)
	}
	a.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"last_update": last,
		"coins":       len(s.Coins),
		"exchanges":   len(s.Exchanges),
	})
}

func (a *App) writeTables(w http.ResponseWriter, t view.Tables) {
	a.writeJSON(w, http.StatusOK, tablesResponse{
		TableCoins:     string(t.Coins),
		TableExchanges: string(t.Exchanges),
	})
}

func (a *App) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("failed to write response", zap.Error(err))
	}
}
