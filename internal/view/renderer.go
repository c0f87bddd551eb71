package view

import (
	"bytes"
	"html/template"
	"strconv"
	"sync"
	"time"

	"coindash/internal/chart"
	"coindash/internal/dashboard"
	"coindash/pkg/coinlore"

	"go.uber.org/zap"
)

// TimestampLayout renders "last updated" the way en-US browsers print a
// local date and time.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

var (
	coinRowsTmpl = template.Must(template.New("coins").Parse(
		`{{range .}}<tr><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{.Symbol}}</td><td>{{.Price}}</td></tr>{{end}}`))
	exchangeRowsTmpl = template.Must(template.New("exchanges").Parse(
		`{{range .}}<tr><td>{{.Index}}</td><td>{{.Name}}</td><td>{{.Pairs}}</td><td>{{.Volume}}</td></tr>{{end}}`))
)

// Tables holds the two table bodies produced by one RenderTables call.
type Tables struct {
	Coins     template.HTML
	Exchanges template.HTML
}

// Renderer paints dashboard state into a Document. It is the only code
// that writes elements, and it owns the two chart handles.
type Renderer struct {
	doc    *Document
	charts *chart.Registry
	topN   int
	logger *zap.Logger

	mu             sync.Mutex // serializes chart redraws
	coinsChart     *chart.Handle
	exchangesChart *chart.Handle
}

func NewRenderer(doc *Document, charts *chart.Registry, topN int, logger *zap.Logger) *Renderer {
	return &Renderer{
		doc:    doc,
		charts: charts,
		topN:   topN,
		logger: logger,
	}
}

func (r *Renderer) Document() *Document { return r.doc }

// RenderDashboard paints stats, both full tables and both charts.
func (r *Renderer) RenderDashboard(s dashboard.State) {
	r.RenderStats(s)
	r.RenderTables(s.Coins, s.Exchanges)
	r.DrawCharts(s)
}

func (r *Renderer) RenderStats(s dashboard.State) {
	stats := dashboard.ComputeStats(s.Coins, s.Exchanges)
	r.doc.SetText(TotalExchanges, strconv.Itoa(stats.TotalExchanges))
	r.doc.SetText(MeanPrice, dashboard.FormatUSD(stats.MeanPrice))
	r.doc.SetText(TopCoin, stats.TopCoin)
}

// RenderTables replaces both table bodies with the given rows and returns
// what it wrote. The document keeps only the last of concurrent writes.
func (r *Renderer) RenderTables(coins []coinlore.Coin, exchanges []coinlore.Exchange) Tables {
	return Tables{
		Coins:     r.setRows(TableCoins, coinRowsTmpl, dashboard.CoinRows(coins)),
		Exchanges: r.setRows(TableExchanges, exchangeRowsTmpl, dashboard.ExchangeRows(exchanges)),
	}
}

// DrawCharts redraws both charts from the full datasets. The previous
// handle of each canvas is destroyed before its replacement is built.
func (r *Renderer) DrawCharts(s dashboard.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coins := dashboard.TopCoins(s.Coins, r.topN)
	r.coinsChart.Destroy()
	r.coinsChart = r.charts.New(ChartCoins, barConfig(coins, "Price (USD)", false))
	r.doc.SetChart(ChartCoins, r.coinsChart)

	exchanges := dashboard.TopExchanges(s.Exchanges, r.topN)
	r.exchangesChart.Destroy()
	r.exchangesChart = r.charts.New(ChartExchanges, barConfig(exchanges, "Volume (USD)", true))
	r.doc.SetChart(ChartExchanges, r.exchangesChart)
}

func (r *Renderer) SetLastUpdate(t time.Time) {
	r.doc.SetText(LastUpdate, t.Local().Format(TimestampLayout))
}

// SetSearch records the text of a search input.
func (r *Renderer) SetSearch(id, query string) {
	r.doc.SetValue(id, query)
}

func (r *Renderer) ClearSearch() {
	r.doc.SetValue(SearchCoin, "")
	r.doc.SetValue(SearchExchange, "")
}

func (r *Renderer) setRows(id string, tmpl *template.Template, rows any) template.HTML {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rows); err != nil {
		r.logger.Error("failed to render table", zap.String("element", id), zap.Error(err))
		return r.doc.HTML(id)
	}
	body := template.HTML(buf.String())
	r.doc.SetHTML(id, body)
	return body
}

func barConfig(s dashboard.Series, label string, horizontal bool) chart.Config {
	cfg := chart.Config{
		Type: "bar",
		Data: chart.Data{
			Labels: s.Labels,
			Datasets: []chart.Dataset{{
				Label:           label,
				Data:            s.Values,
				BackgroundColor: chart.Colors(len(chart.Palette)),
			}},
		},
		Options: chart.Options{
			Plugins:             chart.Plugins{Legend: chart.Legend{Display: false}},
			MaintainAspectRatio: false,
		},
	}
	if horizontal {
		cfg.Options.IndexAxis = "y"
	}
	return cfg
}
