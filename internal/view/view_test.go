package view

import (
	"strings"
	"testing"
	"time"

	"coindash/internal/chart"
	"coindash/internal/dashboard"
	"coindash/pkg/coinlore"

	"go.uber.org/zap"
)

func setup() (*Renderer, *Document, *chart.Registry) {
	doc := NewDocument()
	reg := chart.NewRegistry()
	return NewRenderer(doc, reg, 10, zap.NewNop()), doc, reg
}

func sampleState() dashboard.State {
	return dashboard.State{}.WithData(
		[]coinlore.Coin{
			{Rank: coinlore.NewNumber(2), Name: "Ethereum", Symbol: "ETH", PriceUSD: coinlore.NewNumber(3000)},
			{Rank: coinlore.NewNumber(1), Name: "Bitcoin", Symbol: "BTC", PriceUSD: coinlore.NewNumber(60000)},
		},
		[]coinlore.Exchange{
			{Name: "Binance", VolumeUSD: coinlore.NewNumber(5e9)},
			{Name: "Dead", VolumeUSD: coinlore.NewNumber(0)},
		},
	)
}

// go test -v --run TestRenderDashboard
func TestRenderDashboard(t *testing.T) {
	r, doc, _ := setup()
	r.RenderDashboard(sampleState())

	if got := doc.Text(TotalExchanges); got != "2" {
		t.Errorf("expected 2 exchanges, got %q", got)
	}
	if got := doc.Text(MeanPrice); got != "$31.50K" {
		t.Errorf("unexpected mean price %q", got)
	}
	if got := doc.Text(TopCoin); got != "Bitcoin" {
		t.Errorf("unexpected top coin %q", got)
	}

	coins := string(doc.HTML(TableCoins))
	if strings.Index(coins, "Bitcoin") > strings.Index(coins, "Ethereum") {
		t.Errorf("expected rank 1 before rank 2: %s", coins)
	}
	exchanges := string(doc.HTML(TableExchanges))
	if strings.Contains(exchanges, "Dead") {
		t.Errorf("zero-volume exchange rendered: %s", exchanges)
	}
	if !strings.Contains(exchanges, "<td>1</td><td>Binance</td><td>-</td><td>$5.00B</td>") {
		t.Errorf("unexpected exchange row: %s", exchanges)
	}
}

func TestRenderTablesEscapes(t *testing.T) {
	r, doc, _ := setup()
	tables := r.RenderTables([]coinlore.Coin{{Name: "<script>x</script>", Symbol: "X"}}, nil)

	if got := string(doc.HTML(TableCoins)); strings.Contains(got, "<script>") {
		t.Errorf("coin name not escaped: %s", got)
	}
	if tables.Coins != doc.HTML(TableCoins) || tables.Exchanges != doc.HTML(TableExchanges) {
		t.Errorf("returned tables differ from the document: %+v", tables)
	}
}

// go test -v --run TestDrawChartsTwice
func TestDrawChartsTwice(t *testing.T) {
	r, doc, reg := setup()
	s := sampleState()

	r.DrawCharts(s)
	first, _ := doc.Chart(ChartCoins)
	r.DrawCharts(s)
	second, _ := doc.Chart(ChartCoins)

	for _, canvas := range []string{ChartCoins, ChartExchanges} {
		if n := len(reg.Active(canvas)); n != 1 {
			t.Errorf("%s: expected exactly one live chart, got %d", canvas, n)
		}
	}
	if first.Handle == second.Handle {
		t.Error("expected a new handle on redraw")
	}

	p, ok := doc.Chart(ChartExchanges)
	if !ok || p.Chart.Options.IndexAxis != "y" {
		t.Errorf("expected horizontal exchange chart, got %+v", p.Chart)
	}
	if p.Chart.Data.Labels[0] != "Binance" || len(p.Chart.Data.Labels) != 1 {
		t.Errorf("unexpected exchange labels: %v", p.Chart.Data.Labels)
	}
}

func TestSetLastUpdate(t *testing.T) {
	r, doc, _ := setup()
	ts := time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)
	r.SetLastUpdate(ts)

	if got := doc.Text(LastUpdate); got != "3/5/2024, 2:07:09 PM" {
		t.Errorf("unexpected timestamp %q", got)
	}
}

// go test -v --run TestSubscribe
func TestSubscribe(t *testing.T) {
	r, doc, _ := setup()
	r.SetLastUpdate(time.Now())

	snapshot, patches, cancel := doc.Subscribe(8)
	defer cancel()

	if len(snapshot) != 1 || snapshot[0].ID != LastUpdate {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}

	r.ClearSearch()
	for _, want := range []string{SearchCoin, SearchExchange} {
		select {
		case p := <-patches:
			if p.ID != want || p.Kind != KindValue || p.Content != "" {
				t.Errorf("unexpected patch %+v", p)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}

	cancel()
	if _, ok := <-patches; ok {
		t.Error("expected channel closed after cancel")
	}
}

func TestSubscribeDropsWhenFull(t *testing.T) {
	_, doc, _ := setup()
	_, _, cancel := doc.Subscribe(1)
	defer cancel()

	doc.SetText(TopCoin, "a")
	doc.SetText(TopCoin, "b")

	if doc.Dropped() != 1 {
		t.Errorf("expected 1 dropped patch, got %d", doc.Dropped())
	}
	if doc.Text(TopCoin) != "b" {
		t.Errorf("document must keep the latest content")
	}
}
