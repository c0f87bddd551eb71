package view

import (
	"html/template"
	"sync"

	"coindash/internal/chart"
)

// Element IDs shared with the page markup.
const (
	LastUpdate     = "lastUpdate"
	TotalExchanges = "totalExchanges"
	MeanPrice      = "meanPrice"
	TopCoin        = "topCoin"
	TableCoins     = "tableCoins"
	TableExchanges = "tableExchanges"
	ChartCoins     = "chartCoins"
	ChartExchanges = "chartExchanges"
	SearchCoin     = "searchCoin"
	SearchExchange = "searchExchange"
	ReloadData     = "reloadData"
)

type Kind string

const (
	KindText  Kind = "text"  // textContent
	KindHTML  Kind = "html"  // innerHTML
	KindValue Kind = "value" // input value
	KindChart Kind = "chart" // destroy the canvas' chart, then draw Chart
)

// Patch is one element mutation as sent to the page.
type Patch struct {
	ID      string        `json:"id"`
	Kind    Kind          `json:"kind"`
	Content string        `json:"content"`
	Handle  uint64        `json:"handle,omitempty"`
	Chart   *chart.Config `json:"chart,omitempty"`
}

// Document is the server-side model of the page: the latest content of
// every element, plus subscribers that receive each mutation.
type Document struct {
	mu       sync.Mutex
	elements map[string]Patch
	order    []string
	subs     map[uint64]chan Patch
	nextSub  uint64
	dropped  uint64
}

func NewDocument() *Document {
	return &Document{
		elements: make(map[string]Patch),
		subs:     make(map[uint64]chan Patch),
	}
}

func (d *Document) SetText(id, text string) {
	d.apply(Patch{ID: id, Kind: KindText, Content: text})
}

func (d *Document) SetHTML(id string, html template.HTML) {
	d.apply(Patch{ID: id, Kind: KindHTML, Content: string(html)})
}

func (d *Document) SetValue(id, value string) {
	d.apply(Patch{ID: id, Kind: KindValue, Content: value})
}

// SetChart binds h to canvas id, replacing whatever the page drew there.
func (d *Document) SetChart(id string, h *chart.Handle) {
	cfg := h.Config
	d.apply(Patch{ID: id, Kind: KindChart, Handle: h.ID, Chart: &cfg})
}

func (d *Document) Text(id string) string {
	p, _ := d.get(id)
	return p.Content
}

func (d *Document) HTML(id string) template.HTML {
	p, _ := d.get(id)
	return template.HTML(p.Content)
}

// Chart returns the patch last drawn on canvas id.
func (d *Document) Chart(id string) (Patch, bool) {
	p, ok := d.get(id)
	if !ok || p.Kind != KindChart {
		return Patch{}, false
	}
	return p, true
}

// Snapshot returns the current content of every element in first-write order.
func (d *Document) Snapshot() []Patch {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

// Subscribe returns the current snapshot and a channel of every later
// patch. A subscriber whose buffer is full misses patches instead of
// stalling renders. cancel closes the channel.
func (d *Document) Subscribe(buffer int) (snapshot []Patch, patches <-chan Patch, cancel func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextSub
	d.nextSub++
	ch := make(chan Patch, buffer)
	d.subs[id] = ch

	var once sync.Once
	cancel = func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			delete(d.subs, id)
			close(ch)
		})
	}
	return d.snapshotLocked(), ch, cancel
}

// Dropped counts patches not delivered to full subscribers.
func (d *Document) Dropped() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

func (d *Document) apply(p Patch) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.elements[p.ID]; !ok {
		d.order = append(d.order, p.ID)
	}
	d.elements[p.ID] = p

	for _, ch := range d.subs {
		select {
		case ch <- p:
		default:
			d.dropped++
		}
	}
}

func (d *Document) get(id string) (Patch, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.elements[id]
	return p, ok
}

func (d *Document) snapshotLocked() []Patch {
	out := make([]Patch, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.elements[id])
	}
	return out
}
