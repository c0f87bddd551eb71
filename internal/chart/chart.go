package chart

import (
	"sync"
	"sync/atomic"
)

// Palette is cycled over the bars of every chart.
var Palette = []string{
	"#06b6d4", "#0ea5e9", "#6366f1", "#a855f7", "#ec4899",
	"#f43f5e", "#f97316", "#facc15", "#84cc16", "#22c55e",
}

// Colors returns n palette colours.
func Colors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = Palette[i%len(Palette)]
	}
	return out
}

// Config mirrors the Chart.js configuration object.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
}

type Options struct {
	IndexAxis           string  `json:"indexAxis,omitempty"` // "y" for horizontal bars
	Plugins             Plugins `json:"plugins"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Display bool `json:"display"`
}

// Handle is one constructed chart bound to a canvas.
type Handle struct {
	ID     uint64
	Canvas string
	Config Config

	registry  *Registry
	destroyed atomic.Bool
}

// Destroy releases the chart. It is safe to call more than once.
func (h *Handle) Destroy() {
	if h == nil || !h.destroyed.CompareAndSwap(false, true) {
		return
	}
	h.registry.release(h)
}

func (h *Handle) Destroyed() bool {
	return h.destroyed.Load()
}

// Registry constructs charts and tracks the ones not yet destroyed, the
// way Chart.js keeps its instance table. It does not stop two live charts
// from sharing a canvas; owners destroy before they redraw.
type Registry struct {
	mu     sync.Mutex
	seq    uint64
	active map[uint64]*Handle
}

func NewRegistry() *Registry {
	return &Registry{active: make(map[uint64]*Handle)}
}

func (r *Registry) New(canvas string, cfg Config) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	h := &Handle{ID: r.seq, Canvas: canvas, Config: cfg, registry: r}
	r.active[h.ID] = h
	return h
}

// Active returns the live handles drawn on canvas.
func (r *Registry) Active(canvas string) []*Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Handle
	for _, h := range r.active {
		if h.Canvas == canvas {
			out = append(out, h)
		}
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

func (r *Registry) release(h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, h.ID)
}
