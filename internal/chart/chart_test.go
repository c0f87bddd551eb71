package chart

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	a := r.New("c1", Config{Type: "bar"})
	b := r.New("c2", Config{Type: "bar"})
	if r.Len() != 2 {
		t.Fatalf("expected 2 live charts, got %d", r.Len())
	}

	a.Destroy()
	a.Destroy()
	if !a.Destroyed() || r.Len() != 1 {
		t.Errorf("expected one live chart after destroy, got %d", r.Len())
	}
	if got := r.Active("c2"); len(got) != 1 || got[0] != b {
		t.Errorf("unexpected active handles: %v", got)
	}

	var nilHandle *Handle
	nilHandle.Destroy()
}

func TestColors(t *testing.T) {
	c := Colors(12)
	if len(c) != 12 || c[0] != Palette[0] || c[10] != Palette[0] || c[11] != Palette[1] {
		t.Errorf("unexpected colours: %v", c)
	}
}

func TestConfigJSON(t *testing.T) {
	cfg := Config{
		Type:    "bar",
		Options: Options{IndexAxis: "y"},
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	for _, want := range []string{`"indexAxis":"y"`, `"legend":{"display":false}`, `"maintainAspectRatio":false`} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %s in %s", want, s)
		}
	}
}
