package coinlore

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumberUnmarshal(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
		want  float64
	}{
		{`12.5`, true, 12.5},
		{`"12.5"`, true, 12.5},
		{`" 7 "`, true, 7},
		{`"1e3"`, true, 1000},
		{`0`, true, 0},
		{`null`, false, 0},
		{`""`, false, 0},
		{`"abc"`, false, 0},
		{`true`, false, 0},
		{`{}`, false, 0},
		{`"1e400"`, false, 0},
		{`-1e400`, false, 0},
	}

	for _, tc := range cases {
		var n Number
		if err := json.Unmarshal([]byte(tc.raw), &n); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.raw, err)
		}
		if n.Valid() != tc.valid {
			t.Errorf("%s: expected valid=%v, got %v", tc.raw, tc.valid, n.Valid())
		}
		if n.Float() != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.raw, tc.want, n.Float())
		}
	}
}

func TestNumberZeroValue(t *testing.T) {
	var n Number
	if n.Valid() || n.Float() != 0 || n.String() != "" {
		t.Errorf("unexpected zero value: %+v", n)
	}
	if !NewNumber(3).Valid() || NewNumber(3).String() != "3" {
		t.Errorf("unexpected NewNumber: %v", NewNumber(3))
	}
}

func TestNumberNumeric(t *testing.T) {
	cases := []struct {
		raw     string
		numeric bool
	}{
		{`"12.5"`, true},
		{`null`, true},
		{`""`, true},
		{`"  "`, true},
		{`"abc"`, false},
		{`"1e400"`, false},
		{`[]`, false},
	}

	for _, tc := range cases {
		var n Number
		if err := json.Unmarshal([]byte(tc.raw), &n); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.raw, err)
		}
		if n.Numeric() != tc.numeric {
			t.Errorf("%s: expected numeric=%v, got %v", tc.raw, tc.numeric, n.Numeric())
		}
	}

	var missing Number
	if missing.Numeric() {
		t.Error("a missing field should not be numeric")
	}
}

func TestNewNumberNonFinite(t *testing.T) {
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if n := NewNumber(f); n.Valid() || n.Float() != 0 {
			t.Errorf("NewNumber(%v): expected invalid, got %+v", f, n)
		}
	}
}
