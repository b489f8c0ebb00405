package gas

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestConsume_ClampsAtZero(t *testing.T) {
	c := Cell{O2: 3}
	removed := c.Consume(O2, 5)
	if c.O2 != 0 {
		t.Errorf("O2 after Consume(5) = %v, want 0", c.O2)
	}
	if removed != 3 {
		t.Errorf("Consume(O2, 5) removed %v, want 3", removed)
	}
}

func TestConsume_NegativeIgnored(t *testing.T) {
	c := Cell{CO2: 2}
	if removed := c.Consume(CO2, -1); removed != 0 {
		t.Errorf("Consume(CO2, -1) = %v, want 0", removed)
	}
	if c.CO2 != 2 {
		t.Errorf("CO2 = %v, want 2", c.CO2)
	}
}

func TestAdd_NegativeIgnored(t *testing.T) {
	c := Cell{N2: 1}
	c.Add(N2, -4)
	if c.N2 != 1 {
		t.Errorf("N2 after Add(-4) = %v, want 1", c.N2)
	}
	c.Add(N2, 2.5)
	if c.N2 != 3.5 {
		t.Errorf("N2 after Add(2.5) = %v, want 3.5", c.N2)
	}
}

func TestMixWith_ConservesPairTotal(t *testing.T) {
	cases := []struct {
		a, b Cell
		rate float64
	}{
		{Cell{O2: 10}, Cell{}, 0.05},
		{Cell{O2: 1, CO2: 7, N2: 3}, Cell{O2: 20, CO2: 0.5, N2: 9}, 0.25},
		{Cell{O2: 100, CO2: 100, N2: 100}, Cell{O2: 0.1}, 0.5},
	}
	for _, tc := range cases {
		a, b := tc.a, tc.b
		before := a.Total() + b.Total()
		a.MixWith(&b, tc.rate)
		after := a.Total() + b.Total()
		if math.Abs(after-before) > epsilon {
			t.Errorf("MixWith(%v, %v, %v) total %v -> %v", tc.a, tc.b, tc.rate, before, after)
		}
		if a.O2 < 0 || a.CO2 < 0 || a.N2 < 0 || b.O2 < 0 || b.CO2 < 0 || b.N2 < 0 {
			t.Errorf("MixWith produced a negative quantity: %v %v", a, b)
		}
	}
}

func TestMixWith_MovesTowardEquilibrium(t *testing.T) {
	a := Cell{O2: 10}
	b := Cell{}
	a.MixWith(&b, 0.5)
	if a.O2 != 5 || b.O2 != 5 {
		t.Errorf("MixWith at 0.5 = (%v, %v), want (5, 5)", a.O2, b.O2)
	}
}

func TestScale_SnapsBelowEpsilon(t *testing.T) {
	c := Cell{O2: 10, CO2: 0.015}
	c.Scale(0.5, 0.01)
	if c.O2 != 5 {
		t.Errorf("O2 after Scale(0.5) = %v, want 5", c.O2)
	}
	if c.CO2 != 0 {
		t.Errorf("CO2 after Scale(0.5) = %v, want 0 (snapped)", c.CO2)
	}
}

func TestPressure(t *testing.T) {
	c := Cell{O2: 500, CO2: 300, N2: 200}
	if got := c.Pressure(); got != 10 {
		t.Errorf("Pressure() = %v, want 10", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Cell{O2: 1, CO2: 2, N2: 3}).IsFinite() {
		t.Error("finite cell reported non-finite")
	}
	if (Cell{CO2: math.NaN()}).IsFinite() || (Cell{N2: math.Inf(-1)}).IsFinite() {
		t.Error("NaN or Inf cell reported finite")
	}
}

func TestPredominant(t *testing.T) {
	if _, ok := (Cell{}).Predominant(); ok {
		t.Error("Predominant() on empty cell ok = true, want false")
	}
	if s, _ := (Cell{O2: 1, CO2: 4, N2: 2}).Predominant(); s != CO2 {
		t.Errorf("Predominant() = %v, want CO2", s)
	}
	if s, _ := (Cell{O2: 3, N2: 3}).Predominant(); s != O2 {
		t.Errorf("Predominant() tie = %v, want O2", s)
	}
}

func TestMean(t *testing.T) {
	got := Mean([]Cell{{O2: 2, N2: 4}, {O2: 4, CO2: 6}})
	want := Cell{O2: 3, CO2: 3, N2: 2}
	if got != want {
		t.Errorf("Mean = %v, want %v", got, want)
	}
	if got := Mean(nil); got != (Cell{}) {
		t.Errorf("Mean(nil) = %v, want empty", got)
	}
}

func TestClassify_ToxicityDominates(t *testing.T) {
	if got := Classify(Cell{O2: 400}); got != O2Toxic {
		t.Errorf("Classify(O2=400) = %v, want O2 Toxic", got.Label())
	}
}

func TestClassify_Bands(t *testing.T) {
	cases := []struct {
		c    Cell
		want Breathability
	}{
		{Cell{O2: 350}, O2Toxic},
		{Cell{O2: 75, CO2: 1, N2: 1}, VeryBreathable},
		{Cell{O2: 100, CO2: 3.9, N2: 3.9}, VeryBreathable},
		{Cell{O2: 101}, Breathable},
		{Cell{O2: 60, CO2: 5}, Breathable},
		{Cell{O2: 30, CO2: 9, N2: 9}, Breathable},
		{Cell{O2: 29, CO2: 1}, BarelyBreathable},
		{Cell{O2: 40, CO2: 15}, BarelyBreathable},
		{Cell{O2: 4.9}, Unbreathable},
		{Cell{O2: 80, N2: 25}, Unbreathable},
	}
	for _, tc := range cases {
		if got := Classify(tc.c); got != tc.want {
			t.Errorf("Classify(%v) = %v, want %v", tc.c, got.Label(), tc.want.Label())
		}
	}
}

func TestBreathability_StringUntranslated(t *testing.T) {
	if got := VeryBreathable.String(); got != "Very Breathable" {
		t.Errorf("VeryBreathable.String() = %q, want %q", got, "Very Breathable")
	}
}

func TestParseSpecies(t *testing.T) {
	tests := []struct {
		name string
		want Species
		ok   bool
	}{
		{"O2", O2, true},
		{"co2", CO2, true},
		{"n2", N2, true},
		{"He", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSpecies(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSpecies(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
