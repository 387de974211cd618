package flu

import (
	"math"
	"math/rand"
	"testing"
)

// scriptedSampler replays fixed samples, then repeats the last one.
type scriptedSampler struct {
	vals []float64
	i    int
}

func (s *scriptedSampler) Float64() float64 {
	if len(s.vals) == 0 {
		return 0.999999
	}
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v
}

func never() *scriptedSampler  { return &scriptedSampler{vals: []float64{0.999999}} }
func always() *scriptedSampler { return &scriptedSampler{vals: []float64{0}} }

func TestLifetime_SingleDormClick(t *testing.T) {
	s := NewSession(VariantLifetime)
	d := s.Click(CategoryDorm)

	want := Counts{CategoryDorm: 1}
	if d.Totals != want {
		t.Fatalf("totals = %v, want %v", d.Totals, want)
	}
	if d.Probability != ComputeP(want) {
		t.Fatalf("P = %v, want %v", d.Probability, ComputeP(want))
	}
	if d.PerClick != 0 || d.Window != 0 || d.Infected {
		t.Fatalf("lifetime display carries window fields: %+v", d)
	}
}

func TestLifetime_Accumulates(t *testing.T) {
	s := NewSession(VariantLifetime)
	for i := 0; i < 12; i++ {
		s.Click(CategoryClass)
	}
	s.Click(CategoryDining)
	d := s.Display()
	if d.Totals[CategoryClass] != 12 || d.Totals[CategoryDining] != 1 {
		t.Fatalf("unexpected totals %v", d.Totals)
	}
	if s.Clicks() != 13 {
		t.Fatalf("clicks = %d, want 13", s.Clicks())
	}
}

func TestWindow_FiveOutsideClicks(t *testing.T) {
	s := NewSession(VariantWindow, WithSampler(never()))
	var d Display
	for i := 0; i < 5; i++ {
		d = s.Click(CategoryOutside)
	}
	if d.Window != 5 {
		t.Fatalf("window = %d, want 5", d.Window)
	}
	if d.Totals != (Counts{CategoryOutside: 5}) {
		t.Fatalf("totals = %v", d.Totals)
	}
	want := 1 - math.Pow(1-d.Probability, 1.0/5)
	if math.Abs(d.PerClick-want) > 1e-15 {
		t.Fatalf("per-click = %v, want %v", d.PerClick, want)
	}
	if d.Probability != ComputeP(Counts{CategoryOutside: 5}) {
		t.Fatalf("P = %v", d.Probability)
	}
}

func TestWindow_NoClicksNoRisk(t *testing.T) {
	var w WindowState
	d := w.Display()
	if d.Window != 0 || d.PerClick != 0 {
		t.Fatalf("empty window: k=%d p=%v, want 0 and exactly 0", d.Window, d.PerClick)
	}
	if d.Probability != ZeroP() {
		t.Fatalf("empty window P = %v, want %v", d.Probability, ZeroP())
	}
}

func TestWindow_OnlyLastFiveCount(t *testing.T) {
	s := NewSession(VariantWindow, WithSampler(never()))
	for i := 0; i < 3; i++ {
		s.Click(CategoryDorm)
	}
	var d Display
	for i := 0; i < 5; i++ {
		d = s.Click(CategoryOutside)
	}
	if d.Totals != (Counts{CategoryOutside: 5}) {
		t.Fatalf("window totals = %v, dorm clicks leaked into the window", d.Totals)
	}
	if got := len(s.History()); got != 8 {
		t.Fatalf("history length = %d, want 8", got)
	}
}

func TestWindow_InfectionResets(t *testing.T) {
	s := NewSession(VariantWindow, WithSampler(always()))
	d := s.Click(CategoryDorm)
	if !d.Infected {
		t.Fatal("sample 0 must trigger infection")
	}
	if d.Totals != (Counts{}) || d.Probability != ZeroP() {
		t.Fatalf("infection display not zeroed: %+v", d)
	}
	if len(s.History()) != 0 {
		t.Fatalf("history not cleared: %v", s.History())
	}
	if s.Infections() != 1 || s.Clicks() != 0 {
		t.Fatalf("infections=%d clicks=%d, want 1 and 0", s.Infections(), s.Clicks())
	}
}

func TestWindow_SampleAtThresholdDoesNotInfect(t *testing.T) {
	w := WindowState{History: []Category{CategoryOutside}}
	p := w.Display().PerClick
	// Next click makes the window two outsides; sample exactly at p does not infect.
	next := WindowState{History: []Category{CategoryOutside, CategoryOutside}}.Display().PerClick
	_, d := w.Click(CategoryOutside, &scriptedSampler{vals: []float64{next}})
	if d.Infected {
		t.Fatalf("sample == p (%v) must not infect (prev p %v)", next, p)
	}
}

func TestWindowState_ClickIsPure(t *testing.T) {
	base := WindowState{History: make([]Category, 2, 8)}
	a, _ := base.Click(CategoryDining, never())
	b, _ := base.Click(CategoryClass, never())
	if a.History[2] != CategoryDining {
		t.Fatalf("second click on the same state overwrote the first: %v", a.History)
	}
	if b.History[2] != CategoryClass {
		t.Fatalf("unexpected history %v", b.History)
	}
	if len(base.History) != 2 {
		t.Fatalf("base state mutated: %v", base.History)
	}
}

func TestReset_RestoresZeroState(t *testing.T) {
	for _, v := range []Variant{VariantLifetime, VariantWindow} {
		s := NewSession(v, WithSampler(never()))
		for _, c := range []Category{CategoryDorm, CategoryDining, CategoryClass, CategoryOutside, CategoryDorm, CategoryDorm} {
			s.Click(c)
		}
		d := s.Reset()
		if d.Totals != (Counts{}) {
			t.Fatalf("%s: totals after reset = %v", v, d.Totals)
		}
		if d.Probability != ZeroP() {
			t.Fatalf("%s: P after reset = %v", v, d.Probability)
		}
		if s.Clicks() != 0 || len(s.History()) != 0 {
			t.Fatalf("%s: state survived reset", v)
		}
		for _, r := range d.Readouts() {
			if r.ID == ReadoutProbability {
				if r.Value != "0.67" {
					t.Fatalf("%s: probability readout %q", v, r.Value)
				}
				continue
			}
			if r.Value != "0" {
				t.Fatalf("%s: %s readout %q after reset", v, r.ID, r.Value)
			}
		}
	}
}

func TestSession_ClickCell(t *testing.T) {
	s := NewSession(VariantLifetime)
	d, ok := s.ClickCell(0, 4)
	if !ok {
		t.Fatal("ClickCell(0,4) reported off-grid")
	}
	if d.Totals != (Counts{CategoryOutside: 1}) {
		t.Fatalf("cell (0,4) should be outside, totals %v", d.Totals)
	}
	if _, ok := s.ClickCell(10, 0); ok {
		t.Fatal("ClickCell(10,0) should be off-grid")
	}
	if s.Clicks() != 1 {
		t.Fatalf("off-grid click counted: %d", s.Clicks())
	}
}

func TestSession_SeededRunsRepeat(t *testing.T) {
	run := func() (int, []Category) {
		s := NewSession(VariantWindow, WithSeed(7))
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 3000; i++ {
			s.Click(Categories[rng.Intn(len(Categories))])
		}
		return s.Infections(), s.History()
	}
	n1, h1 := run()
	n2, h2 := run()
	if n1 != n2 || len(h1) != len(h2) {
		t.Fatalf("seeded runs diverged: %d/%d infections, %d/%d history", n1, n2, len(h1), len(h2))
	}
	if n1 == 0 {
		t.Fatal("expected at least one infection over 3000 clicks")
	}
}

func TestReadouts_Order(t *testing.T) {
	ids := []string{"total-dorm", "total-class", "total-dining", "total-outside", "probability"}
	got := ZeroDisplay().Readouts()
	if len(got) != len(ids) {
		t.Fatalf("got %d readouts", len(got))
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Fatalf("readout %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{VariantWindow, VariantLifetime} {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Fatalf("ParseVariant(%q) = %v, %v", v, got, err)
		}
	}
	if _, err := ParseVariant("merged"); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}
