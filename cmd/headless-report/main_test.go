package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Garsondee/campus-flu/internal/flu"
)

func TestRunRandomWalk_Deterministic(t *testing.T) {
	a := runRandomWalk(flu.NewSession(flu.VariantWindow, flu.WithSeed(42)), 1, 42, 500)
	b := runRandomWalk(flu.NewSession(flu.VariantWindow, flu.WithSeed(42)), 1, 42, 500)
	if a.infections != b.infections || a.firstInfectionClick != b.firstInfectionClick || a.visits != b.visits {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
	if a.visits.Total() != 500 {
		t.Fatalf("visits total %d, want 500", a.visits.Total())
	}
}

func TestRunRandomWalk_LifetimeNeverInfects(t *testing.T) {
	rs := runRandomWalk(flu.NewSession(flu.VariantLifetime, flu.WithSeed(3)), 1, 3, 300)
	if rs.infections != 0 || rs.firstInfectionClick != -1 {
		t.Fatalf("lifetime variant reported infections: %+v", rs)
	}
	// Lifetime risk only grows, so the final P is the peak.
	if rs.final.Probability != rs.peakP {
		t.Fatalf("final P %v != peak %v", rs.final.Probability, rs.peakP)
	}
	if rs.final.Totals != rs.visits {
		t.Fatalf("final totals %v != visits %v", rs.final.Totals, rs.visits)
	}
}

func TestRunRandomWalk_SameWalkAcrossVariants(t *testing.T) {
	w := runRandomWalk(flu.NewSession(flu.VariantWindow, flu.WithSeed(9)), 1, 9, 100)
	l := runRandomWalk(flu.NewSession(flu.VariantLifetime, flu.WithSeed(9)), 1, 9, 100)
	if w.visits != l.visits {
		t.Fatalf("cell walk depends on variant: %v vs %v", w.visits, l.visits)
	}
}

func TestRiskBand(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{flu.ZeroP(), "low"},
		{0.05, "moderate"},
		{0.2, "moderate"},
		{0.25, "high"},
		{0.9, "high"},
	}
	for _, tt := range tests {
		if got := riskBand(tt.p); got != tt.want {
			t.Errorf("riskBand(%v) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestTopTrait_StableOnTies(t *testing.T) {
	got := topTrait(map[string]int{"dorm": 2, "class": 2, "outside": 1})
	if got != "class(2)" {
		t.Fatalf("topTrait = %s, want class(2)", got)
	}
	if topTrait(map[string]int{}) != "" {
		t.Fatal("empty map should give empty string")
	}
}

func TestAvgHelpers(t *testing.T) {
	if avg(5, 0) != 0 {
		t.Fatal("avg with n=0 should be 0")
	}
	if avgTickString(nil) != "n/a" {
		t.Fatal("empty ticks should be n/a")
	}
	if got := avgTickString([]int{10, 20}); got != "15.0" {
		t.Fatalf("avgTickString = %s", got)
	}
}

func TestRootCmd_PrintsReport(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--runs", "2", "--clicks", "50", "--log-level", "error"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"=== Headless Flu Report ===", "--- Run 1 (seed=42) ---", "--- Run 2 (seed=43) ---", "=== Aggregate ==="} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report missing %q:\n%s", want, out.String())
		}
	}
}

func TestRootCmd_RejectsBadArgs(t *testing.T) {
	for _, args := range [][]string{
		{"--runs", "0"},
		{"--clicks", "-1"},
		{"--variant", "both"},
	} {
		cmd := newRootCmd(&bytes.Buffer{})
		cmd.SetArgs(args)
		cmd.SetErr(&bytes.Buffer{})
		if err := cmd.Execute(); err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}
