package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/Garsondee/campus-flu/internal/flu"
	"github.com/Garsondee/campus-flu/internal/logging"
	"github.com/spf13/cobra"
)

type runStats struct {
	runIndex int
	seed     int64
	clicks   int

	firstInfectionClick int
	infections          int
	triggers            map[string]int // category of each infecting click

	peakP float64
	sumP  float64
	final flu.Display

	visits flu.Counts
}

type reportOptions struct {
	runs     int
	clicks   int
	seedBase int64
	seedStep int64
	variant  string
	logLevel string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var o reportOptions
	cmd := &cobra.Command{
		Use:          "headless-report",
		Short:        "Run seeded random click sessions and print infection statistics",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.runs <= 0 {
				return fmt.Errorf("--runs must be > 0")
			}
			if o.clicks <= 0 {
				return fmt.Errorf("--clicks must be > 0")
			}
			variant, err := flu.ParseVariant(o.variant)
			if err != nil {
				return err
			}
			if !logging.ValidLevel(o.logLevel) {
				return fmt.Errorf("invalid log level: %s", o.logLevel)
			}
			log := logging.NewLogger(o.logLevel, os.Stderr)

			fmt.Fprintf(out, "=== Headless Flu Report ===\n")
			fmt.Fprintf(out, "variant=%s runs=%d clicks=%d seed_base=%d seed_step=%d\n\n", variant, o.runs, o.clicks, o.seedBase, o.seedStep)

			all := make([]runStats, 0, o.runs)
			for i := 0; i < o.runs; i++ {
				seed := o.seedBase + int64(i)*o.seedStep
				session := flu.NewSession(variant, flu.WithSeed(seed), flu.WithLogger(log))
				stats := runRandomWalk(session, i+1, seed, o.clicks)
				all = append(all, stats)
				printRun(out, stats)
			}
			printAggregate(out, all)
			return nil
		},
	}
	cmd.Flags().IntVar(&o.runs, "runs", 5, "number of headless sessions")
	cmd.Flags().IntVar(&o.clicks, "clicks", 200, "cell clicks per session")
	cmd.Flags().Int64Var(&o.seedBase, "seed-base", 42, "base RNG seed for run 1")
	cmd.Flags().Int64Var(&o.seedStep, "seed-step", 1, "seed increment between runs")
	cmd.Flags().StringVar(&o.variant, "variant", "window", "risk variant: window or lifetime")
	cmd.Flags().StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	return cmd
}

// runRandomWalk clicks uniformly random cells. Cell choice uses its own
// source derived from seed so the walk is identical across variants.
func runRandomWalk(s *flu.Session, runIndex int, seed int64, clicks int) runStats {
	walk := rand.New(rand.NewSource(seed ^ 0x5EED)) // #nosec G404 -- simulation only
	rs := runStats{
		runIndex:            runIndex,
		seed:                seed,
		clicks:              clicks,
		firstInfectionClick: -1,
		triggers:            map[string]int{},
	}
	for i := 1; i <= clicks; i++ {
		row, col := walk.Intn(flu.GridRows), walk.Intn(flu.GridCols)
		cat, _ := s.Grid().At(row, col)
		rs.visits[cat]++

		d, _ := s.ClickCell(row, col)
		if d.Infected {
			rs.infections++
			rs.triggers[cat.String()]++
			if rs.firstInfectionClick < 0 {
				rs.firstInfectionClick = i
			}
			continue
		}
		rs.sumP += d.Probability
		if d.Probability > rs.peakP {
			rs.peakP = d.Probability
		}
	}
	rs.final = s.Display()
	return rs
}

func (rs runStats) meanP() float64 {
	n := rs.clicks - rs.infections
	if n <= 0 {
		return 0
	}
	return rs.sumP / float64(n)
}

// riskBand buckets a probability for the report.
func riskBand(p float64) string {
	switch {
	case p >= 0.25:
		return "high"
	case p >= 0.05:
		return "moderate"
	default:
		return "low"
	}
}

func printRun(out io.Writer, rs runStats) {
	fmt.Fprintf(out, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(out, "infections=%d first_infection_click=%d triggers=%s\n",
		rs.infections, rs.firstInfectionClick, formatCounts(rs.triggers))
	fmt.Fprintf(out, "risk: peak=%.2f%% mean=%.2f%% band=%s\n",
		rs.peakP*100, rs.meanP()*100, riskBand(rs.meanP()))
	fmt.Fprintf(out, "visits: %s\n", formatVisits(rs.visits))
	fmt.Fprintf(out, "final: %s\n\n", rs.final.Summary())
}

func printAggregate(out io.Writer, all []runStats) {
	totalInfections := 0
	survived := 0
	var sumPeak, sumMean float64
	firstTicks := make([]int, 0, len(all))
	triggers := map[string]int{}
	var visits flu.Counts

	for _, rs := range all {
		totalInfections += rs.infections
		if rs.infections == 0 {
			survived++
		}
		if rs.firstInfectionClick >= 0 {
			firstTicks = append(firstTicks, rs.firstInfectionClick)
		}
		sumPeak += rs.peakP
		sumMean += rs.meanP()
		for k, v := range rs.triggers {
			triggers[k] += v
		}
		for i, v := range rs.visits {
			visits[i] += v
		}
	}

	n := len(all)
	fmt.Fprintln(out, "=== Aggregate ===")
	fmt.Fprintf(out, "runs=%d survived=%d (%.0f%%)\n", n, survived, avg(survived*100, n))
	fmt.Fprintf(out, "avg_infections_per_run=%.1f avg_first_infection_click=%s\n",
		avg(totalInfections, n), avgTickString(firstTicks))
	fmt.Fprintf(out, "avg_peak_risk=%.2f%% avg_mean_risk=%.2f%%\n", sumPeak/float64(n)*100, sumMean/float64(n)*100)
	fmt.Fprintf(out, "top_trigger=%s all_triggers=%s\n", orNone(topTrait(triggers)), formatCounts(triggers))
	fmt.Fprintf(out, "visits: %s\n", formatVisits(visits))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

// topTrait returns the most frequent key as "key(n)". Ties go to the
// alphabetically first key so output is stable.
func topTrait(counts map[string]int) string {
	best := ""
	bestN := 0
	for k, v := range counts {
		if v > bestN || (v == bestN && v > 0 && k < best) {
			best = k
			bestN = v
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("%s(%d)", best, bestN)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// formatCounts prints counts in category order, skipping zeros.
func formatCounts(m map[string]int) string {
	parts := make([]string, 0, len(m))
	for _, c := range flu.Categories {
		if v := m[c.String()]; v > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", c, v))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

func formatVisits(c flu.Counts) string {
	parts := make([]string, 0, len(flu.Categories))
	for _, cat := range flu.Categories {
		parts = append(parts, fmt.Sprintf("%s=%d", cat, c[cat]))
	}
	return strings.Join(parts, " ")
}
