package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"tgol/pkg/core"
	"tgol/pkg/sims/life"
)

type scenario struct {
	density  int
	rule     life.Rule
	adaptive bool
}

func (s scenario) String() string {
	mode := "fixed"
	if s.adaptive {
		mode = "adaptive"
	}
	return fmt.Sprintf("density=%d rule=%s %s", s.density, s.rule.Label(), mode)
}

type scenarioResult struct {
	scenario
	final      int
	peak       int
	extinct    bool
	extinctAt  uint64
	finalRule  string
	generation uint64
}

func main() {
	log.SetPrefix("[SWEEP] ")

	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of scenarios run in parallel")
	rows := flag.Int("rows", 64, "board rows")
	cols := flag.Int("cols", 96, "board columns")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	densities := flag.String("densities", "2,10,35,100,250", "comma separated densities (parts per thousand)")
	rules := flag.String("rules", "conway,highlife,growth", "comma separated rule names or B/S notations")
	adaptive := flag.Bool("adaptive", false, "also run every density in adaptive mode")
	flag.Parse()

	scenarios, err := buildScenarios(*densities, *rules, *adaptive)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if *steps < 0 || *workers < 1 {
		log.Fatalf("parse flags: steps must be >= 0 and workers >= 1")
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps)\n", len(scenarios), *rows, *cols, *workers, *steps)

	results := make([]scenarioResult, len(scenarios))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, sc, *rows, *cols, *seed, *steps)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].final > results[j].final
	})

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tGEN\tFINAL\tPEAK\tEXTINCT\tRULE")
	for _, r := range results {
		extinct := "-"
		if r.extinct {
			extinct = strconv.FormatUint(r.extinctAt, 10)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n", r.scenario, r.generation, r.final, r.peak, extinct, r.finalRule)
	}
	tw.Flush()
}

func buildScenarios(densities, rules string, adaptive bool) ([]scenario, error) {
	var ds []int
	for _, f := range strings.Split(densities, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("density %q: %w", f, err)
		}
		ds = append(ds, d)
	}
	var rs []life.Rule
	for _, f := range strings.Split(rules, ",") {
		r, err := life.LookupRule(f)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}

	var out []scenario
	for _, d := range ds {
		for _, r := range rs {
			out = append(out, scenario{density: d, rule: r})
		}
		if adaptive {
			out = append(out, scenario{density: d, rule: life.DecayRule, adaptive: true})
		}
	}
	return out, nil
}

// runScenario simulates one scenario on its own world. Each world gets its
// own generator so results do not depend on scheduling.
func runScenario(ctx context.Context, sc scenario, rows, cols int, seed int64, steps int) (scenarioResult, error) {
	w, err := life.New(life.Config{
		Rows:     rows,
		Cols:     cols,
		Density:  sc.density,
		Rule:     sc.rule,
		Adaptive: sc.adaptive,
	}, core.NewRNG(seed))
	if err != nil {
		return scenarioResult{}, err
	}
	defer w.Release()

	res := scenarioResult{scenario: sc, peak: w.Population()}
	markExtinct := func() {
		if w.Population() == 0 && !res.extinct {
			res.extinct = true
			res.extinctAt = w.Generation()
		}
	}
	markExtinct()
	for i := 0; i < steps; i++ {
		if i%64 == 0 && ctx.Err() != nil {
			return scenarioResult{}, ctx.Err()
		}
		w.Step()
		res.peak = max(res.peak, w.Population())
		markExtinct()
	}
	res.final = w.Population()
	res.finalRule = w.Rule().Label()
	res.generation = w.Generation()
	return res, nil
}
