// Command cave-sweep runs many independent cave generations in parallel
// and ranks parameter combinations by the shape of the resulting caves.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"mad-shapes/internal/sims/caves"
	"mad-shapes/pkg/automata"
)

type paramSet struct {
	fill float64
	rule string
	seed int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("fill=%.2f rule=%s seed=%d", p.fill, p.rule, p.seed)
}

type scenarioResult struct {
	params     paramSet
	steps      int
	converged  bool
	components int
	largest    int
	holes      int
	coverage   float64
}

func main() {
	width := flag.Int("w", 96, "grid width")
	height := flag.Int("h", 64, "grid height")
	seeds := flag.Int("seeds", 4, "seeds per parameter combination")
	maxSteps := flag.Int("max-steps", 200, "step limit per run")
	top := flag.Int("top", 10, "number of results to print")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	baseCfg := caves.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.MaxSteps = *maxSteps

	fillOptions := []float64{0.40, 0.45, 0.50, 0.55}
	ruleOptions := []string{automata.Caves, "B5678/S45678", "B678/S2345678", "B5678/S5678"}
	for _, r := range ruleOptions {
		if _, err := automata.ParseRule(r, nil); err != nil {
			log.Fatalf("rule %q: %v", r, err)
		}
	}

	var sets []paramSet
	for _, fill := range fillOptions {
		for _, rule := range ruleOptions {
			for seed := 1; seed <= *seeds; seed++ {
				sets = append(sets, paramSet{fill: fill, rule: rule, seed: int64(seed)})
			}
		}
	}

	fmt.Printf("Sweeping %d runs on %dx%d (%d workers, %d max steps)\n", len(sets), *width, *height, *workers, *maxSteps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	unsettled := 0
	for res := range results {
		all = append(all, res)
		if !res.converged {
			unsettled++
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].coverage != all[j].coverage {
			return all[i].coverage > all[j].coverage
		}
		return all[i].params.String() < all[j].params.String()
	})
	elapsed := time.Since(start)

	fmt.Printf("\n%d runs did not settle within %d steps\n", unsettled, *maxSteps)
	fmt.Printf("Top %d by largest-cave coverage (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) coverage=%.3f largest=%d caves=%d holes=%d steps=%d converged=%t %s\n",
			i+1, res.coverage, res.largest, res.components, res.holes, res.steps, res.converged, res.params)
	}
}

func runScenario(base caves.Config, params paramSet) scenarioResult {
	cfg := base
	cfg.Fill = params.fill
	cfg.Rule = params.rule

	c := caves.NewWithConfig(cfg)
	c.Reset(params.seed)
	c.Settle()

	res := scenarioResult{
		params:     params,
		steps:      c.Generation(),
		converged:  c.Converged(),
		components: c.Shapes().Len(),
		holes:      c.Holes().Len(),
	}
	if largest := c.Shapes().Largest(); largest != nil {
		res.largest = largest.Size()
	}
	if area := cfg.Width * cfg.Height; area > 0 {
		res.coverage = float64(res.largest) / float64(area)
	}
	return res
}
