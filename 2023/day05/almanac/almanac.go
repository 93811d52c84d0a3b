// Package almanac answers the seed-to-location questions of the 2023 day 5
// puzzle, both by following single seeds through every map and by
// collapsing the whole chain into one table of changeovers.
package almanac

import (
	"fmt"
	"io"
	"sync"
	"time"
)

type Almanac struct {
	Seeds []int
	Maps  []AlmanacMap
	Log   io.Writer
}

func (a Almanac) log() io.Writer {
	if a.Log == nil {
		return io.Discard
	}
	return a.Log
}

// Validate checks the seeds, every map and that each map reads the
// category the previous one writes.
func (a Almanac) Validate() error {
	for i, seed := range a.Seeds {
		if seed < 0 {
			return fmt.Errorf("%w: %d at position %d", ErrNegativeSeed, seed, i)
		}
	}
	for i, m := range a.Maps {
		if err := m.Validate(); err != nil {
			return err
		}
		if i > 0 && a.Maps[i-1].Output != m.Input {
			return fmt.Errorf("%w: %s follows %s", ErrBrokenChain, m.Name(), a.Maps[i-1].Name())
		}
	}
	return nil
}

// SeedRanges reads the seeds line as start/size pairs.
func (a Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d numbers", ErrOddSeedRanges, len(a.Seeds))
	}
	ranges := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ranges = append(ranges, NewInterval(a.Seeds[i], a.Seeds[i+1]))
	}
	return ranges, nil
}

func (a Almanac) TotalSeeds(ranges []Interval) (tot int) {
	for _, r := range ranges {
		tot = tot + r.Len()
	}
	return tot
}

func (a Almanac) Lookup(seed int) (location int) {
	location = seed
	fmt.Fprintf(a.log(), "seed: %d", seed)
	for _, m := range a.Maps {
		location = m.Lookup(location)
		fmt.Fprintf(a.log(), " %s: %d", m.Output, location)
	}
	fmt.Fprintln(a.log())
	return
}

// LowestLocation follows every seed through the maps one by one.
func (a Almanac) LowestLocation() (int, error) {
	lowest, found := 0, false
	for _, seed := range a.Seeds {
		location := a.Lookup(seed)
		if !found || location < lowest {
			lowest, found = location, true
		}
	}
	if !found {
		return 0, ErrNoSeeds
	}
	return lowest, nil
}

// LowestLocationByRange tries every seed in [start, end). Only useful to
// check the other strategies on small ranges.
func (a Almanac) LowestLocationByRange(start int, end int) (int, error) {
	lowest, found := 0, false
	for seed := start; seed < end; seed++ {
		location := a.Lookup(seed)
		if !found || location < lowest {
			lowest, found = location, true
		}
	}
	if !found {
		return 0, ErrNoSeeds
	}
	return lowest, nil
}

// Changeovers composes the changeovers of every map into a single
// seed-to-location table.
func (a Almanac) Changeovers() (Changeovers, error) {
	tables := make([]Changeovers, len(a.Maps))
	for i, m := range a.Maps {
		tables[i] = m.Changeovers()
		fmt.Fprintf(a.log(), "%s: %s\n", m.Name(), tables[i])
	}
	composed, err := ComposeAll(tables...)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.log(), "composed %d maps into %d changeovers: %s\n", len(tables), len(composed), composed)
	return composed, nil
}

// LowestLocationInRanges evaluates the composed table at the start of
// each range and at every changeover inside it. The offset is constant
// between changeovers, so the minimum of a segment sits at its left edge.
func (a Almanac) LowestLocationInRanges(ranges []Interval) (int, error) {
	composed, err := a.Changeovers()
	if err != nil {
		return 0, err
	}
	lowest, found := 0, false
	for _, r := range ranges {
		if r.Empty() {
			continue
		}
		res := lowestInRange(composed, r)
		fmt.Fprintf(a.log(), "seed range %s = %d\n", r, res)
		if !found || res < lowest {
			lowest, found = res, true
		}
	}
	if !found {
		return 0, ErrNoSeeds
	}
	return lowest, nil
}

// LowestLocationThreaded is LowestLocationInRanges with the ranges spread
// over n workers sharing the composed table.
func (a Almanac) LowestLocationThreaded(ranges []Interval, n int) (int, error) {
	composed, err := a.Changeovers()
	if err != nil {
		return 0, err
	}
	if n < 1 {
		n = 1
	}

	type result struct {
		worker   int
		r        Interval
		location int
		elapsed  time.Duration
	}
	inputCh := make(chan Interval)
	outputCh := make(chan result)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(workerIdx int) {
			defer wg.Done()
			for r := range inputCh {
				start := time.Now()
				res := lowestInRange(composed, r)
				outputCh <- result{worker: workerIdx, r: r, location: res, elapsed: time.Since(start)}
			}
		}(i)
	}

	go func() {
		for _, r := range ranges {
			if !r.Empty() {
				inputCh <- r
			}
		}
		// All work dispatched, close input channel
		close(inputCh)
		wg.Wait()
		close(outputCh)
	}()

	lowest, found := 0, false
	for res := range outputCh {
		fmt.Fprintf(a.log(), "[worker: %d] seed range %s = %d %s\n", res.worker, res.r, res.location, res.elapsed)
		if !found || res.location < lowest {
			lowest, found = res.location, true
		}
	}
	if !found {
		return 0, ErrNoSeeds
	}
	return lowest, nil
}

func lowestInRange(composed Changeovers, r Interval) int {
	lowest := composed.Evaluate(r.Start)
	for _, b := range composed.Within(r) {
		if location := composed.Evaluate(b); location < lowest {
			lowest = location
		}
	}
	return lowest
}

// LocationRanges pushes a seed range through the maps piece by piece and
// returns the location intervals it lands on.
func (a Almanac) LocationRanges(r Interval) []Interval {
	pieces := []Interval{r}
	for _, m := range a.Maps {
		var next []Interval
		for _, p := range pieces {
			next = append(next, m.LookupRanges(p)...)
		}
		pieces = next
	}
	return pieces
}
