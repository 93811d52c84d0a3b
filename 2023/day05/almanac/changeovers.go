package almanac

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Changeover starts a segment: every value from At up to the next
// changeover maps to value+Delta.
type Changeover struct {
	At    int
	Delta int
}

// Changeovers is a piecewise offset function stored as its breakpoints in
// ascending order. A valid table starts at 0 and the last segment extends
// to infinity.
type Changeovers []Changeover

// Identity is the table that maps every value to itself.
func Identity() Changeovers {
	return Changeovers{{At: 0, Delta: 0}}
}

// NewChangeovers builds a table from a breakpoint -> delta map without
// merging equal neighbours, see Dedup.
func NewChangeovers(deltas map[int]int) (Changeovers, error) {
	c := make(Changeovers, 0, len(deltas))
	for at, delta := range deltas {
		c = append(c, Changeover{At: at, Delta: delta})
	}
	sort.Slice(c, func(i, j int) bool {
		return c[i].At < c[j].At
	})
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// FindChangeovers summarizes a map as the points where its offset can
// change: the start and stop of every source interval.
func FindChangeovers(m AlmanacMap) Changeovers {
	deltas := map[int]int{0: 0}
	for _, e := range m.Entries {
		for _, x := range []int{e.Source.Start, e.Source.Stop} {
			if x >= 0 {
				deltas[x] = m.Lookup(x) - x
			}
		}
	}
	c := make(Changeovers, 0, len(deltas))
	for at, delta := range deltas {
		c = append(c, Changeover{At: at, Delta: delta})
	}
	sort.Slice(c, func(i, j int) bool {
		return c[i].At < c[j].At
	})
	return c.Dedup()
}

func (c Changeovers) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidChangeovers)
	}
	if c[0].At != 0 {
		return fmt.Errorf("%w: missing changeover at 0 in %s", ErrInvalidChangeovers, c)
	}
	for i := 1; i < len(c); i++ {
		if c[i].At <= c[i-1].At {
			return fmt.Errorf("%w: %d follows %d", ErrInvalidChangeovers, c[i].At, c[i-1].At)
		}
	}
	return nil
}

// Dedup drops every changeover whose delta repeats the one before it.
func (c Changeovers) Dedup() Changeovers {
	out := make(Changeovers, 0, len(c))
	for _, co := range c {
		if len(out) > 0 && out[len(out)-1].Delta == co.Delta {
			continue
		}
		out = append(out, co)
	}
	return out
}

// segment returns the index of the changeover governing v, -1 below 0.
func (c Changeovers) segment(v int) int {
	return sort.Search(len(c), func(i int) bool {
		return c[i].At > v
	}) - 1
}

// Evaluate applies the table to v. It assumes a valid table: values
// below the first changeover map to themselves, so a table missing its
// changeover at 0 silently leaves [0, c[0].At) unmoved.
func (c Changeovers) Evaluate(v int) int {
	i := c.segment(v)
	if i < 0 {
		return v
	}
	return v + c[i].Delta
}

// EvaluateReverse returns the value that Evaluate maps onto v.
func (c Changeovers) EvaluateReverse(v int) (int, error) {
	inverse, err := c.Invert()
	if err != nil {
		return 0, err
	}
	return inverse.Evaluate(v), nil
}

// Preimages returns every value that Evaluate maps onto v, in ascending
// order. A one-to-one table yields at most one.
func (c Changeovers) Preimages(v int) []int {
	var out []int
	for i, co := range c {
		source := v - co.Delta
		if source < co.At {
			continue
		}
		if i+1 < len(c) && source >= c[i+1].At {
			continue
		}
		out = append(out, source)
	}
	return out
}

// Within returns the breakpoints b with r.Start <= b < r.Stop.
func (c Changeovers) Within(r Interval) []int {
	lo := sort.Search(len(c), func(i int) bool {
		return c[i].At >= r.Start
	})
	var out []int
	for i := lo; i < len(c) && c[i].At < r.Stop; i++ {
		out = append(out, c[i].At)
	}
	return out
}

// Mappings lists the bounded segments that move their values as map
// entries. Identity segments and the open-ended last segment are left
// out.
func (c Changeovers) Mappings() []Entry {
	var out []Entry
	for i := 0; i+1 < len(c); i++ {
		if c[i].Delta == 0 {
			continue
		}
		source := Interval{Start: c[i].At, Stop: c[i+1].At}
		out = append(out, Entry{Source: source, Destination: source.Shift(c[i].Delta)})
	}
	return out
}

// Invert returns the table of the inverse function. The table must be a
// permutation of the non-negative integers that is the identity from its
// last breakpoint on.
func (c Changeovers) Invert() (Changeovers, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if last := c[len(c)-1]; last.Delta != 0 {
		return nil, fmt.Errorf("%w: open-ended segment at %d has delta %d", ErrNotInvertible, last.At, last.Delta)
	}
	mappings := c.Mappings()
	swapped := AlmanacMap{Input: "destination", Output: "source", Entries: make([]Entry, len(mappings))}
	sources := make([]Interval, len(mappings))
	destinations := make([]Interval, len(mappings))
	for i, e := range mappings {
		swapped.Entries[i] = Entry{Source: e.Destination, Destination: e.Source}
		sources[i] = e.Source
		destinations[i] = e.Destination
	}
	if err := swapped.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotInvertible, err)
	}
	if !slices.Equal(cover(sources), cover(destinations)) {
		return nil, fmt.Errorf("%w: %s moves values onto unmoved ones", ErrNotInvertible, c)
	}
	return FindChangeovers(swapped), nil
}

// cover merges touching intervals into the smallest sorted set covering
// the same values.
func cover(intervals []Interval) []Interval {
	sorted := slices.Clone(intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	var out []Interval
	for _, iv := range sorted {
		if n := len(out); n > 0 && iv.Start <= out[n-1].Stop {
			out[n-1].Stop = max(out[n-1].Stop, iv.Stop)
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Compose returns the table for applying first and then second. The
// result can only change offset at a breakpoint of first or at a value
// that first maps onto a breakpoint of second.
func Compose(first Changeovers, second Changeovers) (Changeovers, error) {
	if err := first.Validate(); err != nil {
		return nil, fmt.Errorf("first: %w", err)
	}
	if err := second.Validate(); err != nil {
		return nil, fmt.Errorf("second: %w", err)
	}
	deltas := make(map[int]int, len(first)+len(second))
	record := func(source int) {
		deltas[source] = second.Evaluate(first.Evaluate(source)) - source
	}
	for _, co := range first {
		record(co.At)
	}
	for _, co := range second {
		for _, source := range first.Preimages(co.At) {
			record(source)
		}
	}
	composed, err := NewChangeovers(deltas)
	if err != nil {
		return nil, err
	}
	return composed.Dedup(), nil
}

// ComposeAll folds Compose over tables from left to right.
func ComposeAll(tables ...Changeovers) (Changeovers, error) {
	composed := Identity()
	for i, t := range tables {
		var err error
		if composed, err = Compose(composed, t); err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}
	}
	return composed, nil
}

func (c Changeovers) Map() map[int]int {
	out := make(map[int]int, len(c))
	for _, co := range c {
		out[co.At] = co.Delta
	}
	return out
}

func (c Changeovers) String() string {
	parts := make([]string, len(c))
	for i, co := range c {
		parts[i] = fmt.Sprintf("%d:%d", co.At, co.Delta)
	}
	return "{" + strings.Join(parts, " ") + "}"
}
