package almanac

import (
	"fmt"
	"sort"
)

// Entry maps every value of Source onto the value at the same offset in
// Destination.
type Entry struct {
	Source      Interval
	Destination Interval
}

// NewEntry builds an entry from the "<destination> <source> <length>" line
// order used by the almanac.
func NewEntry(destination int, source int, length int) Entry {
	return Entry{
		Source:      NewInterval(source, length),
		Destination: NewInterval(destination, length),
	}
}

func (e Entry) Delta() int {
	return e.Destination.Start - e.Source.Start
}

// AlmanacMap is one stage of the almanac, e.g. seed-to-soil. Values not
// covered by any entry map to themselves.
type AlmanacMap struct {
	Input   string
	Output  string
	Entries []Entry
}

func (a AlmanacMap) Name() string {
	return a.Input + "-to-" + a.Output
}

func (a AlmanacMap) Lookup(v int) int {
	for _, e := range a.Entries {
		if e.Source.Contains(v) {
			return v - e.Source.Start + e.Destination.Start
		}
	}
	return v
}

func (a AlmanacMap) LookupReverse(v int) int {
	for _, e := range a.Entries {
		if e.Destination.Contains(v) {
			return v - e.Destination.Start + e.Source.Start
		}
	}
	return v
}

// Validate rejects negative or mismatched intervals and overlapping
// source intervals.
func (a AlmanacMap) Validate() error {
	sources := make([]Interval, 0, len(a.Entries))
	for _, e := range a.Entries {
		switch {
		case e.Source.Start < 0 || e.Destination.Start < 0:
			return fmt.Errorf("%w: %s: negative start in %s -> %s", ErrMalformedMapping, a.Name(), e.Source, e.Destination)
		case e.Source.Len() < 0:
			return fmt.Errorf("%w: %s: negative length in %s", ErrMalformedMapping, a.Name(), e.Source)
		case e.Source.Len() != e.Destination.Len():
			return fmt.Errorf("%w: %s: %s and %s differ in length", ErrMalformedMapping, a.Name(), e.Source, e.Destination)
		case e.Source.Empty():
			continue
		}
		sources = append(sources, e.Source)
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Start < sources[j].Start
	})
	for i := 1; i < len(sources); i++ {
		if sources[i].Start < sources[i-1].Stop {
			return fmt.Errorf("%w: %s: %s overlaps %s", ErrMalformedMapping, a.Name(), sources[i-1], sources[i])
		}
	}
	return nil
}

func (a AlmanacMap) Changeovers() Changeovers {
	return FindChangeovers(a)
}

// LookupRange maps r as a whole. r must lie within a single changeover
// segment of the map, see SplitRange.
func (a AlmanacMap) LookupRange(r Interval) (Interval, error) {
	if r.Empty() {
		v := a.Lookup(r.Start)
		return Interval{Start: v, Stop: v}, nil
	}
	if inner := a.Changeovers().Within(Interval{Start: r.Start + 1, Stop: r.Stop}); len(inner) > 0 {
		return Interval{}, fmt.Errorf("%w: %s crosses %d in %s", ErrStraddlesBreakpoint, r, inner[0], a.Name())
	}
	return Interval{Start: a.Lookup(r.Start), Stop: a.Lookup(r.Stop-1) + 1}, nil
}

// SplitRange cuts r at every changeover strictly inside it, so each piece
// can be passed to LookupRange.
func (a AlmanacMap) SplitRange(r Interval) []Interval {
	return splitRange(r, a.Changeovers())
}

// LookupRanges maps every value of r and returns the image as a list of
// intervals, one per changeover segment r touches.
func (a AlmanacMap) LookupRanges(r Interval) []Interval {
	changeovers := a.Changeovers()
	pieces := splitRange(r, changeovers)
	for i, p := range pieces {
		pieces[i] = p.Shift(changeovers.Evaluate(p.Start) - p.Start)
	}
	return pieces
}

func splitRange(r Interval, changeovers Changeovers) []Interval {
	if r.Empty() {
		return nil
	}
	var pieces []Interval
	start := r.Start
	for _, b := range changeovers.Within(Interval{Start: r.Start + 1, Stop: r.Stop}) {
		pieces = append(pieces, Interval{Start: start, Stop: b})
		start = b
	}
	return append(pieces, Interval{Start: start, Stop: r.Stop})
}
