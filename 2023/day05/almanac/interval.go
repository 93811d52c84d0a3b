package almanac

import "fmt"

// Interval is the half-open range [Start, Stop).
type Interval struct {
	Start int
	Stop  int
}

// NewInterval builds the interval covering size values from start, the
// way seed ranges and map lines declare them.
func NewInterval(start int, size int) Interval {
	return Interval{Start: start, Stop: start + size}
}

func (i Interval) Len() int {
	return i.Stop - i.Start
}

func (i Interval) Empty() bool {
	return i.Stop <= i.Start
}

func (i Interval) Contains(v int) bool {
	return v >= i.Start && v < i.Stop
}

func (i Interval) Shift(delta int) Interval {
	return Interval{Start: i.Start + delta, Stop: i.Stop + delta}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.Stop)
}
