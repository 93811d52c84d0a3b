package main

import (
	_ "embed"
	"flag"
	"fmt"

	"github.com/pborges/aoc2023/2023/day05/almanac"
	"github.com/pborges/aoc2023/internal/aoc"
)

//go:embed sample.txt
var sample string

var workers = flag.Int("workers", 1, "evaluate seed ranges on this many goroutines")

func solve(input string) (int, error) {
	a, err := almanac.LoadAlmanac(input)
	if err != nil {
		return 0, err
	}
	a.Log = aoc.Debug
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(a.Log, "Seed ranges:", len(ranges))
	fmt.Fprintln(a.Log, "Total seeds:", a.TotalSeeds(ranges))
	if *workers > 1 {
		return a.LowestLocationThreaded(ranges, *workers)
	}
	return a.LowestLocationInRanges(ranges)
}

func main() {
	aoc.Main(5, sample, aoc.Part{Number: 2, Solve: solve})
}
