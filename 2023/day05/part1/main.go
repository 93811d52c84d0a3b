package main

import (
	_ "embed"

	"github.com/pborges/aoc2023/2023/day05/almanac"
	"github.com/pborges/aoc2023/internal/aoc"
)

//go:embed sample.txt
var sample string

func solve(input string) (int, error) {
	a, err := almanac.LoadAlmanac(input)
	if err != nil {
		return 0, err
	}
	a.Log = aoc.Debug
	return a.LowestLocation()
}

func main() {
	aoc.Main(5, sample, aoc.Part{Number: 1, Solve: solve})
}
