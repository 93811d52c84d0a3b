package main

import (
	"bufio"
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pborges/aoc2023/internal/aoc"
)

//go:embed sample.txt
var sample string

type Race struct {
	Time   int
	Record int
}

func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// WaysToWin counts the hold times h with h*(Time-h) > Record. The
// distance is symmetric around Time/2, so only the lowest winning hold
// needs finding.
func (r Race) WaysToWin() int {
	disc := r.Time*r.Time - 4*r.Record
	if disc < 0 {
		return 0
	}
	lo := (r.Time - isqrt(disc)) / 2
	for lo > 0 && (lo-1)*(r.Time-lo+1) > r.Record {
		lo--
	}
	for lo <= r.Time/2 && lo*(r.Time-lo) <= r.Record {
		lo++
	}
	hi := r.Time - lo
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func readLines(input string) (times string, distances string, err error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "Time:"); ok {
			times = rest
		} else if rest, ok := strings.CutPrefix(line, "Distance:"); ok {
			distances = rest
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if times == "" || distances == "" {
		err = fmt.Errorf("need a Time and a Distance line")
	}
	return
}

func LoadRaces(input string) ([]Race, error) {
	times, distances, err := readLines(input)
	if err != nil {
		return nil, err
	}
	t, d := strings.Fields(times), strings.Fields(distances)
	if len(t) != len(d) {
		return nil, fmt.Errorf("%d times for %d distances", len(t), len(d))
	}
	races := make([]Race, len(t))
	for i := range t {
		if races[i].Time, err = strconv.Atoi(t[i]); err != nil {
			return nil, err
		}
		if races[i].Record, err = strconv.Atoi(d[i]); err != nil {
			return nil, err
		}
	}
	return races, nil
}

// LoadKernedRace reads both lines as one number each, ignoring the spaces.
func LoadKernedRace(input string) (r Race, err error) {
	times, distances, err := readLines(input)
	if err != nil {
		return
	}
	if r.Time, err = strconv.Atoi(strings.Join(strings.Fields(times), "")); err != nil {
		return
	}
	r.Record, err = strconv.Atoi(strings.Join(strings.Fields(distances), ""))
	return
}

func solveP1(input string) (int, error) {
	races, err := LoadRaces(input)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.WaysToWin()
	}
	return product, nil
}

func solveP2(input string) (int, error) {
	r, err := LoadKernedRace(input)
	if err != nil {
		return 0, err
	}
	return r.WaysToWin(), nil
}

func main() {
	aoc.Main(6, sample,
		aoc.Part{Number: 1, Solve: solveP1},
		aoc.Part{Number: 2, Solve: solveP2},
	)
}
