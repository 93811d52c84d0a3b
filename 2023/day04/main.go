package main

import (
	"bufio"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/pborges/aoc2023/internal/aoc"
)

//go:embed sample.txt
var sample string

type Card struct {
	ID      int
	Winning []int
	Yours   []int
}

func (c Card) Matches() (n int) {
	winning := make(map[int]bool, len(c.Winning))
	for _, w := range c.Winning {
		winning[w] = true
	}
	for _, y := range c.Yours {
		if winning[y] {
			n++
			delete(winning, y)
		}
	}
	return
}

func (c Card) Points() int {
	if m := c.Matches(); m > 0 {
		return 1 << (m - 1)
	}
	return 0
}

func numbers(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Fields(s) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseCard(line string) (Card, error) {
	var c Card
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("no card header in %q", line)
	}
	if _, err := fmt.Sscanf(head, "Card %d", &c.ID); err != nil {
		return Card{}, fmt.Errorf("header %q: %w", head, err)
	}
	winning, yours, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("card %d: no '|' separator", c.ID)
	}
	var err error
	if c.Winning, err = numbers(winning); err != nil {
		return Card{}, fmt.Errorf("card %d: %w", c.ID, err)
	}
	if c.Yours, err = numbers(yours); err != nil {
		return Card{}, fmt.Errorf("card %d: %w", c.ID, err)
	}
	return c, nil
}

func LoadCards(input string) ([]Card, error) {
	var cards []Card
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := parseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, scanner.Err()
}

// TotalCards counts the originals plus every copy won: each card wins one
// copy of the next Matches() cards per copy of itself held.
func TotalCards(cards []Card) (tot int) {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
		tot += copies[i]
	}
	return
}

func solveP1(input string) (int, error) {
	cards, err := LoadCards(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum, nil
}

func solveP2(input string) (int, error) {
	cards, err := LoadCards(input)
	if err != nil {
		return 0, err
	}
	return TotalCards(cards), nil
}

func main() {
	aoc.Main(4, sample,
		aoc.Part{Number: 1, Solve: solveP1},
		aoc.Part{Number: 2, Solve: solveP2},
	)
}
