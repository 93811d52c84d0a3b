package main

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"

	"github.com/pborges/aoc2023/internal/aoc"
)

//go:embed sample.txt
var sample string

type Cubes struct {
	Red   int
	Green int
	Blue  int
}

func (c Cubes) Within(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

type Game struct {
	ID    int
	Draws []Cubes
}

func (g Game) Possible(bag Cubes) bool {
	for _, d := range g.Draws {
		if !d.Within(bag) {
			return false
		}
	}
	return true
}

// MinimalSet is the smallest bag every draw of the game fits in.
func (g Game) MinimalSet() (set Cubes) {
	for _, d := range g.Draws {
		set.Red = max(set.Red, d.Red)
		set.Green = max(set.Green, d.Green)
		set.Blue = max(set.Blue, d.Blue)
	}
	return
}

func parseDraw(s string) (Cubes, error) {
	var c Cubes
	for _, item := range strings.Split(s, ",") {
		var count int
		var color string
		if _, err := fmt.Sscanf(strings.TrimSpace(item), "%d %s", &count, &color); err != nil {
			return Cubes{}, fmt.Errorf("draw %q: %w", item, err)
		}
		switch color {
		case "red":
			c.Red += count
		case "green":
			c.Green += count
		case "blue":
			c.Blue += count
		default:
			return Cubes{}, fmt.Errorf("draw %q: unknown color %q", item, color)
		}
	}
	return c, nil
}

func parseGame(line string) (Game, error) {
	var g Game
	head, draws, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("no game header in %q", line)
	}
	if _, err := fmt.Sscanf(head, "Game %d", &g.ID); err != nil {
		return Game{}, fmt.Errorf("header %q: %w", head, err)
	}
	for _, d := range strings.Split(draws, ";") {
		draw, err := parseDraw(d)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", g.ID, err)
		}
		g.Draws = append(g.Draws, draw)
	}
	return g, nil
}

func LoadGames(input string) ([]Game, error) {
	var games []Game
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, scanner.Err()
}

var bag = Cubes{Red: 12, Green: 13, Blue: 14}

func solveP1(input string) (int, error) {
	games, err := LoadGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.Possible(bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

func solveP2(input string) (int, error) {
	games, err := LoadGames(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.MinimalSet().Power()
	}
	return sum, nil
}

func main() {
	aoc.Main(2, sample,
		aoc.Part{Number: 1, Solve: solveP1},
		aoc.Part{Number: 2, Solve: solveP2},
	)
}
