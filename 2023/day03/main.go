package main

import (
	"bufio"
	_ "embed"
	"strings"

	"github.com/pborges/aoc2023/internal/aoc"
)

//go:embed sample.txt
var sample string

type Pt struct {
	Row int
	Col int
}

type Number struct {
	Value int
	At    Pt
	Len   int
}

type Schematic []string

func LoadSchematic(input string) (s Schematic, err error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			s = append(s, line)
		}
	}
	return s, scanner.Err()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSymbol(b byte) bool {
	return b != '.' && !isDigit(b)
}

// at returns '.' outside of the schematic.
func (s Schematic) at(p Pt) byte {
	if p.Row < 0 || p.Row >= len(s) || p.Col < 0 || p.Col >= len(s[p.Row]) {
		return '.'
	}
	return s[p.Row][p.Col]
}

func (s Schematic) Numbers() (out []Number) {
	for row, line := range s {
		for col := 0; col < len(line); col++ {
			if !isDigit(line[col]) {
				continue
			}
			n := Number{At: Pt{Row: row, Col: col}}
			for ; col < len(line) && isDigit(line[col]); col++ {
				n.Value = n.Value*10 + int(line[col]-'0')
				n.Len++
			}
			out = append(out, n)
		}
	}
	return
}

// Around lists the symbols touching n, diagonals included.
func (s Schematic) Around(n Number) (out []Pt) {
	for row := n.At.Row - 1; row <= n.At.Row+1; row++ {
		for col := n.At.Col - 1; col <= n.At.Col+n.Len; col++ {
			p := Pt{Row: row, Col: col}
			if isSymbol(s.at(p)) {
				out = append(out, p)
			}
		}
	}
	return
}

func solveP1(input string) (int, error) {
	s, err := LoadSchematic(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, n := range s.Numbers() {
		if len(s.Around(n)) > 0 {
			sum += n.Value
		}
	}
	return sum, nil
}

func solveP2(input string) (int, error) {
	s, err := LoadSchematic(input)
	if err != nil {
		return 0, err
	}
	gears := map[Pt][]int{}
	for _, n := range s.Numbers() {
		for _, p := range s.Around(n) {
			if s.at(p) == '*' {
				gears[p] = append(gears[p], n.Value)
			}
		}
	}
	sum := 0
	for _, parts := range gears {
		if len(parts) == 2 {
			sum += parts[0] * parts[1]
		}
	}
	return sum, nil
}

func main() {
	aoc.Main(3, sample,
		aoc.Part{Number: 1, Solve: solveP1},
		aoc.Part{Number: 2, Solve: solveP2},
	)
}
