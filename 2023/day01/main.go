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

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func digits(line string) (out []int) {
	for i := 0; i < len(line); i++ {
		if line[i] >= '0' && line[i] <= '9' {
			out = append(out, int(line[i]-'0'))
		}
	}
	return
}

// spelledDigits also reads spelled out digits. Words may share letters,
// "eightwo" reads as 8, 2.
func spelledDigits(line string) (out []int) {
	for i := 0; i < len(line); i++ {
		if line[i] >= '0' && line[i] <= '9' {
			out = append(out, int(line[i]-'0'))
			continue
		}
		for n, w := range words {
			if strings.HasPrefix(line[i:], w) {
				out = append(out, n+1)
				break
			}
		}
	}
	return
}

func calibrationSum(input string, extract func(string) []int) (int, error) {
	sum := 0
	scanner := bufio.NewScanner(strings.NewReader(input))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		d := extract(line)
		if len(d) == 0 {
			return 0, fmt.Errorf("line %d: no digits in %q", lineNo, line)
		}
		sum += d[0]*10 + d[len(d)-1]
	}
	return sum, scanner.Err()
}

func solveP1(input string) (int, error) {
	return calibrationSum(input, digits)
}

func solveP2(input string) (int, error) {
	return calibrationSum(input, spelledDigits)
}

func main() {
	aoc.Main(1, sample,
		aoc.Part{Number: 1, Solve: solveP1},
		aoc.Part{Number: 2, Solve: solveP2},
	)
}
