package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadAlmanac reads the seeds line and the "<from>-to-<to> map:" blocks
// that follow it, then validates the result.
func LoadAlmanac(input string) (Almanac, error) {
	almanac := Almanac{Log: io.Discard}
	scanner := bufio.NewScanner(strings.NewReader(input))
	current := -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			current = -1
		case strings.HasPrefix(line, "seeds:"):
			for _, seedStr := range strings.Fields(strings.TrimPrefix(line, "seeds:")) {
				seed, err := strconv.Atoi(seedStr)
				if err != nil {
					return Almanac{}, fmt.Errorf("%w: line %d: seed %q: %w", ErrParse, lineNo, seedStr, err)
				}
				almanac.Seeds = append(almanac.Seeds, seed)
			}
		case strings.HasSuffix(line, " map:"):
			from, to, ok := strings.Cut(strings.TrimSuffix(line, " map:"), "-to-")
			if !ok {
				return Almanac{}, fmt.Errorf("%w: line %d: bad map header %q", ErrParse, lineNo, line)
			}
			almanac.Maps = append(almanac.Maps, AlmanacMap{
				Input:  from,
				Output: to,
			})
			current = len(almanac.Maps) - 1
		default:
			if current < 0 {
				return Almanac{}, fmt.Errorf("%w: line %d: %q outside of a map", ErrParse, lineNo, line)
			}
			if n := len(strings.Fields(line)); n != 3 {
				return Almanac{}, fmt.Errorf("%w: line %d: %q: want 3 numbers, got %d", ErrParse, lineNo, line, n)
			}
			var destination, source, length int
			if _, err := fmt.Sscanf(line, "%d %d %d", &destination, &source, &length); err != nil {
				return Almanac{}, fmt.Errorf("%w: line %d: %q: %w", ErrParse, lineNo, line, err)
			}
			almanac.Maps[current].Entries = append(almanac.Maps[current].Entries, NewEntry(destination, source, length))
		}
	}
	if err := scanner.Err(); err != nil {
		return Almanac{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := almanac.Validate(); err != nil {
		return Almanac{}, err
	}
	return almanac, nil
}
