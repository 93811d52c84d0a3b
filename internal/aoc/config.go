package aoc

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultYear     = 2023
	DefaultCacheDir = ".aoc"
	DefaultBaseURL  = "https://adventofcode.com"
)

type Config struct {
	Session  string
	Year     int
	CacheDir string
	BaseURL  string
}

// LoadConfig reads the environment after loading the given dotenv files,
// ".env" when none are given. Missing files are not an error and variables
// already set win over the files.
func LoadConfig(files ...string) (Config, error) {
	for _, f := range defaultFiles(files) {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("aoc: loading %s: %w", f, err)
		}
	}

	cfg := Config{
		Session:  strings.TrimSpace(os.Getenv("AOC_SESSION")),
		Year:     DefaultYear,
		CacheDir: firstNonEmpty(strings.TrimSpace(os.Getenv("AOC_CACHE_DIR")), DefaultCacheDir),
		BaseURL:  strings.TrimSuffix(firstNonEmpty(strings.TrimSpace(os.Getenv("AOC_BASE_URL")), DefaultBaseURL), "/"),
	}
	if year := strings.TrimSpace(os.Getenv("AOC_YEAR")); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return Config{}, fmt.Errorf("aoc: AOC_YEAR %q: %w", year, err)
		}
		cfg.Year = y
	}
	return cfg, nil
}

func defaultFiles(files []string) []string {
	if len(files) == 0 {
		return []string{".env"}
	}
	return files
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
