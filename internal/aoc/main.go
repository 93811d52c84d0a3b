// Package aoc holds what every day's binary shares: configuration, the
// puzzle input, answer submission and the command line around a solver.
package aoc

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Debug receives trace output from solvers. Main points it at stderr
// when -v is given.
var Debug io.Writer = io.Discard

type Part struct {
	Number int
	Solve  func(input string) (int, error)
}

type Options struct {
	Sample    bool
	InputFile string
	Submit    bool
	Part      int
}

type Runner struct {
	Day    int
	Sample string
	Client *Client
	Out    io.Writer
}

// Run solves the selected parts and prints one line per answer.
func (r Runner) Run(ctx context.Context, opts Options, parts ...Part) error {
	input, err := r.input(ctx, opts)
	if err != nil {
		return err
	}
	ran := false
	for _, p := range parts {
		if opts.Part != 0 && p.Number != opts.Part {
			continue
		}
		ran = true
		t0 := time.Now()
		answer, err := p.Solve(input)
		if err != nil {
			return fmt.Errorf("part %d: %w", p.Number, err)
		}
		label := fmt.Sprintf("part %d", p.Number)
		if opts.Sample {
			label += " sample"
		}
		fmt.Fprintf(r.Out, "%s: %d (took %v)\n", label, answer, time.Since(t0).Round(time.Microsecond))

		if !opts.Submit {
			continue
		}
		if opts.Sample {
			fmt.Fprintf(r.Out, "part %d: not submitting a sample answer\n", p.Number)
			continue
		}
		verdict, err := r.Client.Submit(ctx, r.Day, p.Number, answer)
		if err != nil {
			return fmt.Errorf("part %d: %w", p.Number, err)
		}
		fmt.Fprintf(r.Out, "part %d submitted: %s\n", p.Number, verdict)
	}
	if !ran {
		return fmt.Errorf("no part %d", opts.Part)
	}
	return nil
}

func (r Runner) input(ctx context.Context, opts Options) (string, error) {
	switch {
	case opts.Sample:
		if r.Sample == "" {
			return "", errors.New("no sample input")
		}
		return r.Sample, nil
	case opts.InputFile != "":
		b, err := os.ReadFile(opts.InputFile)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return r.Client.Input(ctx, r.Day)
	}
}

// Main is the entry point of a day's binary.
func Main(day int, sample string, parts ...Part) {
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("day%02d: ", day))

	var opts Options
	flag.BoolVar(&opts.Sample, "sample", false, "solve the embedded sample instead of the puzzle input")
	flag.StringVar(&opts.InputFile, "input", "", "read the puzzle input from this file")
	flag.BoolVar(&opts.Submit, "submit", false, "submit the answers")
	flag.IntVar(&opts.Part, "part", 0, "part to run; 0 runs every part")
	verbose := flag.Bool("v", false, "trace to stderr")
	flag.Parse()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	client := NewClient(cfg)
	if *verbose {
		Debug = os.Stderr
		client.Log = os.Stderr
	}

	r := Runner{Day: day, Sample: sample, Client: client, Out: os.Stdout}
	if err := r.Run(context.Background(), opts, parts...); err != nil {
		log.Fatal(err)
	}
}
