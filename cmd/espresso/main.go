package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/crillab/espresso/cover"
	"github.com/crillab/espresso/exact"
	"github.com/crillab/espresso/minimize"
	"github.com/crillab/espresso/pla"
)

func main() {
	var (
		verbose  bool
		strategy string
		doExact  bool
		deadline time.Duration
		out      string
	)
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.StringVar(&strategy, "strategy", "default", "heuristic strategy: default, fast, or strong")
	flag.BoolVar(&doExact, "exact", false, "run the exact solver instead of the heuristic driver")
	flag.DurationVar(&deadline, "deadline", 0, "wall-clock deadline for the heuristic driver; 0 disables it")
	flag.StringVar(&out, "o", "", "output file; defaults to stdout")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax: %s [options] file.pla\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Args()[0]
	fmt.Printf("c minimizing %s\n", path)
	if err := run(path, out, strategy, doExact, deadline, verbose); err != nil {
		fmt.Fprintf(os.Stderr, "could not minimize %q: %v\n", path, err)
		os.Exit(1)
	}
}

func run(path, out, strategy string, doExact bool, deadline time.Duration, verbose bool) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q: %v", path, err)
	}
	defer in.Close()

	doc, err := pla.Parse(in)
	if err != nil {
		return fmt.Errorf("could not parse PLA: %v", err)
	}
	f, d, r := doc.Cubes()
	if verbose {
		fmt.Printf("c ON-set: %d cubes, DC-set: %d cubes\n", f.Len(), d.Len())
	}

	var minimized cover.Cover
	if doExact {
		minimized, err = exact.Minimize(f, d, r, exact.Options{})
	} else {
		opts := minimize.DefaultOptions()
		opts.Strategy = parseStrategy(strategy)
		opts.Verbose = verbose
		if deadline > 0 {
			opts.Deadline = time.Now().Add(deadline)
		}
		minimized, err = minimize.Heuristic(f, d, r, opts)
	}
	if err != nil {
		return err
	}
	written := pla.FromCubes(minimized, d)
	if verbose {
		fmt.Printf("c minimized to %d cubes\n", minimized.Len())
	}

	if out == "" {
		_, err = written.WriteTo(os.Stdout)
		return err
	}
	outFile, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("could not create %q: %v", out, err)
	}
	defer outFile.Close()
	_, err = written.WriteTo(outFile)
	return err
}

func parseStrategy(s string) minimize.Strategy {
	switch s {
	case "fast":
		return minimize.Fast
	case "strong":
		return minimize.Strong
	default:
		return minimize.Default
	}
}
