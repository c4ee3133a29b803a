// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tipcharts draws a bar chart, a scatterplot and a correlation matrix
// of a restaurant tips dataset.
//
// Usage:
//
//	tipcharts render [flags] <tips.csv>
//	tipcharts table [flags] <tips.csv>
//	tipcharts serve [flags] <tips.csv>
//
// The input is a CSV file with a header row naming at least the day,
// total_bill, tip and size columns. "-" reads standard input.
//
// render writes one chart as SVG or PNG. table prints the parsed
// dataset. serve starts an HTTP server that renders charts on
// request; the X and Y attributes and each chart's container size
// are chosen with query parameters.
//
// Flags in $TIPCHARTS_FLAGS are parsed before the command line flags
// of every subcommand, so the command line overrides them.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"
	"github.com/tipviz/tipcharts/chart"
	"github.com/tipviz/tipcharts/corr"
	"github.com/tipviz/tipcharts/dataset"
	"github.com/tipviz/tipcharts/internal/logging"
)

type subcommand struct {
	name, desc string
	run        func(args []string) error
	flags      *pflag.FlagSet
}

var subcommands = make(map[string]*subcommand)

func registerSubcommand(name, desc string, run func(args []string) error, flags *pflag.FlagSet) {
	subcommands[name] = &subcommand{name, desc, run, flags}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] <tips.csv>\n\n", os.Args[0])
	var names []string
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", name, subcommands[name].desc)
	}
	fmt.Fprintf(os.Stderr, "\nRun %s <subcommand> --help for subcommand flags.\n", os.Args[0])
}

func main() {
	log.SetPrefix("tipcharts: ")
	log.SetFlags(0)

	args, err := withEnvFlags(os.Getenv("TIPCHARTS_FLAGS"), os.Args[1:])
	if err != nil {
		log.Fatalf("parsing $TIPCHARTS_FLAGS: %v", err)
	}
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	sc, ok := subcommands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		usage()
		os.Exit(2)
	}
	sc.flags.Parse(args[1:])
	if common.verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := sc.run(sc.flags.Args()); err != nil {
		log.Fatal(err)
	}
}

// withEnvFlags inserts the shell-quoted flags in env after the
// subcommand name in args.
func withEnvFlags(env string, args []string) ([]string, error) {
	extra, err := shellquote.Split(env)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 || len(args) == 0 {
		return args, nil
	}
	out := make([]string, 0, len(args)+len(extra))
	out = append(out, args[0])
	out = append(out, extra...)
	return append(out, args[1:]...), nil
}

// common holds flags shared by every subcommand.
var common struct {
	verbose bool
	x, y    string
	pearson bool
}

func addCommonFlags(f *pflag.FlagSet, bindings bool) {
	f.BoolVarP(&common.verbose, "verbose", "v", false, "log debug messages to stderr")
	if bindings {
		f.StringVarP(&common.x, "x", "x", chart.DefaultBinding.X, "X `attribute`")
		f.StringVarP(&common.y, "y", "y", chart.DefaultBinding.Y, "Y `attribute`")
		f.BoolVar(&common.pearson, "pearson", false, "use Pearson correlation in the matrix instead of the mean product")
	}
}

func newFlagSet(name string, args string) *pflag.FlagSet {
	f := pflag.NewFlagSet(os.Args[0]+" "+name, pflag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [flags] %s\n", os.Args[0], name, args)
		f.PrintDefaults()
	}
	return f
}

func dashboardOptions() chart.DashboardOptions {
	var opts chart.DashboardOptions
	if common.pearson {
		opts.Matrix.Method = corr.Pearson
	}
	return opts
}

func binding() chart.Binding {
	return chart.Binding{X: common.x, Y: common.y}
}

// oneArg returns the single positional argument in args.
func oneArg(f *pflag.FlagSet, args []string) string {
	if len(args) != 1 {
		f.Usage()
		os.Exit(2)
	}
	return args[0]
}

// loadDataset reads a tips CSV file. "-" is standard input.
func loadDataset(path string) (*dataset.Dataset, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	ds, err := dataset.ReadCSV(r, dataset.Tips)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
