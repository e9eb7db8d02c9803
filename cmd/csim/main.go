// Package main provides the csim command, a trace-driven cache simulator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/RyanROCKET-YYH/Cache-lab/cache"
	"github.com/RyanROCKET-YYH/Cache-lab/runner"
	"github.com/RyanROCKET-YYH/Cache-lab/trace"
)

var (
	setBits   = flag.Uint64("s", 0, "Number of set index bits (there are 2**s sets)")
	blockBits = flag.Uint64("b", 0, "Number of block bits (there are 2**b bytes per block)")
	assoc     = flag.Uint64("E", 0, "Number of lines per set (associativity)")
	tracePath = flag.String("t", "", "File name of the memory trace to process")
	verbose   = flag.Bool("v", false, "Verbose mode: report effects of each memory operation")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	seen := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if !seen["s"] || !seen["b"] || !seen["E"] || !seen["t"] {
		fmt.Fprintln(os.Stderr, "Mandatory arguments missing or zero.")
		usage()
		fmt.Fprintln(os.Stderr,
			"\nThe -s, -b, -E, and -t options must be supplied for all simulations.")
		os.Exit(1)
	}

	config := cache.Config{
		SetBits:       *setBits,
		BlockBits:     *blockBits,
		Associativity: *assoc,
	}

	if err := simulate(config, *tracePath, *verbose, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "csim: %v\n", err)
		os.Exit(1)
	}
}

// simulate runs one full simulation and writes the summary line to out.
// In verbose mode the per-access echo goes to out as well. On any error
// no summary is written and the partial statistics are discarded.
func simulate(config cache.Config, tracePath string, verbose bool, out io.Writer) error {
	c, err := cache.New(config)
	if err != nil {
		return err
	}

	tf, err := trace.Open(tracePath)
	if err != nil {
		return err
	}
	defer func() { _ = tf.Close() }()

	var opts []runner.Option
	if verbose {
		opts = append(opts, runner.WithVerbose(out))
	}

	stats, err := runner.New(c, opts...).Run(tf)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, formatSummary(stats))
	return nil
}

// formatSummary renders the final counters in the reference summary format.
func formatSummary(stats cache.Statistics) string {
	return fmt.Sprintf("hits:%d misses:%d evictions:%d dirty_bytes:%d dirty_evictions:%d",
		stats.Hits, stats.Misses, stats.Evictions, stats.DirtyBytes, stats.DirtyEvictions)
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: csim [-v] -s <s> -E <E> -b <b> -t <trace>")
	fmt.Fprintln(w, "       csim -h")
	fmt.Fprintln(w, "     -h          Print this help message and exit")
	fmt.Fprintln(w, "     -v          Verbose mode: report effects of each memory operation")
	fmt.Fprintln(w, "     -s <s>      Number of set index bits (there are 2**s sets)")
	fmt.Fprintln(w, "     -b <b>      Number of block bits (there are 2**b blocks)")
	fmt.Fprintln(w, "     -E <E>      Number of lines per set (associativity)")
	fmt.Fprintln(w, "     -t <trace>  File name of the memory trace to process")
}
