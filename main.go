// Package main provides the entry point for Cache-lab.
// Cache-lab replays memory-access traces against a set-associative
// LRU cache model and reports hit/miss/eviction statistics.
//
// For the full CLI, use: go run ./cmd/csim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("Cache-lab - Trace-Driven Cache Simulator")
	fmt.Println("")
	fmt.Println("Usage: csim [-v] -s <s> -E <E> -b <b> -t <trace>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -s <s>      Number of set index bits (there are 2**s sets)")
	fmt.Println("  -b <b>      Number of block bits (there are 2**b bytes per block)")
	fmt.Println("  -E <E>      Number of lines per set (associativity)")
	fmt.Println("  -t <trace>  File name of the memory trace to process")
	fmt.Println("  -v          Verbose mode: report effects of each memory operation")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/csim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/csim' instead.")
	}
}
