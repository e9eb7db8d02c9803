// Package runner replays a trace-record stream against a cache model.
package runner

import (
	"fmt"
	"io"

	"github.com/RyanROCKET-YYH/Cache-lab/cache"
	"github.com/RyanROCKET-YYH/Cache-lab/trace"
)

// RecordSource yields trace records in order. trace.Scanner satisfies it.
type RecordSource interface {
	Next() (trace.Record, error)
}

// Driver feeds records into a cache one at a time, in stream order, with
// no buffering or reordering.
type Driver struct {
	cache   *cache.Cache
	verbose io.Writer
}

// Option configures a Driver.
type Option func(*Driver)

// WithVerbose makes the driver echo every access and its side effects
// to w.
func WithVerbose(w io.Writer) Option {
	return func(d *Driver) {
		d.verbose = w
	}
}

// New creates a driver for c.
func New(c *cache.Cache, opts ...Option) *Driver {
	d := &Driver{cache: c}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run replays records from src until the stream ends. It returns the final
// statistics on a clean end of stream. On a malformed record it stops
// immediately and returns the stream's error; no further records are
// consumed and the partial statistics are discarded.
func (d *Driver) Run(src RecordSource) (cache.Statistics, error) {
	for {
		rec, err := src.Next()
		if err == io.EOF {
			return d.cache.Stats(), nil
		}
		if err != nil {
			return cache.Statistics{}, err
		}

		result := d.cache.Access(rec.Op, rec.Addr, rec.Size)
		if d.verbose != nil {
			d.echo(rec, result)
		}
	}
}

// echo writes one verbose line in the reference simulator's format,
// including its "evicition" misspelling.
func (d *Driver) echo(rec trace.Record, result cache.AccessResult) {
	stats := d.cache.Stats()
	fmt.Fprintf(d.verbose, "%s %x,%d", rec.Op, rec.Addr, rec.Size)
	switch {
	case result.Hit:
		fmt.Fprintf(d.verbose, " hit dirty_bytes:%d\n", stats.DirtyBytes)
	case result.Evicted:
		fmt.Fprintf(d.verbose, " miss evicition dirty_bytes:%d evicted:%d\n",
			stats.DirtyBytes, stats.DirtyEvictions)
	default:
		fmt.Fprintf(d.verbose, " miss dirty_bytes:%d\n", stats.DirtyBytes)
	}
}
