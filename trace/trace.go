// Package trace parses memory-access trace files into a lazy stream of
// validated records. Each non-blank line holds one access in the form
// "Op Addr,Size" with a hex address and a decimal size.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/RyanROCKET-YYH/Cache-lab/cache"
)

// maxRecordLen is the longest accepted line, excluding the newline:
// one op character, a separator, 16 hex digits, a comma, and the size.
const maxRecordLen = 23

// Parse failures. Any of them terminates the scan; the scanner keeps
// returning the same error afterwards.
var (
	ErrLineTooLong     = errors.New("trace line exceeds maximum length")
	ErrBadRecord       = errors.New("missing element in trace record")
	ErrBadOp           = errors.New("invalid operation in trace")
	ErrBadAddress      = errors.New("invalid address in trace")
	ErrBadSize         = errors.New("invalid size in trace")
	ErrTrailingGarbage = errors.New("unexpected trailing token in trace")
)

// Record is one validated memory access.
type Record struct {
	// Op is the access kind.
	Op cache.Op
	// Addr is the accessed address.
	Addr uint64
	// Size is the access size in bytes. The access is assumed not to
	// straddle a block boundary.
	Size uint64
}

// Scanner reads records from a trace one line at a time, in file order.
type Scanner struct {
	r    *bufio.Reader
	line int
	err  error
}

// NewScanner returns a scanner over r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Next returns the next record. It returns io.EOF after the last record
// and a terminating error on the first malformed line; once an error has
// been returned no further records are produced.
func (s *Scanner) Next() (Record, error) {
	if s.err != nil {
		return Record{}, s.err
	}

	for {
		text, err := s.r.ReadString('\n')
		if err != nil && err != io.EOF {
			s.err = err
			return Record{}, s.err
		}
		if text == "" {
			s.err = io.EOF
			return Record{}, s.err
		}
		s.line++

		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
		if len(text) > maxRecordLen {
			s.err = fmt.Errorf("line %d: %w", s.line, ErrLineTooLong)
			return Record{}, s.err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		rec, err := parseRecord(text)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.line, err)
			return Record{}, s.err
		}
		return rec, nil
	}
}

// parseRecord parses a single non-blank trace line with the newline
// already stripped.
func parseRecord(text string) (Record, error) {
	op, err := cache.ParseOp(text[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrBadOp, text[0])
	}

	// The op is followed by one separator character, then "addr,size".
	if len(text) < 3 {
		return Record{}, ErrBadRecord
	}
	body := text[2:]

	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return Record{}, ErrBadRecord
	}
	addrToken := body[:comma]

	fields := strings.Fields(body[comma+1:])
	if len(fields) == 0 {
		return Record{}, ErrBadRecord
	}
	if len(fields) > 1 {
		return Record{}, fmt.Errorf("%w: %q", ErrTrailingGarbage, fields[1])
	}

	addr, err := strconv.ParseUint(addrToken, 16, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrBadAddress, addrToken)
	}

	size, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrBadSize, fields[0])
	}

	return Record{Op: op, Addr: addr, Size: size}, nil
}

// File is a scanner over a trace file on disk.
type File struct {
	*Scanner
	f *os.File
}

// Open opens a trace file for scanning.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	return &File{Scanner: NewScanner(f), f: f}, nil
}

// Close releases the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}
