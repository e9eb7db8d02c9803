package cache

import "fmt"

// Op is a memory operation kind.
type Op int

const (
	// Load reads from memory.
	Load Op = iota
	// Store writes to memory and dirties the target line.
	Store
)

// String returns the trace-file spelling of the operation.
func (o Op) String() string {
	switch o {
	case Load:
		return "L"
	case Store:
		return "S"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// ParseOp converts a trace-file operation character to an Op.
func ParseOp(c byte) (Op, error) {
	switch c {
	case 'L':
		return Load, nil
	case 'S':
		return Store, nil
	default:
		return 0, fmt.Errorf("invalid operation %q", c)
	}
}
