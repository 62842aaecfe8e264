package hufftree

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrTruncated is wrapped by the *FormatError returned when a stream
	// ends before the declared number of symbols has been decoded.
	ErrTruncated = errors.New("hufftree: stream truncated")

	// ErrEmptyFrequencyTable is returned by BuildTree when no byte value
	// has a non-zero count.
	ErrEmptyFrequencyTable = errors.New("hufftree: empty frequency table")

	// ErrDegenerateTree is returned when a tree contains an Internal node
	// without the children it needs.  The only Internal node allowed to
	// have a single child is the root of a one-leaf tree.
	ErrDegenerateTree = errors.New("hufftree: tree has an Internal node with missing children")

	// ErrUnknownSymbol is returned when the input holds a byte value that
	// the Encoder's tree has no leaf for.
	ErrUnknownSymbol = errors.New("hufftree: symbol not present in tree")

	// ErrInputTooLarge is returned when the input does not fit the 32-bit
	// length header.
	ErrInputTooLarge = errors.New("hufftree: input longer than 4 GiB - 1")
)

// FormatError reports a structurally invalid compressed stream.
type FormatError struct {
	// Offset is the bit offset at which the problem was detected.
	Offset int64

	// Reason describes the problem.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

func (e *FormatError) Error() string {
	s := "hufftree: malformed stream at bit " + strconv.FormatInt(e.Offset, 10) + ": " + e.Reason
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// InputUnavailableError reports a byte source that could not be opened or
// read.
type InputUnavailableError struct {
	Path string
	Err  error
}

func (e *InputUnavailableError) Error() string {
	return "hufftree: input " + strconv.Quote(e.Path) + " unavailable: " + e.Err.Error()
}

func (e *InputUnavailableError) Unwrap() error {
	return e.Err
}
