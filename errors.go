package backtrace

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLineNumber is the cause of a LineNumberError whose captured
	// text parsed to a negative number.
	ErrNegativeLineNumber = errors.New("negative line number")

	// ErrUnparseableLine marks a raw line that matched neither grammar. It is
	// only used for log output since such lines never fail a parse.
	ErrUnparseableLine = errors.New("unparseable backtrace line")
)

// LineNumberError is returned by Parse when a grammar matched a line but the
// captured line number is not a valid non-negative integer. It means the
// input or the grammar broke its contract, so the whole parse fails.
type LineNumberError struct {
	// Raw is the complete backtrace line.
	Raw string
	// Text is the captured line number text.
	Text string
	Err  error
}

func (e *LineNumberError) Error() string {
	return fmt.Sprintf("malformed line number %q in backtrace line %q: %v", e.Text, e.Raw, e.Err)
}

func (e *LineNumberError) Unwrap() error {
	return e.Err
}
