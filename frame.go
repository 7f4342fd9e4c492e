package backtrace

import (
	"strconv"
	"strings"
)

const unknownFunction = "???"

// StackFrame is one normalized entry of a raw backtrace.
type StackFrame struct {
	File string `json:"file" yaml:"file"`
	// Line is nil when the source line carried no line number, e.g. a
	// host VM frame such as "Foo.bar(Foo.java)".
	Line     *int   `json:"line,omitempty" yaml:"line,omitempty"`
	Function string `json:"function" yaml:"function"`
}

// LineNumber returns the frame's line and whether it is known.
func (f StackFrame) LineNumber() (int, bool) {
	if f.Line == nil {
		return 0, false
	}
	return *f.Line, true
}

// buildFrame converts the captures of a matched line into a StackFrame. An
// empty line capture yields a frame without a line number; anything that is
// not a non-negative integer is reported as a *LineNumberError.
func buildFrame(raw string, c Captures) (StackFrame, error) {
	frame := StackFrame{
		File:     c.File,
		Function: c.Function,
	}
	if c.LineText == "" {
		return frame, nil
	}

	line, err := strconv.Atoi(c.LineText)
	if err != nil {
		return StackFrame{}, &LineNumberError{Raw: raw, Text: c.LineText, Err: err}
	}
	if line < 0 {
		return StackFrame{}, &LineNumberError{Raw: raw, Text: c.LineText, Err: ErrNegativeLineNumber}
	}
	frame.Line = &line
	return frame, nil
}

// placeholderFrame keeps an unparseable line in the output so that frames
// stay aligned with the raw trace.
func placeholderFrame(raw string) StackFrame {
	function := raw
	if strings.TrimSpace(function) == "" {
		function = unknownFunction
	}
	return StackFrame{Function: function}
}
