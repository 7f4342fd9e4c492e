// Package errors provides error values that carry a raw textual backtrace,
// and an adapter exposing github.com/pkg/errors stack traces in the native
// backtrace format.
package errors

import (
	"fmt"
	"runtime"

	pkgerr "github.com/pkg/errors"
)

// Exception is an error reported by an interpreter together with its raw
// backtrace. It can be decoded from YAML or JSON report documents.
type Exception struct {
	Name    string   `json:"class" yaml:"class"`
	Message string   `json:"message" yaml:"message"`
	Lines   []string `json:"backtrace,omitempty" yaml:"backtrace,omitempty"`
	// Host marks an exception raised by the host VM's native throwable type.
	Host  bool       `json:"host_vm,omitempty" yaml:"host_vm,omitempty"`
	Inner *Exception `json:"cause,omitempty" yaml:"cause,omitempty"`

	cause error
}

// New returns a native runtime exception.
func New(class, message string, backtrace []string) *Exception {
	return &Exception{Name: class, Message: message, Lines: backtrace}
}

// NewHost returns an exception raised by the host VM.
func NewHost(class, message string, backtrace []string) *Exception {
	return &Exception{Name: class, Message: message, Lines: backtrace, Host: true}
}

// Wrap returns a native runtime exception caused by cause.
func Wrap(cause error, class, message string, backtrace []string) *Exception {
	return &Exception{Name: class, Message: message, Lines: backtrace, cause: cause}
}

func (e *Exception) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return e.Message
}

// Class returns the exception class name.
func (e *Exception) Class() string {
	return e.Name
}

// Backtrace returns the raw backtrace lines.
func (e *Exception) Backtrace() []string {
	return e.Lines
}

// HostThrowable reports whether the exception came from the host VM.
func (e *Exception) HostThrowable() bool {
	return e.Host
}

// Cause returns the wrapped error. A decoded Inner exception is used when no
// cause was given to Wrap.
func (e *Exception) Cause() error {
	if e.cause != nil {
		return e.cause
	}
	if e.Inner != nil {
		return e.Inner
	}
	return nil
}

// Unwrap is the Go 1.13 alias of Cause.
func (e *Exception) Unwrap() error {
	return e.Cause()
}

// Backtracer is able to extract backtraces from pkg/errors. Each frame is
// rendered as `file:line:in `function'`, so the lines parse with the native
// grammar.
func Backtracer(err error) ([]string, bool) {
	type stackTracer interface {
		StackTrace() pkgerr.StackTrace
	}

	switch x := err.(type) {
	case stackTracer:
		st := x.StackTrace()
		pcs := make([]uintptr, len(st))
		for i, pc := range st {
			pcs[i] = uintptr(pc)
		}
		fr := runtime.CallersFrames(pcs)

		return framesToLines(fr), true
	}

	return nil, false
}

// framesToLines renders all the runtime.Frame from runtime.Frames.
func framesToLines(fr *runtime.Frames) []string {
	lines := make([]string, 0)

	for frame, more := fr.Next(); frame != (runtime.Frame{}); frame, more = fr.Next() {
		lines = append(lines, fmt.Sprintf("%s:%d:in `%s'", frame.File, frame.Line, frame.Function))

		if !more {
			break
		}
	}

	return lines
}
