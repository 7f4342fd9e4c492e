package backtrace

import (
	"os"
	"strconv"
)

const (
	NAME    = "backtrace-go"
	VERSION = "1.0.0"

	// EnvHostVM names the environment variable that declares the host
	// virtual machine available for the default parser.
	EnvHostVM = "BACKTRACE_HOST_VM"
)

var std = NewParser(WithHostVM(hostVMFromEnv()))

func hostVMFromEnv() bool {
	available, err := strconv.ParseBool(os.Getenv(EnvHostVM))
	return err == nil && available
}

// Default returns the parser behind the package level functions.
func Default() *Parser {
	return std
}

// -- Setters

// SetHostVM declares whether the host virtual machine is available for the
// default parser.
func SetHostVM(available bool) {
	std.SetHostVM(available)
}

// SetUnmatchedPolicy sets the policy for unmatched lines on the default
// parser.
func SetUnmatchedPolicy(policy UnmatchedPolicy) {
	std.SetUnmatchedPolicy(policy)
}

// SetLogger sets the logger of the default parser.
func SetLogger(logger ClientLogger) {
	std.SetLogger(logger)
}

// SetBacktracer sets the function the default parser uses to read raw
// backtraces. See Parser.SetBacktracer.
func SetBacktracer(backtracer BacktracerFunc) {
	std.SetBacktracer(backtracer)
}

// SetUnwrapper sets the function the default parser uses to walk error
// chains. See Parser.SetUnwrapper.
func SetUnwrapper(unwrapper UnwrapperFunc) {
	std.SetUnwrapper(unwrapper)
}

// -- Parsing

// Parse returns the frames of err's backtrace using the default parser.
func Parse(err error) ([]StackFrame, error) {
	return std.Parse(err)
}

// IsHostVMException reports whether err is, or wraps, a host VM throwable
// using the default parser.
func IsHostVMException(err error) bool {
	return std.IsHostVMException(err)
}

// ErrorBody builds the trace_chain payload fragment for err using the
// default parser.
func ErrorBody(err error) (map[string]interface{}, error) {
	return std.ErrorBody(err)
}
