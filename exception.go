package backtrace

// Backtracer is implemented by errors that carry a raw textual backtrace,
// one frame per line, innermost first.
type Backtracer interface {
	Backtrace() []string
}

// HostThrowable is implemented by errors that may originate from the host
// virtual machine's native throwable type. HostThrowable reports whether
// this particular value does.
type HostThrowable interface {
	HostThrowable() bool
}

// Causer is the pkg/errors style interface for retrieving the cause of an
// error.
type Causer interface {
	Cause() error
}

// BacktracerFunc extracts the raw backtrace lines of an error. The boolean
// result reports whether the error type was handled.
type BacktracerFunc func(error) ([]string, bool)

// UnwrapperFunc returns the error wrapped by the given error, or nil.
type UnwrapperFunc func(error) error

// DefaultBacktracer handles errors implementing Backtracer.
func DefaultBacktracer(err error) ([]string, bool) {
	if b, ok := err.(Backtracer); ok {
		return b.Backtrace(), true
	}
	return nil, false
}

// DefaultUnwrapper handles errors implementing Unwrap() error (Go 1.13) as
// well as Causer.
func DefaultUnwrapper(err error) error {
	type unwrapper interface {
		Unwrap() error
	}

	switch e := err.(type) {
	case unwrapper:
		return e.Unwrap()
	case Causer:
		return e.Cause()
	}
	return nil
}

// maxUnwrapDepth bounds cause chains that loop back on themselves.
const maxUnwrapDepth = 100

// isHostThrowable walks the unwrap chain of err looking for a value that
// reports itself as a host VM throwable.
func isHostThrowable(err error, unwrap UnwrapperFunc) bool {
	for i := 0; err != nil && i < maxUnwrapDepth; i++ {
		if h, ok := err.(HostThrowable); ok && h.HostThrowable() {
			return true
		}
		err = unwrap(err)
	}
	return false
}
