package backtrace

// ClientLogger is the interface used by the parser to report lines it had
// to skip. It is satisfied by *log.Logger.
type ClientLogger interface {
	Printf(format string, args ...interface{})
}

// SilentClientLogger is a type that implements the ClientLogger interface
// but produces no output.
type SilentClientLogger struct{}

// Printf implements the ClientLogger interface.
func (s *SilentClientLogger) Printf(format string, args ...interface{}) {}

// backtraceDebug logs through logger. A nil logger discards the message so
// that parsing has no side effects unless a logger was configured.
func backtraceDebug(logger ClientLogger, format string, args ...interface{}) {
	if logger == nil {
		return
	}
	logger.Printf("Backtrace: "+format+"\n", args...)
}
