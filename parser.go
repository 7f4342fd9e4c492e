package backtrace

// UnmatchedPolicy decides what happens to a raw line that does not match the
// grammar selected for its exception.
type UnmatchedPolicy int

const (
	// UnmatchedSkip drops the line from the result. This is the default.
	UnmatchedSkip UnmatchedPolicy = iota
	// UnmatchedPlaceholder keeps the line as a frame whose Function is the
	// raw text and whose File and Line are empty, so the result has one
	// frame per raw line.
	UnmatchedPlaceholder
)

func (p UnmatchedPolicy) String() string {
	switch p {
	case UnmatchedSkip:
		return "skip"
	case UnmatchedPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Parser turns the raw backtrace of an error into StackFrames. A Parser must
// not be reconfigured while it is parsing; otherwise it is safe for
// concurrent use.
type Parser struct {
	configuration configuration
}

type configuration struct {
	// hostVM reports whether the host virtual machine is present in this
	// environment at all.
	hostVM     bool
	unmatched  UnmatchedPolicy
	backtracer BacktracerFunc
	unwrapper  UnwrapperFunc
	logger     ClientLogger
}

func createConfiguration() configuration {
	return configuration{
		hostVM:     false,
		unmatched:  UnmatchedSkip,
		backtracer: DefaultBacktracer,
		unwrapper:  DefaultUnwrapper,
	}
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithHostVM declares whether the host virtual machine is available. Without
// it no error is ever treated as a host VM exception.
func WithHostVM(available bool) ParserOption {
	return func(p *Parser) {
		p.configuration.hostVM = available
	}
}

// WithUnmatchedPolicy sets the policy for lines matching no grammar.
func WithUnmatchedPolicy(policy UnmatchedPolicy) ParserOption {
	return func(p *Parser) {
		p.configuration.unmatched = policy
	}
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger(logger ClientLogger) ParserOption {
	return func(p *Parser) {
		p.configuration.logger = logger
	}
}

// WithBacktracer sets the function used to read raw backtraces from errors.
func WithBacktracer(backtracer BacktracerFunc) ParserOption {
	return func(p *Parser) {
		p.SetBacktracer(backtracer)
	}
}

// WithUnwrapper sets the function used to walk error chains.
func WithUnwrapper(unwrapper UnwrapperFunc) ParserOption {
	return func(p *Parser) {
		p.SetUnwrapper(unwrapper)
	}
}

// NewParser builds a Parser. By default the host VM is unavailable,
// unmatched lines are skipped and nothing is logged.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{configuration: createConfiguration()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetHostVM declares whether the host virtual machine is available.
func (p *Parser) SetHostVM(available bool) {
	p.configuration.hostVM = available
}

// SetUnmatchedPolicy sets the policy for lines matching no grammar.
func (p *Parser) SetUnmatchedPolicy(policy UnmatchedPolicy) {
	p.configuration.unmatched = policy
}

// SetLogger sets the logger used to report skipped lines. nil disables
// logging.
func (p *Parser) SetLogger(logger ClientLogger) {
	p.configuration.logger = logger
}

// SetBacktracer sets the function used to read raw backtraces from errors.
// To keep the default behavior for other error types, call
// DefaultBacktracer from the custom function. nil restores the default.
func (p *Parser) SetBacktracer(backtracer BacktracerFunc) {
	if backtracer == nil {
		backtracer = DefaultBacktracer
	}
	p.configuration.backtracer = backtracer
}

// SetUnwrapper sets the function used to walk error chains when looking for
// host VM throwables. nil restores the default.
func (p *Parser) SetUnwrapper(unwrapper UnwrapperFunc) {
	if unwrapper == nil {
		unwrapper = DefaultUnwrapper
	}
	p.configuration.unwrapper = unwrapper
}

// HostVM reports whether the host virtual machine is declared available.
func (p *Parser) HostVM() bool {
	return p.configuration.hostVM
}

// UnmatchedPolicy returns the configured policy for unmatched lines.
func (p *Parser) UnmatchedPolicy() UnmatchedPolicy {
	return p.configuration.unmatched
}

// IsHostVMException reports whether err is, or wraps, a host VM throwable.
// It is always false when the host VM is not available.
func (p *Parser) IsHostVMException(err error) bool {
	if !p.configuration.hostVM {
		return false
	}
	return isHostThrowable(err, p.configuration.unwrapper)
}

// Grammar returns the grammar the lines of err are parsed with.
func (p *Parser) Grammar(err error) *Grammar {
	if p.IsHostVMException(err) {
		return HostVMGrammar()
	}
	return NativeGrammar()
}

// Parse returns the frames of err's backtrace in their original order. An
// error without a backtrace yields an empty slice. Lines that match no
// grammar are handled according to the UnmatchedPolicy. A *LineNumberError
// is returned if a captured line number cannot be parsed.
func (p *Parser) Parse(err error) ([]StackFrame, error) {
	if err == nil {
		return []StackFrame{}, nil
	}
	lines, _ := p.configuration.backtracer(err)
	return p.parseLines(p.Grammar(err), lines)
}

func (p *Parser) parseLines(grammar *Grammar, lines []string) ([]StackFrame, error) {
	frames := make([]StackFrame, 0, len(lines))
	for i, raw := range lines {
		captures, ok := grammar.Match(raw)
		if !ok {
			backtraceDebug(p.configuration.logger, "%v: %s line %d: %q", ErrUnparseableLine, grammar, i, raw)
			if p.configuration.unmatched == UnmatchedPlaceholder {
				frames = append(frames, placeholderFrame(raw))
			}
			continue
		}

		frame, err := buildFrame(raw, captures)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
