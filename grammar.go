package backtrace

import "regexp"

var (
	// file:line:in `function'
	nativePattern = regexp.MustCompile(`\A(?P<file>.+):(?P<line>\d+):in ` + "`" + `(?P<function>.+)'\z`)

	// function(file:line), function(file). Only the bare form excludes
	// whitespace, so "(Native Method)" does not match.
	hostVMPattern = regexp.MustCompile(`\A(?P<function>[^(]+)\((?:(?P<file>[^:()]+):(?P<line>\d*)|(?P<bare>[^:()\s]+))\)\z`)

	nativeGrammar = newGrammar("native", nativePattern)
	hostVMGrammar = newGrammar("host-vm", hostVMPattern)
)

// Grammar is one of the two textual stack frame formats understood by the
// parser. Both are compiled once and safe for concurrent use.
type Grammar struct {
	name    string
	pattern *regexp.Regexp

	fileIdx     int
	bareIdx     int
	lineIdx     int
	functionIdx int
}

func newGrammar(name string, pattern *regexp.Regexp) *Grammar {
	return &Grammar{
		name:        name,
		pattern:     pattern,
		fileIdx:     pattern.SubexpIndex("file"),
		bareIdx:     pattern.SubexpIndex("bare"),
		lineIdx:     pattern.SubexpIndex("line"),
		functionIdx: pattern.SubexpIndex("function"),
	}
}

// NativeGrammar returns the grammar for lines of the form
//
//	./spec/notice_spec.rb:43:in `block (3 levels) in <top (required)>'
//
// The file capture is greedy, so paths containing colons are kept whole.
func NativeGrammar() *Grammar {
	return nativeGrammar
}

// HostVMGrammar returns the grammar for lines emitted by an interpreter
// hosted on a virtual machine:
//
//	org.jruby.ast.NewlineNode.interpret(NewlineNode.java:105)
//
// The line segment is optional.
func HostVMGrammar() *Grammar {
	return hostVMGrammar
}

// Name of the grammar, used in log output.
func (g *Grammar) Name() string {
	return g.name
}

func (g *Grammar) String() string {
	return g.name
}

// Captures holds the named substrings of a successfully matched line.
// A Captures value only exists for lines that matched.
type Captures struct {
	File     string
	LineText string
	Function string
}

// Match applies the grammar to the whole line. The boolean result is false
// when the line does not fully match.
func (g *Grammar) Match(line string) (Captures, bool) {
	m := g.pattern.FindStringSubmatch(line)
	if m == nil {
		return Captures{}, false
	}
	file := m[g.fileIdx]
	if file == "" && g.bareIdx >= 0 {
		file = m[g.bareIdx]
	}
	return Captures{
		File:     file,
		LineText: m[g.lineIdx],
		Function: m[g.functionIdx],
	}, true
}
