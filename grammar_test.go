package backtrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNativeGrammarMatch(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Captures
	}{
		{
			name: "block in top level",
			line: "./spec/notice_spec.rb:43:in `block (3 levels) in <top (required)>'",
			want: Captures{File: "./spec/notice_spec.rb", LineText: "43", Function: "block (3 levels) in <top (required)>"},
		},
		{
			name: "colons in file",
			line: "C:/Ruby/lib/foo:bar.rb:7:in `call'",
			want: Captures{File: "C:/Ruby/lib/foo:bar.rb", LineText: "7", Function: "call"},
		},
		{
			name: "last line marker wins",
			line: "/app/a.rb:1:in `x'.rb:2:in `y'",
			want: Captures{File: "/app/a.rb:1:in `x'.rb", LineText: "2", Function: "y"},
		},
		{
			name: "quotes inside function",
			line: "lib/a.rb:12:in `Foo#bar('baz')'",
			want: Captures{File: "lib/a.rb", LineText: "12", Function: "Foo#bar('baz')"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := NativeGrammar().Match(c.line)
			assert.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestNativeGrammarNoMatch(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"lib/a.rb:12",
		"lib/a.rb:12:in `call'   ",
		"lib/a.rb:x:in `call'",
		"lib/a.rb:12:in `'",
		"org.jruby.ast.NewlineNode.interpret(NewlineNode.java:105)",
	}
	for _, line := range lines {
		_, ok := NativeGrammar().Match(line)
		assert.False(t, ok, "line %q should not match", line)
	}
}

func TestHostVMGrammarMatch(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Captures
	}{
		{
			name: "file and line",
			line: "org.jruby.ast.NewlineNode.interpret(NewlineNode.java:105)",
			want: Captures{File: "NewlineNode.java", LineText: "105", Function: "org.jruby.ast.NewlineNode.interpret"},
		},
		{
			name: "file without line",
			line: "org.jruby.Foo.bar(Foo.java)",
			want: Captures{File: "Foo.java", LineText: "", Function: "org.jruby.Foo.bar"},
		},
		{
			name: "trailing colon without line",
			line: "org.jruby.Foo.bar(Foo.java:)",
			want: Captures{File: "Foo.java", LineText: "", Function: "org.jruby.Foo.bar"},
		},
		{
			name: "path with spaces",
			line: "RUBY.run(/Users/jo/My Project/app.rb:18)",
			want: Captures{File: "/Users/jo/My Project/app.rb", LineText: "18", Function: "RUBY.run"},
		},
		{
			name: "ruby frame with path",
			line: "RUBY.block in run(/app/lib/runner.rb:18)",
			want: Captures{File: "/app/lib/runner.rb", LineText: "18", Function: "RUBY.block in run"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := HostVMGrammar().Match(c.line)
			assert.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestHostVMGrammarNoMatch(t *testing.T) {
	lines := []string{
		"",
		"org.jruby.Foo.bar(Native Method)",
		"org.jruby.Foo.bar(Unknown Source)",
		"org.jruby.Foo.bar(My File.java)",
		"org.jruby.Foo.bar",
		"(Foo.java:1)",
		"org.jruby.Foo.bar(Foo.java:1) ",
		"./spec/notice_spec.rb:43:in `block (3 levels) in <top (required)>'",
	}
	for _, line := range lines {
		_, ok := HostVMGrammar().Match(line)
		assert.False(t, ok, "line %q should not match", line)
	}
}

func TestGrammarNames(t *testing.T) {
	assert.Equal(t, "native", NativeGrammar().Name())
	assert.Equal(t, "host-vm", HostVMGrammar().String())
}
