/*
Package backtrace turns the raw textual backtrace of an interpreter exception into an ordered list of structured stack frames, ready to be placed in an error report.

Two line formats are understood. The native runtime emits

  ./spec/notice_spec.rb:43:in `block (3 levels) in <top (required)>'

and an interpreter hosted on a virtual machine emits

  org.jruby.ast.NewlineNode.interpret(NewlineNode.java:105)

The format is chosen once per exception: lines of an error that is, or wraps, a host VM throwable are parsed with the host VM grammar, all others with the native grammar.

Basic Usage

This package is designed to be used via the functions exposed at the root of the `backtrace` package. These work by managing a single instance of the `Parser` type that is configurable via the setter functions at the root of the package.

  package main

  import (
    "fmt"

    "github.com/rollbar/backtrace-go"
    "github.com/rollbar/backtrace-go/errors"
  )

  func main() {
    backtrace.SetHostVM(true) // defaults to the BACKTRACE_HOST_VM environment variable

    err := errors.New("RuntimeError", "boom", []string{"app.rb:3:in `run'"})
    frames, perr := backtrace.Parse(err)
    if perr != nil {
      panic(perr) // a captured line number was not a valid integer
    }
    fmt.Println(frames[0].File, *frames[0].Line, frames[0].Function)
  }

If you need independent configurations you can create and manage your own instances of the `Parser` type with `NewParser`.

Host VM Exceptions

Nothing is treated as a host VM exception unless the host VM has been declared available with `SetHostVM` or the `WithHostVM` option. Once it is, an error counts as a host VM exception when it, or any error in its unwrap chain, implements `HostThrowable` and reports true.

Unparseable Lines

A line that does not match the grammar of its exception never fails a parse. By default it is dropped. With `UnmatchedPlaceholder` it is kept as a frame whose `Function` is the raw text, so the result has one frame per raw line.

A line that matches but whose line number cannot be parsed as a non-negative integer fails the whole parse with a `*LineNumberError`.

Extracting Backtraces

The raw lines are read through the `Backtracer` interface:

    type Backtracer interface {
      Backtrace() []string
    }

If you cannot implement the `Backtracer` interface on your error type, you can provide a custom function by calling `SetBacktracer`. The `errors` sub-package provides one for github.com/pkg/errors values.
*/
package backtrace
