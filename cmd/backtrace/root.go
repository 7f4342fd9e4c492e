package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rollbar/backtrace-go"
	rerrors "github.com/rollbar/backtrace-go/errors"
)

const (
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatPayload = "payload"
)

type parseOptions struct {
	hostVM        bool
	keepUnmatched bool
	report        bool
	format        string
	logLevel      string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "backtrace",
		Short:         "Normalize raw backtraces into stack frames",
		Version:       backtrace.VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newParseCmd())
	return root
}

func newParseCmd() *cobra.Command {
	opts := parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Parse backtrace lines from FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			if err := runParse(cmd, args, opts, logger); err != nil {
				logger.Error("parse failed", "err", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.hostVM, "host-vm", envBool(backtrace.EnvHostVM), "host VM is available (env "+backtrace.EnvHostVM+")")
	flags.BoolVar(&opts.keepUnmatched, "keep-unmatched", false, "keep unparseable lines as placeholder frames")
	flags.BoolVar(&opts.report, "report", false, "input is a YAML or JSON exception document")
	flags.StringVar(&opts.format, "format", formatJSON, "output format: json, yaml or payload")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts parseOptions, logger *charmlog.Logger) error {
	switch opts.format {
	case formatJSON, formatYAML, formatPayload:
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	r := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var exc *rerrors.Exception
	var err error
	if opts.report {
		exc, err = readReport(r)
	} else {
		exc, err = readLines(r, opts.hostVM)
	}
	if err != nil {
		return err
	}

	policy := backtrace.UnmatchedSkip
	if opts.keepUnmatched {
		policy = backtrace.UnmatchedPlaceholder
	}
	p := backtrace.NewParser(
		backtrace.WithHostVM(opts.hostVM),
		backtrace.WithUnmatchedPolicy(policy),
		backtrace.WithLogger(debugLogger{logger}),
	)
	logger.Debug("parsing backtrace", "lines", len(exc.Lines), "grammar", p.Grammar(exc))

	out := cmd.OutOrStdout()
	if opts.format == formatPayload {
		body, err := p.ErrorBody(exc)
		if err != nil {
			return err
		}
		return writeJSON(out, body)
	}

	frames, err := p.Parse(exc)
	if err != nil {
		return err
	}
	if opts.format == formatYAML {
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(frames); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeJSON(out, frames)
}

// readReport decodes an exception document. JSON input is accepted since it
// is valid YAML.
func readReport(r io.Reader) (*rerrors.Exception, error) {
	exc := &rerrors.Exception{}
	if err := yaml.NewDecoder(r).Decode(exc); err != nil {
		if err == io.EOF {
			return exc, nil
		}
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return exc, nil
}

// readLines reads one backtrace line per input line. Lines of any length
// are accepted.
func readLines(r io.Reader, host bool) (*rerrors.Exception, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read backtrace: %w", err)
		}
	}
	exc := rerrors.New("", "", lines)
	exc.Host = host
	return exc, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLogger(w io.Writer, level string) (*charmlog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:  lvl,
		Prefix: "backtrace",
	}), nil
}

// debugLogger reports skipped lines at debug level.
type debugLogger struct {
	l *charmlog.Logger
}

func (d debugLogger) Printf(format string, args ...interface{}) {
	d.l.Debug(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
