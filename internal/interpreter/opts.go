package interpreter

import (
	"io"
	"os"

	"github.com/leonardinius/tinylox/internal/loxerrors"
)

type interpreterOpts struct {
	env      *Environment
	stdout   io.Writer
	stderr   io.Writer
	reporter loxerrors.ErrReporter
}

type InterpreterOption func(*interpreterOpts)

// WithEnvironment shares env with the caller, e.g. to inspect bindings.
func WithEnvironment(env *Environment) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.env = env
	}
}

func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

// WithStderr also redirects the default error reporter.
func WithStderr(stderr io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r loxerrors.ErrReporter) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.reporter = r
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := interpreterOpts{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		opt(&opts)
	}

	if opts.env == nil {
		opts.env = NewEnvironment()
	}
	if opts.reporter == nil {
		opts.reporter = loxerrors.NewErrReporter(opts.stderr)
	}

	return &opts
}
