package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/leonardinius/tinylox/internal/config"
	"github.com/leonardinius/tinylox/internal/interpreter"
	"github.com/leonardinius/tinylox/internal/loxerrors"
	"github.com/leonardinius/tinylox/internal/lsp"
	"github.com/leonardinius/tinylox/internal/parser"
	"github.com/leonardinius/tinylox/internal/scanner"
)

const Version = "0.1.0"

// Exit codes follow sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
	ExitConfig   = 78
)

var ErrUsage = errors.New("Usage: tinylox [script]")

// LineReader is the REPL input, readline in production.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

type LoxApp struct {
	cfg         *config.Config
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	interactive func(stdin io.Reader) bool
	lineReader  func(cfg *config.Config) (LineReader, error)

	reporter    loxerrors.ErrReporter
	interpreter interpreter.Interpreter
}

type AppOption func(*LoxApp)

func WithConfig(cfg *config.Config) AppOption {
	return func(app *LoxApp) {
		app.cfg = cfg
	}
}

func WithStdin(stdin io.Reader) AppOption {
	return func(app *LoxApp) {
		app.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(app *LoxApp) {
		app.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(app *LoxApp) {
		app.stderr = stderr
	}
}

// WithLineReader switches the app to interactive mode with the given input.
func WithLineReader(newReader func(cfg *config.Config) (LineReader, error)) AppOption {
	return func(app *LoxApp) {
		app.interactive = func(io.Reader) bool { return true }
		app.lineReader = newReader
	}
}

func NewLoxApp(options ...AppOption) *LoxApp {
	app := &LoxApp{
		cfg:         config.Default(),
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: isTerminal,
		lineReader:  newReadline,
	}
	for _, opt := range options {
		opt(app)
	}
	cfg := *app.cfg
	app.cfg = &cfg

	app.reporter = loxerrors.NewErrReporter(app.stderr)
	app.interpreter = interpreter.NewInterpreter(
		interpreter.WithStdout(app.stdout),
		interpreter.WithStderr(app.stderr),
		interpreter.WithErrorReporter(app.reporter),
	)
	return app
}

func (app *LoxApp) reportError(err error) {
	fmt.Fprintln(app.stderr, err)
}

// Main runs the command line and returns the process exit code.
func (app *LoxApp) Main(args []string) int {
	ctx := context.Background()
	args = app.parseFlags(args)

	var err error
	switch {
	case len(args) == 1 && args[0] == "--lsp":
		err = lsp.NewServer(Version).RunStdio()
	case len(args) == 1:
		err = app.runFile(ctx, args[0])
	case len(args) == 0 && app.interactive(app.stdin):
		err = app.runPrompt(ctx)
	case len(args) == 0:
		err = app.runReader(ctx, app.stdin)
	default:
		err = ErrUsage
	}

	return app.exitCode(err)
}

// parseFlags strips leading --tokens and --ast, which turn on the matching
// dumps on top of the config.
func (app *LoxApp) parseFlags(args []string) []string {
	for len(args) > 0 {
		switch args[0] {
		case "--tokens":
			app.cfg.DumpTokens = true
		case "--ast":
			app.cfg.DumpAST = true
		default:
			return args
		}
		args = args[1:]
	}
	return args
}

// exitCode maps err to an exit code. Lox errors have been reported already.
func (app *LoxApp) exitCode(err error) int {
	var runtimeErr *loxerrors.RuntimeError
	var scanErr *loxerrors.ScannerError

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &runtimeErr):
		return ExitSoftware
	case errors.Is(err, loxerrors.ErrParseError), errors.As(err, &scanErr):
		return ExitDataErr
	case errors.Is(err, ErrUsage):
		app.reportError(err)
		return ExitUsage
	}

	app.reportError(err)
	return ExitIOErr
}

func (app *LoxApp) runPrompt(ctx context.Context) error {
	rl, err := app.lineReader(app.cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		// errors are reported; the session goes on
		out, err := app.run(ctx, line)
		if err == nil && out != "" {
			fmt.Fprintln(app.stdout, out)
		}
	}
}

func (app *LoxApp) runFile(ctx context.Context, scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	_, err = app.run(ctx, string(bytes))
	return err
}

func (app *LoxApp) runReader(ctx context.Context, r io.Reader) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	_, err = app.run(ctx, string(bytes))
	return err
}

func (app *LoxApp) run(ctx context.Context, input string) (string, error) {
	s := scanner.NewScanner(input, app.reporter)
	tokens, scanErr := s.Scan()
	if app.cfg.DumpTokens {
		for _, tok := range tokens {
			fmt.Fprintln(app.stderr, tok)
		}
	}

	// parse even after lex errors so all diagnostics come out in one run
	p := parser.NewParser(tokens, app.reporter)
	statements, parseErr := p.Parse()
	if err := errors.Join(scanErr, parseErr); err != nil {
		return "", err
	}

	if app.cfg.DumpAST {
		printer := app.printer()
		for _, stmt := range statements {
			fmt.Fprintln(app.stderr, printer.PrintStmt(stmt))
		}
	}

	return app.interpreter.Interpret(ctx, statements)
}

func (app *LoxApp) printer() parser.StmtPrinter {
	if app.cfg.ASTFormat == config.ASTFormatRPN {
		return parser.NewRPNPrinter()
	}
	return parser.NewAstPrinter()
}

func isTerminal(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newReadline(cfg *config.Config) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return nil, err
	}
	return rl, nil
}
