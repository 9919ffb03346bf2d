// Copyright © 2023 Trevor N. Suarez (Rican7)

package argfail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultUsage defines the default usage string for an app.
const DefaultUsage = "[-v | -q]... [-i <path>] [-o <path>] [arguments]"

// Executor is a functional interface that defines an executable command.
//
// It takes a context, the parsed configuration record, and the remaining
// arguments, and returns an error (if any occurred). Returning a *FieldError
// reports a failure of one of the record's fields.
type Executor func(ctx context.Context, args Args, arguments []string) error

// AppInfo describes information about an app.
type AppInfo struct {
	Name    string
	Summary string
	Usage   string
	Version string
}

// App is a runnable application bound to a configuration record.
type App struct {
	info AppInfo

	args  *Args
	flags *flagSet

	exec     Executor
	reporter *Reporter

	out    io.Writer
	errOut io.Writer

	init func() error
}

// NewApp returns an initialized App.
//
// The fields of args are bound to the given flags, with their current values
// as defaults.
func NewApp(info AppInfo, args *Args, exec Executor, flags Flags, out io.Writer, errOut io.Writer) *App {
	if info.Name == "" {
		info.Name = inferAppName()
	}

	if info.Usage == "" {
		info.Usage = DefaultUsage
	}

	if args == nil {
		args = &Args{}
	}

	if flags == nil {
		flags = createDefaultFlags(info.Name)
	}

	if out == nil {
		out = io.Discard
	}

	if errOut == nil {
		errOut = io.Discard
	}

	app := &App{
		info: info,

		args:  args,
		flags: &flagSet{Flags: flags},

		exec:     exec,
		reporter: NewReporter(out, nil),

		out:    out,
		errOut: errOut,
	}

	app.setupFlagSet(app.flags)
	bindArgs(app.flags, app.args)
	setUsage(app.flags, app.PrintHelp)

	return app
}

// Run takes a context and arguments, runs the executor, and returns an exit
// code.
func (a *App) Run(ctx context.Context, arguments []string) int {
	if len(arguments) == 0 {
		arguments = os.Args[1:]
	}

	if err := a.flags.Parse(arguments); err != nil {
		return 1
	}

	if intercepted := a.intercept(); intercepted {
		return 0
	}

	a.flags.applyLevel(a.args)

	if err := a.initialize(); err != nil {
		return a.handleErr(err, false)
	}

	return a.execute(ctx, a.flags.Args())
}

// OnInit takes an init function that is then called after flag parsing and
// before execution.
func (a *App) OnInit(init func() error) {
	a.init = init
}

// PrintVersion prints the version to the app's standard output.
func (a *App) PrintVersion() {
	a.printVersion(false)
}

// PrintHelp prints the help info to the app's error output.
//
// It's exposed so it can be called or assigned to a flag set's usage function.
func (a *App) PrintHelp() {
	a.PrintUsage()

	if a.info.Summary != "" {
		fmt.Fprintln(a.errOut)
		fmt.Fprintln(a.errOut, a.info.Summary)
	}

	a.printFlagDefaults(a.flags)

	fmt.Fprintln(a.errOut)
	a.printVersion(true)
}

// PrintUsage prints the usage to the app's error output.
func (a *App) PrintUsage() {
	fmt.Fprintf(a.errOut, "Usage: %s %s\n", a.info.Name, a.info.Usage)
}

// PrintUsageError prints a standardized usage error to the app's error output.
func (a *App) PrintUsageError(err error) {
	fmt.Fprintf(a.errOut, "%s: %v\n", a.info.Name, err)
	fmt.Fprintf(a.errOut, "Run '%s --help' for usage.\n", a.info.Name)
}

func (a *App) intercept() bool {
	if a.flags.requestedHelp {
		a.PrintHelp()
		return true
	}

	if a.flags.requestedVersion {
		a.PrintVersion()
		return true
	}

	return false
}

func (a *App) initialize() error {
	if a.init == nil {
		return nil
	}

	return a.init()
}

func (a *App) execute(ctx context.Context, arguments []string) int {
	if a.exec == nil {
		return 0
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	err := a.exec(ctx, *a.args, arguments)
	if err == nil || errors.Is(err, context.Canceled) {
		return 0
	}

	return a.handleErr(err, true)
}

// handleErr reports field failures through the reporter, and prints any other
// error.
func (a *App) handleErr(err error, pad bool) int {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return a.reporter.Report(fieldErr)
	}

	return a.printErr(err, pad)
}

func (a *App) printErr(err error, pad bool) int {
	msgFmt := "Error: %v\n"

	if pad {
		msgFmt = "\n" + msgFmt
	}

	fmt.Fprintf(a.errOut, msgFmt, err)

	var statusCodeErr StatusCodeError
	if errors.As(err, &statusCodeErr) {
		return statusCodeErr.StatusCode()
	}

	return 1
}

func (a *App) printVersion(toErr bool) {
	out := a.out
	if toErr {
		out = a.errOut
	}

	identifier := a.info.Name
	if a.info.Version != "" {
		identifier = fmt.Sprintf("%s %s", identifier, a.info.Version)
	}

	fmt.Fprintf(out, "%s (%s/%s)\n", identifier, runtime.GOOS, runtime.GOARCH)
}

func inferAppName() string {
	basename := filepath.Base(os.Args[0])
	extension := filepath.Ext(basename)

	return strings.TrimSuffix(basename, extension)
}
