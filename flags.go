// Copyright © 2023 Trevor N. Suarez (Rican7)

package argfail

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// Flags defines an interface for command flags.
//
// Both the standard library's *flag.FlagSet and *pflag.FlagSet (from
// github.com/spf13/pflag) satisfy it.
type Flags interface {
	Parse(arguments []string) error
	Args() []string
	PrintDefaults()
	SetOutput(output io.Writer)
}

type boolFlagger interface {
	BoolVar(p *bool, name string, value bool, usage string)
}

type boolShortFlagger interface {
	BoolVarP(p *bool, name string, shorthand string, value bool, usage string)
}

type stringFlagger interface {
	StringVar(p *string, name string, value string, usage string)
}

type stringShortFlagger interface {
	StringVarP(p *string, name string, shorthand string, value string, usage string)
}

type countShortFlagger interface {
	CountVarP(p *int, name string, shorthand string, usage string)
}

type valueFlagger interface {
	Var(value flag.Value, name string, usage string)
}

const (
	verboseUsage = "Increase the log level (repeatable)"
	quietUsage   = "Decrease the log level (repeatable)"
	inputUsage   = "Path of the input file"
	outputUsage  = "Path of the output file"
)

type flagSet struct {
	Flags

	requestedHelp    bool
	requestedVersion bool

	baseLevel int
	verbose   int
	quiet     int
}

// countValue is a repeatable boolean flag for the standard library's flag
// package, counting how many times it was set.
type countValue int

func (c *countValue) String() string {
	if c == nil {
		return "0"
	}

	return strconv.Itoa(int(*c))
}

func (c *countValue) Set(value string) error {
	set, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}

	if set {
		*c++
	}

	return nil
}

func (c *countValue) IsBoolFlag() bool {
	return true
}

func createDefaultFlags(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func (a *App) setupFlagSet(flagSet *flagSet) {
	flagSet.SetOutput(a.errOut)

	helpDescription := "Display the help message"

	switch flags := flagSet.Flags.(type) {
	case boolShortFlagger:
		flags.BoolVarP(&flagSet.requestedHelp, "help", "h", flagSet.requestedHelp, helpDescription)
	case boolFlagger:
		flags.BoolVar(&flagSet.requestedHelp, "help", flagSet.requestedHelp, helpDescription)
	}

	if flags, ok := flagSet.Flags.(boolFlagger); ok {
		flags.BoolVar(&flagSet.requestedVersion, "version", flagSet.requestedVersion, "Display the application version")
	}
}

// bindArgs binds the fields of args to the flag set.
//
// Flag libraries with shorthand support get long names with single letter
// shorthands. Others get the single letter names only.
func bindArgs(flagSet *flagSet, args *Args) {
	flagSet.baseLevel = args.LogLevel

	switch flags := flagSet.Flags.(type) {
	case countShortFlagger:
		flags.CountVarP(&flagSet.verbose, "verbose", "v", verboseUsage)
		flags.CountVarP(&flagSet.quiet, "quiet", "q", quietUsage)
	case valueFlagger:
		flags.Var((*countValue)(&flagSet.verbose), "v", verboseUsage)
		flags.Var((*countValue)(&flagSet.quiet), "q", quietUsage)
	}

	switch flags := flagSet.Flags.(type) {
	case stringShortFlagger:
		flags.StringVarP(&args.InputFile, "input", "i", args.InputFile, inputUsage)
		flags.StringVarP(&args.OutputFile, "output", "o", args.OutputFile, outputUsage)
	case stringFlagger:
		flags.StringVar(&args.InputFile, "i", args.InputFile, inputUsage)
		flags.StringVar(&args.OutputFile, "o", args.OutputFile, outputUsage)
	}
}

// applyLevel sets the log level of args from the bound level and the parsed
// verbosity counts.
func (f *flagSet) applyLevel(args *Args) {
	args.LogLevel = f.baseLevel + f.verbose - f.quiet

	f.verbose = 0
	f.quiet = 0
}

// printFlagDefaults wraps the writing of flag default values
func (a *App) printFlagDefaults(flags Flags) {
	var buffer bytes.Buffer
	originalOut := a.errOut

	flags.SetOutput(&buffer)
	flags.PrintDefaults()

	if buffer.Len() > 0 {
		// Only write a header if the printing of defaults actually wrote bytes
		fmt.Fprintf(originalOut, "\nOptions:\n\n")

		buffer.WriteTo(originalOut)
	}

	// Restore the original output
	flags.SetOutput(originalOut)
}

func setUsage(flagSet *flagSet, usageFunc func()) {
	switch flags := flagSet.Flags.(type) {
	case *flag.FlagSet:
		flags.Usage = usageFunc
	default:
		// Other flag packages (like github.com/spf13/pflag) can't be
		// detected through the type-system, as the usage is a struct field.
		// So we use reflection.
		usageReflect := reflectFlagsUsage(flagSet.Flags)
		if usageReflect == nil || !usageReflect.CanSet() {
			return
		}

		usageReflect.Set(reflect.ValueOf(usageFunc))
	}
}

func reflectFlagsUsage(flags Flags) *reflect.Value {
	flagsReflect := reflect.ValueOf(flags)
	for flagsReflect.Kind() == reflect.Pointer || flagsReflect.Kind() == reflect.Interface {
		flagsReflect = flagsReflect.Elem()
	}

	if flagsReflect.Kind() != reflect.Struct {
		return nil
	}

	usageReflect := flagsReflect.FieldByName("Usage")
	if !usageReflect.IsValid() || !usageReflect.Type().AssignableTo(reflect.TypeOf(flag.Usage)) {
		return nil
	}

	return &usageReflect
}
