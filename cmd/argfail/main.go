// Copyright © 2023 Trevor N. Suarez (Rican7)

// Command argfail copies an input file to an output file, reporting any
// failure by the flag that caused it.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Rican7/argfail"
	flag "github.com/spf13/pflag"
)

const (
	minLogLevel = -2
	maxLogLevel = 3
)

var appInfo = argfail.AppInfo{
	Name:    "argfail",
	Summary: "Copies an input file to an output file.",
	Version: "v0.1.0",
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, arguments []string, out io.Writer, errOut io.Writer) int {
	args := argfail.Args{
		LogLevel:   0,
		InputFile:  "myprogram.docopt",
		OutputFile: "output",
	}

	flagSet := flag.NewFlagSet(appInfo.Name, flag.ContinueOnError)

	app := argfail.NewApp(
		appInfo,
		&args,
		func(ctx context.Context, args argfail.Args, _ []string) error {
			return copyFile(ctx, args, errOut)
		},
		flagSet,
		out,
		errOut,
	)

	return app.Run(ctx, arguments)
}

func copyFile(ctx context.Context, args argfail.Args, errOut io.Writer) error {
	if args.LogLevel < minLogLevel || args.LogLevel > maxLogLevel {
		return argfail.NewFieldError(args, argfail.LogLevel, "Log level out of range.")
	}

	in, err := os.Open(args.InputFile)
	if err != nil {
		return argfail.NewFieldError(args, argfail.InputFile, "Can't open input file.")
	}
	defer in.Close()

	out, err := os.Create(args.OutputFile)
	if err != nil {
		return argfail.NewFieldError(args, argfail.OutputFile, "Can't open output file.")
	}
	defer out.Close()

	if err := ctx.Err(); err != nil {
		return err
	}

	written, err := io.Copy(out, in)
	if err != nil {
		return fmt.Errorf("copying %q to %q: %w", args.InputFile, args.OutputFile, err)
	}

	if args.LogLevel > 0 {
		fmt.Fprintf(errOut, "copied %d bytes from %q to %q\n", written, args.InputFile, args.OutputFile)
	}

	return nil
}
