// Copyright © 2023 Trevor N. Suarez (Rican7)

package argfail

import (
	"fmt"
	"io"
	"os"
)

// Reporter writes field failures and exits.
type Reporter struct {
	out io.Writer

	exit func(code int)
}

var defaultReporter = NewReporter(nil, nil)

// NewReporter returns an initialized Reporter.
//
// Nil values default to os.Stdout and os.Exit.
func NewReporter(out io.Writer, exit func(code int)) *Reporter {
	if out == nil {
		out = os.Stdout
	}

	if exit == nil {
		exit = os.Exit
	}

	return &Reporter{out: out, exit: exit}
}

// Fail reports a failure of the given field of args with the given message,
// then exits.
//
// It doesn't return unless the Reporter's exit function does.
func Fail(args *Args, field Field, msg string) {
	defaultReporter.Fail(args, field, msg)
}

// Fail reports a failure of the given field of args with the given message,
// then exits.
//
// It doesn't return unless the Reporter's exit function does.
func (r *Reporter) Fail(args *Args, field Field, msg string) {
	var snapshot Args
	if args != nil {
		snapshot = *args
	}

	r.exit(r.Report(NewFieldError(snapshot, field, msg)))
}

// Report writes the hint and the message of the given error to the standard
// output, and returns the status code to exit with.
//
// A failure of an unknown field has an empty hint line. A nil error writes
// nothing.
func (r *Reporter) Report(err *FieldError) int {
	if err == nil {
		return FailStatusCode
	}

	// Unknown fields have no flag to hint at
	hint, _ := err.Hint()

	fmt.Fprintf(r.out, "%s\n%s\n", hint, err.Message)

	return FailStatusCode
}
