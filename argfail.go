// Copyright © 2023 Trevor N. Suarez (Rican7)

// Package argfail provides mechanisms to report command line argument
// failures by the field that caused them.
//
// A failure names one field of a fixed configuration record. The report is a
// usage hint for the flag that sets that field, followed by the failure
// message, and the process then exits with a non-zero status.
package argfail

import (
	"fmt"
)

// Args is the configuration record that command line flags are bound to.
type Args struct {
	LogLevel   int
	InputFile  string
	OutputFile string
}

// Field identifies one of the fields of Args.
type Field int

// The fields of Args.
const (
	LogLevel Field = iota + 1
	InputFile
	OutputFile
)

// String returns the name of the field.
func (f Field) String() string {
	switch f {
	case LogLevel:
		return "LogLevel"
	case InputFile:
		return "InputFile"
	case OutputFile:
		return "OutputFile"
	}

	return fmt.Sprintf("Field(%d)", int(f))
}

// Hint returns the usage hint for the flag that sets the given field.
//
// It returns an error wrapping ErrUnknownField if the field isn't one of the
// fields of Args.
func Hint(args Args, field Field) (string, error) {
	switch field {
	case LogLevel:
		return "-v | -q", nil
	case InputFile:
		return fmt.Sprintf("-i %s", args.InputFile), nil
	case OutputFile:
		return "-o", nil
	}

	return "", fmt.Errorf("%w %v", ErrUnknownField, field)
}
