package argfail

import (
	"errors"
	"testing"
)

var testArgs = Args{
	LogLevel:   0,
	InputFile:  "myprogram.docopt",
	OutputFile: "output",
}

func TestField_String(t *testing.T) {
	for field, want := range map[Field]string{
		LogLevel:   "LogLevel",
		InputFile:  "InputFile",
		OutputFile: "OutputFile",
		Field(0):   "Field(0)",
		Field(42):  "Field(42)",
	} {
		if got := field.String(); got != want {
			t.Errorf("Field(%d).String() returned %q, wanted %q", int(field), got, want)
		}
	}
}

func TestHint(t *testing.T) {
	for testName, testData := range map[string]struct {
		args  Args
		field Field
		want  string
	}{
		"log level": {
			args:  testArgs,
			field: LogLevel,
			want:  "-v | -q",
		},
		"input file": {
			args:  testArgs,
			field: InputFile,
			want:  "-i myprogram.docopt",
		},
		"input file, empty": {
			args:  Args{},
			field: InputFile,
			want:  "-i ",
		},
		"output file": {
			args:  testArgs,
			field: OutputFile,
			want:  "-o",
		},
	} {
		t.Run(testName, func(t *testing.T) {
			got, err := Hint(testData.args, testData.field)
			if err != nil {
				t.Fatalf("Hint returned error: %v", err)
			}

			if got != testData.want {
				t.Errorf("Hint returned %q, wanted %q", got, testData.want)
			}
		})
	}
}

func TestHint_UnknownField(t *testing.T) {
	for _, field := range []Field{Field(0), Field(-1), OutputFile + 1} {
		got, err := Hint(testArgs, field)

		if !errors.Is(err, ErrUnknownField) {
			t.Errorf("Hint(%v) returned error %v, wanted %v", field, err, ErrUnknownField)
		}

		if got != "" {
			t.Errorf("Hint(%v) returned %q, wanted an empty hint", field, got)
		}
	}
}
