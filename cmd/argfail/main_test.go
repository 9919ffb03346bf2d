package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	flag.Parse()

	// Set the args to just the executable name
	// (removing passed flags to the test executable)
	os.Args = os.Args[0:1]

	os.Exit(m.Run())
}

// chdir moves into a fresh temporary directory for the duration of the test.
func chdir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	original, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.Chdir(original) })

	return dir
}

func TestRun_MissingDefaultInputFile(t *testing.T) {
	chdir(t)

	var out, errOut bytes.Buffer

	exitCode := run(context.Background(), nil, &out, &errOut)

	if want := "-i myprogram.docopt\nCan't open input file.\n"; out.String() != want {
		t.Errorf("run wrote %q, want %q", out.String(), want)
	}

	if exitCode == 0 {
		t.Error("run gave a zero exit code, wanted non-zero")
	}

	if errOut.Len() != 0 {
		t.Errorf("run wrote %q to the error output, wanted nothing", errOut.String())
	}
}

func TestRun_Failures(t *testing.T) {
	for testName, testData := range map[string]struct {
		arguments []string
		want      string
	}{
		"log level too high": {
			arguments: []string{"-vvvv"},
			want:      "-v | -q\nLog level out of range.\n",
		},
		"log level too low": {
			arguments: []string{"-q", "-q", "--quiet"},
			want:      "-v | -q\nLog level out of range.\n",
		},
		"missing input file": {
			arguments: []string{"-i", "does-not-exist.docopt"},
			want:      "-i does-not-exist.docopt\nCan't open input file.\n",
		},
		"uncreatable output file": {
			arguments: []string{"-i", "input", "-o", filepath.Join("missing-dir", "output")},
			want:      "-o\nCan't open output file.\n",
		},
	} {
		t.Run(testName, func(t *testing.T) {
			dir := chdir(t)

			if err := os.WriteFile(filepath.Join(dir, "input"), []byte("data"), 0o600); err != nil {
				t.Fatal(err)
			}

			var out bytes.Buffer

			exitCode := run(context.Background(), testData.arguments, &out, &bytes.Buffer{})

			if out.String() != testData.want {
				t.Errorf("run wrote %q, want %q", out.String(), testData.want)
			}

			if exitCode == 0 {
				t.Error("run gave a zero exit code, wanted non-zero")
			}
		})
	}
}

func TestRun_Copies(t *testing.T) {
	dir := chdir(t)

	if err := os.WriteFile(filepath.Join(dir, "in.txt"), []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer

	exitCode := run(context.Background(), []string{"-v", "--input", "in.txt", "-o", "out.txt"}, &out, &errOut)
	if exitCode != 0 {
		t.Fatalf("run gave exit code %d, wanted 0 (stderr: %q)", exitCode, errOut.String())
	}

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "hello" {
		t.Errorf("output file contains %q, want %q", got, "hello")
	}

	if want := "copied 5 bytes from \"in.txt\" to \"out.txt\"\n"; errOut.String() != want {
		t.Errorf("run wrote %q to the error output, want %q", errOut.String(), want)
	}

	if out.Len() != 0 {
		t.Errorf("run wrote %q, wanted nothing", out.String())
	}
}
