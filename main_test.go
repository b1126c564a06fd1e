package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOptions(t *testing.T, args ...string) GlobalOptions {
	t.Helper()
	var options GlobalOptions
	_, err := flags.NewParser(&options, flags.Default&^flags.HelpFlag).ParseArgs(args)
	require.NoError(t, err)
	return options
}

func writeDNA(t *testing.T, dna string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dna.txt")
	require.NoError(t, os.WriteFile(path, []byte(dna), 0o644))
	return path
}

func TestRunStdout(t *testing.T) {

	options := parseOptions(t, writeDNA(t, "TACTTTATT\nATGGC\n"))
	assert.Equal(t, 1, options.Trials)
	assert.Equal(t, "WARNING", options.LogLevel)

	out := bytes.NewBuffer(nil)
	require.NoError(t, run(options, out))
	assert.Equal(t, "Proteins:\n  MK\n  Y\nRemainder: CG\n", out.String())
}

func TestRunOutputFile(t *testing.T) {

	outPath := filepath.Join(t.TempDir(), "report.txt")
	options := parseOptions(t, "-o", outPath, "--mutate", "--seed", "8", writeDNA(t, "TACTTTATTATGGC"))

	stdout := bytes.NewBuffer(nil)
	require.NoError(t, run(options, stdout))
	assert.Zero(t, stdout.Len())

	report, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(report), "Proteins:\n  MK\n  Y\nRemainder: CG\n"))
	assert.Contains(t, string(report), "Mutated remainder:")
}

func TestRunErrors(t *testing.T) {

	dna := writeDNA(t, "ATG")

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing sequence", nil, "missing required parameter"},
		{"missing file", []string{filepath.Join(t.TempDir(), "none.txt")}, "no such file"},
		{"bad trials", []string{"-n", "0", dna}, "--trials"},
		{"invalid base", []string{writeDNA(t, "ATX")}, "'X' at position 2"},
		{"missing table", []string{"-t", "none.csv", dna}, "file access"},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			err := run(parseOptions(t, test.args...), bytes.NewBuffer(nil))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.msg)
		})
	}
}

func TestSetupLogging(t *testing.T) {

	logs := bytes.NewBuffer(nil)
	require.NoError(t, setupLogging(logs, "INFO"))
	log.Info("hello")
	assert.Equal(t, "hello\n", logs.String())

	assert.Error(t, setupLogging(logs, "CHATTY"))
	require.NoError(t, setupLogging(os.Stderr, "WARNING"))
}
