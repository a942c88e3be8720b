package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runWithInput(args []string, input string) result {
	var stdout, stderr bytes.Buffer
	code := run(args, stdio{
		stdin:  strings.NewReader(input),
		stdout: &stdout,
		stderr: &stderr,
	})
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRunStdin(t *testing.T) {
	r := runWithInput(nil, "a + b\n// done\n")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "a+b", r.stdout)
	assert.Empty(t, r.stderr)

	r = runWithInput([]string{"-"}, "var  x")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "var x", r.stdout)
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.js")
	output := filepath.Join(dir, "out", "nested", "out.js")
	require.NoError(t, os.WriteFile(input, []byte("function f ( x ) {\n  return x * 2\n}\n"), 0644))

	r := runWithInput([]string{input, "--outfile=" + output}, "")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Empty(t, r.stdout)

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "function f(x){return x*2}", string(contents))
}

func TestRunLexError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.js")
	require.NoError(t, os.WriteFile(input, []byte("x = 1\ny = 'oops"), 0644))

	r := runWithInput([]string{input}, "")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, input+":2:4: error: Unterminated string literal")
	assert.Contains(t, r.stderr, "1 error\n")
}

func TestRunSourcefile(t *testing.T) {
	r := runWithInput([]string{"--sourcefile=lib.js"}, "/* open")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "lib.js:1:0: error: Expected \"*/\" to terminate multi-line comment")
}

func TestRunSilent(t *testing.T) {
	r := runWithInput([]string{"--log-level=silent"}, "'oops")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stderr)
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.js")
	r := runWithInput([]string{missing}, "")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "Could not read from file")
}

func TestRunUsageErrors(t *testing.T) {
	r := runWithInput([]string{"--outfle=x.js"}, "")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, `Invalid flag: "--outfle=x.js" (did you mean "--outfile"?)`)

	r = runWithInput([]string{"--max-line-length=-3"}, "")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, `Invalid value "-3" in "--max-line-length=-3"`)

	r = runWithInput([]string{"a.js", "b.js"}, "")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "Expected at most one input file")

	r = runWithInput([]string{"--color=maybe"}, "")
	assert.Equal(t, 2, r.code)
}

func TestRunMaxLineLength(t *testing.T) {
	r := runWithInput([]string{"--max-line-length=10"}, "var a = 1; var b = 2;")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "var a=1;\nvar b=2;", r.stdout)
}

func TestRunStackLimit(t *testing.T) {
	r := runWithInput([]string{"--stack-limit=1"}, "x = [[1]]\ny")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "x=[[1]]\ny", r.stdout)
	assert.Contains(t, r.stderr, "warning: Brackets are nested more than 1 levels deep")
	assert.Contains(t, r.stderr, "1 warning\n")
}

func TestRunTrace(t *testing.T) {
	r := runWithInput([]string{"--trace"}, "a / b")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "a/b", r.stdout)

	lines := strings.Split(strings.TrimSuffix(r.stderr, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], `"/"`)
	assert.Contains(t, lines[1], "binary-operator")
}

func TestRunTiming(t *testing.T) {
	r := runWithInput([]string{"--timing"}, "a")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stderr, "info: Timing information")
	assert.Contains(t, r.stderr, "Minify: ")
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"in.js", "--outfile=out.js", "--max-line-length=80", "--stack-limit=16", "--trace"})
	require.NoError(t, err)
	assert.Equal(t, "in.js", opts.inputPath)
	assert.Equal(t, "out.js", opts.outfile)
	assert.Equal(t, "in.js", opts.minify.Sourcefile)
	assert.Equal(t, 80, opts.minify.MaxLineLength)
	assert.Equal(t, 16, opts.minify.StackLimit)
	assert.True(t, opts.trace)
	assert.False(t, opts.timing)
}
