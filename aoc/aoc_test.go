package aoc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
		ok      bool
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
			ok: true,
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line

after-blank
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line

after-blank
`,
			},
			ok: true,
		},
		{
			comment: `/*
want=7
*/`,
			want: sample{want: "7"},
			ok:   true,
		},
		{
			comment: `// want=ok`,
			want:    sample{want: "ok"},
			ok:      true,
		},
		{
			comment: `// D1p1 solves part one.`,
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, %v; want %+v, %v", tt.comment, got, ok, tt.want, tt.ok)
		}
	}
}

const testSource = `package main

/*
want=2

a
bb
*/
func (s testSolver) D1p1() any {
	return nil
}

/*
want=3
*/
func (s testSolver) D1p2() any {
	return nil
}

// D2p1 has no sample.
func (s testSolver) D2p1() any {
	return nil
}
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples([]byte(testSource))
	require.NoError(t, err)
	want := map[string]sample{
		"D1p1": {want: "2", input: "a\nbb\n"},
		"D1p2": {want: "3", input: "a\nbb\n"},
	}
	assert.Equal(t, want, got)

	_, err = extractSamples([]byte("package main\nfunc {"))
	assert.Error(t, err)
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() any {
	return s.Solve(func(input string) (string, error) {
		return fmt.Sprint(len(Lines(input))), nil
	})
}

func (s testSolver) D1p2() any {
	return s.Solve(func(input string) (string, error) {
		return fmt.Sprint(len(strings.Join(Lines(input), ""))), nil
	})
}

func (s testSolver) D2p1() any {
	return s.Solve(func(input string) (string, error) {
		return "", Syntaxf("unreadable")
	})
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	require.NoError(t, err)
	require.Len(t, days, 2)

	var parts []string
	for _, p := range days[1].parts {
		parts = append(parts, p.Name)
	}
	assert.Equal(t, []string{"D1p1", "D1p2"}, parts)
	assert.Equal(t, "1", days[2].parts[0].Part)

	_, err = extractMethods(testSolver{})
	assert.Error(t, err)
}

type badSolver struct {
	*Puzzle
}

func (badSolver) D1p1() string { return "" }

func TestExtractMethodsSignature(t *testing.T) {
	_, err := extractMethods(&badSolver{})
	assert.ErrorContains(t, err, "want func() any")
}

// writeConfig writes a config file pointing the cache at a fresh directory.
func writeConfig(t *testing.T, extra string) (path, cacheDir string) {
	t.Helper()
	t.Setenv("COOKIE", "")
	t.Setenv("AOC_SESSION", "")
	dir := t.TempDir()
	cacheDir = filepath.Join(dir, "cache")
	path = filepath.Join(dir, "config.yaml")
	cfg := fmt.Sprintf("cache_dir: %s\nrequest_interval: 1ms\n%s", cacheDir, extra)
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0600))
	return path, cacheDir
}

func runCommand(t *testing.T, src string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(2023, []byte(src), &testSolver{})
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunSample(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	out, err := runCommand(t, testSource, "--config", cfg, "--day", "1", "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "Running day 1")
	assert.Contains(t, out, "part 1 sample:")
	assert.Contains(t, out, "part 2 sample:")
	assert.Equal(t, 2, strings.Count(out, "✅"))
}

func TestRunSampleMismatch(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	src := strings.Replace(testSource, "want=2", "want=5", 1)
	out, err := runCommand(t, src, "--config", cfg, "--day", "1", "--part", "1", "--sample")
	assert.ErrorContains(t, err, "sample got 2, want 5")
	assert.Contains(t, out, "❌")
}

func TestRunSolverError(t *testing.T) {
	cfg, cacheDir := writeConfig(t, "")
	require.NoError(t, os.MkdirAll(filepath.Join(cacheDir, "2023"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "2023", "2.input"), []byte("x\n"), 0600))
	_, err := runCommand(t, testSource, "--config", cfg, "--day", "2", "--skip-sample")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestRunUnknownDay(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	_, err := runCommand(t, testSource, "--config", cfg, "--day", "9")
	assert.ErrorContains(t, err, "no day 9")
}

func TestRunCachedInput(t *testing.T) {
	cfg, cacheDir := writeConfig(t, "")
	require.NoError(t, os.MkdirAll(filepath.Join(cacheDir, "2023"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "2023", "1.input"), []byte("x\ny\nz\n"), 0600))

	out, err := runCommand(t, testSource, "--config", cfg, "--day", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "part 1: 3 ")
	assert.Contains(t, out, "part 2: 3 ")
}

func TestRunSubmit(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/2023/day/1/answer" || r.FormValue("level") != "1" || r.FormValue("answer") != "3" {
			http.Error(w, "unexpected request", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `<html><body><main><article><p>That's the right answer! You are one gold star closer.</p></article></main></body></html>`)
	}))
	defer srv.Close()

	cfg, cacheDir := writeConfig(t, fmt.Sprintf("session: tok\nbase_url: %s\n", srv.URL))
	require.NoError(t, os.MkdirAll(filepath.Join(cacheDir, "2023"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "2023", "1.input"), []byte("x\ny\nz\n"), 0600))

	args := []string{"--config", cfg, "--day", "1", "--part", "1", "--skip-sample", "--submit"}
	out, err := runCommand(t, testSource, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "That's the right answer")
	assert.EqualValues(t, 1, hits.Load())

	l, err := OpenLedger(cacheDir, 2023, 1)
	require.NoError(t, err)
	require.Len(t, l.Submissions, 1)
	assert.Equal(t, OutcomeCorrect, l.Submissions[0].Outcome)

	// The ledger stops a second submission.
	_, err = runCommand(t, testSource, args...)
	require.NoError(t, err)
	assert.EqualValues(t, 1, hits.Load())
}

func TestFlagConflicts(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	_, err := runCommand(t, testSource, "--config", cfg, "--sample", "--submit")
	assert.Error(t, err)
}

func TestOr(t *testing.T) {
	assert.Equal(t, "b", Or("", "b", "c"))
	assert.Equal(t, 0, Or(0, 0))
}
