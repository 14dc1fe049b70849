package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/require"
	"rpncalc/rpn"
)

type scriptedReader struct {
	lines   []string
	prompts int
	onRead  func()
}

// abortLine in a script stands for Ctrl-C at the prompt.
const abortLine = "\x03"

func (r *scriptedReader) Prompt(string) (string, error) {
	r.prompts++
	if r.onRead != nil {
		r.onRead()
	}
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	if line == abortLine {
		return "", liner.ErrPromptAborted
	}
	return line, nil
}

type recordingSink struct {
	values []float64
	err    error
}

func (s *recordingSink) Push(_ context.Context, value float64, _ time.Time) error {
	s.values = append(s.values, value)
	return s.err
}

func runLines(failFast bool, sink ResultSink, lines ...string) (int, string, string) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	repl := &Repl{
		session:  rpn.NewSession(),
		reader:   &scriptedReader{lines: lines},
		out:      out,
		errOut:   errOut,
		failFast: failFast,
		sink:     sink,
	}
	status := repl.Run(context.Background())
	return status, out.String(), errOut.String()
}

func TestRepl(t *testing.T) {
	t.Run("evaluate and assign", func(t *testing.T) {
		status, out, errOut := runLines(false, nil, "3 4 +", "", "x = 5", "x 2 *", "exit", "1 1 +")
		require.EqualValues(t, 0, status)
		require.Empty(t, errOut)
		require.EqualValues(t, "result: 7\nvariable 'x' defined as 5\nresult: 10\n", out)
	})
	t.Run("errors keep the session alive", func(t *testing.T) {
		status, out, errOut := runLines(false, nil, "1 foo", "x = abc", "sin", "1 2", "2 2 *")
		require.EqualValues(t, 0, status)
		require.Contains(t, errOut, "unknown token: foo")
		require.Contains(t, errOut, "malformed variable assignment")
		require.Contains(t, errOut, "'sin'")
		require.Contains(t, errOut, "invalid expression")
		require.True(t, strings.HasSuffix(out, "result: 4\n\n"))
	})
	t.Run("fail fast", func(t *testing.T) {
		status, out, _ := runLines(true, nil, "x = abc", "1 foo", "2 2 *")
		require.EqualValues(t, 1, status)
		require.Empty(t, out)
	})
	t.Run("listing", func(t *testing.T) {
		_, out, _ := runLines(false, nil, "b = 2", "a = 1.5", "vars", "funcs")
		require.True(t, strings.HasSuffix(out, "a = 1.5\nb = 2\n\n"))
	})
	t.Run("results reach the sink", func(t *testing.T) {
		sink := &recordingSink{err: errors.New("down")}
		status, _, _ := runLines(false, sink, "3 4 +", "y = 1", "1 0 /")
		require.EqualValues(t, 0, status)
		require.Len(t, sink.values, 2)
		require.EqualValues(t, 7, sink.values[0])
	})
}

func TestReplStops(t *testing.T) {
	t.Run("ctrl-c continues", func(t *testing.T) {
		status, out, errOut := runLines(false, nil, "1 2 +", abortLine, "2 2 *")
		require.EqualValues(t, 0, status)
		require.Empty(t, errOut)
		require.EqualValues(t, "result: 3\nresult: 4\n\n", out)
	})
	t.Run("cancelled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		reader := &scriptedReader{lines: []string{"1 1 +"}}
		out := &bytes.Buffer{}
		repl := &Repl{session: rpn.NewSession(), reader: reader, out: out, errOut: out}
		require.EqualValues(t, 0, repl.Run(ctx))
		require.Zero(t, reader.prompts)
		require.Empty(t, out.String())
	})
	t.Run("cancelled between lines", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		reader := &scriptedReader{lines: []string{"1 1 +", "2 2 +", "3 3 +"}}
		reader.onRead = func() {
			if reader.prompts == 2 {
				cancel()
			}
		}
		out := &bytes.Buffer{}
		repl := &Repl{session: rpn.NewSession(), reader: reader, out: out, errOut: out}
		require.EqualValues(t, 0, repl.Run(ctx))
		require.EqualValues(t, 2, reader.prompts)
		require.EqualValues(t, "result: 2\nresult: 4\n", out.String())
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing optional file", func(t *testing.T) {
		root, err := loadConfig(filepath.Join(dir, "none.yml"), false)
		require.NoError(t, err)
		require.EqualValues(t, DefaultPrompt, root.Prompt)
		require.EqualValues(t, DefaultSeries, root.RemoteWrite.Series)
	})
	t.Run("missing required file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(dir, "none.yml"), true)
		require.Error(t, err)
	})
	t.Run("full", func(t *testing.T) {
		path := filepath.Join(dir, "rpncalc.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
prompt: "rpn> "
fail_fast: true
variables:
  pi: 3.5
functions:
  script: functions.lua
  names: [avg]
remote_write:
  url: http://localhost:9090
`), 0o644))
		root, err := loadConfig(path, true)
		require.NoError(t, err)
		require.EqualValues(t, "rpn> ", root.Prompt)
		require.True(t, root.FailFast)
		require.EqualValues(t, 3.5, root.Variables["pi"])
		require.EqualValues(t, filepath.Join(dir, "functions.lua"), root.Functions.Script)
		require.EqualValues(t, []string{"avg"}, root.Functions.Names)
		require.EqualValues(t, "http://localhost:9090", root.RemoteWrite.Url)
		require.EqualValues(t, DefaultSeries, root.RemoteWrite.Series)
	})
}

func TestSetupSession(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "functions.lua")
	require.NoError(t, os.WriteFile(script, []byte("function twice(x) return 2 * x end"), 0o644))

	root := defaultConfig()
	root.Variables = map[string]float64{"k": 4}
	root.Functions = ConfigFunctions{Script: script, Names: []string{"twice"}}

	session, err := setupSession(root)
	require.NoError(t, err)

	out, err := session.Eval("k twice")
	require.NoError(t, err)
	require.EqualValues(t, 8, out.Value)

	root.Functions.Names = []string{"missing"}
	_, err = setupSession(root)
	require.Error(t, err)
}
