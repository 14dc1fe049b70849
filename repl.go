package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"
	"rpncalc/rpn"
)

const exitCommand = "exit"

// LineReader is satisfied by *liner.State.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// ResultSink receives every successfully evaluated result.
type ResultSink interface {
	Push(ctx context.Context, value float64, at time.Time) error
}

type Repl struct {
	session  *rpn.Session
	reader   LineReader
	out      io.Writer
	errOut   io.Writer
	prompt   string
	failFast bool
	sink     ResultSink
	history  func(line string)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (r *Repl) listVariables() {
	for _, name := range r.session.Symbols.Names() {
		value, _ := r.session.Symbols.Lookup(name)
		fmt.Fprintf(r.out, "%v = %v\n", name, formatValue(value))
	}
}

func (r *Repl) listFunctions() {
	for _, name := range r.session.Functions.Names() {
		fmt.Fprintln(r.out, name)
	}
}

// Run reads lines until exit or end of input, and stops before the next prompt
// once ctx is done. The returned status is non-zero only when fail-fast is set
// and an expression failed.
func (r *Repl) Run(ctx context.Context) int {
	for {
		select {
		case <-ctx.Done():
			return 0
		default:
		}

		line, err := r.reader.Prompt(r.prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return 0
		}
		// Ctrl-C drops the current line only
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(r.errOut, "error: %v\n", err)
			return 1
		}

		if line == exitCommand {
			return 0
		}

		switch strings.TrimSpace(line) {
		case "vars":
			r.listVariables()
			continue
		case "funcs":
			r.listFunctions()
			continue
		}

		out, err := r.session.Eval(line)
		if err != nil {
			fmt.Fprintf(r.errOut, "error: %v\n", err)
			var format *rpn.AssignmentFormatError
			if r.failFast && !errors.As(err, &format) {
				return 1
			}
			continue
		}
		if out.Empty {
			continue
		}
		if r.history != nil {
			r.history(line)
		}

		if out.Assigned {
			fmt.Fprintf(r.out, "variable '%v' defined as %v\n", out.Name, formatValue(out.Value))
			continue
		}

		fmt.Fprintf(r.out, "result: %v\n", formatValue(out.Value))
		if r.sink != nil {
			if err := r.sink.Push(ctx, out.Value, time.Now()); err != nil {
				log.Printf("error writing result: %v", err)
			}
		}
	}
}
