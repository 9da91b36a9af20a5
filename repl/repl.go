// Package repl implements an interactive calculator over bignum.BigUInt:
// decimal literal parsing, the operators + - * / % << >> and the
// functions pow(base, exp)/gcd(a, b), command history, and bit-length
// threshold watches, built the way an interactive debugger's
// command loop usually is: a line reader feeding a small expression
// lexer/parser, a scrollback history, and watchpoint-style threshold
// callbacks.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lookbusy1344/bignum/bignum"
)

// installSafeAbort overrides bignum's process-exit seam exactly once so
// that a fatal arithmetic contract violation (e.g. a negative
// subtraction typed at the prompt) surfaces to the repl loop as an
// error instead of killing the process outright — the repl is the one
// consumer of bignum that genuinely wants to recover and keep running
// after a bad expression.
var installSafeAbort = sync.OnceFunc(func() {
	bignum.SetExitFunc(func(code int) {
		panic(abortSignal{code})
	})
})

type abortSignal struct{ code int }

// Evaluate parses and evaluates a single expression, returning a
// descriptive error instead of letting a fatal bignum contract
// violation take down the process.
func Evaluate(expr string) (result *bignum.BigUInt, err error) {
	installSafeAbort()

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abortSignal); ok {
				err = fmt.Errorf("arithmetic error: %s", expr)
				return
			}
			panic(r)
		}
	}()

	tokens := Tokenize(expr)
	p := NewParser(tokens)
	return p.Parse()
}

// REPL drives an interactive read-eval-print loop over an io.Reader/
// io.Writer pair, with command history and bit-length threshold
// watches available to the evaluated expressions.
type REPL struct {
	in      *bufio.Scanner
	out     io.Writer
	prompt  string
	history *CommandHistory
	watch   *ThresholdWatcher
}

// New creates a REPL reading commands from in and writing output to out.
func New(in io.Reader, out io.Writer, prompt string, historySize int) *REPL {
	return &REPL{
		in:      bufio.NewScanner(in),
		out:     out,
		prompt:  prompt,
		history: NewCommandHistory(historySize),
		watch:   NewThresholdWatcher(),
	}
}

// History returns the REPL's command history.
func (r *REPL) History() *CommandHistory { return r.history }

// Watch returns the REPL's threshold watcher.
func (r *REPL) Watch() *ThresholdWatcher { return r.watch }

// Run drives the loop until the input is exhausted or a line is
// exactly "exit" or "quit".
func (r *REPL) Run() error {
	for {
		fmt.Fprint(r.out, r.prompt)
		if !r.in.Scan() {
			return r.in.Err()
		}

		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		r.history.Add(line)

		result, err := Evaluate(line)
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			continue
		}

		if t, fired := r.watch.Check(result); fired {
			fmt.Fprintf(r.out, "(threshold %d crossed: %d bits)\n", t.ID, t.Bits)
		}

		fmt.Fprintln(r.out, result.String())
	}
}
