package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/zephyrtronium/shunt"
)

const instructions = `Use periods to indicate decimal places
Trigonometric functions use radians
Variable names can only include lowercase letters
Variable value can only be a number
Functions must always be followed by a left parenthesis, i.e. 'ln 2' is not ok
Functions: %s
Enter an empty line to quit

`

// shell evaluates expressions and reports their results.
type shell struct {
	vars shunt.Vars
	opts []shunt.EvalOption
	rpn  bool

	out  io.Writer
	errs io.Writer
	bad  *color.Color
}

func newShell(cfg config, out, errs io.Writer) *shell {
	return &shell{
		vars: make(shunt.Vars),
		opts: evalOpts(cfg),
		rpn:  cfg.RPN,
		out:  out,
		errs: errs,
		bad:  color.New(color.FgRed, color.Bold),
	}
}

// colorize enables or disables colored error messages.
func (sh *shell) colorize(on bool) {
	if on {
		sh.bad.EnableColor()
	} else {
		sh.bad.DisableColor()
	}
}

// splitDef splits a name=value definition.
func splitDef(s string) (name, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), nil
}

// define evaluates expr and assigns the result to the variable name.
func (sh *shell) define(name, expr string) error {
	if !shunt.ValidName(name) {
		return fmt.Errorf("setting %s: variable names must be lowercase letters and not a function name", name)
	}
	r, err := shunt.EvalString(expr, nil, shunt.Places(-1))
	if err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	if math.IsInf(r, 0) {
		return fmt.Errorf("setting %s: value %v is not a number", name, r)
	}
	sh.vars[name] = shunt.Format(r)
	return nil
}

// defineAll defines each variable in vars in name order.
func (sh *shell) defineAll(vars map[string]string) error {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if err := sh.define(k, vars[k]); err != nil {
			return err
		}
	}
	return nil
}

// eval evaluates one expression and prints its result, or its error kind if
// it fails.
func (sh *shell) eval(src string) error {
	e, err := shunt.Parse(src, sh.vars)
	if err == nil {
		if sh.rpn {
			fmt.Fprintln(sh.out, e)
		}
		var r float64
		r, err = e.Eval(sh.opts...)
		if err == nil {
			fmt.Fprintln(sh.out, shunt.Format(r))
			return nil
		}
	}
	sh.bad.Fprintf(sh.errs, "ERROR: %v\n", shunt.KindOf(err))
	return err
}

// line handles one line of input and reports whether to read another.
func (sh *shell) line(s string) bool {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return false
	case "help":
		fmt.Fprintf(sh.out, instructions, strings.Join(shunt.Funcs(), " "))
		return true
	}
	sh.eval(s)
	return true
}

// lines evaluates each line of r until an empty line or EOF.
func (sh *shell) lines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !sh.line(sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// run reads expressions from in. If in is a terminal, it prompts for each
// line on out.
func (sh *shell) run(in io.Reader, out io.Writer) error {
	f, ok := in.(*os.File)
	if !ok || !isTerminal(f) {
		return sh.lines(in)
	}
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, out}, "> ")
	sh.out, sh.errs = t, t
	fmt.Fprintln(t, `Type "help" for instructions.`)
	for {
		s, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !sh.line(s) {
			return nil
		}
	}
}
