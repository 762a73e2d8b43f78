package main

import (
	"bytes"
	"strings"
	"testing"
)

func testShell(cfg config) (*shell, *bytes.Buffer, *bytes.Buffer) {
	var out, errs bytes.Buffer
	sh := newShell(cfg, &out, &errs)
	sh.colorize(false)
	return sh, &out, &errs
}

func TestSplitDef(t *testing.T) {
	cases := []struct {
		in          string
		name, value string
		ok          bool
	}{
		{"a=1", "a", "1", true},
		{" a = 2+3 ", "a", "2+3", true},
		{"a=b=c", "a", "b=c", true},
		{"a", "", "", false},
	}
	for _, c := range cases {
		name, value, err := splitDef(c.in)
		if (err == nil) != c.ok {
			t.Errorf("%q: wrong error %v", c.in, err)
			continue
		}
		if name != c.name || value != c.value {
			t.Errorf("%q: want %q=%q, got %q=%q", c.in, c.name, c.value, name, value)
		}
	}
}

func TestDefine(t *testing.T) {
	sh, _, _ := testShell(defaultConfig())
	cases := []struct {
		name, expr string
		want       string
	}{
		{"a", "5", "5"},
		{"bb", "1/4", "0.25"},
		{"c", "2-7", "-5"},
		{"d", "1/3", "0.3333333333333333"},
	}
	for _, c := range cases {
		if err := sh.define(c.name, c.expr); err != nil {
			t.Errorf("%s=%s: %v", c.name, c.expr, err)
			continue
		}
		if got := sh.vars[c.name]; got != c.want {
			t.Errorf("%s=%s: want %q, got %q", c.name, c.expr, c.want, got)
		}
	}
	bad := [][2]string{
		{"A", "1"},
		{"x1", "1"},
		{"sin", "1"},
		{"", "1"},
		{"z", "1/0"},
		{"z", "exp(1000)"},
		{"z", "q"},
	}
	for _, c := range bad {
		if err := sh.define(c[0], c[1]); err == nil {
			t.Errorf("%s=%s: no error", c[0], c[1])
		}
	}
	if _, ok := sh.vars["z"]; ok {
		t.Error("failed definition was assigned")
	}
}

func TestDefineAll(t *testing.T) {
	sh, _, _ := testShell(defaultConfig())
	if err := sh.defineAll(map[string]string{"a": "1+1", "b": "sqrt(9)"}); err != nil {
		t.Fatal(err)
	}
	if sh.vars["a"] != "2" || sh.vars["b"] != "3" {
		t.Errorf("wrong vars %v", sh.vars)
	}
	if err := sh.defineAll(map[string]string{"a": "1", "b": "("}); err == nil {
		t.Error("no error for bad definition")
	}
}

func TestEval(t *testing.T) {
	cfg := defaultConfig()
	cfg.RPN = true
	sh, out, errs := testShell(cfg)
	sh.vars["a"] = "5"
	if err := sh.eval("3+a*2"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "3 5 2 * +\n13\n"; got != want {
		t.Errorf("want output %q, got %q", want, got)
	}
	if errs.Len() != 0 {
		t.Errorf("unexpected error output %q", errs)
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3*/5", "ERROR: invalid input\n"},
		{"3+q", "ERROR: unknown input\n"},
		{"(1+2", "ERROR: mismatched parentheses\n"},
		{"1/0", "ERROR: division by zero\n"},
		{"sqrt(0-1)", "ERROR: math domain error\n"},
	}
	for _, c := range cases {
		sh, out, errs := testShell(defaultConfig())
		if err := sh.eval(c.in); err == nil {
			t.Errorf("%q: no error", c.in)
		}
		if out.Len() != 0 {
			t.Errorf("%q: unexpected output %q", c.in, out)
		}
		if errs.String() != c.want {
			t.Errorf("%q: want %q, got %q", c.in, c.want, errs)
		}
	}
}

func TestLines(t *testing.T) {
	sh, out, errs := testShell(defaultConfig())
	in := "1+1\n  2*3  \n1/0\nhelp\n\n4+4\n"
	if err := sh.lines(strings.NewReader(in)); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "2\n6\n") {
		t.Errorf("wrong results: %q", got)
	}
	if !strings.Contains(got, "Trigonometric functions use radians") {
		t.Errorf("help not printed: %q", got)
	}
	if strings.Contains(got, "8") {
		t.Errorf("input after empty line was evaluated: %q", got)
	}
	if errs.String() != "ERROR: division by zero\n" {
		t.Errorf("wrong errors: %q", errs)
	}
}

func TestLinesEOF(t *testing.T) {
	sh, out, _ := testShell(defaultConfig())
	if err := sh.lines(strings.NewReader("2^10")); err != nil {
		t.Fatal(err)
	}
	if out.String() != "1024\n" {
		t.Errorf("wrong output %q", out)
	}
}

func TestRootCmdArgs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errs bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs([]string{"--var", "a=2+3", "--places", "2", "--color", "off", "3+a", "1/3", "3*(4+6)^3-(2+1)*4"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "8\n0.33\n2988\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestRootCmdFailure(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errs bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs([]string{"--color", "off", "1+1", "2/0"})
	if err := cmd.Execute(); err != errFailed {
		t.Errorf("want errFailed, got %v", err)
	}
	if out.String() != "2\n" || errs.String() != "ERROR: division by zero\n" {
		t.Errorf("wrong output %q / %q", out, errs)
	}
}

func TestRootCmdConfig(t *testing.T) {
	p := writeConfig(t, "rpn = true\n[vars]\nx = \"4\"\n")
	var out, errs bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs([]string{"--config", p, "--color", "off", "sqrt(x)"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "4 sqrt\n2\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestRootCmdBadFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, args := range [][]string{
		{"--color", "sometimes", "1"},
		{"--var", "a", "1"},
		{"--var", "Q=1", "1"},
	} {
		cmd := rootCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil || err == errFailed {
			t.Errorf("%q: want setup error, got %v", args, err)
		}
	}
}

func TestRootCmdStdin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errs bytes.Buffer
	cmd := rootCmd()
	cmd.SetIn(strings.NewReader("1+2\n3/0\n\n4*4\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs([]string{"--color", "off", "--var", "k=2"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "3\n"; got != want {
		t.Errorf("want output %q, got %q", want, got)
	}
	if got, want := errs.String(), "ERROR: division by zero\n"; got != want {
		t.Errorf("want errors %q, got %q", want, got)
	}
}
