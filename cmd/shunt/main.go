package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/shunt"
)

// errFailed is returned when at least one expression given as an argument
// could not be evaluated. Each failure has already been reported.
var errFailed = errors.New("some expressions failed")

func main() {
	log.SetFlags(0)
	if err := rootCmd().Execute(); err != nil {
		if errors.Is(err, errFailed) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgpath string
		defs    []string
		rpn     bool
		places  int
		mode    string
	)
	cmd := &cobra.Command{
		Use:   "shunt [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `shunt converts infix arithmetic to postfix and evaluates it.

Each argument is evaluated as a separate expression. With no arguments,
expressions are read from standard input one per line until an empty line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgpath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rpn") {
				cfg.RPN = rpn
			}
			if cmd.Flags().Changed("places") {
				cfg.Places = places
			}
			if cmd.Flags().Changed("color") {
				cfg.Color = mode
			}
			if err := cfg.check(); err != nil {
				return err
			}
			sh := newShell(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err := sh.defineAll(cfg.Vars); err != nil {
				return err
			}
			for _, d := range defs {
				name, val, err := splitDef(d)
				if err != nil {
					return err
				}
				if err := sh.define(name, val); err != nil {
					return err
				}
			}
			useColor := cfg.Color == "on" || (cfg.Color == "auto" && isTerminal(os.Stderr))
			sh.colorize(useColor)

			if len(args) == 0 {
				return sh.run(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			failed := false
			for _, a := range args {
				if sh.eval(a) != nil {
					failed = true
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgpath, "config", "", "config file (default $XDG_CONFIG_HOME/shunt/config.toml)")
	cmd.Flags().StringArrayVar(&defs, "var", nil, "name=value variable definition; value is evaluated (any number of times)")
	cmd.Flags().BoolVar(&rpn, "rpn", false, "print the postfix form of each expression before its result")
	cmd.Flags().IntVar(&places, "places", 3, "decimal places to round results to; negative disables rounding")
	cmd.Flags().StringVar(&mode, "color", "auto", "colorize errors (auto|on|off)")
	return cmd
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// evalOpts converts configuration to evaluation options.
func evalOpts(cfg config) []shunt.EvalOption {
	return []shunt.EvalOption{shunt.Places(cfg.Places)}
}
