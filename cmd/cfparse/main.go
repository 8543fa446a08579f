package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cfgparse"
	"github.com/npillmayer/cfgparse/cyk"
	"github.com/npillmayer/cfgparse/grammars"
	"github.com/npillmayer/cfgparse/ll1"
	"github.com/npillmayer/cfgparse/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options collects the command line flags.
type options struct {
	cyk       string // grammar file for CYK parsing
	recognise bool
	table     string // LL(1) table file
	pretty    bool
	repl      bool
	trace     string
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	cmd := newRootCommand()
	cmd.SetOut(os.Stdout)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "cfparse [flags] input_file",
		Short: "cfparse checks a string against an LL(1) parse table or a CNF grammar.",
		Long: `cfparse reads a string from input_file and decides whether it is a
sentence of a context-free language. White space in input_file is ignored.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	addFlags(cmd.Flags(), opts)
	return cmd
}

// addFlags registers the command line flags of cfparse.
func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.cyk, "cyk", "", "use the CYK parser with a grammar in CNF from `GRAMMAR`")
	flags.BoolVar(&opts.recognise, "recognise", false, "CYK: print the chart instead of the derivation tree")
	flags.StringVar(&opts.table, "table", "", "load the LL(1) parse table from `FILE` (TOML or YAML)")
	flags.BoolVar(&opts.pretty, "pretty", false, "render trees and charts graphically")
	flags.BoolVar(&opts.repl, "repl", false, "start an interactive session")
	flags.StringVar(&opts.trace, "trace", "Error", "trace level [Debug|Info|Error]")
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	level := tracing.TraceLevelFromString(opts.trace)
	for _, key := range []string{"cfgparse.cli", "cfgparse.ll1", "cfgparse.cyk", "cfgparse.scanner"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	if opts.recognise && opts.cyk == "" {
		return errors.New("flag --recognise requires --cyk")
	}
	chk, err := newChecker(opts, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if opts.repl {
		return chk.repl()
	}
	if len(args) == 0 {
		return errors.New("missing input_file")
	}
	input, err := scanner.ReadFile(args[0])
	if err != nil {
		return err
	}
	tracer().Infof("input is %q", input)
	_, err = chk.check(input)
	return err
}

// checker runs one of the parsers on an input string and prints the outcome.
type checker struct {
	out       io.Writer
	opts      *options
	ll1       *ll1.Parser
	cyk       *cyk.Parser
	invalid   string
	showSteps bool
}

func newChecker(opts *options, out io.Writer) (*checker, error) {
	chk := &checker{out: out, opts: opts, invalid: cfgparse.ErrorInvalidSymbol}
	if opts.cyk != "" {
		g, err := cyk.LoadGrammarFile(opts.cyk)
		if err != nil {
			return nil, err
		}
		tracer().Infof("grammar %s has fingerprint %s", opts.cyk, g.Fingerprint())
		chk.cyk = cyk.NewParser(g)
		return chk, nil
	}
	c := grammars.IfExprLL1()
	if opts.table != "" {
		var err error
		if c, err = ll1.LoadConfig(opts.table); err != nil {
			return nil, err
		}
	}
	table, err := c.Compile()
	if err != nil {
		return nil, err
	}
	chk.invalid = table.InvalidSymbol()
	chk.showSteps = true
	chk.ll1 = ll1.NewParser(table, ll1.Trace(func(s ll1.Step) {
		if chk.showSteps {
			fmt.Fprintln(chk.out, s)
		}
	}))
	return chk, nil
}

// check parses input and prints the result. Input with symbols outside of the
// alphabet is reported by printing the invalid-symbol text; this is not an error.
func (chk *checker) check(input string) (bool, error) {
	var accepted bool
	var err error
	if chk.cyk != nil {
		accepted, err = chk.checkCYK(input)
	} else {
		accepted, err = chk.ll1.ParseString(input)
	}
	if errors.Is(err, cfgparse.ErrInvalidSymbol) {
		tracer().Infof("%v", err)
		fmt.Fprintln(chk.out, chk.invalid)
		return false, nil
	} else if err != nil {
		return false, err
	}
	if accepted {
		fmt.Fprintln(chk.out, cfgparse.Accepted)
	} else {
		fmt.Fprintln(chk.out, cfgparse.Rejected)
	}
	return accepted, nil
}

func (chk *checker) checkCYK(input string) (bool, error) {
	if chk.opts.recognise {
		result, err := chk.cyk.RecognizeString(input)
		if err != nil || !result.Accepted {
			return false, err
		}
		if chk.opts.pretty {
			printChart(result.Chart)
		} else {
			fmt.Fprintln(chk.out, result.Chart)
		}
		return true, nil
	}
	result, err := chk.cyk.ParseString(input)
	if err != nil || !result.Accepted {
		return false, err
	}
	if chk.opts.pretty {
		printTree(result.Tree)
	} else {
		fmt.Fprintln(chk.out, cyk.Render(result.Tree))
	}
	return true, nil
}
