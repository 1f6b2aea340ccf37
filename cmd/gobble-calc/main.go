// Command gobble-calc parses and evaluates arithmetic expressions.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/charmbracelet/log"

	"github.com/gobble-go/gobble"
	"github.com/gobble-go/gobble/examples/arith"
	"github.com/gobble-go/gobble/internal/logging"
)

var version = "dev"

type cli struct {
	Version    kong.VersionFlag `help:"Show version."`
	AST        bool             `name:"ast" help:"Print AST for expression."`
	Trace      bool             `help:"Trace the parse to stderr."`
	LogLevel   string           `help:"Log level (${enum})." default:"info" enum:"debug,info,warn,error"`
	Expression []string         `arg:"" required:"" help:"Expression to evaluate."`
}

func main() {
	var options cli
	kctx := kong.Parse(&options,
		kong.Name("gobble-calc"),
		kong.Description(`A basic expression parser and evaluator.`),
		kong.Vars{"version": version},
	)
	logger := logging.New(os.Stderr, options.LogLevel)
	err := run(&options, os.Stdout, os.Stderr, logger)
	kctx.FatalIfErrorf(err)
}

func run(options *cli, stdout, stderr io.Writer, logger *log.Logger) error {
	input := strings.Join(options.Expression, " ")
	var parseOptions []gobble.Option
	if options.Trace {
		parseOptions = append(parseOptions, gobble.Trace(stderr))
	}
	logger.Debug("parsing", "expression", input)
	expr, err := arith.Parse(input, parseOptions...)
	if err != nil {
		logger.Error("parse failed", "expression", input, "err", err)
		return err
	}
	if options.AST {
		fmt.Fprintln(stdout, repr.String(expr, repr.Indent("  ")))
		return nil
	}
	fmt.Fprintln(stdout, expr, "=", expr.Eval())
	return nil
}
