// Command exprast parses arithmetic expressions and prints their syntax trees.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/exprast/exprast"
	"github.com/exprast/exprast/ast"
	"github.com/exprast/exprast/lexer"
)

var (
	version = "dev"
	cli     struct {
		Version    kong.VersionFlag `help:"Print version and exit."`
		Config     string           `short:"c" help:"TOML file with default settings." type:"path"`
		Main       bool             `help:"Render each tree as \"main() = <expr>\"."`
		AST        bool             `name:"ast" help:"Also print each tree as Go syntax."`
		Tokens     bool             `help:"Also print the token sequence of each expression."`
		Trace      bool             `help:"Trace the parser passes to stderr."`
		Grammar    bool             `help:"Print the accepted grammar as EBNF and exit."`
		LogLevel   string           `help:"Log level (debug, info, warn, error)."`
		Expression []string         `arg:"" optional:"" help:"Expression to parse. One expression per stdin line is read if omitted."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Parse integer arithmetic expressions into syntax trees.`),
		kong.Vars{"version": version},
	)
	if cli.Grammar {
		fmt.Print(strings.TrimLeft(exprast.Grammar, "\n"))
		return
	}
	cfg, err := loadConfig(cli.Config)
	kctx.FatalIfErrorf(err)
	cfg = cfg.merge(cli.Main, cli.AST, cli.Tokens, cli.Trace, cli.LogLevel)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	kctx.FatalIfErrorf(err, "invalid log level")
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)

	if err := run(cfg, cli.Expression, os.Stdin, os.Stdout, os.Stderr, logger); err != nil {
		logger.Error().Err(err).Msg("exprast failed")
		os.Exit(1)
	}
}

// run parses each expression and writes the results to stdout. Parse failures are logged and
// counted; the remaining expressions are still processed.
func run(cfg config, args []string, stdin io.Reader, stdout, stderr io.Writer, logger zerolog.Logger) error {
	options := []exprast.Option{}
	if cfg.Trace {
		options = append(options, exprast.Trace(stderr))
	}
	parser, err := exprast.New(options...)
	if err != nil {
		return err
	}

	exprs := []string{}
	if len(args) > 0 {
		exprs = append(exprs, strings.Join(args, " "))
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				exprs = append(exprs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read expressions: %w", err)
		}
	}

	failed := 0
	for _, expr := range exprs {
		if cfg.Tokens {
			if tokens, err := lexer.Tokenize(expr); err == nil {
				fmt.Fprintln(stdout, lexer.Format(tokens))
			}
		}
		node, err := parser.ParseString(expr)
		if err != nil {
			logger.Error().Str("expr", expr).Err(err).Msg("parse failed")
			failed++
			continue
		}
		logger.Debug().Str("expr", expr).Int("nodes", ast.Count(node)).Msg("parsed")
		if cfg.WrapMain {
			node = &ast.Main{Body: node}
		}
		fmt.Fprintln(stdout, ast.Render(node))
		if cfg.AST {
			fmt.Fprintln(stdout, ast.Dump(node))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed to parse", failed, len(exprs))
	}
	return nil
}
