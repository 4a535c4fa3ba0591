// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bufbuild/oxyjs"
	"github.com/bufbuild/oxyjs/ast"
	"github.com/bufbuild/oxyjs/internal/config"
	"github.com/bufbuild/oxyjs/internal/taxa"
	"github.com/bufbuild/oxyjs/lexer"
	"github.com/bufbuild/oxyjs/parser"
	"github.com/bufbuild/oxyjs/reporter"
	"github.com/bufbuild/oxyjs/source"
)

const stdinName = "<stdin>"

// errReported is returned by commands that already printed their errors.
var errReported = errors.New("errors were reported")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr zapcore.WriteSyncer

	// Flags.
	configFile string
	jobs       int
	timeout    time.Duration
	strict     bool
	trace      bool
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

// run executes the command line in args and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: zapcore.Lock(zapcore.AddSync(stderr)),
		logger: zap.NewNop(),
	}
	if args == nil {
		// Cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	_ = a.logger.Sync()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(a.stderr, "oxyjs: %v\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "oxyjs [files...]",
		Short: "Parse source files and print their syntax trees",
		Long: `oxyjs parses each file and prints its canonical tree string.

With no files, the program is read from standard input and printed as
"Parsed program: <tree>". Errors are printed with the offending source
line, and the exit status is 1 if any file failed.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTree,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "TOML config file")
	flags.IntVarP(&a.jobs, "jobs", "j", 0, "number of files to parse at once (default: number of CPUs)")
	flags.DurationVar(&a.timeout, "timeout", 0, "give up on files that have not started parsing after this long")
	flags.BoolVar(&a.strict, "strict-assign", false, "reject assignments to anything but a name")
	flags.BoolVar(&a.trace, "trace", false, "write a parser trace to stderr")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "tree [files...]",
			Short: "Print syntax trees (the default)",
			RunE:  a.runTree,
		},
		&cobra.Command{
			Use:   "tokens [file]",
			Short: "Print the token stream of a file",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runTokens,
		},
		&cobra.Command{
			Use:   "stats [files...]",
			Short: "Count syntax tree nodes by kind",
			RunE:  a.runStats,
		},
	)
	return root
}

// setup builds the logger and merges the config file with flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			a.stderr,
			zap.DebugLevel,
		)
		a.logger = zap.New(core)
	}

	if a.configFile != "" {
		cfg, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		a.cfg = *cfg
		a.logger.Debug("loaded config", zap.String("path", a.configFile), zap.Any("config", a.cfg))
	} else {
		a.cfg.ApplyDefaults()
	}

	flags := cmd.Flags()
	if flags.Changed("jobs") {
		a.cfg.Jobs = a.jobs
	}
	if flags.Changed("timeout") {
		a.cfg.Timeout = config.Duration{Duration: a.timeout}
	}
	if flags.Changed("strict-assign") {
		a.cfg.StrictAssignTargets = a.strict
	}
	return a.cfg.Validate()
}

func (a *app) parserOptions() parser.Options {
	opts := a.cfg.ParserOptions()
	if a.trace {
		opts.Trace = a.stderr
	}
	return opts
}

func (a *app) warnings() reporter.Reporter {
	return reporter.NewReporter(nil, func(err reporter.ErrorWithPos) {
		fmt.Fprintf(a.stderr, "warning: %v\n", err)
	})
}

// parse parses every file named in args, or stdin if there are none.
func (a *app) parse(ctx context.Context, args []string) []oxyjs.Result {
	if len(args) == 0 {
		return []oxyjs.Result{a.parseStdin()}
	}

	if a.cfg.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout.Duration)
		defer cancel()
	}

	files := &oxyjs.SourceResolver{}
	compiler := oxyjs.Compiler{
		Resolver: oxyjs.ResolverFunc(func(path string) (oxyjs.SearchResult, error) {
			res, err := files.FindFileByPath(path)
			if err != nil {
				a.logger.Debug("could not open file", zap.String("path", path), zap.Error(err))
			} else {
				a.logger.Debug("opened file", zap.String("path", path))
			}
			return res, err
		}),
		MaxParallelism: a.cfg.Jobs,
		Reporter:       a.warnings(),
		Options:        a.parserOptions(),
	}

	start := time.Now()
	results, _ := compiler.Compile(ctx, args...)
	a.logger.Debug("parsed files",
		zap.Int("files", len(results)),
		zap.Int("jobs", compiler.MaxParallelism),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results
}

func (a *app) parseStdin() oxyjs.Result {
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return oxyjs.Result{Path: stdinName, Err: fmt.Errorf("reading %s: %w", stdinName, err)}
	}
	s := source.NewStream(stdinName, data)
	start := time.Now()
	prog, err := parser.ParseStream(s, reporter.NewHandler(a.warnings()), a.parserOptions())
	a.logger.Debug("parsed stdin", zap.Int("bytes", len(data)), zap.Duration("elapsed", time.Since(start)))
	return oxyjs.Result{Path: stdinName, Program: prog, File: s.File(), Err: err}
}

// report prints the error of each failed result and returns errReported if
// there were any.
func (a *app) report(results []oxyjs.Result) error {
	var failed bool
	for _, r := range results {
		if r.Err != nil {
			failed = true
			fmt.Fprintln(a.stderr, reporter.Render(r.Err, r.File))
		}
	}
	if failed {
		return errReported
	}
	return nil
}

func (a *app) runTree(cmd *cobra.Command, args []string) error {
	results := a.parse(cmd.Context(), args)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		a.logger.Debug("built tree", zap.String("path", r.Path), zap.Int("nodes", countNodes(r.Program)))
		if len(args) == 0 {
			fmt.Fprintf(a.stdout, "Parsed program: %s\n", ast.TreeString(r.Program))
		} else {
			fmt.Fprintf(a.stdout, "%s: %s\n", r.Path, ast.TreeString(r.Program))
		}
	}
	return a.report(results)
}

func (a *app) runTokens(_ *cobra.Command, args []string) error {
	name, data, err := a.readInput(args)
	if err != nil {
		return err
	}
	s := source.NewStream(name, data)
	toks, err := lexer.Tokens(s)
	for _, tok := range toks {
		pos := tok.Pos()
		fmt.Fprintf(a.stdout, "%d:%d\t%v\t%s\n", pos.Line, pos.Col, taxa.Classify(tok), tok.Text)
	}
	if err != nil {
		fmt.Fprintln(a.stderr, reporter.Render(err, s.File()))
		return errReported
	}
	return nil
}

func (a *app) readInput(args []string) (string, []byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(a.stdin)
		return stdinName, data, err
	}
	data, err := os.ReadFile(args[0])
	return args[0], data, err
}

func (a *app) runStats(cmd *cobra.Command, args []string) error {
	results := a.parse(cmd.Context(), args)
	var counts [ast.KindNameExpr + 1]int
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		ast.Walk(r.Program, func(n ast.Node) bool {
			counts[n.Kind()]++
			return true
		})
	}
	for kind, n := range counts {
		if n > 0 {
			fmt.Fprintf(a.stdout, "%v\t%d\n", ast.Kind(kind), n)
		}
	}
	return a.report(results)
}

func countNodes(n ast.Node) int {
	var count int
	ast.Walk(n, func(ast.Node) bool {
		count++
		return true
	})
	return count
}
