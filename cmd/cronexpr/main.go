// cronexpr validates Quartz cron expressions and describes them.
//
// Each positional argument is one expression (quote it), "-" reads one
// expression per line from stdin. With --corpus, a YAML file listing valid
// and invalid expressions is checked instead.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/reugn/go-quartz-cron/quartz"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// options holds the parsed command-line flags.
type options struct {
	summary   bool
	canonical bool
	dialect   string
	color     string
	output    string
	next      int
	from      string
	corpus    string
	logLevel  string
	logFormat string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flagSet := pflag.NewFlagSet("cronexpr", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&opts.summary, "summary", "s", false, "print the field summary of each expression")
	flagSet.BoolVarP(&opts.canonical, "canonical", "c", false, "print the canonical form of each expression")
	flagSet.StringVar(&opts.dialect, "dialect", "", "print each expression in another dialect: cronexpr or robfig")
	flagSet.StringVarP(&opts.output, "output", "o", "text", "output format: text or yaml")
	flagSet.IntVarP(&opts.next, "next", "n", 0, "print the next N fire times")
	flagSet.StringVar(&opts.from, "from", "", "RFC 3339 start time for --next, its offset selects the zone (default: now, UTC)")
	flagSet.StringVar(&opts.corpus, "corpus", "", "check a YAML corpus of valid and invalid expressions")
	flagSet.StringVar(&opts.color, "color", "auto", "colorize text output: auto, always or never")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error or off")
	flagSet.StringVar(&opts.logFormat, "log-format", "text", "log format: text, json, console or plain")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return exitOK
	}

	log, err := newLogger(opts.logLevel, opts.logFormat, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	parser := quartz.NewParserWithOptions(quartz.ParserOptions{Logger: log})

	if opts.corpus != "" {
		if flagSet.NArg() > 0 {
			fmt.Fprintf(stderr, "error: unexpected argument with --corpus: %s\n", flagSet.Arg(0))
			return exitUsage
		}
		result, err := checkCorpus(parser, opts.corpus)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		log.Info("Checked corpus", "file", opts.corpus,
			"expressions", result.checked, "mismatches", len(result.mismatches))
		result.write(stdout)
		if len(result.mismatches) > 0 {
			return exitInvalid
		}
		return exitOK
	}

	if opts.output != "text" && opts.output != "yaml" {
		fmt.Fprintf(stderr, "error: unknown output format %q\n", opts.output)
		return exitUsage
	}
	if opts.dialect != "" && opts.dialect != "cronexpr" && opts.dialect != "robfig" {
		fmt.Fprintf(stderr, "error: unknown dialect %q\n", opts.dialect)
		return exitUsage
	}
	styles, err := newPalette(opts.color, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if opts.next < 0 {
		fmt.Fprintf(stderr, "error: --next must not be negative\n")
		return exitUsage
	}
	from := time.Now().UTC()
	if opts.from != "" {
		if from, err = time.Parse(time.RFC3339, opts.from); err != nil {
			fmt.Fprintf(stderr, "error: invalid --from: %v\n", err)
			return exitUsage
		}
	}

	expressions, err := readExpressions(flagSet.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if len(expressions) == 0 {
		fmt.Fprintln(stderr, "error: no expressions given")
		printHelp(stderr, flagSet)
		return exitUsage
	}

	exitCode := exitOK
	reports := make([]*report, 0, len(expressions))
	for _, expression := range expressions {
		r := newReport(parser, expression, &opts, from)
		if !r.Valid {
			exitCode = exitInvalid
		}
		reports = append(reports, r)
	}

	if opts.output == "yaml" {
		err = writeYAML(stdout, reports)
	} else {
		err = writeText(stdout, reports, styles)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	return exitCode
}

// readExpressions expands the "-" argument into the non-empty lines of stdin.
func readExpressions(args []string, stdin io.Reader) ([]string, error) {
	expressions := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "-" {
			expressions = append(expressions, arg)
			continue
		}
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				expressions = append(expressions, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}
	return expressions, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `cronexpr validates Quartz cron expressions and describes them.

Usage:
  cronexpr [flags] EXPRESSION...
  cronexpr [flags] -            (one expression per line on stdin)
  cronexpr --corpus FILE        (YAML, or JSON with comments for .json/.jsonc)

Examples:
  cronexpr --summary "0 15 10 ? * MON-FRI"
  cronexpr --next 5 --from 2024-01-01T00:00:00Z "0 0 12 L * ?"
  cronexpr --output yaml --canonical "0 0 0 ? NOV-FEB SUN#2"

Exit status is 0 when every expression is valid, 1 when at least one is
invalid (or the corpus does not match), and 2 on usage errors.

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
