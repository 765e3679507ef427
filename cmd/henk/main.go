// Command henk is the CLI front end for the term engine in internal/check,
// internal/reduce and internal/term. Since the concrete-syntax parser is
// out of the core's scope (spec.md §1, §6), henk does not read source text:
// it runs the fixed catalog of named scenarios in internal/check, each
// built directly via the five term.Term constructors.
//
// Grounded on cmd/funxy/main.go's manual os.Args/flag-parsing style (no
// CLI framework is introduced here either) and on its use of
// github.com/mattn/go-isatty to decide whether to colorize output.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/henk/internal/check"
	"github.com/funvibe/henk/internal/config"
	"github.com/funvibe/henk/internal/history"
	"github.com/funvibe/henk/internal/obslog"
	"github.com/funvibe/henk/internal/reduce"
	"github.com/funvibe/henk/internal/subst"
	"github.com/funvibe/henk/internal/term"
)

// captureWitnessScenario is the one entry in check.Scenarios() whose point
// is a substitution result, not a synthesized type: its free "x" makes
// ordinary type synthesis fail before the capture-avoidance rename it
// exists to demonstrate ever runs. cmdRun special-cases it below.
const captureWitnessScenario = "capture-witness"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	switch args[0] {
	case "list":
		return cmdList()
	case "run":
		return cmdRun(args[1:])
	case "version":
		fmt.Println(config.Version)
		return 0
	default:
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: henk list | henk run <scenario> [flags] | henk version")
}

func cmdList() int {
	for _, sc := range check.Scenarios() {
		fmt.Printf("%-24s %s\n", sc.Name, sc.Doc)
	}
	return 0
}

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	pretty := fs.Bool("pretty", true, "print the synthesized type")
	doReduce := fs.Bool("reduce", false, "also reduce the term to normal form and re-check it (subject reduction)")
	recordHistory := fs.Bool("history", false, "record this invocation to the sqlite history store")
	configPath := fs.String("config", "", "path to a .henkrc.yaml settings file (default: auto-detect)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		usage()
		return 2
	}
	name := fs.Arg(0)

	scenario, ok := check.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "henk: unknown scenario %q (see `henk list`)\n", name)
		return 1
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "henk: loading config: %v\n", err)
		return 1
	}

	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	color := !config.IsTestMode && isTTY
	requestID := uuid.NewString()
	log := obslog.New()
	obslog.Start(log, requestID, name)

	var outcome string
	var checkErr error
	if name == captureWitnessScenario {
		outcome = renderSubstWitness(scenario, color)
	} else {
		typ, synthErr := check.Synthesize(scenario.Term, nil, cfg)
		checkErr = synthErr
		outcome = render(scenario, typ, checkErr, *pretty, *doReduce, cfg, color)
	}
	obslog.Done(log, requestID, name, checkErr == nil, outcome)

	if *recordHistory && cfg.HistoryPath != "" {
		if err := recordInvocation(cfg.HistoryPath, requestID, name, scenario.Term.String(), outcome, checkErr == nil); err != nil {
			fmt.Fprintf(os.Stderr, "henk: recording history: %v\n", err)
		}
	}

	if checkErr != nil {
		return 1
	}
	return 0
}

func render(scenario check.Scenario, typ interface{ String() string }, checkErr error, pretty, doReduce bool, cfg config.Settings, color bool) string {
	if checkErr != nil {
		msg := fmt.Sprintf("error: %s", checkErr.Error())
		printLine(scenario.Name, msg, color, false)
		return msg
	}

	result := typ.String()
	if pretty {
		printLine(scenario.Name, fmt.Sprintf("type: %s", result), color, true)
	}

	if doReduce {
		nf, steps, redErr := reduce.NFBounded(scenario.Term, cfg.MaxReductionSteps)
		if redErr != nil {
			fmt.Fprintf(os.Stderr, "henk: reduction did not finish: %v\n", redErr)
			return result
		}
		nfType, nfErr := check.Synthesize(nf, nil, cfg)
		if nfErr != nil {
			fmt.Fprintf(os.Stderr, "henk: subject reduction check failed: %v\n", nfErr)
		} else {
			fmt.Printf("  reduced in %s step(s): %s\n  reduced type: %s\n",
				humanize.Comma(int64(steps)), nf.String(), nfType.String())
		}
	}

	return result
}

// renderSubstWitness substitutes Var "y" for "x" in the scenario's term
// and prints the result, which is the actual point of captureWitnessScenario:
// subst must rename the binder "y" before descending so the incoming "y"
// stays free rather than being captured by it.
func renderSubstWitness(scenario check.Scenario, color bool) string {
	result := subst.Subst(scenario.Term, "x", term.Var{Name: "y"})
	msg := fmt.Sprintf("subst(x := y): %s", result.String())
	printLine(scenario.Name, msg, color, true)
	return msg
}

func printLine(scenario, message string, color, ok bool) {
	if !color {
		fmt.Printf("%s: %s\n", scenario, message)
		return
	}
	const (
		green = "\x1b[32m"
		red   = "\x1b[31m"
		reset = "\x1b[0m"
	)
	c := red
	if ok {
		c = green
	}
	fmt.Printf("%s%s: %s%s\n", c, scenario, message, reset)
}

func recordInvocation(path, requestID, scenario, termStr, result string, success bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(ctx, history.Entry{
		RequestID:  requestID,
		Scenario:   scenario,
		Term:       termStr,
		Success:    success,
		Result:     result,
		RecordedAt: time.Now(),
	})
}
