package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Vlad-Shcherbina/unlambda/internal/logio"
)

type interpreterChoice string

const (
	interpMetacircular interpreterChoice = "METACIRCULAR"
	interpCPS          interpreterChoice = "CPS"
	interpSmallstep    interpreterChoice = "SMALLSTEP"
)

func (c *interpreterChoice) String() string { return string(*c) }

func (c *interpreterChoice) Set(s string) error {
	switch upper := interpreterChoice(strings.ToUpper(s)); upper {
	case interpMetacircular, interpCPS, interpSmallstep:
		*c = upper
		return nil
	default:
		return fmt.Errorf("unknown interpreter %q (want METACIRCULAR, CPS, or SMALLSTEP)", s)
	}
}

func main() {
	interp := interpSmallstep
	var showTime bool
	flag.Var(&interp, "interpreter", "which evaluator to run: METACIRCULAR, CPS, or SMALLSTEP")
	flag.BoolVar(&showTime, "time", false, "print evaluation wall-clock time to stderr")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	// log.ExitCode() reflects the logger's own state (1 after Errorf, 2
	// after a failure writing the log itself), not this command's codes;
	// spec §6 needs a distinct code 2 for parse errors, so exitCode is
	// tracked here instead of delegated to the logger.
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	if flag.NArg() != 1 {
		log.Errorf("usage: %s [--interpreter=METACIRCULAR|CPS|SMALLSTEP] [--time] <program-file>", os.Args[0])
		exitCode = 1
		return
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Errorf("%v", err)
		exitCode = 1
		return
	}

	term, err := ParseString(string(src))
	if err != nil {
		log.Printf("ERROR", "%s: parse error: %v", color.RedString("syntax"), err)
		exitCode = 2
		return
	}

	ctx := NewContext(os.Stdout, os.Stdin)

	start := time.Now()
	var result Term
	switch interp {
	case interpMetacircular:
		result, err = RunRecursive(term, ctx)
	case interpCPS:
		result, err = RunCPS(term, ctx)
	case interpSmallstep:
		result, err = RunSmallStep(term, ctx)
	}
	elapsed := time.Since(start)

	if ferr := ctx.Out.Flush(); ferr != nil && err == nil {
		err = ferr
	}

	if showTime {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.CyanString("elapsed:"), elapsed)
	}

	if err != nil {
		log.Errorf("%s: %v", color.RedString("runtime"), err)
		exitCode = 1
		return
	}
	_ = result
}
