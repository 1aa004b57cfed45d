package main

import (
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	money "go-money-parser"
	"io"
	"os"
)

// samples exercised when no arguments are given
var samples = []string{
	"20 Euro",
	"45 Dollar",
	"55.5 Dollar",
	"Dollar",
	"40 Euros",
	"56 €",
	"OneMillion Bitcoin",
}

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = level.NewFilter(logger, level.AllowInfo())

	inputs := os.Args[1:]
	if len(inputs) == 0 {
		inputs = samples
	}

	failed := run(os.Stdout, inputs)
	_ = level.Info(logger).Log("msg", "done", "parsed", len(inputs)-failed, "failed", failed)
}

// run prints the result of parsing each input followed by the bare currency
// "euro", and returns how many inputs failed to parse.
func run(out io.Writer, inputs []string) int {
	failed := 0
	for _, input := range inputs {
		m, err := money.Parse(input)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%q => %s\n", input, describe(err))
			continue
		}
		fmt.Fprintf(out, "%q => %s\n", input, m)
	}

	c, err := money.ParseCurrency("euro")
	if err != nil {
		fmt.Fprintf(out, "%q => %s\n", "euro", describe(err))
		return failed
	}
	fmt.Fprintf(out, "%q => %s\n", "euro", c)
	return failed
}

func describe(err error) string {
	kind, _ := money.KindOf(err)
	return fmt.Sprintf("error[%s]: %v", kind, err)
}
