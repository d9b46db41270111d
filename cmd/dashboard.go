package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/secondbrain/date"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	days int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show activity and balance history" }
func (*dashboardCmd) Usage() string {
	return `sb dashboard [-days <n>]

  Shows activity counts (notes, events, transactions, projects created per
  day, bucketed by weekday) and the balance history for the trailing
  window.
`
}

func (p *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.days, "days", 7, "Length of the trailing window in days.")
}

func (p *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.days < 1 {
		fmt.Fprintln(os.Stderr, "Error: -days must be at least 1.")
		return subcommands.ExitUsageError
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	today := date.Today()
	symbol := s.CurrencySymbol()

	var b strings.Builder
	b.WriteString("# Dashboard\n\n")

	fmt.Fprintf(&b, "## Activity (last %d days)\n\n| Day | Events |\n|---|---|\n", p.days)
	for _, pt := range s.SystemActivity(p.days, today) {
		fmt.Fprintf(&b, "| %s | %d |\n", pt.Day, pt.Count)
	}

	b.WriteString("\n## Balance history\n\n| Day | Balance |\n|---|---|\n")
	for _, pt := range s.BalanceHistory(p.days, today) {
		fmt.Fprintf(&b, "| %s | %s%s |\n", pt.Day, symbol, pt.Amount)
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
