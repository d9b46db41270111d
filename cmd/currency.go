package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type currencyCmd struct {
	set string
}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or change the display currency" }
func (*currencyCmd) Usage() string {
	return `sb currency [-set <code>]

  Shows the display currency, or changes it with -set. Only the display
  symbol changes; amounts are never converted.

Usage Examples:
$ sb currency -set EUR
`
}

func (p *currencyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "ISO 4217 code to switch the display currency to.")
}

func (p *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.set != "" {
		s.SetCurrency(p.set)
	}
	fmt.Printf("Currency: %s (%s)\n", s.Currency(), s.CurrencySymbol())
	return subcommands.ExitSuccess
}
