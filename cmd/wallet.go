package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/secondbrain"
	"github.com/google/subcommands"
)

type cardCmd struct {
	bank    string
	typ     string
	balance float64
	last4   string
	theme   string
	exclude bool
	remove  string
	list    bool
}

func (*cardCmd) Name() string     { return "card" }
func (*cardCmd) Synopsis() string { return "manage wallet cards" }
func (*cardCmd) Usage() string {
	return `sb card [-bank <name>] [-type <type>] [-balance <n>] [-last4 <digits>] [-exclude] <name>
sb card -rm <id>
sb card -list

  Creates a card (type is credit, debit or cash), deletes one, or lists
  them. A card created with -exclude is left out of net worth.

Usage Examples:
$ sb card -bank "Chase" -type debit -balance 1200.50 -last4 4242 "Main Checking"
`
}

func (p *cardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.bank, "bank", "", "Issuing bank.")
	f.StringVar(&p.typ, "type", "debit", "Card type (credit, debit, cash).")
	f.Float64Var(&p.balance, "balance", 0, "Opening balance.")
	f.StringVar(&p.last4, "last4", "", "Last four digits.")
	f.StringVar(&p.theme, "theme", "", "Display theme.")
	f.BoolVar(&p.exclude, "exclude", false, "Exclude the card from net worth.")
	f.StringVar(&p.remove, "rm", "", "Delete the card with this id.")
	f.BoolVar(&p.list, "list", false, "List all cards.")
}

func (p *cardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case p.list:
		symbol := s.CurrencySymbol()
		var b strings.Builder
		b.WriteString("# Cards\n\n| Name | Bank | Type | Balance | Id |\n|---|---|---|---|---|\n")
		for _, c := range s.Cards() {
			balance := symbol + c.Balance.String()
			if c.ExcludeFromTotals {
				balance += " (excluded)"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | `%s` |\n", c.Name, c.Bank, c.Type, balance, c.ID)
		}
		printMarkdown(b.String())
	case p.remove != "":
		if err := s.DeleteCard(p.remove); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted card %s\n", p.remove)
	default:
		name := strings.Join(f.Args(), " ")
		if name == "" {
			fmt.Fprintln(os.Stderr, "Error: a card needs a name.")
			return subcommands.ExitUsageError
		}
		typ, err := secondbrain.ParseCardType(p.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		c := s.AddCard(secondbrain.Card{
			Name:              name,
			Bank:              p.bank,
			Type:              typ,
			Balance:           secondbrain.A(p.balance),
			Last4:             p.last4,
			Theme:             p.theme,
			ExcludeFromTotals: p.exclude,
		})
		fmt.Printf("Created card %q (%s)\n", c.Name, c.ID)
	}
	return subcommands.ExitSuccess
}

type txCmd struct {
	typ    string
	card   string
	desc   string
	remove string
	list   bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record, delete or list transactions" }
func (*txCmd) Usage() string {
	return `sb tx [-type <income|expense>] [-card <id>] [-desc <text>] <amount>
sb tx -rm <id>
sb tx -list

  Records a transaction against a card (the first card when -card is
  omitted), deletes one (restoring the card balance), or lists all
  transactions, newest first.

Usage Examples:
$ sb tx -type expense -desc "Groceries" 42.30
$ sb tx -type income -desc "Salary" 3000
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "type", "expense", "Transaction type (income, expense).")
	f.StringVar(&p.card, "card", "", "Id of the card to apply the amount to.")
	f.StringVar(&p.desc, "desc", "", "Short description.")
	f.StringVar(&p.remove, "rm", "", "Delete the transaction with this id.")
	f.BoolVar(&p.list, "list", false, "List all transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case p.list:
		symbol := s.CurrencySymbol()
		var b strings.Builder
		b.WriteString("# Transactions\n\n| Date | Description | Type | Amount | Id |\n|---|---|---|---|---|\n")
		for _, t := range s.Transactions() {
			fmt.Fprintf(&b, "| %s | %s | %s | %s%s | `%s` |\n",
				t.Date.Format("2006-01-02"), t.Description, t.Type, symbol, t.Amount, t.ID)
		}
		printMarkdown(b.String())
	case p.remove != "":
		if err := s.DeleteTransaction(p.remove); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted transaction %s\n", p.remove)
	default:
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: exactly one amount is expected.")
			return subcommands.ExitUsageError
		}
		amount, err := strconv.ParseFloat(f.Arg(0), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		typ, err := secondbrain.ParseTxType(p.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		tx, err := s.RecordTransaction(secondbrain.A(amount), typ, p.desc, p.card)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded %s %q of %s (%s)\n", tx.Type, tx.Description, tx.Amount, tx.ID)
	}
	return subcommands.ExitSuccess
}

type networthCmd struct{}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "show total balance across cards" }
func (*networthCmd) Usage() string {
	return `sb networth

  Sums the balances of all cards not excluded from totals.
`
}

func (*networthCmd) SetFlags(f *flag.FlagSet) {}

func (p *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Net worth: %s\n", s.NetWorth().Display(s.Currency()))
	return subcommands.ExitSuccess
}
