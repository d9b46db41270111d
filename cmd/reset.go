package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "wipe all data and re-seed the defaults" }
func (*resetCmd) Usage() string {
	return `sb reset [-f]

  Deletes every record in the data directory and re-seeds the default
  collections, including the welcome note. Asks for confirmation unless -f
  is given.
`
}

func (p *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "f", false, "Do not ask for confirmation.")
}

func (p *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force {
		fmt.Printf("This wipes everything under %s. Type 'yes' to continue: ", *dataDir)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.ResetAll(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("All data wiped, defaults restored.")
	return subcommands.ExitSuccess
}

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "load sample cards, transactions and contacts" }
func (*demoCmd) Usage() string {
	return `sb demo

  Replaces the wallet and contact collections with a small sample data set.
`
}

func (*demoCmd) SetFlags(f *flag.FlagSet) {}

func (p *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s.LoadDemoData()
	fmt.Println("Demo data loaded.")
	return subcommands.ExitSuccess
}
