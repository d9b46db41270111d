// Package cmd implements the CLI application to manage a 2ndBrain data
// directory.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/secondbrain"
	"github.com/google/subcommands"
)

// Commands is the full list of subcommands. A main package registers each
// of them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&noteCmd{},
	&notesCmd{},
	&eventCmd{},
	&eventsCmd{},
	&habitCmd{},
	&toggleCmd{},
	&habitsCmd{},
	&projectCmd{},
	&taskCmd{},
	&contactCmd{},
	&cardCmd{},
	&txCmd{},
	&networthCmd{},
	&dashboardCmd{},
	&currencyCmd{},
	&demoCmd{},
	&resetCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the data directory")

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".secondbrain"
	}
	return filepath.Join(home, ".secondbrain")
}

// openStore opens the data directory, creating and seeding it on first use.
func openStore() (*secondbrain.Store, error) {
	s, err := secondbrain.Open(*dataDir)
	if err != nil {
		return nil, fmt.Errorf("could not open data directory %q: %w", *dataDir, err)
	}
	return s, nil
}

// printMarkdown renders markdown to the terminal. On rendering errors the
// raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
