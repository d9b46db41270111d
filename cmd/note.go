package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
)

type noteCmd struct {
	content  string
	notebook string
	title    string
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "save a new note" }
func (*noteCmd) Usage() string {
	return `sb note [-b <notebook>] [-t <title>] <content>

  Saves a note. Without -t the title is derived from the first line of the
  content. Without -b the note goes to the General notebook.

Usage Examples:
$ sb note "Call the bank about the wire transfer"
$ sb note -b Work -t "Standup" "Discussed the release plan"
`
}

func (p *noteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.notebook, "b", "", "Notebook to file the note under.")
	f.StringVar(&p.title, "t", "", "Title for the note. Derived from content when empty.")
}

func (p *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	content := strings.Join(f.Args(), " ")

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	note := s.SaveNote(content, p.notebook, p.title)
	fmt.Printf("Saved note %q (%s)\n", note.Title, note.ID)
	return subcommands.ExitSuccess
}

type notesCmd struct {
	notebook string
	remove   string
}

func (*notesCmd) Name() string     { return "notes" }
func (*notesCmd) Synopsis() string { return "list notes, most recent first" }
func (*notesCmd) Usage() string {
	return `sb notes [-b <notebook>] [-rm <id>]

  Lists notes, most recent first. With -rm, deletes the given note instead.
`
}

func (p *notesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.notebook, "b", "", "Only show notes from this notebook.")
	f.StringVar(&p.remove, "rm", "", "Delete the note with this id.")
}

func (p *notesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.remove != "" {
		if err := s.DeleteNote(p.remove); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted note %s\n", p.remove)
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("# Notes\n\n")
	for _, n := range s.Notes() {
		if p.notebook != "" && n.Notebook != p.notebook {
			continue
		}
		created := time.UnixMilli(n.CreatedAt).Format("2006-01-02 15:04")
		fmt.Fprintf(&b, "## %s\n\n- id: `%s`\n- notebook: %s\n- created: %s\n\n%s\n\n", n.Title, n.ID, n.Notebook, created, n.Content)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
