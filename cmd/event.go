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

type eventCmd struct {
	date string
}

func (*eventCmd) Name() string     { return "event" }
func (*eventCmd) Synopsis() string { return "add a calendar event" }
func (*eventCmd) Usage() string {
	return `sb event [-d <date>] <title>

  Adds a calendar event on the given date (defaults to today).

Usage Examples:
$ sb event -d 2026-09-01 "Dentist appointment"
`
}

func (p *eventCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date of the event (YYYY-MM-DD). Defaults to today.")
}

func (p *eventCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	title := strings.Join(f.Args(), " ")
	if title == "" {
		fmt.Fprintln(os.Stderr, "Error: an event needs a title.")
		return subcommands.ExitUsageError
	}

	on := date.Today()
	if p.date != "" {
		var err error
		on, err = date.Parse(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ev := s.AddEvent(on, title)
	fmt.Printf("Added event %q on %s (%s)\n", ev.Title, ev.Date, ev.ID)
	return subcommands.ExitSuccess
}

type eventsCmd struct {
	date   string
	remove string
}

func (*eventsCmd) Name() string     { return "events" }
func (*eventsCmd) Synopsis() string { return "list calendar events" }
func (*eventsCmd) Usage() string {
	return `sb events [-d <date>] [-rm <id>]

  Lists calendar events, optionally for a single day. With -rm, deletes the
  given event instead.
`
}

func (p *eventsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Only show events on this date (YYYY-MM-DD).")
	f.StringVar(&p.remove, "rm", "", "Delete the event with this id.")
}

func (p *eventsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.remove != "" {
		if err := s.DeleteEvent(p.remove); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted event %s\n", p.remove)
		return subcommands.ExitSuccess
	}

	events := s.Events()
	if p.date != "" {
		on, err := date.Parse(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
		events = s.EventsOn(on)
	}

	var b strings.Builder
	b.WriteString("# Events\n\n")
	for _, ev := range events {
		fmt.Fprintf(&b, "- %s: %s (`%s`)\n", ev.Date, ev.Title, ev.ID)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
