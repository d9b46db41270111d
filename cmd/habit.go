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

type habitCmd struct {
	rename string
	remove string
}

func (*habitCmd) Name() string     { return "habit" }
func (*habitCmd) Synopsis() string { return "create, rename or delete a habit" }
func (*habitCmd) Usage() string {
	return `sb habit [-rename <id>] [-rm <id>] <title>

  Creates a habit with the given title. With -rename, retitles an existing
  habit. With -rm, deletes a habit; its log history is kept.

Usage Examples:
$ sb habit "Morning run"
$ sb habit -rename 17590001 "Evening run"
`
}

func (p *habitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.rename, "rename", "", "Rename the habit with this id.")
	f.StringVar(&p.remove, "rm", "", "Delete the habit with this id.")
}

func (p *habitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	title := strings.Join(f.Args(), " ")

	switch {
	case p.remove != "":
		if err := s.DeleteHabit(p.remove); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted habit %s (history kept)\n", p.remove)
	case p.rename != "":
		if title == "" {
			fmt.Fprintln(os.Stderr, "Error: -rename needs a new title.")
			return subcommands.ExitUsageError
		}
		if err := s.RenameHabit(p.rename, title); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Renamed habit %s to %q\n", p.rename, title)
	default:
		if title == "" {
			fmt.Fprintln(os.Stderr, "Error: a habit needs a title.")
			return subcommands.ExitUsageError
		}
		h := s.AddHabit(title)
		fmt.Printf("Created habit %q (%s)\n", h.Title, h.ID)
	}
	return subcommands.ExitSuccess
}

type toggleCmd struct {
	habit string
	date  string
}

func (*toggleCmd) Name() string     { return "toggle" }
func (*toggleCmd) Synopsis() string { return "flip a habit's completion for a day" }
func (*toggleCmd) Usage() string {
	return `sb toggle -habit <id> [-d <date>]

  Flips whether the habit was completed on the given day (defaults to
  today). Toggling twice restores the previous state.
`
}

func (p *toggleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.habit, "habit", "", "Id of the habit to toggle.")
	f.StringVar(&p.date, "d", "", "Day to toggle (YYYY-MM-DD). Defaults to today.")
}

func (p *toggleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.habit == "" {
		fmt.Fprintln(os.Stderr, "Error: -habit is required.")
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

	s.ToggleHabit(on, p.habit)
	fmt.Printf("Toggled habit %s on %s (productivity: %.0f%%)\n", p.habit, on, s.DailyProductivity(on)*100)
	return subcommands.ExitSuccess
}

type habitsCmd struct{}

func (*habitsCmd) Name() string     { return "habits" }
func (*habitsCmd) Synopsis() string { return "show the habit report" }
func (*habitsCmd) Usage() string {
	return `sb habits

  Shows lifetime completion counts, the 14-day consistency line, current
  streaks and the day-of-week breakdown.
`
}

func (*habitsCmd) SetFlags(f *flag.FlagSet) {}

func (p *habitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stats := s.HabitStats(date.Today())

	var b strings.Builder
	b.WriteString("# Habits\n\n")

	b.WriteString("## Totals\n\n")
	for _, c := range stats.Counts {
		fmt.Fprintf(&b, "- %s: %d completions (`%s`)\n", c.Title, c.Count, c.ID)
	}

	b.WriteString("\n## Consistency (last 14 days)\n\n")
	b.WriteString("| Day | Score |\n|---|---|\n")
	for _, pt := range stats.Consistency {
		fmt.Fprintf(&b, "| %s | %d%% |\n", pt.Day, pt.Score)
	}

	b.WriteString("\n## Streaks\n\n")
	for _, st := range stats.Streaks {
		fmt.Fprintf(&b, "- %s: %d day streak\n", st.Title, st.Streak)
	}

	b.WriteString("\n## By day of week\n\n")
	b.WriteString("| Day | Completions |\n|---|---|\n")
	for _, d := range stats.DayOfWeek {
		fmt.Fprintf(&b, "| %s | %d |\n", d.Day, d.Completions)
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
