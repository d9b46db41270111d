package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/secondbrain"
	"github.com/etnz/secondbrain/date"
	"github.com/google/subcommands"
)

type projectCmd struct {
	client   string
	deadline string
	status   string
	update   string
	remove   string
	list     bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "manage projects" }
func (*projectCmd) Usage() string {
	return `sb project [-client <name>] [-deadline <date>] <name>
sb project -status <status> -update <id>
sb project -rm <id>
sb project -list

  Creates a project (status starts at Planning), changes the status of an
  existing one, deletes one together with all its tasks, or lists the CRM
  dashboard.

Usage Examples:
$ sb project -client "Acme Corp" -deadline 2026-12-01 "Website redesign"
$ sb project -update 17590001 -status "In Progress"
`
}

func (p *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.client, "client", "", "Client the project is for.")
	f.StringVar(&p.deadline, "deadline", "", "Deadline (YYYY-MM-DD).")
	f.StringVar(&p.status, "status", "", "New status (Planning, In Progress, Completed, On Hold).")
	f.StringVar(&p.update, "update", "", "Id of the project to update.")
	f.StringVar(&p.remove, "rm", "", "Delete the project with this id, and its tasks.")
	f.BoolVar(&p.list, "list", false, "Show the CRM dashboard.")
}

func (p *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case p.list:
		return printCRM(s)
	case p.remove != "":
		if err := s.DeleteProject(p.remove); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted project %s and its tasks\n", p.remove)
	case p.update != "":
		status, err := secondbrain.ParseProjectStatus(p.status)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		var found *secondbrain.Project
		for _, pr := range s.Projects() {
			if pr.ID == p.update {
				found = &pr
				break
			}
		}
		if found == nil {
			fmt.Fprintf(os.Stderr, "Error: no project %q\n", p.update)
			return subcommands.ExitFailure
		}
		found.Status = status
		if err := s.UpdateProject(*found); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Project %s is now %s\n", found.Name, status)
	default:
		name := strings.Join(f.Args(), " ")
		if name == "" {
			fmt.Fprintln(os.Stderr, "Error: a project needs a name.")
			return subcommands.ExitUsageError
		}
		var deadline date.Date
		if p.deadline != "" {
			deadline, err = date.Parse(p.deadline)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing deadline: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		pr := s.AddProject(name, p.client, deadline)
		fmt.Printf("Created project %q (%s)\n", pr.Name, pr.ID)
	}
	return subcommands.ExitSuccess
}

func printCRM(s *secondbrain.Store) subcommands.ExitStatus {
	m := s.CRMMetrics()
	symbol := s.CurrencySymbol()

	var b strings.Builder
	b.WriteString("# CRM\n\n")
	fmt.Fprintf(&b, "- Active projects: %d of %d\n", m.ActiveProjects, m.TotalProjects)
	fmt.Fprintf(&b, "- Pipeline: %s%s\n", symbol, m.PipelineValue)
	fmt.Fprintf(&b, "- Collected: %s%s\n\n", symbol, m.CollectedValue)

	b.WriteString("| Project | Progress | Value |\n|---|---|---|\n")
	for _, pp := range m.Projects {
		fmt.Fprintf(&b, "| %s | %.0f%% | %s%s |\n", pp.Name, pp.Progress*100, symbol, pp.Value)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type taskCmd struct {
	project  string
	billable bool
	amount   float64
	done     string
	remove   string
	subtask  string
	list     string
}

func (*taskCmd) Name() string     { return "task" }
func (*taskCmd) Synopsis() string { return "manage project tasks" }
func (*taskCmd) Usage() string {
	return `sb task -project <id> [-billable] [-amount <n>] <title>
sb task -done <id>
sb task -sub <task_id> <title>
sb task -rm <id>
sb task -list [<project_id>]

  Adds a task to a project, marks one completed, adds a subtask, deletes a
  task, or lists tasks.
`
}

func (p *taskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.project, "project", "", "Id of the project the task belongs to.")
	f.BoolVar(&p.billable, "billable", false, "Count the task's amount in pipeline value.")
	f.Float64Var(&p.amount, "amount", 0, "Monetary value of the task.")
	f.StringVar(&p.done, "done", "", "Mark the task with this id completed.")
	f.StringVar(&p.remove, "rm", "", "Delete the task with this id.")
	f.StringVar(&p.subtask, "sub", "", "Add a subtask to the task with this id.")
	f.StringVar(&p.list, "list", "", "List tasks, optionally for one project id ('*' for all).")
}

func (p *taskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	title := strings.Join(f.Args(), " ")

	switch {
	case p.list != "":
		projectID := p.list
		if projectID == "*" {
			projectID = ""
		}
		var b strings.Builder
		b.WriteString("# Tasks\n\n")
		for _, t := range s.Tasks(projectID) {
			mark := " "
			if t.IsCompleted {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s (`%s`)\n", mark, t.Title, t.ID)
			for _, st := range t.Subtasks {
				mark = " "
				if st.IsCompleted {
					mark = "x"
				}
				fmt.Fprintf(&b, "  - [%s] %s\n", mark, st.Title)
			}
		}
		printMarkdown(b.String())
	case p.done != "":
		var found *secondbrain.Task
		for _, t := range s.Tasks("") {
			if t.ID == p.done {
				found = &t
				break
			}
		}
		if found == nil {
			fmt.Fprintf(os.Stderr, "Error: no task %q\n", p.done)
			return subcommands.ExitFailure
		}
		found.IsCompleted = true
		if err := s.UpdateTask(*found); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Completed task %s\n", found.Title)
	case p.subtask != "":
		if title == "" {
			fmt.Fprintln(os.Stderr, "Error: a subtask needs a title.")
			return subcommands.ExitUsageError
		}
		if _, err := s.AddSubtask(p.subtask, title); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added subtask to %s\n", p.subtask)
	case p.remove != "":
		if err := s.DeleteTask(p.remove); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted task %s\n", p.remove)
	default:
		if title == "" {
			fmt.Fprintln(os.Stderr, "Error: a task needs a title.")
			return subcommands.ExitUsageError
		}
		t, err := s.AddTask(p.project, title, p.billable, secondbrain.A(p.amount))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added task %q (%s)\n", t.Title, t.ID)
	}
	return subcommands.ExitSuccess
}
