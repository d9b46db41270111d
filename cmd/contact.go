package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/secondbrain"
	"github.com/google/subcommands"
)

type contactCmd struct {
	role    string
	company string
	status  string
	update  string
	remove  string
	list    bool
}

func (*contactCmd) Name() string     { return "contact" }
func (*contactCmd) Synopsis() string { return "manage CRM contacts" }
func (*contactCmd) Usage() string {
	return `sb contact [-role <role>] [-company <name>] [-status <status>] <name>
sb contact -update <id> -status <status>
sb contact -rm <id>
sb contact -list

  Creates, updates, deletes or lists contacts. Status is one of Lead,
  Active or Closed; new contacts default to Lead.
`
}

func (p *contactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.role, "role", "", "Contact's role.")
	f.StringVar(&p.company, "company", "", "Contact's company.")
	f.StringVar(&p.status, "status", "", "Pipeline status (Lead, Active, Closed).")
	f.StringVar(&p.update, "update", "", "Id of the contact to update.")
	f.StringVar(&p.remove, "rm", "", "Delete the contact with this id.")
	f.BoolVar(&p.list, "list", false, "List all contacts.")
}

func (p *contactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case p.list:
		var b strings.Builder
		b.WriteString("# Contacts\n\n| Name | Role | Company | Status |\n|---|---|---|---|\n")
		for _, c := range s.Contacts() {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.Name, c.Role, c.Company, c.Status)
		}
		printMarkdown(b.String())
	case p.remove != "":
		if err := s.DeleteContact(p.remove); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted contact %s\n", p.remove)
	case p.update != "":
		status, err := secondbrain.ParseContactStatus(p.status)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		var found *secondbrain.Contact
		for _, c := range s.Contacts() {
			if c.ID == p.update {
				found = &c
				break
			}
		}
		if found == nil {
			fmt.Fprintf(os.Stderr, "Error: no contact %q\n", p.update)
			return subcommands.ExitFailure
		}
		found.Status = status
		if err := s.UpdateContact(*found); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Contact %s is now %s\n", found.Name, status)
	default:
		name := strings.Join(f.Args(), " ")
		if name == "" {
			fmt.Fprintln(os.Stderr, "Error: a contact needs a name.")
			return subcommands.ExitUsageError
		}
		status := secondbrain.ContactLead
		if p.status != "" {
			status, err = secondbrain.ParseContactStatus(p.status)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitUsageError
			}
		}
		c := s.AddContact(secondbrain.Contact{
			Name:    name,
			Role:    p.role,
			Company: p.company,
			Status:  status,
		})
		fmt.Printf("Created contact %q (%s)\n", c.Name, c.ID)
	}
	return subcommands.ExitSuccess
}
