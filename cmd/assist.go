package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/secondbrain/assistant"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `sb assist [-model <name>] [initial prompt]

  Starts the AI command bar. Prompts are translated into actions (save a
  note, add an event, record a transaction) and executed. Requires
  GEMINI_API_KEY in the environment.
`
}

func (p *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.model, "model", assistant.DefaultModel, "Gemini model to use.")
}

func (p *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := assistant.New(os.Stdout, os.Stdin, &assistant.Executor{Store: s})
	a.Model = p.model

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
