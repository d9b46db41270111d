package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for command parsing.
const DefaultModel = "gemini-2.5-flash"

const prompt = "2ndbrain> "

// systemInstruction demands the raw JSON action envelope from the model.
func systemInstruction(now time.Time) string {
	return fmt.Sprintf(`You are the central AI controller for a productivity app called 2ndBrain.
Current Context:
- Date: %s
- Time: %s

You must communicate ONLY via a JSON object with an "action" and "payload".
Do not include markdown formatting like `+"```json"+`. Just return the raw JSON object.

Supported Actions:
1. "create_note": payload is a string (the note content).
2. "add_event": payload is an object { "date": "YYYY-MM-DD", "title": "Event Title" }. If the user says "tomorrow", calculate the date relative to the current date.
3. "update_wallet": payload is an object { "amount": number, "type": "income" | "expense", "description": "string" }. Extract a short description from the prompt if possible (e.g. "Groceries", "Salary").
4. "chat": payload is a string (for general questions, conversational replies, or confirmations).

Example Responses:
{"action": "create_note", "payload": "Buy groceries"}
{"action": "add_event", "payload": {"date": "2025-10-25", "title": "Team Sync"}}
{"action": "update_wallet", "payload": {"amount": 50, "type": "expense", "description": "Coffee"}}
{"action": "chat", "payload": "I have updated your records."}`,
		now.Format("Monday, January 2, 2006"),
		now.Format("15:04"))
}

// Assistant is the interactive command bar. It sends each prompt to
// Gemini, decodes the returned action envelope and executes it.
type Assistant struct {
	w     io.Writer
	r     *bufio.Reader
	exec  *Executor
	Model string
}

// New creates an Assistant writing to w, reading user input from r, and
// executing actions through exec.
func New(w io.Writer, r io.Reader, exec *Executor) *Assistant {
	return &Assistant{
		w:     w,
		r:     bufio.NewReader(r),
		exec:  exec,
		Model: DefaultModel,
	}
}

// Send asks the model to translate a single prompt into an Action.
func (a *Assistant) Send(ctx context.Context, client *genai.Client, input string) (Action, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(systemInstruction(time.Now()), genai.RoleUser),
	}
	resp, err := client.Models.GenerateContent(ctx, a.Model, genai.Text(input), config)
	if err != nil {
		return Action{}, fmt.Errorf("generation failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return Action{}, fmt.Errorf("no response generated")
	}
	return DecodeAction([]byte(text))
}

// Run starts the interactive session. Initial prompts are consumed before
// reading from the input; "bye" (or EOF) ends the session. A prompt the
// model or the decoder cannot handle produces a short apology, never an
// aborted session and never partial state.
func (a *Assistant) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to 2ndBrain. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		action, err := a.Send(ctx, client, input)
		if err != nil {
			fmt.Fprintf(a.w, "Sorry, I could not parse that command: %v\n", err)
			continue
		}
		message, err := a.exec.Execute(action)
		if err != nil {
			fmt.Fprintf(a.w, "Sorry, that did not work: %v\n", err)
			continue
		}
		fmt.Fprintln(a.w, message)
	}
}
