package assistant

import (
	"fmt"

	"github.com/etnz/secondbrain"
)

// Executor maps a decoded Action onto exactly one store mutation and
// produces the short status message shown to the user.
type Executor struct {
	Store *secondbrain.Store
}

// Execute runs the action. Errors are local: nothing is recorded when an
// action fails, and the returned message never contains a stack trace.
func (e *Executor) Execute(a Action) (string, error) {
	switch a.Kind {
	case KindCreateNote:
		note := e.Store.SaveNote(a.Note.Content, "", "")
		return fmt.Sprintf("Note saved: %s", note.Title), nil

	case KindAddEvent:
		event := e.Store.AddEvent(a.Event.Date, a.Event.Title)
		return fmt.Sprintf("Event added on %s: %s", event.Date, event.Title), nil

	case KindUpdateWallet:
		tx, err := e.Store.RecordTransaction(a.Wallet.Amount, a.Wallet.Type, a.Wallet.Description, "")
		if err != nil {
			return "", err
		}
		symbol := e.Store.CurrencySymbol()
		return fmt.Sprintf("Recorded %s: %s%s (%s)", tx.Type, symbol, tx.Amount, tx.Description), nil

	case KindChat:
		return a.Chat, nil

	default:
		return "", fmt.Errorf("unknown action: %q", a.Kind)
	}
}
