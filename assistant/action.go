// Package assistant implements the AI command bar: it turns a user prompt
// into a structured action via Gemini, decodes the action envelope, and
// executes it against the store. The data core never calls into this
// package; it only ever receives plain repository mutations from here.
package assistant

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/secondbrain"
	"github.com/etnz/secondbrain/date"
)

// Kind identifies one of the known assistant actions.
type Kind string

const (
	KindCreateNote   Kind = "create_note"
	KindAddEvent     Kind = "add_event"
	KindUpdateWallet Kind = "update_wallet"
	KindChat         Kind = "chat"
)

// Action is the tagged variant decoded from the model's JSON envelope.
// Only the payload matching Kind is populated.
type Action struct {
	Kind   Kind
	Note   NotePayload
	Event  EventPayload
	Wallet WalletPayload
	Chat   string
}

// NotePayload carries the content of a create_note action.
type NotePayload struct {
	Content string
}

// EventPayload carries the fields of an add_event action.
type EventPayload struct {
	Date  date.Date
	Title string
}

// WalletPayload carries the fields of an update_wallet action.
type WalletPayload struct {
	Amount      secondbrain.Amount
	Type        secondbrain.TxType
	Description string
}

// DecodeAction decodes a raw model response into an Action. Any malformed
// structure is reported as an error; decoding never panics and never
// touches the store.
func DecodeAction(data []byte) (Action, error) {
	var envelope struct {
		Action Kind `json:"action"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return Action{}, fmt.Errorf("could not parse command: %w", err)
	}

	switch envelope.Action {
	case KindCreateNote:
		var body struct {
			Payload string `json:"payload"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return Action{}, fmt.Errorf("could not parse %s payload: %w", envelope.Action, err)
		}
		return Action{Kind: KindCreateNote, Note: NotePayload{Content: body.Payload}}, nil

	case KindChat:
		var body struct {
			Payload string `json:"payload"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return Action{}, fmt.Errorf("could not parse %s payload: %w", envelope.Action, err)
		}
		return Action{Kind: KindChat, Chat: body.Payload}, nil

	case KindAddEvent:
		jobj, err := decodeObject(data)
		if err != nil {
			return Action{}, err
		}
		dateStr, err := payloadString(jobj, "$.payload.date")
		if err != nil {
			return Action{}, err
		}
		on, err := date.Parse(dateStr)
		if err != nil {
			return Action{}, fmt.Errorf("could not parse command: %w", err)
		}
		title, err := payloadString(jobj, "$.payload.title")
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: KindAddEvent, Event: EventPayload{Date: on, Title: title}}, nil

	case KindUpdateWallet:
		jobj, err := decodeObject(data)
		if err != nil {
			return Action{}, err
		}
		amount, err := payloadNumber(jobj, "$.payload.amount")
		if err != nil {
			return Action{}, err
		}
		typStr, err := payloadString(jobj, "$.payload.type")
		if err != nil {
			return Action{}, err
		}
		typ, err := secondbrain.ParseTxType(typStr)
		if err != nil {
			return Action{}, fmt.Errorf("could not parse command: %w", err)
		}
		// Description is optional; the wallet supplies a default.
		description, _ := payloadString(jobj, "$.payload.description")
		return Action{Kind: KindUpdateWallet, Wallet: WalletPayload{
			Amount:      secondbrain.A(amount),
			Type:        typ,
			Description: description,
		}}, nil

	default:
		return Action{}, fmt.Errorf("unknown action: %q", envelope.Action)
	}
}

func decodeObject(data []byte) (any, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("could not parse command: %w", err)
	}
	return jobj, nil
}

// payloadString extracts a string field from the loosely-typed payload.
func payloadString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("could not parse command: missing %s: %w", path, err)
	}
	str, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("could not parse command: %s must be a string, got %T", path, jval)
	}
	return str, nil
}

// payloadNumber extracts a numeric field from the loosely-typed payload.
func payloadNumber(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("could not parse command: missing %s: %w", path, err)
	}
	num, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("could not parse command: %s must be a number, got %T", path, jval)
	}
	return num, nil
}
