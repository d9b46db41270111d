package secondbrain

import (
	"fmt"
	"time"
)

// CardType distinguishes the kinds of accounts tracked as cards.
type CardType string

const (
	CardCredit CardType = "credit"
	CardDebit  CardType = "debit"
	CardCash   CardType = "cash"
)

// ParseCardType parses a string into a CardType.
func ParseCardType(s string) (CardType, error) {
	switch CardType(s) {
	case CardCredit, CardDebit, CardCash:
		return CardType(s), nil
	default:
		return "", fmt.Errorf("unknown card type: %q", s)
	}
}

// TxType is the direction of a transaction.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case TxIncome, TxExpense:
		return TxType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Card is an account holding a balance. Balance is rounded to 2 decimals
// after every mutation.
type Card struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Bank              string   `json:"bank"`
	Type              CardType `json:"type"`
	Balance           Amount   `json:"balance"`
	Last4             string   `json:"last4"`
	Theme             string   `json:"theme"`
	ExcludeFromTotals bool     `json:"excludeFromTotals"`
}

// Transaction is a single income or expense movement, optionally tied to a
// card. Recording and deleting a card-linked transaction apply exactly
// inverse balance deltas.
type Transaction struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      Amount    `json:"amount"`
	Date        time.Time `json:"date"`
	Type        TxType    `json:"type"`
	CardID      string    `json:"cardId,omitempty"`
}

// Cards returns all cards in creation order.
func (s *Store) Cards() []Card {
	return records[Card](s, colCards)
}

// AddCard creates a card; the id field of the argument is ignored and the
// balance is rounded.
func (s *Store) AddCard(c Card) Card {
	c.ID = newID(s.now())
	c.Balance = c.Balance.Round()
	cards := append(s.Cards(), c)
	s.write(colCards, cards)
	s.bus.notify()
	return c
}

// UpdateCard fully replaces the stored card with the same id.
func (s *Store) UpdateCard(updated Card) error {
	updated.Balance = updated.Balance.Round()
	cards := s.Cards()
	for i, c := range cards {
		if c.ID == updated.ID {
			cards[i] = updated
			s.write(colCards, cards)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "card", ID: updated.ID}
}

// DeleteCard removes the card with the given id. Transactions referencing
// it keep their CardID; like habit log entries, they are historical facts.
func (s *Store) DeleteCard(id string) error {
	cards := s.Cards()
	for i, c := range cards {
		if c.ID == id {
			cards = append(cards[:i], cards[i+1:]...)
			s.write(colCards, cards)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "card", ID: id}
}

// NetWorth sums the balances of all cards not excluded from totals,
// rounded to 2 decimals.
func (s *Store) NetWorth() Amount {
	var total Amount
	for _, c := range s.Cards() {
		if c.ExcludeFromTotals {
			continue
		}
		total = total.Add(c.Balance)
	}
	return total.Round()
}

// Transactions returns all transactions, newest first.
func (s *Store) Transactions() []Transaction {
	return records[Transaction](s, colTransactions)
}

// RecordTransaction records an income or expense movement.
//
// When cardID is empty the first existing card is targeted; when no card
// exists at all the transaction is still recorded, with no card link. A
// resolved card has the amount applied to its balance (added for income,
// subtracted for expense) and rounded. An explicit cardID that matches no
// card is an error and records nothing. Blank descriptions default to
// "Manual Deposit" or "Manual Expense".
func (s *Store) RecordTransaction(amount Amount, typ TxType, description, cardID string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if _, err := ParseTxType(string(typ)); err != nil {
		return Transaction{}, &ValidationError{Field: "type", Reason: err.Error()}
	}

	cards := s.Cards()
	explicit := cardID != ""
	if cardID == "" && len(cards) > 0 {
		cardID = cards[0].ID
	}
	if cardID != "" {
		found := false
		for i, c := range cards {
			if c.ID == cardID {
				cards[i].Balance = applyDelta(c.Balance, amount, typ)
				found = true
				break
			}
		}
		if !found {
			if explicit {
				return Transaction{}, &NotFoundError{Kind: "card", ID: cardID}
			}
			cardID = ""
		} else {
			s.write(colCards, cards)
		}
	}

	if description == "" {
		if typ == TxIncome {
			description = "Manual Deposit"
		} else {
			description = "Manual Expense"
		}
	}

	now := s.now()
	tx := Transaction{
		ID:          newID(now),
		Description: description,
		Amount:      amount.Round(),
		Date:        now,
		Type:        typ,
		CardID:      cardID,
	}
	txs := append([]Transaction{tx}, s.Transactions()...)
	s.write(colTransactions, txs)
	s.bus.notify()
	return tx, nil
}

// DeleteTransaction removes a transaction, first reversing its balance
// effect on the linked card: deleting an income subtracts the amount back
// off, deleting an expense adds it back. The reversal is exactly symmetric
// with RecordTransaction's forward effect.
func (s *Store) DeleteTransaction(id string) error {
	txs := s.Transactions()
	index := -1
	for i, t := range txs {
		if t.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return &NotFoundError{Kind: "transaction", ID: id}
	}
	tx := txs[index]

	if tx.CardID != "" {
		cards := s.Cards()
		for i, c := range cards {
			if c.ID == tx.CardID {
				cards[i].Balance = reverseDelta(c.Balance, tx.Amount, tx.Type)
				s.write(colCards, cards)
				break
			}
		}
	}

	txs = append(txs[:index], txs[index+1:]...)
	s.write(colTransactions, txs)
	s.bus.notify()
	return nil
}

// applyDelta applies a transaction's effect to a balance and rounds.
func applyDelta(balance, amount Amount, typ TxType) Amount {
	if typ == TxIncome {
		return balance.Add(amount).Round()
	}
	return balance.Sub(amount).Round()
}

// reverseDelta applies the exact inverse of applyDelta.
func reverseDelta(balance, amount Amount, typ TxType) Amount {
	if typ == TxIncome {
		return balance.Sub(amount).Round()
	}
	return balance.Add(amount).Round()
}
