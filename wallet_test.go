package secondbrain

import (
	"errors"
	"testing"
)

func TestRecordTransactionValidation(t *testing.T) {
	s := NewMemory()

	tests := []struct {
		name   string
		amount Amount
		typ    TxType
	}{
		{"zero amount", A(0), TxExpense},
		{"negative amount", A(-5), TxIncome},
		{"unknown type", A(10), TxType("transfer")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var validation *ValidationError
			_, err := s.RecordTransaction(tc.amount, tc.typ, "", "")
			if !errors.As(err, &validation) {
				t.Errorf("got %v, want a *ValidationError", err)
			}
		})
	}
	if got := len(s.Transactions()); got != 0 {
		t.Errorf("got %d transactions after failed records, want 0", got)
	}
}

func TestRecordThenDeleteRestoresBalance(t *testing.T) {
	s := NewMemory()
	card := s.AddCard(Card{Name: "Main", Balance: A(100)})

	tx, err := s.RecordTransaction(A(30), TxExpense, "Groceries", "")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Cards()[0].Balance; !got.Equal(A(70)) {
		t.Errorf("balance after expense = %s, want 70", got)
	}
	if tx.CardID != card.ID {
		t.Errorf("transaction card = %q, want the first card %q", tx.CardID, card.ID)
	}

	if err := s.DeleteTransaction(tx.ID); err != nil {
		t.Fatal(err)
	}
	if got := s.Cards()[0].Balance; !got.Equal(A(100)) {
		t.Errorf("balance after delete = %s, want the original 100", got)
	}
	if got := len(s.Transactions()); got != 0 {
		t.Errorf("got %d transactions after delete, want 0", got)
	}
}

func TestRecordTransactionIncome(t *testing.T) {
	s := NewMemory()
	s.AddCard(Card{Name: "Main", Balance: A(100)})

	tx, err := s.RecordTransaction(A(25.555), TxIncome, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tx.Description, "Manual Deposit"; got != want {
		t.Errorf("default description = %q, want %q", got, want)
	}
	// Both the stored amount and the balance are rounded to 2 decimals.
	if got := tx.Amount; !got.Equal(A(25.56)) {
		t.Errorf("recorded amount = %s, want 25.56", got)
	}
	if got := s.Cards()[0].Balance; !got.Equal(A(125.56)) {
		t.Errorf("balance = %s, want 125.56", got)
	}
}

func TestRecordTransactionDefaultExpenseDescription(t *testing.T) {
	s := NewMemory()
	tx, err := s.RecordTransaction(A(5), TxExpense, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tx.Description, "Manual Expense"; got != want {
		t.Errorf("default description = %q, want %q", got, want)
	}
}

func TestRecordTransactionCardResolution(t *testing.T) {
	t.Run("no cards at all", func(t *testing.T) {
		s := NewMemory()
		tx, err := s.RecordTransaction(A(10), TxExpense, "bus", "")
		if err != nil {
			t.Fatal(err)
		}
		if tx.CardID != "" {
			t.Errorf("card id = %q, want empty when no card exists", tx.CardID)
		}
	})

	t.Run("explicit card", func(t *testing.T) {
		s := NewMemory()
		s.AddCard(Card{Name: "First", Balance: A(100)})
		second := s.AddCard(Card{Name: "Second", Balance: A(100)})

		tx, err := s.RecordTransaction(A(10), TxExpense, "bus", second.ID)
		if err != nil {
			t.Fatal(err)
		}
		if tx.CardID != second.ID {
			t.Errorf("card id = %q, want %q", tx.CardID, second.ID)
		}
		cards := s.Cards()
		if got := cards[0].Balance; !got.Equal(A(100)) {
			t.Errorf("first card balance = %s, want untouched 100", got)
		}
		if got := cards[1].Balance; !got.Equal(A(90)) {
			t.Errorf("second card balance = %s, want 90", got)
		}
	})

	t.Run("explicit unknown card", func(t *testing.T) {
		s := NewMemory()
		s.AddCard(Card{Name: "First", Balance: A(100)})

		var notFound *NotFoundError
		_, err := s.RecordTransaction(A(10), TxExpense, "bus", "nope")
		if !errors.As(err, &notFound) {
			t.Fatalf("got %v, want a *NotFoundError", err)
		}
		// Nothing was recorded or mutated.
		if got := len(s.Transactions()); got != 0 {
			t.Errorf("got %d transactions, want 0", got)
		}
		if got := s.Cards()[0].Balance; !got.Equal(A(100)) {
			t.Errorf("balance = %s, want untouched 100", got)
		}
	})
}

func TestTransactionsNewestFirst(t *testing.T) {
	s := NewMemory()
	first, _ := s.RecordTransaction(A(1), TxExpense, "a", "")
	second, _ := s.RecordTransaction(A(2), TxExpense, "b", "")

	txs := s.Transactions()
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if txs[0].ID != second.ID || txs[1].ID != first.ID {
		t.Errorf("transactions are not newest first: %q, %q", txs[0].Description, txs[1].Description)
	}
}

func TestDeleteTransactionUnlinked(t *testing.T) {
	s := NewMemory()
	tx, err := s.RecordTransaction(A(10), TxExpense, "bus", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteTransaction(tx.ID); err != nil {
		t.Fatal(err)
	}

	var notFound *NotFoundError
	if err := s.DeleteTransaction(tx.ID); !errors.As(err, &notFound) {
		t.Errorf("second delete returned %v, want a *NotFoundError", err)
	}
}

func TestNetWorth(t *testing.T) {
	s := NewMemory()
	if got := s.NetWorth(); !got.IsZero() {
		t.Errorf("net worth with no cards = %s, want 0", got)
	}

	s.AddCard(Card{Name: "Checking", Balance: A(1200.50)})
	s.AddCard(Card{Name: "Savings", Balance: A(800)})
	s.AddCard(Card{Name: "Joint", Balance: A(5000), ExcludeFromTotals: true})

	if got := s.NetWorth(); !got.Equal(A(2000.50)) {
		t.Errorf("net worth = %s, want 2000.50 (excluded card skipped)", got)
	}
}

func TestUpdateCard(t *testing.T) {
	s := NewMemory()
	c := s.AddCard(Card{Name: "Main", Balance: A(10)})

	c.Name = "Primary"
	c.Balance = A(20.999)
	if err := s.UpdateCard(c); err != nil {
		t.Fatal(err)
	}
	got := s.Cards()[0]
	if got.Name != "Primary" || !got.Balance.Equal(A(21)) {
		t.Errorf("got %+v, want name Primary and rounded balance 21", got)
	}

	var notFound *NotFoundError
	if err := s.UpdateCard(Card{ID: "nope"}); !errors.As(err, &notFound) {
		t.Errorf("got %v, want a *NotFoundError", err)
	}
}

func TestDeleteCardKeepsTransactions(t *testing.T) {
	s := NewMemory()
	c := s.AddCard(Card{Name: "Main", Balance: A(100)})
	tx, err := s.RecordTransaction(A(10), TxExpense, "bus", c.ID)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteCard(c.ID); err != nil {
		t.Fatal(err)
	}
	txs := s.Transactions()
	if len(txs) != 1 || txs[0].ID != tx.ID || txs[0].CardID != c.ID {
		t.Errorf("got %v, want the transaction kept with its original card id", txs)
	}
}
