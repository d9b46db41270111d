package secondbrain

import "time"

// LoadDemoData replaces the cards, transactions and contacts collections
// with a small sample set, so a fresh install has something to look at.
func (s *Store) LoadDemoData() {
	now := s.now()

	cards := []Card{
		{ID: "demo_1", Name: "Main Checking", Bank: "Chase", Type: CardDebit, Balance: A(2450.50), Last4: "4242", Theme: "from-zinc-800 to-zinc-900"},
		{ID: "demo_2", Name: "Savings", Bank: "Citi", Type: CardDebit, Balance: A(12000.00), Last4: "8899", Theme: "from-blue-900 to-blue-950"},
		{ID: "demo_3", Name: "Emergency Cash", Bank: "N/A", Type: CardCash, Balance: A(500.00), Last4: "N/A", Theme: "from-green-900 to-green-950"},
	}
	s.write(colCards, cards)

	txs := []Transaction{
		{ID: "tx_1", Amount: A(3200), Type: TxIncome, Description: "Monthly Salary", Date: now, CardID: "demo_1"},
		{ID: "tx_2", Amount: A(45.50), Type: TxExpense, Description: "Grocery Run", Date: now.Add(-24 * time.Hour), CardID: "demo_1"},
		{ID: "tx_3", Amount: A(150), Type: TxExpense, Description: "Electric Bill", Date: now.Add(-48 * time.Hour), CardID: "demo_1"},
	}
	s.write(colTransactions, txs)

	contacts := []Contact{
		{ID: "c1", Name: "Alice Freeman", Role: "CEO", Company: "Vertex Inc", Status: ContactActive},
		{ID: "c2", Name: "Bob Smith", Role: "Product Lead", Company: "Nexus", Status: ContactLead},
	}
	s.write(colContacts, contacts)

	s.bus.notify()
}
