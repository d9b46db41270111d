package secondbrain

import (
	"github.com/etnz/secondbrain/date"
)

// BalancePoint is one day of the reconstructed balance series.
type BalancePoint struct {
	Day    string // short weekday name
	Amount Amount // closing balance for the day, floored at zero
}

// BalanceHistory reconstructs a trailing balance series, oldest first. It
// starts from the current net worth and walks backward day by day,
// reversing each day's transaction effects to recover that day's closing
// balance. Transactions tied to a card excluded from totals are skipped;
// transactions with no card link count.
func (s *Store) BalanceHistory(days int, today date.Date) []BalancePoint {
	excluded := make(map[string]bool)
	for _, c := range s.Cards() {
		if c.ExcludeFromTotals {
			excluded[c.ID] = true
		}
	}
	txs := s.Transactions()

	balance := s.NetWorth()
	series := make([]BalancePoint, days)
	for i := 0; i < days; i++ {
		day := today.Add(-i)
		shown := balance
		if shown.IsNegative() {
			shown = Amount{}
		}
		series[days-1-i] = BalancePoint{Day: day.Weekday().String()[:3], Amount: shown}

		// Undo this day's movements to obtain the previous day's close.
		for _, tx := range txs {
			if date.Of(tx.Date) != day || excluded[tx.CardID] {
				continue
			}
			if tx.Type == TxIncome {
				balance = balance.Sub(tx.Amount)
			} else {
				balance = balance.Add(tx.Amount)
			}
		}
	}
	return series
}
