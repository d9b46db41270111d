package secondbrain

import "testing"

func TestCurrency(t *testing.T) {
	s := NewMemory()
	if got := s.Currency(); got != "USD" {
		t.Errorf("default currency = %q, want USD", got)
	}
	if got := s.CurrencySymbol(); got != "$" {
		t.Errorf("default symbol = %q, want $", got)
	}

	s.SetCurrency("EUR")
	if got := s.Currency(); got != "EUR" {
		t.Errorf("currency = %q, want EUR", got)
	}
	if got := s.CurrencySymbol(); got != "€" {
		t.Errorf("symbol = %q, want €", got)
	}
}

func TestCurrencySymbolFallback(t *testing.T) {
	s := NewMemory()
	s.SetCurrency("ZZZ")
	// Unknown codes keep a usable symbol.
	if got := s.CurrencySymbol(); got == "" {
		t.Error("symbol for an unknown code is empty, want a fallback")
	}
}

func TestSetCurrencyNotifies(t *testing.T) {
	s := NewMemory()
	calls := 0
	s.Subscribe(func() { calls++ })
	s.SetCurrency("GBP")
	if calls != 1 {
		t.Errorf("got %d notifications, want 1", calls)
	}
}
