package secondbrain

import (
	"log"

	"github.com/Rhymond/go-money"
)

// Currency returns the wallet's display currency code (ISO 4217). It
// determines the display symbol only; no conversion is ever performed.
func (s *Store) Currency() string {
	code := DefaultCurrency
	if err := s.read(colCurrency, &code); err != nil {
		log.Printf("storage-corruption collection=%q err=%v", colCurrency, err)
		return DefaultCurrency
	}
	if code == "" {
		return DefaultCurrency
	}
	return code
}

// SetCurrency changes the display currency code.
func (s *Store) SetCurrency(code string) {
	s.write(colCurrency, code)
	s.bus.notify()
}

// CurrencySymbol returns the display symbol for the current currency,
// falling back to "$" for codes go-money has no grapheme for.
func (s *Store) CurrencySymbol() string {
	cur := *money.New(0, s.Currency()).Currency()
	if cur.Grapheme == "" {
		return "$"
	}
	return cur.Grapheme
}
