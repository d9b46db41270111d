package secondbrain

import (
	"encoding/json"
	"testing"
)

func TestAmountArithmetic(t *testing.T) {
	a := A(0.1)
	b := A(0.2)
	// Decimal arithmetic has no float drift.
	if got := a.Add(b); !got.Equal(A(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}
	if got := A(1).Sub(A(3)); !got.Equal(A(-2)) {
		t.Errorf("1 - 3 = %s, want -2", got)
	}
	if got := A(5).Neg(); !got.Equal(A(-5)) {
		t.Errorf("-(5) = %s, want -5", got)
	}
}

func TestAmountRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.00},
		{1.005, 1.01},
		{25.555, 25.56},
		{-1.005, -1.01},
	}
	for _, tc := range tests {
		if got := A(tc.in).Round(); !got.Equal(A(tc.want)) {
			t.Errorf("Round(%v) = %s, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAmountJSON(t *testing.T) {
	data, err := json.Marshal(A(1234.5))
	if err != nil {
		t.Fatal(err)
	}
	// A plain JSON number, not a quoted string.
	if got, want := string(data), "1234.5"; got != want {
		t.Errorf("marshaled %s, want %s", got, want)
	}

	var a Amount
	if err := json.Unmarshal([]byte("42.42"), &a); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(A(42.42)) {
		t.Errorf("unmarshaled %s, want 42.42", a)
	}

	// Quoted numbers are tolerated on the way in.
	if err := json.Unmarshal([]byte(`"7.5"`), &a); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(A(7.5)) {
		t.Errorf("unmarshaled %s, want 7.5", a)
	}
}

func TestAmountDisplay(t *testing.T) {
	tests := []struct {
		amount Amount
		code   string
		want   string
	}{
		{A(1234.5), "USD", "$1,234.50"},
		{A(1234.5), "EUR", "€1,234.50"},
		{A(0), "USD", "$0.00"},
	}
	for _, tc := range tests {
		if got := tc.amount.Display(tc.code); got != tc.want {
			t.Errorf("Display(%s, %s) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}
