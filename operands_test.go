package msgfmt

import "testing"

func TestOperandsFromFloat(t *testing.T) {
	tests := []struct {
		f    float64
		want PluralOperands
	}{
		{0, PluralOperands{N: 0, I: 0, V: 0, W: 0, F: 0, T: 0}},
		{1, PluralOperands{N: 1, I: 1, V: 0, W: 0, F: 0, T: 0}},
		{-3, PluralOperands{N: 3, I: 3, V: 0, W: 0, F: 0, T: 0}},
		{1.5, PluralOperands{N: 1.5, I: 1, V: 1, W: 1, F: 5, T: 5}},
	}
	for _, tc := range tests {
		got := operandsFromFloat(tc.f)
		if got != tc.want {
			t.Errorf("operandsFromFloat(%v) = %+v, want %+v", tc.f, got, tc.want)
		}
	}
}

func TestOperandsFromDecimalStringTrailingZeros(t *testing.T) {
	got := operandsFromDecimalString("1.50")
	want := PluralOperands{N: 1.5, I: 1, V: 2, W: 1, F: 50, T: 5}
	if got != want {
		t.Errorf("operandsFromDecimalString(1.50) = %+v, want %+v", got, want)
	}
}

func TestOperandsFromValuePrefersDecimalString(t *testing.T) {
	ops, ok := operandsFromValue("1.50")
	if !ok {
		t.Fatal("expected ok")
	}
	if ops.V != 2 || ops.W != 1 {
		t.Errorf("ops = %+v, want V=2 W=1", ops)
	}
}

func TestOperandsFromValueFallsBackToFloat(t *testing.T) {
	// float64 has no coerceDecimalString case, so this exercises the
	// coerceNumber/operandsFromFloat fallback path specifically.
	ops, ok := operandsFromValue(42.0)
	if !ok {
		t.Fatal("expected ok")
	}
	if ops.I != 42 || ops.V != 0 {
		t.Errorf("ops = %+v", ops)
	}
}

func TestOperandsFromValueRejectsUnsupported(t *testing.T) {
	if _, ok := operandsFromValue([]int{1, 2}); ok {
		t.Error("expected not ok for an unsupported type")
	}
}
