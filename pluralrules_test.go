package msgfmt

import "testing"

func TestPluralizerRegistryBuiltinEnglish(t *testing.T) {
	r := newPluralizerRegistry()
	cardinal := r.Cardinal("en")

	tests := []struct {
		n    float64
		want PluralCategory
	}{
		{0, CategoryOther},
		{1, CategoryOne},
		{2, CategoryOther},
		{42, CategoryOther},
	}
	for _, tc := range tests {
		got := cardinal(operandsFromFloat(tc.n))
		if got != tc.want {
			t.Errorf("cardinal(%v) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestPluralizerRegistryOrdinalEnglish(t *testing.T) {
	r := newPluralizerRegistry()
	ordinal := r.Ordinal("en")

	tests := []struct {
		n    float64
		want PluralCategory
	}{
		{1, CategoryOne},
		{2, CategoryTwo},
		{3, CategoryFew},
		{4, CategoryOther},
		{11, CategoryOther},
		{21, CategoryOne},
	}
	for _, tc := range tests {
		got := ordinal(operandsFromFloat(tc.n))
		if got != tc.want {
			t.Errorf("ordinal(%v) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestPluralizerRegistryFallsBackThroughParentChain(t *testing.T) {
	r := newPluralizerRegistry()
	cardinal := r.Cardinal("en-US")
	if got := cardinal(operandsFromFloat(1)); got != CategoryOne {
		t.Errorf("cardinal(1) for en-US = %v, want CategoryOne", got)
	}
}

func TestPluralizerRegistryUnknownLocaleFallsBackToOther(t *testing.T) {
	r := newPluralizerRegistry()
	cardinal := r.Cardinal("xx-Zz-99")
	if got := cardinal(operandsFromFloat(1)); got != CategoryOther {
		t.Errorf("cardinal(1) for unknown locale = %v, want CategoryOther", got)
	}
}

func TestPluralizerRegistrySetOverridesBuiltin(t *testing.T) {
	r := newPluralizerRegistry()
	everythingFew := func(PluralOperands) PluralCategory { return CategoryFew }
	r.Set("en", everythingFew, nil)

	if got := r.Cardinal("en")(operandsFromFloat(1)); got != CategoryFew {
		t.Errorf("cardinal(1) after override = %v, want CategoryFew", got)
	}
	// Ordinal untouched by the nil half of Set.
	if got := r.Ordinal("en")(operandsFromFloat(1)); got != CategoryOne {
		t.Errorf("ordinal(1) after cardinal-only override = %v, want CategoryOne", got)
	}
}

func TestPluralRuleFamilyRussian(t *testing.T) {
	set, ok := pluralRuleTable["ru"]
	if !ok {
		t.Fatal("no rule set for ru")
	}
	tests := []struct {
		n    float64
		want PluralCategory
	}{
		{1, CategoryOne},
		{2, CategoryFew},
		{5, CategoryMany},
		{1.5, CategoryOther},
	}
	for _, tc := range tests {
		got := set.Cardinal(operandsFromFloat(tc.n))
		if got != tc.want {
			t.Errorf("ru cardinal(%v) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestPluralRuleFamilyArabic(t *testing.T) {
	set, ok := pluralRuleTable["ar"]
	if !ok {
		t.Fatal("no rule set for ar")
	}
	tests := []struct {
		n    float64
		want PluralCategory
	}{
		{0, CategoryZero},
		{1, CategoryOne},
		{2, CategoryTwo},
		{5, CategoryFew},
		{15, CategoryMany},
		{100, CategoryOther},
	}
	for _, tc := range tests {
		got := set.Cardinal(operandsFromFloat(tc.n))
		if got != tc.want {
			t.Errorf("ar cardinal(%v) = %v, want %v", tc.n, got, tc.want)
		}
	}
}
