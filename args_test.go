package msgfmt

import "testing"

func TestToArgsFromArgs(t *testing.T) {
	in := Args{"x": 1}
	out, err := ToArgs(in)
	if err != nil {
		t.Fatalf("ToArgs: %v", err)
	}
	if out["x"] != 1 {
		t.Errorf("out = %v", out)
	}
}

func TestToArgsFromGenericMap(t *testing.T) {
	out, err := ToArgs(map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("ToArgs: %v", err)
	}
	if out["name"] != "Ada" {
		t.Errorf("out = %v", out)
	}
}

type greeting struct {
	Name string
	Age  int `msgfmt:"years"`
}

func TestToArgsFromStruct(t *testing.T) {
	out, err := ToArgs(greeting{Name: "Grace", Age: 30})
	if err != nil {
		t.Fatalf("ToArgs: %v", err)
	}
	if out["Name"] != "Grace" {
		t.Errorf("Name = %v", out["Name"])
	}
	if out["years"] != 30 {
		t.Errorf("years = %v", out["years"])
	}
}

func TestToArgsFromStructPointer(t *testing.T) {
	g := &greeting{Name: "Lin"}
	out, err := ToArgs(g)
	if err != nil {
		t.Fatalf("ToArgs: %v", err)
	}
	if out["Name"] != "Lin" {
		t.Errorf("Name = %v", out["Name"])
	}
}

func TestToArgsNil(t *testing.T) {
	out, err := ToArgs(nil)
	if err != nil {
		t.Fatalf("ToArgs: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("out = %v, want empty", out)
	}
}

func TestToArgsRejectsUnsupportedKind(t *testing.T) {
	_, err := ToArgs(42)
	if err == nil {
		t.Fatal("expected error for unsupported argument kind")
	}
}

func TestToArgsRejectsNonStringMapKey(t *testing.T) {
	_, err := ToArgs(map[int]any{1: "x"})
	if err == nil {
		t.Fatal("expected error for non-string map key")
	}
}

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		v    any
		want float64
		ok   bool
	}{
		{1, 1, true},
		{int64(2), 2, true},
		{"3.5", 3.5, true},
		{"nope", 0, false},
		{true, 0, false},
	}
	for _, tc := range tests {
		got, ok := coerceNumber(tc.v)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("coerceNumber(%v) = (%v,%v), want (%v,%v)", tc.v, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCoerceStringKey(t *testing.T) {
	if s, ok := coerceStringKey("male"); !ok || s != "male" {
		t.Errorf("coerceStringKey(string) = (%q,%v)", s, ok)
	}
	if _, ok := coerceStringKey(42); ok {
		t.Error("expected coerceStringKey(42) to fail")
	}
}

func TestStringify(t *testing.T) {
	if got := stringify("hi"); got != "hi" {
		t.Errorf("stringify(string) = %q", got)
	}
	if got := stringify(3.0); got != "3" {
		t.Errorf("stringify(3.0) = %q, want 3", got)
	}
}
