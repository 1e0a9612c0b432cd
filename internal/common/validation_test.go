package common

import (
	"strings"
	"testing"
)

func TestRequired(t *testing.T) {
	if err := Required("f", "value"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Required("f", ""); err == nil {
		t.Fatal("empty string must fail")
	}
	if err := Required("f", "   "); err == nil {
		t.Fatal("whitespace-only string must fail")
	}
	if err := Required("f", nil); err == nil {
		t.Fatal("nil must fail")
	}
}

func TestMaxLength(t *testing.T) {
	if err := MaxLength("f", strings.Repeat("a", 10), 10); err != nil {
		t.Fatalf("length at the limit must pass: %v", err)
	}
	if err := MaxLength("f", strings.Repeat("a", 11), 10); err == nil {
		t.Fatal("length over the limit must fail")
	}
	// Length is in runes, not bytes.
	if err := MaxLength("f", strings.Repeat("é", 10), 10); err != nil {
		t.Fatalf("multibyte string of 10 runes must pass: %v", err)
	}
}

func TestUnsignedID(t *testing.T) {
	if err := UnsignedID("f", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []int{0, -1} {
		if err := UnsignedID("f", bad); err == nil {
			t.Fatalf("%d must fail", bad)
		}
	}
	if err := UnsignedID("f", "1"); err == nil {
		t.Fatal("non-integer must fail")
	}
}

func TestModuleName(t *testing.T) {
	for _, ok := range []string{"carrier_dhl", "my-module", "Mod123"} {
		if err := ModuleName("f", ok); err != nil {
			t.Errorf("%q must pass: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "bad module", "a/b", "a.b", "é"} {
		if err := ModuleName("f", bad); err == nil {
			t.Errorf("%q must fail", bad)
		}
	}
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator()
	v.Field("order_id", 0, UnsignedID)
	v.Field("module_name", "", Required, ModuleName)

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 3 {
		t.Fatalf("got %d errors, want 3", len(v.Errors()))
	}
	if v.Error() == nil {
		t.Fatal("Error() must be non-nil when errors exist")
	}

	clean := NewValidator()
	clean.Field("order_id", 1, UnsignedID)
	if clean.Error() != nil {
		t.Fatalf("unexpected error: %v", clean.Error())
	}
}
