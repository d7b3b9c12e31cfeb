package collide

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestCatalogRegisterAndLookup(t *testing.T) {
	c := NewCatalog()
	if err := c.Register("Identity", Identity()); err != nil {
		t.Fatal(err)
	}
	h, found := c.Lookup("Identity")
	if !found {
		t.Fatal("registered candidate not found")
	}
	if got := h(99); got != 99 {
		t.Fatalf("looked-up identity maps 99 to %d", got)
	}
	if _, found := c.Lookup("Nope"); found {
		t.Fatal("lookup of unregistered label should fail")
	}
}

func TestCatalogRejectsDuplicatesAndEmpty(t *testing.T) {
	c := NewCatalog()
	if err := c.Register("XOR", XOR(DefaultXORMask)); err != nil {
		t.Fatal(err)
	}
	if err := c.Register("XOR", XOR(0x55)); err == nil {
		t.Fatal("expected error for duplicate label")
	}
	if err := c.Register("", Identity()); err == nil {
		t.Fatal("expected error for empty label")
	}
	if err := c.Register("Nil", nil); err == nil {
		t.Fatal("expected error for nil hash function")
	}
}

func TestCatalogPrefixLookup(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	c := DefaultCatalog(rnd)

	h, err := c.PrefixLookup("Mult")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := h(2), Multiplicative(DefaultMulFactor)(2); got != want {
		t.Fatalf("prefix hit maps 2 to %d, want %d", got, want)
	}

	// "XOR" is an exact label even though "XXHash" shares the initial.
	if _, err := c.PrefixLookup("XOR"); err != nil {
		t.Fatalf("exact label should win: %v", err)
	}
	if _, err := c.PrefixLookup("X"); err == nil {
		t.Fatal("expected ambiguity error for prefix X")
	}
	if _, err := c.PrefixLookup("Zilch"); err == nil {
		t.Fatal("expected error for unmatched prefix")
	}
}

func TestDefaultCatalogNames(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	c := DefaultCatalog(rnd)
	want := []string{
		"Bit-Reverse",
		"Identity",
		"Multiplicative",
		"Random Permutation",
		"XOR",
		"XXHash",
	}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("catalog names mismatch: got %v, want %v", got, want)
	}
}
