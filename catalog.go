package collide

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/derekparker/trie"
)

// Catalog is a registry of named hash candidates. Lookup accepts exact
// display labels; PrefixLookup additionally resolves any unique prefix, so
// interactive callers can abbreviate ("Mult" for "Multiplicative").
type Catalog struct {
	index *trie.Trie
}

// NewCatalog creates an empty candidate catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: trie.New()}
}

// Register adds a candidate under a display label. Labels are unique;
// registering a label twice is an error.
func (c *Catalog) Register(label string, h Func) error {
	if label == "" {
		return errors.New("candidate label must not be empty")
	}
	if h == nil {
		return fmt.Errorf("candidate %q has no hash function", label)
	}
	if _, found := c.index.Find(label); found {
		return fmt.Errorf("candidate %q already registered", label)
	}
	c.index.Add(label, h)
	return nil
}

// Lookup returns the candidate registered under exactly label.
func (c *Catalog) Lookup(label string) (Func, bool) {
	node, found := c.index.Find(label)
	if !found {
		return nil, false
	}
	h, ok := node.Meta().(Func)
	if !ok {
		return nil, false
	}
	return h, true
}

// PrefixLookup resolves label as an exact match first, then as a prefix of
// registered labels. A prefix matching more than one label is an error.
func (c *Catalog) PrefixLookup(label string) (Func, error) {
	if h, found := c.Lookup(label); found {
		return h, nil
	}
	matches := c.index.PrefixSearch(label)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no candidate matches %q", label)
	case 1:
		h, found := c.Lookup(matches[0])
		assert(found, "prefix search returned an unregistered label")
		return h, nil
	}
	sort.Strings(matches)
	return nil, fmt.Errorf("ambiguous candidate prefix %q: matches %v", label, matches)
}

// Names lists all registered display labels in sorted order.
func (c *Catalog) Names() []string {
	names := c.index.Keys()
	sort.Strings(names)
	return names
}

// DefaultCatalog registers the stock candidates under their display labels.
// rnd seeds the random-permutation candidate; its permutation is drawn once
// here and stays fixed for the catalog's lifetime.
func DefaultCatalog(rnd *rand.Rand) *Catalog {
	c := NewCatalog()
	stock := []struct {
		label string
		h     Func
	}{
		{"Identity", Identity()},
		{"Random Permutation", NewPermutation(rnd)},
		{"Bit-Reverse", BitReverse8()},
		{"XOR", XOR(DefaultXORMask)},
		{"Multiplicative", Multiplicative(DefaultMulFactor)},
		{"XXHash", XXHash()},
	}
	for _, cand := range stock {
		err := c.Register(cand.label, cand.h)
		assert(err == nil, "stock candidate registration failed")
	}
	tracer().Infof("default catalog holds %d candidates", len(stock))
	return c
}
