package valueobject

import (
	"fmt"
	"pairingcheck/internal/domain/errors/domain"
	"regexp"
	"strings"
)

// aliasPattern matches names the tokenizer can produce. Anything else could
// never be counted, so it is rejected when the table is built.
var aliasPattern = regexp.MustCompile(`^\w+$`)

// PairSpec is one logical open/close pair. Each side holds one or more aliases:
// concrete call names that all count toward that side of the pair.
type PairSpec struct {
	name  string
	open  []string
	close []string
}

// NewPairSpec creates an unnamed PairSpec. The label is derived from the first
// alias on each side.
func NewPairSpec(open, close []string) (PairSpec, error) {
	return NewNamedPairSpec("", open, close)
}

// NewNamedPairSpec creates a PairSpec with an explicit display label.
// Aliases are trimmed and de-duplicated per side, keeping first-seen order.
func NewNamedPairSpec(name string, open, close []string) (PairSpec, error) {
	openAliases, err := normalizeAliases(open)
	if err != nil {
		return PairSpec{}, fmt.Errorf("open side: %w", err)
	}

	closeAliases, err := normalizeAliases(close)
	if err != nil {
		return PairSpec{}, fmt.Errorf("close side: %w", err)
	}

	return PairSpec{
		name:  strings.TrimSpace(name),
		open:  openAliases,
		close: closeAliases,
	}, nil
}

// MustPairSpec is NewPairSpec for static tables; it panics on invalid input.
func MustPairSpec(open, close []string) PairSpec {
	spec, err := NewPairSpec(open, close)
	if err != nil {
		panic(err)
	}
	return spec
}

func normalizeAliases(aliases []string) ([]string, error) {
	if len(aliases) == 0 {
		return nil, domain.ErrEmptyPairSide
	}

	seen := make(map[string]struct{}, len(aliases))
	result := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		if !aliasPattern.MatchString(alias) {
			return nil, fmt.Errorf("%w: alias %q is not an identifier", domain.ErrInvalidPairConfig, alias)
		}
		if _, dup := seen[alias]; dup {
			continue
		}
		seen[alias] = struct{}{}
		result = append(result, alias)
	}

	return result, nil
}

// Open returns the aliases that increment the pair score.
func (p PairSpec) Open() []string {
	return append([]string(nil), p.open...)
}

// Close returns the aliases that decrement the pair score.
func (p PairSpec) Close() []string {
	return append([]string(nil), p.close...)
}

// Label returns the display label, e.g. "malloc/free".
func (p PairSpec) Label() string {
	if p.name != "" {
		return p.name
	}
	if len(p.open) == 0 || len(p.close) == 0 {
		return ""
	}
	return p.open[0] + "/" + p.close[0]
}

// String implements fmt.Stringer.
func (p PairSpec) String() string {
	return fmt.Sprintf("%s [%s] -> [%s]", p.Label(), strings.Join(p.open, ", "), strings.Join(p.close, ", "))
}

// PairTable is the ordered list of configured pairs. A pair's identifier is its
// position in the table. Constructed once and shared read-only.
type PairTable struct {
	specs []PairSpec
}

// NewPairTable creates a PairTable from specs in registration order.
func NewPairTable(specs ...PairSpec) PairTable {
	return PairTable{specs: append([]PairSpec(nil), specs...)}
}

// Len returns the number of pairs.
func (t PairTable) Len() int {
	return len(t.specs)
}

// Spec returns the pair with the given identifier.
func (t PairTable) Spec(id int) (PairSpec, bool) {
	if id < 0 || id >= len(t.specs) {
		return PairSpec{}, false
	}
	return t.specs[id], true
}

// Specs returns a copy of all pairs in registration order.
func (t PairTable) Specs() []PairSpec {
	return append([]PairSpec(nil), t.specs...)
}

// Label returns the label of the pair with the given identifier, or an empty
// string when id is out of range.
func (t PairTable) Label(id int) string {
	spec, ok := t.Spec(id)
	if !ok {
		return ""
	}
	return spec.Label()
}
