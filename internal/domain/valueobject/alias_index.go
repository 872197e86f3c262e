package valueobject

// Polarity is the contribution of one matched alias to its pair score.
type Polarity int

const (
	PolarityClose Polarity = -1
	PolarityOpen  Polarity = 1
)

// String implements fmt.Stringer.
func (p Polarity) String() string {
	switch p {
	case PolarityOpen:
		return "open"
	case PolarityClose:
		return "close"
	default:
		return "unknown"
	}
}

// AliasEntry is what an alias resolves to.
type AliasEntry struct {
	PairID   int
	Polarity Polarity
}

// AliasConflict records an alias registered more than once. The later
// registration wins; the earlier one is kept here for diagnostics only.
type AliasConflict struct {
	Alias      string
	Overridden AliasEntry
	Winner     AliasEntry
}

// AliasIndex maps any single alias to its pair and polarity.
// It is immutable after construction and safe for concurrent readers.
type AliasIndex struct {
	entries   map[string]AliasEntry
	pairCount int
	conflicts []AliasConflict
}

// NewAliasIndex flattens table into an index. Pairs are registered in table
// order with the open side before the close side, and a name seen again
// overwrites its earlier entry.
func NewAliasIndex(table PairTable) AliasIndex {
	index := AliasIndex{
		entries:   make(map[string]AliasEntry),
		pairCount: table.Len(),
	}

	for id, spec := range table.specs {
		index.register(spec.open, AliasEntry{PairID: id, Polarity: PolarityOpen})
		index.register(spec.close, AliasEntry{PairID: id, Polarity: PolarityClose})
	}

	return index
}

func (a *AliasIndex) register(aliases []string, entry AliasEntry) {
	for _, alias := range aliases {
		if previous, exists := a.entries[alias]; exists {
			a.conflicts = append(a.conflicts, AliasConflict{
				Alias:      alias,
				Overridden: previous,
				Winner:     entry,
			})
		}
		a.entries[alias] = entry
	}
}

// Lookup resolves a token name.
func (a AliasIndex) Lookup(name string) (AliasEntry, bool) {
	entry, ok := a.entries[name]
	return entry, ok
}

// Len returns the number of distinct aliases.
func (a AliasIndex) Len() int {
	return len(a.entries)
}

// PairCount returns the number of pairs in the table the index was built from.
func (a AliasIndex) PairCount() int {
	return a.pairCount
}

// Conflicts returns aliases that were registered more than once, in the order
// the overrides happened.
func (a AliasIndex) Conflicts() []AliasConflict {
	return append([]AliasConflict(nil), a.conflicts...)
}
