package charset

// Entry is one row of the exclusion chart: a profile together with its
// derived unique capacity and per-character entropy. The chart is a
// static view over the catalog and is never mutated at runtime.
type Entry struct {
	Index          int
	Name           string
	MaxUniqueLen   int
	Bits           float64
	UniqueDisabled bool
}

// Chart returns the catalog in index order with derived entropy figures.
func Chart() []Entry {
	entries := make([]Entry, 0, len(catalog))

	for i, p := range catalog {
		maxLen, bits, _ := Entropy(p.Name)

		entries = append(entries, Entry{
			Index:          i + 1,
			Name:           p.Name,
			MaxUniqueLen:   maxLen,
			Bits:           bits,
			UniqueDisabled: uniqueDisabled[p.Name],
		})
	}

	return entries
}
