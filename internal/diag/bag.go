package diag

import "sort"

// Bag collects diagnostics across a batch run. The fail-fast core never uses
// one; the driver converts per-file errors into bag entries so a directory
// scan can report everything it hit in one sorted listing.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether at least one diagnostic is SevError or worse.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the collected diagnostics.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by file, start offset, end offset, then severity
// (descending) for a stable, deterministic listing.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.FileName != dj.Primary.FileName {
			return di.Primary.FileName < dj.Primary.FileName
		}
		if di.Primary.Start.Index != dj.Primary.Start.Index {
			return di.Primary.Start.Index < dj.Primary.Start.Index
		}
		if di.Primary.End.Index != dj.Primary.End.Index {
			return di.Primary.End.Index < dj.Primary.End.Index
		}
		return di.Severity > dj.Severity
	})
}
