package domain

// PathStep is one person along an ancestry path together with the kind of the
// outgoing edge toward the next step. The terminal step has an empty Kind.
type PathStep struct {
	Person Person
	Kind   string
}

// AncestryPath is the ordered result of one successful path query, from the
// ancestor endpoint down to the descendant endpoint.
type AncestryPath struct {
	Steps []PathStep
}

// Hops returns the number of edges traversed. A single-person path has zero.
func (p AncestryPath) Hops() int {
	if len(p.Steps) == 0 {
		return 0
	}
	return len(p.Steps) - 1
}
