// Package remap assigns stable internal producer identifiers.
//
// Upstream extraction identifies producers by opaque folder names. The
// dashboard keys everything on a sequential integer id instead. The
// mapping is built once per assembly run in first-seen order and then
// written into the producers table, which becomes the only source of the
// mapping afterwards.
package remap

// Remapper maps external producer identifiers to internal sequential ids
// starting at 1. Not safe for concurrent use; assembly is single-threaded.
type Remapper struct {
	byExternal map[string]int
	order      []string
}

// New returns an empty Remapper.
func New() *Remapper {
	return &Remapper{byExternal: make(map[string]int)}
}

// Assign returns the internal id for the external identifier, allocating
// the next sequential id on first sight.
func (r *Remapper) Assign(external string) int {
	if id, ok := r.byExternal[external]; ok {
		return id
	}
	id := len(r.order) + 1
	r.byExternal[external] = id
	r.order = append(r.order, external)
	return id
}

// Lookup returns the internal id for an already-assigned external
// identifier.
func (r *Remapper) Lookup(external string) (int, bool) {
	id, ok := r.byExternal[external]
	return id, ok
}

// Externals returns the external identifiers in assignment order, so
// Externals()[0] maps to internal id 1.
func (r *Remapper) Externals() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of assigned identifiers.
func (r *Remapper) Len() int {
	return len(r.order)
}
