package mapper

import (
	"strings"

	"github.com/erraggy/formtools/schema"
)

// target is the destination a mapping pass writes into: either a keyed
// entity or an ordered sequence. The two variants carry distinct write
// semantics, so the choice is made once at the type level instead of by
// runtime shape checks at every write.
type target interface {
	// has reports whether field already holds a value. Sequences always
	// report false; they only ever append.
	has(field string) bool

	// put writes v under field on a keyed target, or appends v on a
	// sequence (the field name is ignored there).
	put(field string, v any)
}

// keyedTarget writes fields by name into an Entity.
type keyedTarget struct {
	entity schema.Entity
}

func (t keyedTarget) has(field string) bool {
	_, ok := t.entity.Get(field)
	return ok
}

func (t keyedTarget) put(field string, v any) {
	t.entity.Set(field, v)
}

// sequence accumulates array elements during a single pass.
// Arrays grow monotonically; elements are never replaced.
type sequence struct {
	items []any
}

// sequenceTarget appends values to a sequence under construction.
type sequenceTarget struct {
	seq *sequence
}

func (t sequenceTarget) has(string) bool {
	return false
}

func (t sequenceTarget) put(_ string, v any) {
	t.seq.items = append(t.seq.items, v)
}

// parentPath is the stack of path segments accumulated while descending
// into nested schemas and array indices. Joined with the delimiter it
// yields the flat key for a field. Push and pop must stay balanced on
// every exit path of a recursive call; callers defer the pop.
type parentPath struct {
	segs  []string
	delim string
}

func (p *parentPath) push(seg string) {
	p.segs = append(p.segs, seg)
}

func (p *parentPath) pop() {
	p.segs = p.segs[:len(p.segs)-1]
}

// key returns the flat key for field under the current path.
func (p *parentPath) key(field string) string {
	if len(p.segs) == 0 {
		return field
	}
	return strings.Join(p.segs, p.delim) + p.delim + field
}
