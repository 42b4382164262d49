package mapper

import "strings"

// pathEntry is one whitelist entry: a field path split into ordered
// segments, with an offset marking how many leading segments have been
// consumed by descent into nested schemas. Advancing returns a new view
// over the same backing slice; segments are never mutated, so views held
// by sibling recursive branches cannot alias each other's state.
type pathEntry struct {
	segs []string
	off  int
}

// head returns the first remaining segment, or "" when exhausted.
func (p pathEntry) head() string {
	if p.off >= len(p.segs) {
		return ""
	}
	return p.segs[p.off]
}

// rest returns a view with the leading segment stripped.
func (p pathEntry) rest() pathEntry {
	if p.off >= len(p.segs) {
		return p
	}
	return pathEntry{segs: p.segs, off: p.off + 1}
}

// exhausted reports whether no segments remain.
func (p pathEntry) exhausted() bool {
	return p.off >= len(p.segs)
}

// remaining joins the remaining segments with delim.
func (p pathEntry) remaining(delim string) string {
	if p.exhausted() {
		return ""
	}
	return strings.Join(p.segs[p.off:], delim)
}

// whitelist is the ordered set of permitted field paths at the current
// schema level.
type whitelist []pathEntry

// parseWhitelist splits each entry on delim.
func parseWhitelist(entries []string, delim string) whitelist {
	wl := make(whitelist, 0, len(entries))
	for _, e := range entries {
		wl = append(wl, pathEntry{segs: strings.Split(e, delim)})
	}
	return wl
}

// filter returns the entries whose first remaining segment equals field.
func (w whitelist) filter(field string) whitelist {
	var out whitelist
	for _, p := range w {
		if !p.exhausted() && p.head() == field {
			out = append(out, p)
		}
	}
	return out
}

// descend strips the leading segment off every entry, moving the
// whitelist down one schema level. Entries that become exhausted are kept;
// they simply never match anything below.
func (w whitelist) descend() whitelist {
	out := make(whitelist, 0, len(w))
	for _, p := range w {
		out = append(out, p.rest())
	}
	return out
}

// containsLiteral reports whether any entry's remaining path, joined with
// delim, equals name verbatim. This is the check used by CSV-mode arrays:
// it tests the literal, unsplit field name, deliberately unlike every other
// whitelist check (which matches the first segment of a split path). The
// asymmetry is long-standing observable behavior and is preserved as-is;
// see DESIGN.md before changing it.
func (w whitelist) containsLiteral(name, delim string) bool {
	for _, p := range w {
		if p.remaining(delim) == name {
			return true
		}
	}
	return false
}
