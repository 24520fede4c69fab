package headlessterm

import "regexp"

// SearchMatch is one yielded result from a Search iterator, per
// spec.md §4.F. Offsets are byte offsets into the owning StringMap's
// Text(); groups beyond the match count or unmatched optional groups
// report (-1, -1), matching regexp.Regexp.FindSubmatchIndex's own
// sentinel convention (see DESIGN.md "F. String Map & Search").
type SearchMatch struct {
	start, end int
	groups     []int
	owner      *StringMap
}

// Start returns the byte offset of the full match.
func (m SearchMatch) Start() int { return m.start }

// End returns the exclusive byte offset of the full match.
func (m SearchMatch) End() int { return m.end }

// Text returns the full match's substring.
func (m SearchMatch) Text() string {
	return m.owner.text[m.start:m.end]
}

// Group returns capture group i's (start, end) byte offsets, or
// (-1, -1) if group i didn't participate in the match. Group 0 is the
// full match.
func (m SearchMatch) Group(i int) (start, end int) {
	idx := i * 2
	if idx+1 >= len(m.groups) {
		return -1, -1
	}
	return m.groups[idx], m.groups[idx+1]
}

// GroupText returns capture group i's matched substring, still within
// the owning StringMap's buffer (spec.md §4.F "group(i) ... still
// within the StringMap's buffer"), or "" if the group didn't
// participate.
func (m SearchMatch) GroupText(i int) string {
	start, end := m.Group(i)
	if start < 0 || end < 0 {
		return ""
	}
	return m.owner.text[start:end]
}

// Selection converts the full match into a Pin pair suitable for
// driving a screen/scrollback selection, per spec.md §4.F
// "selection()".
func (m SearchMatch) Selection() (start, end Pin, ok bool) {
	return m.owner.PinRange(m.start, m.end)
}

// Search is a lazy pull iterator over a compiled regex against a
// StringMap's materialized text, per spec.md §4.F. It generalizes
// Terminal.Search/SearchScrollback's naive rune-by-rune scan (which
// allocates a full match slice eagerly) into incremental,
// anchored-from-offset matching driven by regexp.Regexp's own
// FindSubmatchIndex, matching the "accepts utf-8, supports anchored
// search from an offset" collaborator contract in spec.md §6.
type Search struct {
	re     *regexp.Regexp
	owner  *StringMap
	offset int
	done   bool
}

// NewSearch builds a Search iterator over owner's text using re,
// starting from byte offset 0.
func NewSearch(re *regexp.Regexp, owner *StringMap) *Search {
	return &Search{re: re, owner: owner}
}

// Next returns the next match, advancing the iterator past it, or
// (SearchMatch{}, false) once the text is exhausted — the pull
// iterator's "next() returns an Option" contract from spec.md §4.F.
func (s *Search) Next() (SearchMatch, bool) {
	if s.done || s.offset > len(s.owner.text) {
		return SearchMatch{}, false
	}

	loc := s.re.FindSubmatchIndex([]byte(s.owner.text[s.offset:]))
	if loc == nil {
		s.done = true
		return SearchMatch{}, false
	}

	abs := make([]int, len(loc))
	for i, v := range loc {
		if v < 0 {
			abs[i] = -1
			continue
		}
		abs[i] = v + s.offset
	}

	match := SearchMatch{start: abs[0], end: abs[1], groups: abs, owner: s.owner}

	if abs[1] == abs[0] {
		s.offset = abs[1] + 1
	} else {
		s.offset = abs[1]
	}

	return match, true
}

// Reset rewinds the iterator to search from byte offset, per the
// "supports anchored search from an offset" contract.
func (s *Search) Reset(offset int) {
	s.offset = offset
	s.done = offset > len(s.owner.text)
}
