package headlessterm

import (
	"regexp"
	"testing"
)

func TestSearchFindsAllMatches(t *testing.T) {
	b := NewBuffer(3, 20)
	writeLine(b, 0, "foo bar foo baz foo")

	sm := BuildStringMap(b, 0, 0, 0, 19, StringMapOptions{})
	re := regexp.MustCompile(`foo`)
	it := NewSearch(re, sm)

	var starts []int
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		starts = append(starts, m.Start())
	}

	want := []int{0, 8, 16}
	if len(starts) != len(want) {
		t.Fatalf("got %d matches %v, want %d", len(starts), starts, len(want))
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Fatalf("match %d: got start %d, want %d", i, starts[i], want[i])
		}
	}
}

func TestSearchNoMatch(t *testing.T) {
	b := NewBuffer(3, 20)
	writeLine(b, 0, "hello world")
	sm := BuildStringMap(b, 0, 0, 0, 10, StringMapOptions{})

	it := NewSearch(regexp.MustCompile(`xyz`), sm)
	if _, ok := it.Next(); ok {
		t.Fatal("expected no match")
	}
}

func TestSearchCaptureGroups(t *testing.T) {
	b := NewBuffer(3, 20)
	writeLine(b, 0, "key=value")
	sm := BuildStringMap(b, 0, 0, 0, 8, StringMapOptions{})

	it := NewSearch(regexp.MustCompile(`(\w+)=(\w+)`), sm)
	m, ok := it.Next()
	if !ok {
		t.Fatal("expected a match")
	}
	if m.GroupText(1) != "key" || m.GroupText(2) != "value" {
		t.Fatalf("got group1=%q group2=%q", m.GroupText(1), m.GroupText(2))
	}
}

func TestSearchUnmatchedOptionalGroupSentinel(t *testing.T) {
	b := NewBuffer(3, 20)
	writeLine(b, 0, "abc")
	sm := BuildStringMap(b, 0, 0, 0, 2, StringMapOptions{})

	it := NewSearch(regexp.MustCompile(`a(x)?(b)`), sm)
	m, ok := it.Next()
	if !ok {
		t.Fatal("expected a match")
	}
	start, end := m.Group(1)
	if start != -1 || end != -1 {
		t.Fatalf("unmatched group 1: got (%d,%d), want (-1,-1)", start, end)
	}
	if m.GroupText(2) != "b" {
		t.Fatalf("group 2: got %q, want %q", m.GroupText(2), "b")
	}
}

func TestSearchSelectionPinPair(t *testing.T) {
	b := NewBuffer(3, 20)
	writeLine(b, 0, "find me here")
	sm := BuildStringMap(b, 0, 0, 0, 11, StringMapOptions{})

	it := NewSearch(regexp.MustCompile(`me`), sm)
	m, ok := it.Next()
	if !ok {
		t.Fatal("expected a match")
	}
	start, end, ok := m.Selection()
	if !ok {
		t.Fatal("expected a valid selection")
	}
	if start.col != 5 || end.col != 6 {
		t.Fatalf("got start.col=%d end.col=%d, want 5,6", start.col, end.col)
	}
}

func TestSearchResetAnchoredFromOffset(t *testing.T) {
	b := NewBuffer(3, 20)
	writeLine(b, 0, "aaa")
	sm := BuildStringMap(b, 0, 0, 0, 2, StringMapOptions{})

	it := NewSearch(regexp.MustCompile(`a`), sm)
	it.Reset(2)
	m, ok := it.Next()
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Start() != 2 {
		t.Fatalf("got start %d, want 2", m.Start())
	}
}
