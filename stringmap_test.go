package headlessterm

import "testing"

func writeLine(b *Buffer, row int, s string) {
	for i, r := range []rune(s) {
		b.SetCell(row, i, Cell{Char: r})
	}
}

func TestBuildStringMapSingleLine(t *testing.T) {
	b := NewBuffer(3, 10)
	writeLine(b, 0, "hello")

	sm := BuildStringMap(b, 0, 0, 0, 4, StringMapOptions{TrimTrailingBlanks: true})
	if sm.Text() != "hello" {
		t.Fatalf("got %q, want %q", sm.Text(), "hello")
	}
}

func TestBuildStringMapTrimsTrailingBlanks(t *testing.T) {
	b := NewBuffer(3, 10)
	writeLine(b, 0, "hi")

	sm := BuildStringMap(b, 0, 0, 0, 9, StringMapOptions{TrimTrailingBlanks: true})
	if sm.Text() != "hi" {
		t.Fatalf("got %q, want %q", sm.Text(), "hi")
	}
}

func TestBuildStringMapMultiLineNewline(t *testing.T) {
	b := NewBuffer(3, 10)
	writeLine(b, 0, "ab")
	writeLine(b, 1, "cd")

	sm := BuildStringMap(b, 0, 0, 1, 1, StringMapOptions{TrimTrailingBlanks: true})
	if sm.Text() != "ab\ncd" {
		t.Fatalf("got %q, want %q", sm.Text(), "ab\ncd")
	}
}

func TestStringMapPinRange(t *testing.T) {
	b := NewBuffer(3, 10)
	writeLine(b, 0, "abc")

	sm := BuildStringMap(b, 0, 0, 0, 2, StringMapOptions{})
	start, end, ok := sm.PinRange(0, 3)
	if !ok {
		t.Fatal("expected ok pin range")
	}
	if start.col != 0 || end.col != 2 {
		t.Fatalf("got start.col=%d end.col=%d, want 0,2", start.col, end.col)
	}
}

func TestStringMapPinRangeOutOfBounds(t *testing.T) {
	b := NewBuffer(3, 10)
	writeLine(b, 0, "abc")
	sm := BuildStringMap(b, 0, 0, 0, 2, StringMapOptions{})

	if _, _, ok := sm.PinRange(0, 100); ok {
		t.Fatal("expected not-ok for out of range end")
	}
}

// TestStringMapPinRoundTripsThroughPageStore exercises spec.md §8's
// round-trip property: building a StringMap over an active-screen
// selection and mapping a byte through PinAt and back via the
// PageStore yields the original coordinate.
func TestStringMapPinRoundTripsThroughPageStore(t *testing.T) {
	b := NewBuffer(3, 10)
	writeLine(b, 1, "hello")

	sm := BuildStringMap(b, 1, 0, 1, 4, StringMapOptions{})
	ps := NewPageStore(b, nil)

	pin, ok := sm.PinAt(1)
	if !ok {
		t.Fatal("expected a pin for byte offset 1")
	}
	if !pin.Valid() {
		t.Fatal("expected the active-region pin to resolve as valid")
	}
	if got := pin.Cell().Char; got != 'e' {
		t.Fatalf("got pin.Cell().Char=%q, want 'e'", got)
	}
	col, row, ok := ps.CoordFromPin(RegionActive, pin)
	if !ok || row != 1 || col != 1 {
		t.Fatalf("got row=%d col=%d ok=%v, want 1,1,true", row, col, ok)
	}
}

// TestBuildStringMapScrollbackRoundTrips exercises the RegionHistory
// half of the same round-trip property (spec.md §8), grounding
// BuildStringMapScrollback against PageStore.CoordFromPin(RegionHistory, ...).
func TestBuildStringMapScrollbackRoundTrips(t *testing.T) {
	pl := NewPageList(10, 0)
	pl.Push(make([]Cell, 10))
	line := make([]Cell, 10)
	for i, r := range "JIRA-1234 " {
		line[i] = Cell{Char: r}
	}
	pl.Push(line)

	sm := BuildStringMapScrollback(pl, 0, 1, StringMapOptions{TrimTrailingBlanks: true})
	if got, want := sm.Text(), "\nJIRA-1234"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	pin, ok := sm.PinAt(1)
	if !ok || !pin.Valid() {
		t.Fatal("expected a valid history pin for the 'J' byte")
	}
	if got := pin.Cell().Char; got != 'J' {
		t.Fatalf("got pin.Cell().Char=%q, want 'J'", got)
	}

	ps := NewPageStore(NewBuffer(3, 10), pl)
	col, row, ok := ps.CoordFromPin(RegionHistory, pin)
	if !ok || row != 1 || col != 0 {
		t.Fatalf("got row=%d col=%d ok=%v, want 1,0,true", row, col, ok)
	}
}
