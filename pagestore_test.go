package headlessterm

import "testing"

func makeCellRow(cols int, char rune) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i].Char = char
	}
	return row
}

func TestPageListPushAndLen(t *testing.T) {
	pl := NewPageList(10, 0)
	pl.Push(makeCellRow(10, 'a'))
	pl.Push(makeCellRow(10, 'b'))

	if pl.Len() != 2 {
		t.Fatalf("got len %d, want 2", pl.Len())
	}
	if pl.Line(0)[0].Char != 'a' {
		t.Fatalf("oldest line should be 'a' row")
	}
	if pl.Line(1)[0].Char != 'b' {
		t.Fatalf("newest line should be 'b' row")
	}
}

func TestPageListLineOutOfRange(t *testing.T) {
	pl := NewPageList(10, 0)
	pl.Push(makeCellRow(10, 'a'))
	if pl.Line(5) != nil {
		t.Fatal("expected nil for out-of-range index")
	}
	if pl.Line(-1) != nil {
		t.Fatal("expected nil for negative index")
	}
}

func TestPageListClear(t *testing.T) {
	pl := NewPageList(10, 0)
	pl.Push(makeCellRow(10, 'a'))
	pl.Push(makeCellRow(10, 'b'))
	pl.Clear()
	if pl.Len() != 0 {
		t.Fatalf("got len %d after Clear, want 0", pl.Len())
	}
}

func TestPageListByteBudgetEvicts(t *testing.T) {
	pl := NewPageList(10, 0)
	// One row costs 10*32 = 320 bytes. Push enough rows to span
	// several pages (EvictHead never touches the tail page), with a
	// budget tight enough that whole head pages get dropped.
	total := pageRowBudget*3 + 20
	pl.SetByteBudget(int64(pageRowBudget) * 320)
	for i := 0; i < total; i++ {
		pl.Push(makeCellRow(10, 'a'))
	}
	if pl.Len() >= total {
		t.Fatalf("expected eviction to keep length under %d, got %d", total, pl.Len())
	}
}

func TestPageListEvictNotifiesAndInvalidatesPins(t *testing.T) {
	pl := NewPageList(10, 0)
	// Push enough rows to span at least two pages; EvictHead never
	// evicts the tail page, so a single-page list has nothing to evict.
	for i := 0; i < pageRowBudget+5; i++ {
		pl.Push(makeCellRow(10, 'a'))
	}

	ps := NewPageStore(NewBuffer(1, 10), pl)
	pin, ok := ps.PinFromCoord(RegionHistory, 0, 0)
	if !ok {
		t.Fatal("expected valid pin for row 0")
	}
	if !pin.Valid() {
		t.Fatal("pin should be valid before eviction")
	}

	evictedCount := 0
	pl.OnEvict(func(n int) { evictedCount += n })

	pl.SetByteBudget(1) // force aggressive eviction down to just the tail page
	pl.EvictHead(0)

	if evictedCount == 0 {
		t.Fatal("expected eviction callback to fire")
	}
	if pin.Valid() {
		t.Fatal("pin into an evicted page should be invalidated")
	}
}

func TestPageListPinCoordRoundtrip(t *testing.T) {
	pl := NewPageList(10, 0)
	pl.Push(makeCellRow(10, 'x'))
	pl.Push(makeCellRow(10, 'y'))

	ps := NewPageStore(NewBuffer(1, 10), pl)
	pin, ok := ps.PinFromCoord(RegionHistory, 3, 1)
	if !ok {
		t.Fatal("expected valid pin")
	}
	col, row, ok := ps.CoordFromPin(RegionHistory, pin)
	if !ok || row != 1 || col != 3 {
		t.Fatalf("got row=%d col=%d ok=%v, want 1,3,true", row, col, ok)
	}
}

func TestPageStorePinFromCoordActiveRegion(t *testing.T) {
	b := NewBuffer(3, 10)
	ps := NewPageStore(b, nil)

	pin, ok := ps.PinFromCoord(RegionActive, 4, 2)
	if !ok || !pin.Valid() {
		t.Fatal("expected a valid active-region pin")
	}
	col, row, ok := ps.CoordFromPin(RegionActive, pin)
	if !ok || row != 2 || col != 4 {
		t.Fatalf("got row=%d col=%d ok=%v, want 2,4,true", row, col, ok)
	}
	// RegionScreen addresses the same Buffer.
	col, row, ok = ps.CoordFromPin(RegionScreen, pin)
	if !ok || row != 2 || col != 4 {
		t.Fatalf("RegionScreen: got row=%d col=%d ok=%v, want 2,4,true", row, col, ok)
	}
}

func TestPageStorePinFromCoordOutOfBounds(t *testing.T) {
	ps := NewPageStore(NewBuffer(3, 10), nil)
	if _, ok := ps.PinFromCoord(RegionActive, 10, 0); ok {
		t.Fatal("expected out-of-range column to fail")
	}
	if _, ok := ps.PinFromCoord(RegionHistory, 0, 0); ok {
		t.Fatal("expected RegionHistory to fail with a nil history PageList")
	}
}

func TestPageStoreCoordFromPinWrongRegion(t *testing.T) {
	history := NewPageList(10, 0)
	history.Push(makeCellRow(10, 'x'))
	ps := NewPageStore(NewBuffer(3, 10), history)

	activePin, _ := ps.PinFromCoord(RegionActive, 0, 0)
	if _, _, ok := ps.CoordFromPin(RegionHistory, activePin); ok {
		t.Fatal("an active pin should not resolve against RegionHistory")
	}

	historyPin, _ := ps.PinFromCoord(RegionHistory, 0, 0)
	if _, _, ok := ps.CoordFromPin(RegionActive, historyPin); ok {
		t.Fatal("a history pin should not resolve against RegionActive")
	}
}

func TestPageListSpansMultiplePages(t *testing.T) {
	pl := NewPageList(5, 0)
	total := pageRowBudget + 10
	for i := 0; i < total; i++ {
		pl.Push(makeCellRow(5, 'z'))
	}
	if pl.Len() != total {
		t.Fatalf("got len %d, want %d", pl.Len(), total)
	}
	if pl.pageCount < 2 {
		t.Fatalf("expected rows to span multiple pages, got pageCount=%d", pl.pageCount)
	}
	if pl.Line(total-1) == nil {
		t.Fatal("expected last line to resolve across page boundary")
	}
}

func TestGraphemeTableAddAndLookup(t *testing.T) {
	var g GraphemeTable
	id := g.AddMark(0, '́')
	if id == 0 {
		t.Fatal("expected a non-zero grapheme id")
	}
	id = g.AddMark(id, '⃐')
	marks := g.Lookup(id)
	if len(marks) != 2 || marks[0] != '́' || marks[1] != '⃐' {
		t.Fatalf("got marks %v, want [\\u0301 \\u20D0]", marks)
	}
}

func TestGraphemeTableLookupMissing(t *testing.T) {
	var g GraphemeTable
	if g.Lookup(0) != nil {
		t.Fatal("expected nil for id 0")
	}
	if g.Lookup(99) != nil {
		t.Fatal("expected nil for out-of-range id")
	}
}
