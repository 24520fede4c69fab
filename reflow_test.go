package headlessterm

import "testing"

func TestCollectLogicalLinesSingleRow(t *testing.T) {
	b := NewBuffer(3, 10)
	writeLine(b, 0, "hi")

	lines := collectLogicalLines(b)
	if len(lines) != 3 {
		t.Fatalf("got %d logical lines, want 3 (one per row)", len(lines))
	}
	if string(lines[0].cells[0].Char)+string(lines[0].cells[1].Char) != "hi" {
		t.Fatalf("got %q, want hi", string(lines[0].cells[0].Char)+string(lines[0].cells[1].Char))
	}
}

func TestCollectLogicalLinesJoinsWrappedRows(t *testing.T) {
	b := NewBuffer(3, 4)
	writeLine(b, 0, "abcd")
	writeLine(b, 1, "ef")
	b.SetWrapped(0, true)

	lines := collectLogicalLines(b)
	if len(lines) != 3 {
		t.Fatalf("got %d logical lines, want 3", len(lines))
	}
	joined := string(lines[0].cells[0].Char) + string(lines[0].cells[1].Char) +
		string(lines[0].cells[2].Char) + string(lines[0].cells[3].Char) +
		string(lines[0].cells[4].Char) + string(lines[0].cells[5].Char)
	if joined != "abcdef" {
		t.Fatalf("got %q, want abcdef", joined)
	}
}

func TestRewrapLogicalLineSplitsAtNewWidth(t *testing.T) {
	line := logicalLine{cells: []Cell{{Char: 'a'}, {Char: 'b'}, {Char: 'c'}, {Char: 'd'}, {Char: 'e'}}}
	rows, wrapped := rewrapLogicalLine(line, 2)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if !wrapped[0] || !wrapped[1] || wrapped[2] {
		t.Fatalf("got wrapped=%v, want [true true false]", wrapped)
	}
}

func TestRewrapLogicalLineKeepsWideCellWithSpacer(t *testing.T) {
	wide := Cell{Char: '国'}
	wide.SetFlag(CellFlagWideChar)
	spacer := Cell{}
	spacer.SetFlag(CellFlagWideCharSpacer)

	line := logicalLine{cells: []Cell{{Char: 'a'}, wide, spacer}}
	rows, _ := rewrapLogicalLine(line, 2)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (wide cell should move to its own row)", len(rows))
	}
	if !rows[1][0].IsWide() {
		t.Fatal("expected the wide cell to stay paired with its spacer on the second row")
	}
}

func TestReflowRowsTracksLineStartRow(t *testing.T) {
	b := NewBuffer(2, 4)
	writeLine(b, 0, "abcd")
	writeLine(b, 1, "ef")
	b.SetWrapped(0, true)

	allRows, _, lineStartRow := reflowRows(b, 6)
	if len(lineStartRow) != 1 {
		t.Fatalf("got %d logical lines, want 1 (should merge back into one row at width 6)", len(lineStartRow))
	}
	if lineStartRow[0] != 0 {
		t.Fatalf("got lineStartRow[0]=%d, want 0", lineStartRow[0])
	}
	if len(allRows) != 1 {
		t.Fatalf("got %d rows, want 1", len(allRows))
	}
}

func TestLogicalOffsetOfFirstLine(t *testing.T) {
	b := NewBuffer(3, 10)
	writeLine(b, 0, "hello")

	line, offset := logicalOffsetOf(b, 0, 3)
	if line != 0 || offset != 3 {
		t.Fatalf("got line=%d offset=%d, want 0,3", line, offset)
	}
}

func TestLogicalOffsetOfWrappedLine(t *testing.T) {
	b := NewBuffer(3, 4)
	writeLine(b, 0, "abcd")
	writeLine(b, 1, "ef")
	b.SetWrapped(0, true)

	line, offset := logicalOffsetOf(b, 1, 1)
	if line != 0 {
		t.Fatalf("got line=%d, want 0 (row 1 is a continuation of the wrapped line)", line)
	}
	if offset != 5 {
		t.Fatalf("got offset=%d, want 5 (row-within-run 1 * cols 4 + col 1)", offset)
	}
}

func TestResizeWithReflowNoneMatchesResize(t *testing.T) {
	term := New(WithSize(5, 10))
	term.ResizeWithReflow(5, 20, ReflowNone)
	if term.Cols() != 20 {
		t.Fatalf("got cols %d, want 20", term.Cols())
	}
}

func TestResizeWithReflowWideningMergesWrappedLine(t *testing.T) {
	term := New(WithSize(2, 4))
	writeLine(term.activeBuffer, 0, "abcd")
	writeLine(term.activeBuffer, 1, "ef")
	term.activeBuffer.SetWrapped(0, true)

	term.ResizeWithReflow(2, 6, Reflow)

	line := term.LineContent(0)
	if line != "abcdef" {
		t.Fatalf("got %q, want abcdef", line)
	}
}
