package headlessterm

import "strings"

// StringMap is a materialized (string, byte offset -> pin) pair, per
// spec.md §4.F. It generalizes the row-walking loops behind
// Terminal.GetSelectedText/LineContent into a reusable byte-addressed
// structure that Search can run a regex against while still being able
// to translate a match back to screen/scrollback coordinates.
type StringMap struct {
	text string
	// pins[i] is the Pin that produced text[i]; every byte of a
	// multi-byte codepoint maps to the same Pin, per spec.md §4.F.
	pins []Pin
}

// Text returns the materialized string in reading order.
func (s *StringMap) Text() string {
	return s.text
}

// Len returns the number of bytes in the materialized string.
func (s *StringMap) Len() int {
	return len(s.text)
}

// PinAt returns the Pin that produced the byte at offset i.
func (s *StringMap) PinAt(i int) (Pin, bool) {
	if i < 0 || i >= len(s.pins) {
		return Pin{}, false
	}
	return s.pins[i], true
}

// PinRange converts a [start, end) byte range of Text() into a
// (start, end) Pin pair, per the Search iterator's selection()
// contract in spec.md §4.F. end is exclusive; the returned end Pin
// refers to the last included byte's Pin, matching a selection's
// inclusive-end convention (terminal.go's Selection.End).
func (s *StringMap) PinRange(start, end int) (Pin, Pin, bool) {
	if start < 0 || end <= start || end > len(s.pins) {
		return Pin{}, Pin{}, false
	}
	return s.pins[start], s.pins[end-1], true
}

// StringMapOptions controls trimming/joining behavior when building a
// StringMap from buffer rows (spec.md §4.F). TrimTrailingBlanks drops
// trailing blanks from each row. JoinHardWrapped leaves out the newline
// after a row whose wrap flag is set (a soft-wrapped row), joining it to
// the next; a newline still follows every row without the flag.
type StringMapOptions struct {
	TrimTrailingBlanks bool
	JoinHardWrapped     bool
}

// BuildStringMap materializes the line-mode selection
// described by (startRow, startCol)..(endRow, endCol) from b into a
// StringMap, following the same row/col walk as
// Terminal.GetSelectedText but retaining a Pin per emitted byte rather
// than discarding position information.
func BuildStringMap(b *Buffer, startRow, startCol, endRow, endCol int, opts StringMapOptions) *StringMap {
	var text strings.Builder
	var pins []Pin

	appendRune := func(r rune, row, col int) {
		p := pinForCell(b, row, col)
		n := text.Len()
		text.WriteRune(r)
		for text.Len() > n {
			pins = append(pins, p)
			n++
		}
	}

	rows := b.Rows()
	for row := startRow; row <= endRow && row < rows; row++ {
		lo, hi := 0, b.Cols()
		if row == startRow {
			lo = startCol
		}
		if row == endRow {
			hi = endCol + 1
		}

		lineCells := make([]rune, 0, hi-lo)
		linePins := make([]int, 0, hi-lo)
		for col := lo; col < hi && col < b.Cols(); col++ {
			cell := b.Cell(row, col)
			if cell != nil && cell.IsWideSpacer() {
				continue
			}
			r := ' '
			if cell != nil && cell.Char != 0 {
				r = cell.Char
			}
			lineCells = append(lineCells, r)
			linePins = append(linePins, col)
		}

		if opts.TrimTrailingBlanks {
			for len(lineCells) > 0 && lineCells[len(lineCells)-1] == ' ' {
				lineCells = lineCells[:len(lineCells)-1]
				linePins = linePins[:len(linePins)-1]
			}
		}

		for i, r := range lineCells {
			appendRune(r, row, linePins[i])
		}

		if row < endRow {
			wrapped := b.IsWrapped(row)
			if !wrapped || !opts.JoinHardWrapped {
				appendRune('\n', row, b.Cols()-1)
			}
		}
	}

	return &StringMap{text: text.String(), pins: pins}
}

// BuildStringMapScrollback materializes lines [startLine, endLine] (0 =
// oldest, inclusive) of pl's scrollback into a StringMap, mirroring
// BuildStringMap's active-region walk but resolving each byte's Pin via
// pl.pinFromHistoryCoord instead of pinForCell — so a regex match inside
// scrollback content (spec.md §8 scenario 6) maps back to a real
// RegionHistory pin through PageStore.CoordFromPin, the same way an
// active-region match does.
func BuildStringMapScrollback(pl *PageList, startLine, endLine int, opts StringMapOptions) *StringMap {
	var text strings.Builder
	var pins []Pin

	appendRune := func(r rune, pin Pin) {
		n := text.Len()
		text.WriteRune(r)
		for text.Len() > n {
			pins = append(pins, pin)
			n++
		}
	}

	for line := startLine; line <= endLine && line < pl.Len(); line++ {
		row := pl.Line(line)

		lineCells := make([]rune, 0, len(row))
		lineCols := make([]int, 0, len(row))
		for col, cell := range row {
			if cell.IsWideSpacer() {
				continue
			}
			r := ' '
			if cell.Char != 0 {
				r = cell.Char
			}
			lineCells = append(lineCells, r)
			lineCols = append(lineCols, col)
		}

		if opts.TrimTrailingBlanks {
			for len(lineCells) > 0 && lineCells[len(lineCells)-1] == ' ' {
				lineCells = lineCells[:len(lineCells)-1]
				lineCols = lineCols[:len(lineCols)-1]
			}
		}

		for i, r := range lineCells {
			pin, ok := pl.pinFromHistoryCoord(line, lineCols[i])
			if !ok {
				continue
			}
			appendRune(r, pin)
		}

		if line < endLine {
			pin, ok := pl.pinFromHistoryCoord(line, len(row)-1)
			if ok {
				appendRune('\n', pin)
			}
		}
	}

	return &StringMap{text: text.String(), pins: pins}
}

// pinForCell builds a real active-region Pin for (row, col) against b,
// the same kind of pin PageStore.PinFromCoord(RegionActive, ...) would
// hand back. It resolves through Pin.Cell()/Pin.Valid() exactly like
// any other active pin (see pagestore.go's pinTargetActive case) and
// round-trips through PageStore.CoordFromPin(RegionActive, pin) back
// to (col, row), satisfying spec.md §8's StringMap/Pin round-trip
// property for selections over the active screen.
func pinForCell(b *Buffer, row, col int) Pin {
	return Pin{target: pinTargetActive, buf: b, row: row, col: col, valid: true}
}
