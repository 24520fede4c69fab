package headlessterm

import (
	"image/color"
	"regexp"
	"testing"

	"github.com/danielgatis/go-ansicode"
)

// These tests exercise spec.md §8's six concrete end-to-end scenarios
// directly, rather than relying only on the pre-existing unit tests
// inherited per-module.

// Scenario 1: Hello with wide glyph.
func TestSeedHelloWithWideGlyph(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("Hello 世界\r\n")

	want := []struct {
		col  int
		char rune
		wide bool
		spc  bool
	}{
		{0, 'H', false, false}, {1, 'e', false, false}, {2, 'l', false, false},
		{3, 'l', false, false}, {4, 'o', false, false}, {5, ' ', false, false},
		{6, '世', true, false}, {7, 0, false, true},
		{8, '界', true, false}, {9, 0, false, true},
	}
	for _, w := range want {
		cell := term.Cell(0, w.col)
		if cell == nil {
			t.Fatalf("col %d: nil cell", w.col)
		}
		if w.wide != cell.HasFlag(CellFlagWideChar) {
			t.Fatalf("col %d: wide flag = %v, want %v", w.col, cell.HasFlag(CellFlagWideChar), w.wide)
		}
		if w.spc != cell.IsWideSpacer() {
			t.Fatalf("col %d: spacer flag = %v, want %v", w.col, cell.IsWideSpacer(), w.spc)
		}
		if !w.spc && cell.Char != w.char {
			t.Fatalf("col %d: char = %q, want %q", w.col, cell.Char, w.char)
		}
	}

	row, col := term.CursorPos()
	if row != 1 || col != 0 {
		t.Fatalf("cursor after CRLF = (%d,%d), want (1,0)", row, col)
	}
}

// Scenario 2: soft wrap and reflow.
func TestSeedSoftWrapAndReflow(t *testing.T) {
	term := New(WithSize(3, 10))
	term.WriteString("0123456789ABCDE")

	if got := term.LineContent(0); got != "0123456789" {
		t.Fatalf("row 0 = %q, want %q", got, "0123456789")
	}
	if !term.IsWrapped(0) {
		t.Fatal("row 0 should carry the soft-wrap flag before reflow")
	}
	row, col := term.CursorPos()
	if row != 1 || col != 5 {
		t.Fatalf("cursor before reflow = (%d,%d), want (1,5)", row, col)
	}

	term.ResizeWithReflow(3, 15, Reflow)

	if got := term.LineContent(0); got != "0123456789ABCDE" {
		t.Fatalf("row 0 after reflow = %q, want %q", got, "0123456789ABCDE")
	}
	if term.IsWrapped(0) {
		t.Fatal("row 0 should no longer be wrapped once it fits in one line")
	}
	row, col = term.CursorPos()
	if row != 1 || col != 0 {
		t.Fatalf("cursor after reflow = (%d,%d), want (1,0) (carried logical offset 15 into the 15-wide row)", row, col)
	}
}

// Scenario 3: SGR truecolor with colon underline.
func TestSeedSGRTruecolorColonUnderline(t *testing.T) {
	term := New(WithSize(24, 80))

	term.SetTerminalCharAttribute(ansicode.TerminalCharAttribute{
		Attr:     ansicode.CharAttributeForeground,
		RGBColor: &ansicode.RGBColor{R: 255, G: 100, B: 50},
	})
	term.SetTerminalCharAttribute(ansicode.TerminalCharAttribute{
		Attr: ansicode.CharAttributeCurlyUnderline,
	})
	term.WriteString("x")

	cell := term.Cell(0, 0)
	if cell == nil {
		t.Fatal("nil cell at (0,0)")
	}
	rgba, ok := cell.Fg.(color.RGBA)
	if !ok {
		t.Fatalf("fg is %T, want color.RGBA", cell.Fg)
	}
	if rgba.R != 255 || rgba.G != 100 || rgba.B != 50 {
		t.Fatalf("fg = %+v, want rgb(255,100,50)", rgba)
	}
	if !cell.HasFlag(CellFlagCurlyUnderline) {
		t.Fatal("expected curly underline flag")
	}
	if cell.UnderlineColor != nil {
		t.Fatalf("expected default underline color (nil), got %v", cell.UnderlineColor)
	}
}

// Scenario 4 (encoder properties) lives in inputencoder_test.go:
// TestEncodeKittyDisambiguateTabVsCtrlI.

// Scenario 5: OSC 8 hyperlink carries through selection into a StringMap.
func TestSeedHyperlinkThroughStringMap(t *testing.T) {
	term := New(WithSize(24, 80))
	term.SetHyperlink(&ansicode.Hyperlink{ID: "1", URI: "https://example.com/"})
	term.WriteString("link")
	term.SetHyperlink(nil)

	for col := 0; col < 4; col++ {
		cell := term.Cell(0, col)
		if cell == nil || cell.Hyperlink == nil || cell.Hyperlink.URI != "https://example.com/" {
			t.Fatalf("col %d: expected hyperlink to https://example.com/, got %+v", col, cell)
		}
	}

	sm := BuildStringMap(term.activeBuffer, 0, 0, 0, 3, StringMapOptions{})
	if sm.Text() != "link" {
		t.Fatalf("selection text = %q, want %q", sm.Text(), "link")
	}
	for i := 0; i < sm.Len(); i++ {
		pin, ok := sm.PinAt(i)
		if !ok || !pin.Valid() {
			t.Fatalf("byte %d: expected a valid pin", i)
		}
		if got := pin.Cell().Hyperlink; got == nil || got.URI != "https://example.com/" {
			t.Fatalf("byte %d: pin's cell hyperlink = %+v, want https://example.com/", i, got)
		}
	}
}

// Scenario 6: regex match in scrollback, mapped back through the Page Store.
func TestSeedRegexMatchInScrollback(t *testing.T) {
	pl := NewPageList(20, 0)
	line := make([]Cell, 20)
	for i, r := range "Check JIRA-1234 now" {
		line[i] = Cell{Char: r}
	}
	pl.Push(line)

	sm := BuildStringMapScrollback(pl, 0, 0, StringMapOptions{TrimTrailingBlanks: true})
	s := NewSearch(regexp.MustCompile(`JIRA-(\d+)`), sm)

	m, ok := s.Next()
	if !ok {
		t.Fatal("expected one match")
	}
	if m.Start() != 6 || m.End() != 15 {
		t.Fatalf("full match span = [%d,%d), want [6,15)", m.Start(), m.End())
	}
	groupText := m.GroupText(1)
	if groupText != "1234" {
		t.Fatalf("group 1 = %q, want %q", groupText, "1234")
	}
	gStart, gEnd := m.Group(1)
	if gStart != 11 || gEnd != 15 {
		t.Fatalf("group 1 span = [%d,%d), want [11,15)", gStart, gEnd)
	}

	start, end, ok := m.Selection()
	if !ok {
		t.Fatal("expected a valid pin range for the full match")
	}
	ps := NewPageStore(NewBuffer(3, 20), pl)
	startCol, startRow, ok := ps.CoordFromPin(RegionHistory, start)
	if !ok || startRow != 0 || startCol != 6 {
		t.Fatalf("start pin coord = (%d,%d) ok=%v, want (6,0) true", startCol, startRow, ok)
	}
	_, _, ok = ps.CoordFromPin(RegionHistory, end)
	if !ok {
		t.Fatal("expected end pin to resolve through the Page Store")
	}

	if _, ok := s.Next(); ok {
		t.Fatal("expected exactly one match")
	}
}
