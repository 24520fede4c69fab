package headlessterm

// CursorStyle determines how the cursor is rendered.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Cursor tracks the current position and rendering style (0-based
// coordinates). Row/Col remain the fields every cursor-motion Executor
// method clamps and assigns directly, matching the teacher's existing
// code; Pin is the spec.md §3 "cursor pin" view of that same position,
// kept in sync by Terminal.syncCursorPinLocked after each Executor
// method that can move the cursor finishes mutating Row/Col. Pin.Valid
// expresses invariant 1 ("cursor pin is always inside active").
type Cursor struct {
	Row     int
	Col     int
	Pin     Pin
	Style   CursorStyle
	Visible bool
}

// NewCursor creates a cursor at (0, 0) with blinking block style, visible.
func NewCursor() *Cursor {
	return &Cursor{
		Row:     0,
		Col:     0,
		Style:   CursorStyleBlinkingBlock,
		Visible: true,
	}
}

// syncCursorPinLocked recomputes t.cursor.Pin from the cursor's
// current Row/Col against the active buffer. Every xxxInternal method
// that assigns to cursor.Row/Col calls this once, after the
// assignment, while still holding t.mu — matching spec.md §3's "the
// core never uses raw (x,y) screen coordinates across operations that
// can mutate the store; it promotes them to pins first" for the one
// coordinate every operation shares: the cursor.
func (t *Terminal) syncCursorPinLocked() {
	if t.pageStore == nil {
		return
	}
	pin, _ := t.pageStore.PinFromCoord(RegionActive, t.cursor.Col, t.cursor.Row)
	t.cursor.Pin = pin
}

// CursorPin returns the cursor's current Pin into the active region,
// per spec.md §3's Cursor data model. Pin.Valid reports invariant 1
// ("cursor pin is always inside active").
func (t *Terminal) CursorPin() Pin {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.Pin
}

// SavedCursor stores cursor position, cell attributes, and charset state for restoration.
// Used when switching between primary and alternate screens.
type SavedCursor struct {
	Row            int
	Col            int
	Attrs          CellTemplate
	OriginMode     bool
	CharsetIndex   int
	Charsets       [4]Charset
}

// CellTemplate defines default attributes applied to newly written characters.
// Modified by SGR (Select Graphic Rendition) escape sequences.
type CellTemplate struct {
	Cell
}

// NewCellTemplate creates a template with default attributes (default named colors, no flags).
func NewCellTemplate() CellTemplate {
	return CellTemplate{
		Cell: NewCell(),
	}
}

// Charset selects the character encoding variant.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)

// CharsetIndex selects one of four character set slots (G0-G3).
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)
