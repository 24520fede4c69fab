package headlessterm

import "unicode/utf8"

// pageRowBudget is the number of rows a single Page holds before a new
// Page is allocated. The PageList stays close to the spec's "~4 KiB
// aligned chunk" intent without hand-tuning per-row byte accounting.
const pageRowBudget = 256

// Page is a contiguous chunk of scrollback rows plus the append-only
// grapheme side-table referenced by cells within it.
// A Page never holds more than pageRowBudget rows; PageList allocates a
// new one once a Page fills up.
type Page struct {
	rows      [][]Cell
	graphemes GraphemeTable
	prev      *Page
	next      *Page
	// evicted is set once the PageList drops the page; every history
	// Pin into it then reports !Valid().
	evicted bool
}

// RowCount returns the number of rows currently stored in the page.
func (p *Page) RowCount() int {
	return len(p.rows)
}

// Row returns the cells of the row at index i within the page, or nil
// if out of range.
func (p *Page) Row(i int) []Cell {
	if i < 0 || i >= len(p.rows) {
		return nil
	}
	return p.rows[i]
}

// GraphemeTable is a per-page append-only side-table mapping a
// GraphemeID to the combining-mark runes that follow a cell's base
// rune. GraphemeID 0 means "no grapheme entry"; stored ids are index+1
// so the zero value of Cell.GraphemeID naturally means "none".
type GraphemeTable struct {
	entries [][]rune
}

// Append interns the combining runes and returns the GraphemeID to
// store on the owning cell.
func (g *GraphemeTable) Append(combining []rune) uint32 {
	g.entries = append(g.entries, combining)
	return uint32(len(g.entries))
}

// AddMark appends a single combining mark to an existing grapheme
// entry (or creates one if id is 0), returning the (possibly new) id.
func (g *GraphemeTable) AddMark(id uint32, mark rune) uint32 {
	if id == 0 {
		return g.Append([]rune{mark})
	}
	idx := id - 1
	g.entries[idx] = append(g.entries[idx], mark)
	return id
}

// Lookup returns the combining runes for a GraphemeID, or nil if id is
// 0 or out of range.
func (g *GraphemeTable) Lookup(id uint32) []rune {
	if id == 0 || int(id-1) >= len(g.entries) {
		return nil
	}
	return g.entries[id-1]
}

// Region names one of the three logical areas a Pin or coordinate can
// be resolved against, per spec.md §4.B pin_from_coord/coord_from_pin.
// spec.md's glossary only ever defines "Active region" explicitly (§B
// glossary entry "Active region. The visible rows at the tail of the
// PageList."); RegionScreen addresses the same live grid RegionActive
// does; the two names are kept distinct because pin_from_coord's
// signature names both, but they resolve identically against the
// PageStore's active Buffer (see PageStore.PinFromCoord below).
type Region int

const (
	RegionActive Region = iota
	RegionScreen
	RegionHistory
)

// pinTarget distinguishes which backing store a Pin resolves against:
// the active grid (a *Buffer, no eviction, bounds shift on resize) or
// scrollback (a *Page owned by a PageList, invalidated on eviction).
type pinTarget int

const (
	pinTargetNone pinTarget = iota
	pinTargetActive
	pinTargetHistory
)

// Pin is a stable reference to a cell position: it survives writes and
// the eviction of *other* pages, and is invalidated only when its own
// page is evicted (history pins) or when the referenced coordinate
// falls outside current active bounds (active pins, e.g. after a
// shrinking resize). Callers promote (row, col) coordinates to a Pin
// before any operation that might mutate the store out from under a
// raw coordinate, via PageStore.PinFromCoord rather than constructing
// a Pin directly.
type Pin struct {
	target pinTarget
	page   *Page   // set when target == pinTargetHistory
	buf    *Buffer // set when target == pinTargetActive
	row    int
	col    int
	// valid is true for every pin PinFromCoord returns; liveness is
	// then judged by whether page has been evicted (history pins) or
	// whether (row, col) is still in bounds of buf (active pins).
	valid bool
}

// Valid reports whether the pin still resolves to a live cell: for a
// history pin, whether its page has not been evicted; for an active
// pin, whether (row, col) is still within the buffer's current bounds
// (resize can shrink the active region out from under a stale pin).
func (p Pin) Valid() bool {
	switch p.target {
	case pinTargetHistory:
		return p.valid && p.page != nil && !p.page.evicted
	case pinTargetActive:
		return p.valid && p.buf != nil &&
			p.row >= 0 && p.row < p.buf.Rows() &&
			p.col >= 0 && p.col < p.buf.Cols()
	default:
		return false
	}
}

// Cell resolves the pin to its current cell, or the zero Cell if the
// pin is no longer valid.
func (p Pin) Cell() Cell {
	if !p.Valid() {
		return Cell{}
	}
	switch p.target {
	case pinTargetHistory:
		row := p.page.Row(p.row)
		if row == nil || p.col < 0 || p.col >= len(row) {
			return Cell{}
		}
		return row[p.col]
	case pinTargetActive:
		c := p.buf.Cell(p.row, p.col)
		if c == nil {
			return Cell{}
		}
		return *c
	default:
		return Cell{}
	}
}

// pinHandle is how the PageList tracks the pins it handed out for a
// page. Pin itself is returned by value to callers (matching spec.md's
// "pins are owned by the caller"), so flipping `valid` here reaches only
// the PageList's own copy; callers' copies see the eviction through
// their page's evicted flag.
type pinHandle struct {
	pin *Pin
}

// PageList is a doubly-linked list of Pages implementing the spec's
// Page Store (§4.B) for scrollback rows only (the active rows live in
// the Terminal's Buffer), bounded by a byte budget rather than a row
// count; each row is costed by rowByteCost.
//
// PageList also implements ScrollbackProvider so it plugs directly
// into Buffer the same way the teacher's other custom scrollback
// backends do (see providers.go), while additionally exposing the
// richer Pin-based contract spec.md asks for.
type PageList struct {
	head, tail  *Page
	pageCount   int
	rowCount    int
	byteBudget  int64
	usedBytes   int64
	cols        int
	pinsByPage  map[*Page][]*pinHandle
	evictNotify []func(evicted int)
}

// NewPageList creates an empty PageList for a screen of the given
// column width, bounded to byteBudget bytes of scrollback (0 means
// unbounded).
func NewPageList(cols int, byteBudget int64) *PageList {
	return &PageList{
		cols:       cols,
		byteBudget: byteBudget,
		pinsByPage: make(map[*Page][]*pinHandle),
	}
}

func (pl *PageList) newPage() *Page {
	p := &Page{}
	if pl.tail != nil {
		pl.tail.next = p
		p.prev = pl.tail
	} else {
		pl.head = p
	}
	pl.tail = p
	pl.pageCount++
	return p
}

// rowByteCost approximates the storage cost of one row for the byte
// budget: one Cell is dominated by its rune plus fixed pointer/flag
// overhead, so this is intentionally a coarse per-cell estimate rather
// than an exact sizeof. Grapheme entries and hyperlinks are not counted
// toward the budget.
func (pl *PageList) rowByteCost(row []Cell) int64 {
	const perCellOverhead = 32
	return int64(len(row)) * perCellOverhead
}

// Push appends a row to the tail page (allocating a new page if the
// current tail is full), then evicts from the head until the byte
// budget is met. Implements ScrollbackProvider.Push.
func (pl *PageList) Push(line []Cell) {
	row := make([]Cell, len(line))
	copy(row, line)

	if pl.tail == nil || pl.tail.RowCount() >= pageRowBudget {
		pl.newPage()
	}
	pl.tail.rows = append(pl.tail.rows, row)
	pl.rowCount++
	pl.usedBytes += pl.rowByteCost(row)

	if pl.byteBudget > 0 {
		pl.EvictHead(0)
	}
}

// Len implements ScrollbackProvider.Len.
func (pl *PageList) Len() int {
	return pl.rowCount
}

// Line implements ScrollbackProvider.Line: index 0 is the oldest row.
func (pl *PageList) Line(index int) []Cell {
	if index < 0 || index >= pl.rowCount {
		return nil
	}
	for p := pl.head; p != nil; p = p.next {
		if index < p.RowCount() {
			return p.Row(index)
		}
		index -= p.RowCount()
	}
	return nil
}

// Clear implements ScrollbackProvider.Clear: unlike EvictHead (which
// always preserves the tail page as the active write target under
// budget pressure), Clear is an explicit caller request to drop
// everything, so it also releases the tail page.
func (pl *PageList) Clear() {
	evictedRows := pl.rowCount
	for p := pl.head; p != nil; p = p.next {
		pl.invalidatePins(p)
	}
	pl.head = nil
	pl.tail = nil
	pl.pageCount = 0
	pl.rowCount = 0
	pl.usedBytes = 0

	if evictedRows > 0 {
		for _, fn := range pl.evictNotify {
			fn(evictedRows)
		}
	}
}

// SetMaxLines is kept for ScrollbackProvider compatibility; the Page
// Store itself is budgeted in bytes (§4.B), so this converts the
// row-count hint into an approximate byte budget using the current
// average row cost.
func (pl *PageList) SetMaxLines(max int) {
	if max <= 0 {
		pl.byteBudget = 0
		return
	}
	pl.byteBudget = int64(max) * int64(pl.cols) * 32
	if pl.byteBudget > 0 {
		pl.EvictHead(0)
	}
}

// MaxLines approximates a row-count view of the byte budget.
func (pl *PageList) MaxLines() int {
	if pl.byteBudget <= 0 || pl.cols <= 0 {
		return 0
	}
	perRow := int64(pl.cols) * 32
	if perRow == 0 {
		return 0
	}
	return int(pl.byteBudget / perRow)
}

// BytesUsed returns current scrollback storage usage in bytes.
func (pl *PageList) BytesUsed() int64 {
	return pl.usedBytes
}

// SetByteBudget sets the scrollback byte budget directly (the native
// unit per spec.md §4.B/§5), evicting immediately if over budget.
func (pl *PageList) SetByteBudget(n int64) {
	pl.byteBudget = n
	if n > 0 {
		pl.EvictHead(0)
	}
}

// OnEvict registers a callback invoked with the number of rows evicted
// whenever EvictHead removes pages. Used by callers that want to know
// "scrollback shrank" independent of per-pin invalidation.
func (pl *PageList) OnEvict(fn func(evicted int)) {
	pl.evictNotify = append(pl.evictNotify, fn)
}

// EvictHead drops scrollback pages from the head until usedBytes is at
// or below (usedBytes - bytesToFree) and the byte budget, whichever is
// stricter; passing bytesToFree=0 simply enforces the configured
// budget. Pins into evicted pages are invalidated via the registered
// callback registry (spec.md §9 "table of {page_id -> list of
// pin-invalidation callbacks}").
func (pl *PageList) EvictHead(bytesToFree int64) {
	target := pl.usedBytes - bytesToFree
	if pl.byteBudget > 0 && pl.byteBudget < target {
		target = pl.byteBudget
	}

	evictedRows := 0
	for pl.usedBytes > target && pl.head != nil && pl.head != pl.tail {
		p := pl.head
		for _, row := range p.rows {
			pl.usedBytes -= pl.rowByteCost(row)
		}
		evictedRows += p.RowCount()
		pl.rowCount -= p.RowCount()
		pl.pageCount--

		pl.head = p.next
		if pl.head != nil {
			pl.head.prev = nil
		}
		p.next = nil

		pl.invalidatePins(p)
	}

	if evictedRows > 0 {
		for _, fn := range pl.evictNotify {
			fn(evictedRows)
		}
	}
}

func (pl *PageList) invalidatePins(p *Page) {
	p.evicted = true
	for _, h := range pl.pinsByPage[p] {
		h.pin.valid = false
		h.pin.page = nil
	}
	delete(pl.pinsByPage, p)
}

// pinFromHistoryCoord promotes a scrollback-relative row index (0 =
// oldest) and column into a stable history Pin. It is the RegionHistory
// half of PageStore.PinFromCoord; PageStore resolves RegionActive and
// RegionScreen itself against its Buffer instead of calling this.
func (pl *PageList) pinFromHistoryCoord(row, col int) (Pin, bool) {
	if row < 0 || row >= pl.rowCount {
		return Pin{}, false
	}
	idx := row
	for p := pl.head; p != nil; p = p.next {
		if idx < p.RowCount() {
			pin := &Pin{target: pinTargetHistory, page: p, row: idx, col: col, valid: true}
			pl.pinsByPage[p] = append(pl.pinsByPage[p], &pinHandle{pin: pin})
			return *pin, true
		}
		idx -= p.RowCount()
	}
	return Pin{}, false
}

// coordFromHistoryPin reverses pinFromHistoryCoord: returns the
// oldest-relative row index and column for a still-valid history pin,
// or ok=false if the pin has been invalidated, belongs to a different
// PageList, or isn't a history pin at all.
func (pl *PageList) coordFromHistoryPin(pin Pin) (row, col int, ok bool) {
	if pin.target != pinTargetHistory || !pin.Valid() {
		return 0, 0, false
	}
	idx := 0
	for p := pl.head; p != nil; p = p.next {
		if p == pin.page {
			return idx + pin.row, pin.col, true
		}
		idx += p.RowCount()
	}
	return 0, 0, false
}

// PageStore is the region-aware facade spec.md §4.B's
// pin_from_coord(region, x, y)/coord_from_pin(region, pin) describe: it
// resolves RegionActive/RegionScreen against the live Buffer and
// RegionHistory against the scrollback PageList, rather than requiring
// callers to know which backing store a coordinate falls in.
type PageStore struct {
	active  *Buffer
	history *PageList
}

// NewPageStore pairs a Terminal's active Buffer with its scrollback
// PageList. history may be nil (e.g. the alternate screen, which has
// no scrollback) — RegionHistory lookups then always fail.
func NewPageStore(active *Buffer, history *PageList) *PageStore {
	return &PageStore{active: active, history: history}
}

// asPageList returns sp as a *PageList if that is its concrete type,
// or nil otherwise (e.g. NoopScrollback, or a host-supplied
// ScrollbackProvider backend). RegionHistory lookups only work when
// the wired scrollback provider is this module's own PageList.
func asPageList(sp ScrollbackProvider) *PageList {
	pl, _ := sp.(*PageList)
	return pl
}

// SetActive repoints the store at a different Buffer, used when the
// Terminal switches between primary and alternate screens.
func (ps *PageStore) SetActive(b *Buffer) {
	ps.active = b
}

// SetHistory repoints the store at a different scrollback PageList, or
// nil to disable RegionHistory lookups (e.g. no scrollback provider is
// a *PageList).
func (ps *PageStore) SetHistory(pl *PageList) {
	ps.history = pl
}

// PinFromCoord promotes a region-relative (x, y) coordinate into a
// stable Pin, per spec.md §4.B. x is the column, y is the row within
// the named region.
func (ps *PageStore) PinFromCoord(region Region, x, y int) (Pin, bool) {
	switch region {
	case RegionActive, RegionScreen:
		if ps.active == nil || y < 0 || y >= ps.active.Rows() || x < 0 || x >= ps.active.Cols() {
			return Pin{}, false
		}
		return Pin{target: pinTargetActive, buf: ps.active, row: y, col: x, valid: true}, true
	case RegionHistory:
		if ps.history == nil {
			return Pin{}, false
		}
		return ps.history.pinFromHistoryCoord(y, x)
	default:
		return Pin{}, false
	}
}

// CoordFromPin reverses PinFromCoord: returns the (x, y) coordinate of
// pin within the requested region, or ok=false if the pin does not
// belong to that region (including a pin that has since become
// invalid, or one resolved against a Buffer/PageList this store no
// longer points at).
func (ps *PageStore) CoordFromPin(region Region, pin Pin) (x, y int, ok bool) {
	if !pin.Valid() {
		return 0, 0, false
	}
	switch region {
	case RegionActive, RegionScreen:
		if pin.target != pinTargetActive || pin.buf != ps.active {
			return 0, 0, false
		}
		return pin.col, pin.row, true
	case RegionHistory:
		if pin.target != pinTargetHistory || ps.history == nil {
			return 0, 0, false
		}
		row, col, ok := ps.history.coordFromHistoryPin(pin)
		return col, row, ok
	default:
		return 0, 0, false
	}
}

// AppendGrapheme creates a new entry holding mark in page p's
// GraphemeTable and returns its id, to be stored on the owning Cell.
// It never extends an existing entry. For the active (non-scrollback)
// region, Buffer owns its own GraphemeTable instead (see
// Buffer.graphemes).
func (pl *PageList) AppendGrapheme(p *Page, mark rune) uint32 {
	return p.graphemes.AddMark(0, mark)
}

// decodeRuneWidth returns the number of bytes r occupies in UTF-8
// (-1 for an invalid rune).
func decodeRuneWidth(r rune) int {
	return utf8.RuneLen(r)
}
