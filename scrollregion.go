package headlessterm

// ModeLeftRightMargin tracks DECLRMM (private mode 69): whether
// DECSLRM is recognized at all. Per spec.md §4.D tie-break rule and
// §9 Open Question (i), DECSLRM is ignored while this mode is off.
const ModeLeftRightMargin TerminalMode = 1 << 31

// scrollLeft/scrollRight live alongside scrollTop/scrollBottom on
// Terminal; declared here since DECSLRM is new surface, not teacher
// code. Accessors below keep the 0 value meaning "full width" so a
// Terminal created before this field existed behaves identically.

// SetScrollingRegionExtended applies DECSTBM (top/bottom) together
// with DECSLRM (left/right), per spec.md §4.D. left/right are ignored
// unless DECLRMM (ModeLeftRightMargin) is enabled — the established
// resolution for spec.md §9 Open Question (i). All four parameters are
// 1-indexed, matching the wire protocol; 0 means "unspecified,
// defaults to the correspoding edge".
//
// Not part of ansicode.Handler (see DESIGN.md "C/D" entry): go-ansicode
// has no dedicated DECSLRM dispatch in its published surface, so this
// is additional public API a caller can invoke directly, the same way
// every other Executor operation here is independently testable.
func (t *Terminal) SetScrollingRegionExtended(top, bottom, left, right int) {
	if t.middleware != nil && t.middleware.SetScrollingRegionExtended != nil {
		t.middleware.SetScrollingRegionExtended(top, bottom, left, right, t.setScrollingRegionExtendedInternal)
		return
	}
	t.setScrollingRegionExtendedInternal(top, bottom, left, right)
}

func (t *Terminal) setScrollingRegionExtendedInternal(top, bottom, left, right int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// A 1-based inclusive bottom/right equals the 0-based exclusive
	// bound that ScrollRegion and ScrollRegionColumns report.
	top--
	if top < 0 {
		top = 0
	}
	if bottom <= 0 || bottom > t.rows {
		bottom = t.rows
	}
	if top < bottom {
		t.scrollTop = top
		t.scrollBottom = bottom
	}

	if t.modes&ModeLeftRightMargin != 0 {
		left--
		if left < 0 {
			left = 0
		}
		if right <= 0 || right > t.cols {
			right = t.cols
		}
		if left < right {
			t.scrollLeft = left
			t.scrollRight = right
		}
	} else {
		t.scrollLeft = 0
		t.scrollRight = t.cols
	}

	if t.modes&ModeOrigin != 0 {
		t.cursor.Row = t.scrollTop
		t.cursor.Col = t.scrollLeft
	} else {
		t.cursor.Row = 0
		t.cursor.Col = 0
	}
}

// SetLeftRightMarginMode enables or disables DECLRMM (private mode
// 69). Like DECSLRM itself, go-ansicode's published Handler interface
// has no dedicated private-mode-69 dispatch (see DESIGN.md), so this
// is driven directly rather than through SetMode/UnsetMode.
func (t *Terminal) SetLeftRightMarginMode(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if enabled {
		t.modes |= ModeLeftRightMargin
	} else {
		t.modes &^= ModeLeftRightMargin
		t.scrollLeft = 0
		t.scrollRight = 0
	}
}

// ScrollRegionColumns returns the current left/right margin bounds
// (0-based, exclusive right), matching the shape of ScrollRegion.
// Returns (0, Cols()) when DECLRMM is off.
func (t *Terminal) ScrollRegionColumns() (left, right int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.scrollRight == 0 {
		return 0, t.cols
	}
	return t.scrollLeft, t.scrollRight
}
