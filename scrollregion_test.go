package headlessterm

import "testing"

func TestSetScrollingRegionExtendedIgnoresMarginsWithoutDECLRMM(t *testing.T) {
	term := New(WithSize(24, 80))
	term.SetScrollingRegionExtended(2, 10, 5, 20)

	left, right := term.ScrollRegionColumns()
	if left != 0 || right != 80 {
		t.Fatalf("got left=%d right=%d, want 0,80 (DECLRMM off should ignore margins)", left, right)
	}
}

func TestSetLeftRightMarginModeEnablesColumnMargins(t *testing.T) {
	term := New(WithSize(24, 80))
	term.SetLeftRightMarginMode(true)
	term.SetScrollingRegionExtended(2, 10, 5, 20)

	left, right := term.ScrollRegionColumns()
	if left != 4 || right != 20 {
		t.Fatalf("got left=%d right=%d, want 4,20", left, right)
	}
}

func TestSetLeftRightMarginModeDisableResetsMargins(t *testing.T) {
	term := New(WithSize(24, 80))
	term.SetLeftRightMarginMode(true)
	term.SetScrollingRegionExtended(2, 10, 5, 20)
	term.SetLeftRightMarginMode(false)

	left, right := term.ScrollRegionColumns()
	if left != 0 || right != 80 {
		t.Fatalf("got left=%d right=%d, want 0,80 after disabling DECLRMM", left, right)
	}
}

func TestSetScrollingRegionExtendedInvalidRangeIgnored(t *testing.T) {
	term := New(WithSize(24, 80))
	term.SetLeftRightMarginMode(true)
	term.SetScrollingRegionExtended(10, 2, 20, 5) // top > bottom, left > right

	left, right := term.ScrollRegionColumns()
	if left != 0 || right != 80 {
		t.Fatalf("got left=%d right=%d, want 0,80 (invalid range should be rejected)", left, right)
	}
}
