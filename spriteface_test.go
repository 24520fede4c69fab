package headlessterm

import (
	"image/color"
	"testing"
)

func testMetrics() SpriteFaceMetrics {
	return SpriteFaceMetrics{
		CellWidth:             10,
		CellHeight:            20,
		LineThickness:         1.5,
		UnderlinePosition:     18,
		StrikethroughPosition: 10,
	}
}

func TestSpriteFaceCoversBoxDrawing(t *testing.T) {
	f := NewSpriteFace(testMetrics())
	if !f.Covers(0x2500) {
		t.Fatal("expected box-drawing light horizontal to be covered")
	}
	if !f.Covers(0x259F) {
		t.Fatal("expected last block-element codepoint to be covered")
	}
}

func TestSpriteFaceCoversBraille(t *testing.T) {
	f := NewSpriteFace(testMetrics())
	if !f.Covers(0x2800) || !f.Covers(0x28FF) {
		t.Fatal("expected full braille range to be covered")
	}
}

func TestSpriteFaceCoversLegacyComputing(t *testing.T) {
	f := NewSpriteFace(testMetrics())
	if !f.Covers(0x1FB00) {
		t.Fatal("expected first legacy computing symbol to be covered")
	}
}

func TestSpriteFaceCoversPowerline(t *testing.T) {
	f := NewSpriteFace(testMetrics())
	if !f.Covers(0xE0B0) {
		t.Fatal("expected powerline right-pointing triangle to be covered")
	}
	if f.Covers(0xE0B1) {
		t.Fatal("0xE0B1 is not in the selected powerline set")
	}
}

func TestSpriteFaceDoesNotCoverOrdinaryLetters(t *testing.T) {
	f := NewSpriteFace(testMetrics())
	if f.Covers('a') {
		t.Fatal("ordinary letters must not be covered by the sprite face")
	}
}

func TestSpriteFaceGlyphUncoveredReturnsNil(t *testing.T) {
	f := NewSpriteFace(testMetrics())
	if img := f.Glyph('a', color.White); img != nil {
		t.Fatal("expected nil glyph for an uncovered codepoint")
	}
}

func TestSpriteFaceGlyphBoxDrawingSizedToCell(t *testing.T) {
	f := NewSpriteFace(testMetrics())
	img := f.Glyph(0x2500, color.White)
	if img == nil {
		t.Fatal("expected a rasterized glyph")
	}
	bounds := img.Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 20 {
		t.Fatalf("got %dx%d, want 10x20", bounds.Dx(), bounds.Dy())
	}
}

func TestSpriteFaceCursorShapesProduceImages(t *testing.T) {
	f := NewSpriteFace(testMetrics())
	for _, shape := range []CursorShape{CursorRect, CursorHollowRect, CursorBar, CursorUnderline} {
		if img := f.Cursor(shape, color.White); img == nil {
			t.Fatalf("cursor shape %v produced a nil image", shape)
		}
	}
}

func TestSpriteFaceUnderlineStylesProduceImages(t *testing.T) {
	f := NewSpriteFace(testMetrics())
	styles := []UnderlineStyle{UnderlineSingle, UnderlineDouble, UnderlineDotted, UnderlineDashed, UnderlineCurly}
	for _, style := range styles {
		if img := f.Underline(style, color.White); img == nil {
			t.Fatalf("underline style %v produced a nil image", style)
		}
	}
}
