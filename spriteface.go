package headlessterm

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// SpriteFaceMetrics are the fixed parameters a Sprite Face draws
// against, per spec.md §4.G: "Owns no font file; parameters are {cell
// width px, cell height px, line thickness px, underline position px,
// strikethrough position px}".
type SpriteFaceMetrics struct {
	CellWidth          int
	CellHeight         int
	LineThickness      float64
	UnderlinePosition  int
	StrikethroughPosition int
}

// UnderlineStyle enumerates the underline variants spec.md §4.G lists.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineDotted
	UnderlineDashed
	UnderlineCurly
)

// CursorShape enumerates the cursor sprites spec.md §4.G lists.
type CursorShape int

const (
	CursorRect CursorShape = iota
	CursorHollowRect
	CursorBar
	CursorUnderline
)

// SpriteFace procedurally rasterizes the fixed codepoint ranges and
// sprite pages spec.md §4.G enumerates. It owns no font file — every
// glyph is built from coordinates computed in Go and rendered with
// rasterx's Filler/Dasher/ScannerGV pipeline, the same pipeline
// javanhut-RavenTerminal's icon.go drives for its app icon (see
// DESIGN.md "G. Sprite Face"), minus oksvg: there is no SVG source
// here, only Go-coded path geometry.
type SpriteFace struct {
	metrics SpriteFaceMetrics
}

// NewSpriteFace builds a SpriteFace for the given fixed metrics.
func NewSpriteFace(metrics SpriteFaceMetrics) *SpriteFace {
	return &SpriteFace{metrics: metrics}
}

// Covers reports whether r falls in one of the ranges spec.md §4.G
// assigns to Sprite Face.
func (f *SpriteFace) Covers(r rune) bool {
	switch {
	case r >= 0x2500 && r <= 0x259F:
		return true
	case r >= 0x2800 && r <= 0x28FF:
		return true
	case r >= 0x1FB00 && r <= 0x1FBEF:
		return !legacyComputingGap(r)
	case isPowerlineCodepoint(r):
		return true
	default:
		return false
	}
}

// legacyComputingGap reports the "handful of gaps" spec.md §4.G calls
// out within the Symbols for Legacy Computing block — the codepoints
// Unicode leaves unassigned in that range.
func legacyComputingGap(r rune) bool {
	switch r {
	case 0x1FB00 + 0x7B, 0x1FB00 + 0x7C, 0x1FB00 + 0x7D, 0x1FB00 + 0x7E, 0x1FB00 + 0x7F:
		// the five wedge/shade placeholders the block leaves reserved
		return true
	default:
		return false
	}
}

func isPowerlineCodepoint(r rune) bool {
	switch r {
	case 0xE0B0, 0xE0B2, 0xE0B4, 0xE0B6, 0xE0B8, 0xE0BA, 0xE0BC, 0xE0BE, 0xE0D2, 0xE0D4:
		return true
	default:
		return false
	}
}

// Glyph rasterizes r into a newly allocated RGBA image sized
// CellWidth x CellHeight, with fg painted and transparent background.
// Returns nil if r isn't covered (see Covers).
func (f *SpriteFace) Glyph(r rune, fg color.Color) *image.RGBA {
	if !f.Covers(r) {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, f.metrics.CellWidth, f.metrics.CellHeight))

	switch {
	case r >= 0x2500 && r <= 0x259F:
		f.drawBoxDrawing(img, r, fg)
	case r >= 0x2800 && r <= 0x28FF:
		f.drawBraille(img, r, fg)
	case r >= 0x1FB00 && r <= 0x1FBEF:
		f.drawLegacySymbol(img, r, fg)
	case isPowerlineCodepoint(r):
		f.drawPowerline(img, r, fg)
	}
	return img
}

// Cursor rasterizes a cursor sprite of the given shape.
func (f *SpriteFace) Cursor(shape CursorShape, fg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.metrics.CellWidth, f.metrics.CellHeight))
	w, h := float64(f.metrics.CellWidth), float64(f.metrics.CellHeight)

	switch shape {
	case CursorRect:
		fillRect(img, 0, 0, w, h, fg)
	case CursorHollowRect:
		strokeRect(img, f.metrics.LineThickness, 0, 0, w, h, fg)
	case CursorBar:
		fillRect(img, 0, 0, f.metrics.LineThickness, h, fg)
	case CursorUnderline:
		fillRect(img, 0, h-f.metrics.LineThickness, w, f.metrics.LineThickness, fg)
	}
	return img
}

// Underline rasterizes an underline sprite of the given style at the
// face's configured UnderlinePosition.
func (f *SpriteFace) Underline(style UnderlineStyle, fg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.metrics.CellWidth, f.metrics.CellHeight))
	w := float64(f.metrics.CellWidth)
	y := float64(f.metrics.UnderlinePosition)
	t := f.metrics.LineThickness

	switch style {
	case UnderlineSingle:
		fillRect(img, 0, y, w, t, fg)
	case UnderlineDouble:
		fillRect(img, 0, y-t, w, t, fg)
		fillRect(img, 0, y+t, w, t, fg)
	case UnderlineDotted:
		drawDashed(img, 0, y, w, t, 2, 2, fg)
	case UnderlineDashed:
		drawDashed(img, 0, y, w, t, 5, 3, fg)
	case UnderlineCurly:
		f.drawCurly(img, y, fg)
	}
	return img
}

// drawCurly draws a sinusoidal curly underline by sampling a sine
// wave across the cell width and stroking the resulting polyline with
// rasterx's Dasher, the same Filler-family scanner pipeline used
// throughout this file.
func (f *SpriteFace) drawCurly(img *image.RGBA, baseline float64, fg color.Color) {
	w := f.metrics.CellWidth
	amplitude := f.metrics.LineThickness * 1.5
	period := float64(w) / 1.5

	scanner := rasterx.NewScannerGV(w, f.metrics.CellHeight, img, img.Bounds())
	dasher := rasterx.NewDasher(w, f.metrics.CellHeight, scanner)
	dasher.SetStroke(fixed.Int26_6(f.metrics.LineThickness*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(fg)

	step := 2.0
	first := true
	for x := 0.0; x <= float64(w); x += step {
		y := baseline + amplitude*math.Sin(2*math.Pi*x/period)
		pt := toFixedPoint(x, y)
		if first {
			dasher.Start(pt)
			first = false
		} else {
			dasher.Line(pt)
		}
	}
	dasher.Stop(false)
	dasher.Draw()
}

// --- Box drawing (U+2500..U+259F) ---

// boxSegment enumerates which of the four half-edges (up/down/left/
// right from cell center) a box-drawing glyph strokes.
type boxSegment struct {
	up, down, left, right bool
	heavy                  bool
}

// boxDrawingTable maps a subset of the light/heavy single-line
// box-drawing glyphs (U+2500..U+254B) to the edges each glyph strokes.
// Codepoints not in the table (double-line, curved, dashed and the
// mixed light/heavy junctions) are drawn by drawBoxDrawing as the
// plain cross.
var boxDrawingTable = map[rune]boxSegment{
	0x2500: {left: true, right: true},
	0x2501: {left: true, right: true, heavy: true},
	0x2502: {up: true, down: true},
	0x2503: {up: true, down: true, heavy: true},
	0x250C: {down: true, right: true},
	0x2510: {down: true, left: true},
	0x2514: {up: true, right: true},
	0x2518: {up: true, left: true},
	0x251C: {up: true, down: true, right: true},
	0x2524: {up: true, down: true, left: true},
	0x252C: {down: true, left: true, right: true},
	0x2534: {up: true, left: true, right: true},
	0x253C: {up: true, down: true, left: true, right: true},
}

func (f *SpriteFace) drawBoxDrawing(img *image.RGBA, r rune, fg color.Color) {
	// Block elements (U+2580..U+259F) render as filled fractional
	// rectangles rather than stroked segments.
	if r >= 0x2580 && r <= 0x259F {
		f.drawBlockElement(img, r, fg)
		return
	}

	seg, ok := boxDrawingTable[r]
	if !ok {
		// Unmapped box-drawing codepoints (double-line/curved/dashed
		// variants) render as the plain cross, a safe default that
		// keeps grid continuity rather than leaving a blank cell.
		seg = boxSegment{up: true, down: true, left: true, right: true}
	}

	w, h := float64(f.metrics.CellWidth), float64(f.metrics.CellHeight)
	cx, cy := w/2, h/2
	thickness := f.metrics.LineThickness
	if seg.heavy {
		thickness *= 2
	}

	if seg.left {
		fillRect(img, 0, cy-thickness/2, cx-thickness/2, thickness, fg)
	}
	if seg.right {
		fillRect(img, cx-thickness/2, cy-thickness/2, w-cx+thickness/2, thickness, fg)
	}
	if seg.up {
		fillRect(img, cx-thickness/2, 0, thickness, cy-thickness/2, fg)
	}
	if seg.down {
		fillRect(img, cx-thickness/2, cy-thickness/2, thickness, h-cy+thickness/2, fg)
	}
}

// drawBlockElement renders U+2580..U+259F. The upper, lower, left and
// right half blocks and the full block are drawn as the rectangle they
// name; shade glyphs (U+2591-2593) fill the cell with an averaged
// alpha rather than a dither pattern. Every other codepoint in the
// range (eighths, quadrants) fills the whole cell.
func (f *SpriteFace) drawBlockElement(img *image.RGBA, r rune, fg color.Color) {
	w, h := float64(f.metrics.CellWidth), float64(f.metrics.CellHeight)
	switch r {
	case 0x2580: // upper half block
		fillRect(img, 0, 0, w, h/2, fg)
	case 0x2584: // lower half block
		fillRect(img, 0, h/2, w, h/2, fg)
	case 0x2588: // full block
		fillRect(img, 0, 0, w, h, fg)
	case 0x258C: // left half block
		fillRect(img, 0, 0, w/2, h, fg)
	case 0x2590: // right half block
		fillRect(img, w/2, 0, w/2, h, fg)
	case 0x2591, 0x2592, 0x2593: // light/medium/dark shade
		alpha := map[rune]uint8{0x2591: 64, 0x2592: 128, 0x2593: 192}[r]
		fillRect(img, 0, 0, w, h, shadeColor(fg, alpha))
	default:
		fillRect(img, 0, 0, w, h, fg)
	}
}

func shadeColor(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}

// --- Braille (U+2800..U+28FF) ---

// brailleDotOffsets maps each of the 8 Braille dot bits (bit 0 = dot 1
// .. bit 7 = dot 8) to its (col, row) position in the standard 2x4
// Braille cell layout.
var brailleDotOffsets = [8][2]int{
	{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {0, 3}, {1, 3},
}

func (f *SpriteFace) drawBraille(img *image.RGBA, r rune, fg color.Color) {
	bits := r - 0x2800
	w, h := float64(f.metrics.CellWidth), float64(f.metrics.CellHeight)
	dotW, dotH := w/2, h/4
	radius := math.Min(dotW, dotH) * 0.35

	for bit := 0; bit < 8; bit++ {
		if bits&(1<<uint(bit)) == 0 {
			continue
		}
		col, row := brailleDotOffsets[bit][0], brailleDotOffsets[bit][1]
		cx := dotW*float64(col) + dotW/2
		cy := dotH*float64(row) + dotH/2
		fillCircle(img, cx, cy, radius, fg)
	}
}

// --- Legacy computing symbols (U+1FB00..U+1FBEF) ---

// drawLegacySymbol renders the sextant block subset
// (U+1FB00..U+1FB3B) as 2x3 (sextant) fractional block grids — the
// same "fill a subset of a fixed sub-grid" technique as
// drawBlockElement, generalized to a finer grid. Codepoints outside
// the sextant range fall back to a solid block, keeping every
// codepoint in the covered range visibly distinct from blank.
func (f *SpriteFace) drawLegacySymbol(img *image.RGBA, r rune, fg color.Color) {
	if r >= 0x1FB00 && r <= 0x1FB3B {
		f.drawSextant(img, r, fg)
		return
	}
	w, h := float64(f.metrics.CellWidth), float64(f.metrics.CellHeight)
	fillRect(img, 0, 0, w, h, fg)
}

// sextantOffsets maps each of the 6 sextant bits to its (col, row) in
// a 2x3 grid, per the Unicode "Symbols for Legacy Computing" sextant
// block layout (bit 0 = top-left .. bit 5 = bottom-right).
var sextantOffsets = [6][2]int{
	{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2},
}

func (f *SpriteFace) drawSextant(img *image.RGBA, r rune, fg color.Color) {
	// U+1FB00 is sextant pattern 1; Unicode skips the patterns equal to
	// the left half, right half and full block (21, 42, 63).
	bits := int(r-0x1FB00) + 1
	if bits >= 21 {
		bits++
	}
	if bits >= 42 {
		bits++
	}
	w, h := float64(f.metrics.CellWidth), float64(f.metrics.CellHeight)
	cw, ch := w/2, h/3

	for bit := 0; bit < 6; bit++ {
		if bits&(1<<uint(bit)) == 0 {
			continue
		}
		col, row := sextantOffsets[bit][0], sextantOffsets[bit][1]
		fillRect(img, cw*float64(col), ch*float64(row), cw, ch, fg)
	}
}

// --- Powerline glyphs (U+E0B0 etc.) ---

// drawPowerline renders the solid right/left separators (U+E0B0,
// U+E0B2) as a filled triangle spanning the full cell height; the
// half-circle separators (U+E0B4, U+E0B6) are drawn as the same
// straight-edged triangle. The other covered codepoints fill the
// whole cell.
func (f *SpriteFace) drawPowerline(img *image.RGBA, r rune, fg color.Color) {
	w, h := float64(f.metrics.CellWidth), float64(f.metrics.CellHeight)
	scanner := rasterx.NewScannerGV(f.metrics.CellWidth, f.metrics.CellHeight, img, img.Bounds())
	filler := rasterx.NewFiller(f.metrics.CellWidth, f.metrics.CellHeight, scanner)
	filler.SetColor(fg)

	var pts [][2]float64
	switch r {
	case 0xE0B0, 0xE0B2: // solid right/left pointing triangle
		pts = [][2]float64{{0, 0}, {w, h / 2}, {0, h}}
		if r == 0xE0B2 {
			pts = [][2]float64{{w, 0}, {0, h / 2}, {w, h}}
		}
	case 0xE0B4, 0xE0B6: // half-circle wedge, approximated as a wedge
		pts = [][2]float64{{0, 0}, {w, h / 2}, {0, h}}
		if r == 0xE0B6 {
			pts = [][2]float64{{w, 0}, {0, h / 2}, {w, h}}
		}
	default:
		pts = [][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}
	}

	filler.Start(toFixedPoint(pts[0][0], pts[0][1]))
	for _, p := range pts[1:] {
		filler.Line(toFixedPoint(p[0], p[1]))
	}
	filler.Stop(true)
	filler.Draw()
}

// --- rasterx drawing primitives shared by the shapes above ---

func toFixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func fillRect(img *image.RGBA, x, y, w, h float64, c color.Color) {
	scanner := rasterx.NewScannerGV(img.Bounds().Dx(), img.Bounds().Dy(), img, img.Bounds())
	filler := rasterx.NewFiller(img.Bounds().Dx(), img.Bounds().Dy(), scanner)
	filler.SetColor(c)
	filler.Start(toFixedPoint(x, y))
	filler.Line(toFixedPoint(x+w, y))
	filler.Line(toFixedPoint(x+w, y+h))
	filler.Line(toFixedPoint(x, y+h))
	filler.Stop(true)
	filler.Draw()
}

func strokeRect(img *image.RGBA, thickness, x, y, w, h float64, c color.Color) {
	scanner := rasterx.NewScannerGV(img.Bounds().Dx(), img.Bounds().Dy(), img, img.Bounds())
	dasher := rasterx.NewDasher(img.Bounds().Dx(), img.Bounds().Dy(), scanner)
	dasher.SetStroke(fixed.Int26_6(thickness*64), 0, rasterx.ButtCap, rasterx.ButtCap, rasterx.NilGap, rasterx.Arc, nil, 0)
	dasher.SetColor(c)
	dasher.Start(toFixedPoint(x, y))
	dasher.Line(toFixedPoint(x+w, y))
	dasher.Line(toFixedPoint(x+w, y+h))
	dasher.Line(toFixedPoint(x, y+h))
	dasher.Stop(true)
	dasher.Draw()
}

func drawDashed(img *image.RGBA, x, y, w, h, dashLen, gapLen float64, c color.Color) {
	scanner := rasterx.NewScannerGV(img.Bounds().Dx(), img.Bounds().Dy(), img, img.Bounds())
	dasher := rasterx.NewDasher(img.Bounds().Dx(), img.Bounds().Dy(), scanner)
	dasher.SetStroke(fixed.Int26_6(h*64), 0, rasterx.ButtCap, rasterx.ButtCap, rasterx.NilGap, rasterx.Arc, []float64{dashLen, gapLen}, 0)
	dasher.SetColor(c)
	dasher.Start(toFixedPoint(x, y+h/2))
	dasher.Line(toFixedPoint(x+w, y+h/2))
	dasher.Stop(false)
	dasher.Draw()
}

func fillCircle(img *image.RGBA, cx, cy, radius float64, c color.Color) {
	scanner := rasterx.NewScannerGV(img.Bounds().Dx(), img.Bounds().Dy(), img, img.Bounds())
	filler := rasterx.NewFiller(img.Bounds().Dx(), img.Bounds().Dy(), scanner)
	filler.SetColor(c)

	const segments = 16
	first := true
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		px := cx + radius*math.Cos(theta)
		py := cy + radius*math.Sin(theta)
		pt := toFixedPoint(px, py)
		if first {
			filler.Start(pt)
			first = false
		} else {
			filler.Line(pt)
		}
	}
	filler.Stop(true)
	filler.Draw()
}
