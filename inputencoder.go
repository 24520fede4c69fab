package headlessterm

import (
	"fmt"
	"strings"
	"unicode"
)

// Key is a logical, platform-independent key identity for the subset
// of keys that need special-case encoding (function keys, navigation,
// keypad). Printable keys are carried entirely in KeyEvent.Text and
// don't need an entry here.
type Key int

const (
	KeyUnidentified Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadEnter
	KeyKeypadAdd
	KeyKeypadSubtract
	KeyKeypadMultiply
	KeyKeypadDivide
)

// KeyAction distinguishes press, repeat, and release events, per
// spec.md §4.E.
type KeyAction int

const (
	KeyPress KeyAction = iota
	KeyRepeat
	KeyRelease
)

// KeyModifier is a bitmask of active modifiers.
type KeyModifier uint8

const (
	ModShift KeyModifier = 1 << iota
	ModAlt
	ModCtrl
	ModSuper
	ModHyper
	ModMeta
	ModCapsLock
	ModNumLock
)

// kittyParam is the 1-based modifier encoding used by every CSI-u-style
// form (kitty keyboard, fixterms, modify-other-keys): 1 + bitmask of
// shift(1)/alt(2)/ctrl(4)/super(8)/hyper(16)/meta(32).
func (m KeyModifier) kittyParam() int {
	n := 0
	if m&ModShift != 0 {
		n |= 1
	}
	if m&ModAlt != 0 {
		n |= 2
	}
	if m&ModCtrl != 0 {
		n |= 4
	}
	if m&ModSuper != 0 {
		n |= 8
	}
	if m&ModHyper != 0 {
		n |= 16
	}
	if m&ModMeta != 0 {
		n |= 32
	}
	return n + 1
}

func (m KeyModifier) any() bool {
	return m&(ModShift|ModAlt|ModCtrl|ModSuper|ModHyper|ModMeta) != 0
}

// KeyEvent is the Input Encoder's sole input, per spec.md §4.E.
type KeyEvent struct {
	Key        Key
	Text       string // printable UTF-8 payload, possibly empty
	Action     KeyAction
	Mods       KeyModifier
	Composing  bool   // IME dead-key composition in progress
	AssocText  string // associated text for kitty-keyboard reporting
}

// KittyFlags is the kitty keyboard protocol's progressive-enhancement
// bitset (CSI > flags u / CSI ? flags u), per spec.md §3 mode set and
// §6 "Kitty keyboard protocol". Kept as our own type (rather than
// reusing github.com/danielgatis/go-ansicode's internal KeyboardMode
// representation) since the encoder is specified as a pure function of
// explicit inputs and must not assume undocumented bit layouts of a
// closed-source dependency; a caller reads the active stack off
// Terminal and translates it into KittyFlags itself.
type KittyFlags uint8

const (
	KittyDisambiguate KittyFlags = 1 << iota
	KittyReportEvents
	KittyAlternateKeys
	KittyAllAsEscape
	KittyAssociatedText
)

// EncoderModes bundles the orthogonal terminal modes the Input Encoder
// consults, per spec.md §4.E's "mode set" parameter. AltEscapePrefix
// corresponds to xterm's "metaSendsEscape"/alt-as-escape-prefix
// convention.
type EncoderModes struct {
	Kitty               KittyFlags
	ModifyOtherKeysState int // 0 (off), 1, or 2
	CursorKeysApp       bool
	KeypadApp           bool
	AltEscapePrefix     bool
}

// Encode is a pure function of (event, modes) → bytes to send to the
// PTY, per spec.md §4.E. It holds no hidden state; every mode input is
// explicit. Release events emit nothing unless Kitty.ReportEvents is
// set; composing events always emit nothing.
func Encode(ev KeyEvent, modes EncoderModes) []byte {
	if ev.Composing {
		return nil
	}
	if ev.Action == KeyRelease && modes.Kitty&KittyReportEvents == 0 {
		return nil
	}

	// Layer 1: kitty keyboard protocol. Only escapes when the key is
	// genuinely ambiguous with another combination under plain encoding
	// (a Text-derived codepoint, i.e. ctrl+letter) or needs an event-type
	// field; an unmodified functional key (plain Tab, Enter, ...) has no
	// collision to disambiguate and falls through to its legacy byte.
	if modes.Kitty != 0 {
		if b, ok := encodeKitty(ev, modes); ok {
			return b
		}
	}

	// Layer 2: modify-other-keys state 2.
	if modes.ModifyOtherKeysState == 2 && ev.Key == KeyUnidentified && ev.Text != "" {
		if cp, mods, ok := modifyOtherKeysCandidate(ev); ok {
			return []byte(fmt.Sprintf("\x1b[27;%d;%d~", mods.kittyParam(), cp))
		}
	}

	// Layer 3: fixterms, ctrl+letter/symbol that would otherwise
	// collide with a C0 control code. Applies only when a modifier
	// besides ctrl is held that the C0 byte of layer 5 cannot carry
	// (alt is not counted when AltEscapePrefix expresses it as ESC).
	if ev.Mods&ModCtrl != 0 && ev.Key == KeyUnidentified && ev.Text != "" {
		extra := ev.Mods &^ ModCtrl
		if modes.AltEscapePrefix {
			extra &^= ModAlt
		}
		if extra != 0 {
			if cp, ok := fixtermsCandidate(ev); ok {
				return []byte(fmt.Sprintf("\x1b[%d;%du", cp, ev.Mods.kittyParam()))
			}
		}
	}

	// Layer 4: PC-style function key table.
	if b, ok := encodePCFunctionKey(ev.Key, ev.Mods, modes); ok {
		return b
	}

	// Layer 5: ctrl (alone, or with alt) mapping to a C0 byte.
	if ev.Mods&ModCtrl != 0 {
		if c0, ok := ctrlToC0(ev); ok {
			out := []byte{c0}
			if ev.Mods&ModAlt != 0 && modes.AltEscapePrefix {
				out = append([]byte{0x1b}, out...)
			}
			return out
		}
	}

	// Layer 6: plain payload, optionally ESC-prefixed for alt.
	out := []byte(ev.Text)
	if ev.Mods&ModAlt != 0 && modes.AltEscapePrefix && len(out) > 0 {
		out = append([]byte{0x1b}, out...)
	}
	return out
}

// encodeKitty implements the CSI-u kitty keyboard form: `CSI
// codepoint[:alt[:shifted]] [; mods[:event]] [; text] u`. Only the
// disambiguate + report-events + associated-text fields that spec.md's
// testable properties exercise are populated; unset optional fields
// are omitted per the protocol's own "omit when default" convention.
func encodeKitty(ev KeyEvent, modes EncoderModes) ([]byte, bool) {
	_, textDerived := singleRune(ev.Text)
	cp := kittyCodepoint(ev)
	if cp == 0 {
		return nil, false
	}
	needsReportEvent := modes.Kitty&KittyReportEvents != 0 && ev.Action != KeyPress
	if !textDerived && !ev.Mods.any() && !needsReportEvent {
		// A plain, unmodified functional key (e.g. Tab) collides with
		// nothing once ctrl-combos are escaped via their own letter
		// codepoint; let it fall through to its legacy byte.
		return nil, false
	}

	var b strings.Builder
	b.WriteString("\x1b[")
	fmt.Fprintf(&b, "%d", cp)

	mods := ev.Mods.kittyParam()
	needsModField := mods != 1 || modes.Kitty&KittyReportEvents != 0 && ev.Action != KeyPress
	if needsModField {
		fmt.Fprintf(&b, ";%d", mods)
		if modes.Kitty&KittyReportEvents != 0 && ev.Action != KeyPress {
			switch ev.Action {
			case KeyRepeat:
				b.WriteString(":2")
			case KeyRelease:
				b.WriteString(":3")
			}
		}
	}

	if modes.Kitty&KittyAssociatedText != 0 && ev.AssocText != "" {
		b.WriteString(";")
		for i, r := range []rune(ev.AssocText) {
			if i > 0 {
				b.WriteString(":")
			}
			fmt.Fprintf(&b, "%d", r)
		}
	}

	b.WriteString("u")
	return []byte(b.String()), true
}

// kittyCodepoint picks the Unicode codepoint CSI-u reports for the key:
// the key's own Text rune when printable, otherwise a functional-key
// codepoint from the kitty spec's private-use-area table for the few
// keys spec.md's test scenarios exercise (Tab, Enter, Escape,
// Backspace, arrows).
func kittyCodepoint(ev KeyEvent) int {
	if r, ok := singleRune(ev.Text); ok {
		return int(r)
	}
	switch ev.Key {
	case KeyEnter:
		return 13
	case KeyTab:
		return 9
	case KeyBackspace:
		return 127
	case KeyEscape:
		return 27
	case KeySpace:
		return 32
	case KeyUp:
		return 57352 // kitty functional key codepoints (private use area)
	case KeyDown:
		return 57353
	case KeyLeft:
		return 57354
	case KeyRight:
		return 57355
	case KeyHome:
		return 57356
	case KeyEnd:
		return 57357
	case KeyPageUp:
		return 57358
	case KeyPageDown:
		return 57359
	case KeyInsert:
		return 57360
	case KeyDelete:
		return 57361
	case KeyF1:
		return 57364
	case KeyF2:
		return 57365
	case KeyF3:
		return 57366
	case KeyF4:
		return 57367
	default:
		return 0
	}
}

func singleRune(s string) (rune, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}

// modifyOtherKeysCandidate returns the codepoint and modifiers to
// report for `CSI 27 ; mods ; codepoint ~`, applicable when the key is
// not itself a C0 producer (i.e. ctrl is not combined with a letter
// that would otherwise collide with a control code).
func modifyOtherKeysCandidate(ev KeyEvent) (int, KeyModifier, bool) {
	r, ok := singleRune(ev.Text)
	if !ok || !ev.Mods.any() {
		return 0, 0, false
	}
	if ev.Mods&ModCtrl != 0 {
		if _, isC0 := ctrlToC0(ev); isC0 {
			return 0, 0, false
		}
	}
	return int(r), ev.Mods, true
}

// fixtermsCandidate reports the codepoint to encode under `CSI
// codepoint ; mods u` when ctrl is combined with a letter/symbol that
// would otherwise collide with a C0 control code (e.g. ctrl+[ == ESC).
func fixtermsCandidate(ev KeyEvent) (int, bool) {
	r, ok := singleRune(ev.Text)
	if !ok {
		return 0, false
	}
	if _, isC0 := ctrlToC0(ev); !isC0 {
		return 0, false
	}
	return int(unicode.ToLower(r)), true
}

// ctrlToC0 maps ctrl+key to its C0 control byte (0x00-0x1F), per the
// classical ASCII ctrl-mask convention: ctrl+A..Z -> 0x01..0x1A, plus
// the handful of punctuation keys that also map into C0.
func ctrlToC0(ev KeyEvent) (byte, bool) {
	r, ok := singleRune(ev.Text)
	if !ok {
		return 0, false
	}
	upper := unicode.ToUpper(r)
	switch {
	case upper >= 'A' && upper <= 'Z':
		return byte(upper - 'A' + 1), true
	case r == ' ':
		return 0x00, true
	case r == '[' || r == '3':
		return 0x1b, true
	case r == '\\' || r == '4':
		return 0x1c, true
	case r == ']' || r == '5':
		return 0x1d, true
	case r == '^' || r == '6':
		return 0x1e, true
	case r == '_' || r == '7' || r == '/':
		return 0x1f, true
	case r == '8' || r == '?':
		return 0x7f, true
	default:
		return 0, false
	}
}

// encodePCFunctionKey encodes the fixed table of non-character keys
// (cursor/navigation/function keys), honoring cursor-keys-application
// and keypad-application mode for the keys whose encoding depends on
// them.
func encodePCFunctionKey(key Key, mods KeyModifier, modes EncoderModes) ([]byte, bool) {
	modParam := mods.kittyParam()
	csiOrSs3 := func(final byte, appMode bool) []byte {
		if mods.any() {
			return []byte(fmt.Sprintf("\x1b[1;%d%c", modParam, final))
		}
		if appMode {
			return []byte{0x1b, 'O', final}
		}
		return []byte{0x1b, '[', final}
	}

	switch key {
	case KeyUp:
		return csiOrSs3('A', modes.CursorKeysApp), true
	case KeyDown:
		return csiOrSs3('B', modes.CursorKeysApp), true
	case KeyRight:
		return csiOrSs3('C', modes.CursorKeysApp), true
	case KeyLeft:
		return csiOrSs3('D', modes.CursorKeysApp), true
	case KeyHome:
		return csiOrSs3('H', modes.CursorKeysApp), true
	case KeyEnd:
		return csiOrSs3('F', modes.CursorKeysApp), true
	case KeyF1:
		return csiOrSs3('P', false), true
	case KeyF2:
		return csiOrSs3('Q', false), true
	case KeyF3:
		return csiOrSs3('R', false), true
	case KeyF4:
		return csiOrSs3('S', false), true
	case KeyPageUp:
		return tildeKey(5, mods), true
	case KeyPageDown:
		return tildeKey(6, mods), true
	case KeyInsert:
		return tildeKey(2, mods), true
	case KeyDelete:
		return tildeKey(3, mods), true
	case KeyF5:
		return tildeKey(15, mods), true
	case KeyF6:
		return tildeKey(17, mods), true
	case KeyF7:
		return tildeKey(18, mods), true
	case KeyF8:
		return tildeKey(19, mods), true
	case KeyF9:
		return tildeKey(20, mods), true
	case KeyF10:
		return tildeKey(21, mods), true
	case KeyF11:
		return tildeKey(23, mods), true
	case KeyF12:
		return tildeKey(24, mods), true
	case KeyEnter:
		return []byte{'\r'}, true
	case KeyTab:
		if mods&ModShift != 0 {
			return []byte("\x1b[Z"), true
		}
		return []byte{'\t'}, true
	case KeyBackspace:
		return []byte{0x7f}, true
	case KeyEscape:
		return []byte{0x1b}, true
	case KeyKeypadEnter:
		if modes.KeypadApp {
			return []byte("\x1bOM"), true
		}
		return []byte{'\r'}, true
	default:
		return nil, false
	}
}

func tildeKey(n int, mods KeyModifier) []byte {
	if mods.any() {
		return []byte(fmt.Sprintf("\x1b[%d;%d~", n, mods.kittyParam()))
	}
	return []byte(fmt.Sprintf("\x1b[%d~", n))
}
