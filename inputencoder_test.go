package headlessterm

import (
	"bytes"
	"testing"
)

func TestEncodePlainPayload(t *testing.T) {
	ev := KeyEvent{Text: "a"}
	got := Encode(ev, EncoderModes{})
	if !bytes.Equal(got, []byte("a")) {
		t.Fatalf("got %q, want %q", got, "a")
	}
}

func TestEncodeCtrlLetterToC0(t *testing.T) {
	ev := KeyEvent{Text: "a", Mods: ModCtrl}
	got := Encode(ev, EncoderModes{})
	want := []byte{0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("ctrl+a: got %#v, want %#v", got, want)
	}
}

func TestEncodeCtrlZToC0(t *testing.T) {
	ev := KeyEvent{Text: "z", Mods: ModCtrl}
	got := Encode(ev, EncoderModes{})
	want := []byte{0x1a}
	if !bytes.Equal(got, want) {
		t.Fatalf("ctrl+z: got %#v, want %#v", got, want)
	}
}

func TestEncodeKittyDisambiguateReportEventsCtrlA(t *testing.T) {
	ev := KeyEvent{Text: "a", Mods: ModCtrl, Action: KeyPress}
	modes := EncoderModes{Kitty: KittyDisambiguate | KittyReportEvents}
	got := Encode(ev, modes)
	want := []byte("\x1b[97;5u")
	if !bytes.Equal(got, want) {
		t.Fatalf("kitty ctrl+a: got %q, want %q", got, want)
	}
}

// TestEncodeKittyDisambiguateTabVsCtrlI exercises spec.md §8 scenario 4:
// with kitty disambiguate enabled, ctrl+i must escape (it would otherwise
// collide with plain Tab's legacy byte) while the physical Tab key, having
// nothing left to collide with, still sends its plain 0x09. Without the
// flag, both collapse to the same 0x09 byte.
func TestEncodeKittyDisambiguateTabVsCtrlI(t *testing.T) {
	modes := EncoderModes{Kitty: KittyDisambiguate}

	tab := Encode(KeyEvent{Key: KeyTab}, modes)
	wantTab := []byte{0x09}
	if !bytes.Equal(tab, wantTab) {
		t.Fatalf("kitty tab: got %q, want %q", tab, wantTab)
	}

	ctrlI := Encode(KeyEvent{Text: "i", Mods: ModCtrl}, modes)
	wantCtrlI := []byte("\x1b[105;5u")
	if !bytes.Equal(ctrlI, wantCtrlI) {
		t.Fatalf("kitty ctrl+i: got %q, want %q", ctrlI, wantCtrlI)
	}
	if bytes.Equal(tab, ctrlI) {
		t.Fatalf("tab and ctrl+i must disambiguate under kitty mode, both encoded as %q", tab)
	}

	noKittyTab := Encode(KeyEvent{Key: KeyTab}, EncoderModes{})
	noKittyCtrlI := Encode(KeyEvent{Text: "i", Mods: ModCtrl}, EncoderModes{})
	if !bytes.Equal(noKittyTab, wantTab) || !bytes.Equal(noKittyCtrlI, wantTab) {
		t.Fatalf("without kitty flags both tab and ctrl+i must send 0x09, got tab=%q ctrlI=%q", noKittyTab, noKittyCtrlI)
	}
}

func TestEncodeKittyReleaseSuppressedWithoutReportEvents(t *testing.T) {
	ev := KeyEvent{Text: "a", Action: KeyRelease}
	got := Encode(ev, EncoderModes{Kitty: KittyDisambiguate})
	if got != nil {
		t.Fatalf("release without report-events should emit nothing, got %q", got)
	}
}

func TestEncodeKittyReleaseWithReportEvents(t *testing.T) {
	ev := KeyEvent{Text: "a", Mods: ModCtrl, Action: KeyRelease}
	got := Encode(ev, EncoderModes{Kitty: KittyDisambiguate | KittyReportEvents})
	want := []byte("\x1b[97;5:3u")
	if !bytes.Equal(got, want) {
		t.Fatalf("kitty release: got %q, want %q", got, want)
	}
}

func TestEncodeComposingEventSuppressed(t *testing.T) {
	ev := KeyEvent{Text: "a", Composing: true}
	got := Encode(ev, EncoderModes{})
	if got != nil {
		t.Fatalf("composing event should emit nothing, got %q", got)
	}
}

func TestEncodeModifyOtherKeysState2(t *testing.T) {
	ev := KeyEvent{Text: "a", Mods: ModShift}
	got := Encode(ev, EncoderModes{ModifyOtherKeysState: 2})
	want := []byte("\x1b[27;2;97~")
	if !bytes.Equal(got, want) {
		t.Fatalf("modifyOtherKeys: got %q, want %q", got, want)
	}
}

func TestEncodeFixtermsCtrlBracket(t *testing.T) {
	ev := KeyEvent{Text: "[", Mods: ModCtrl | ModAlt}
	got := Encode(ev, EncoderModes{})
	want := []byte("\x1b[91;7u")
	if !bytes.Equal(got, want) {
		t.Fatalf("fixterms ctrl+alt+[: got %q, want %q", got, want)
	}
}

func TestEncodeCursorKeysApplicationMode(t *testing.T) {
	ev := KeyEvent{Key: KeyUp}
	got := Encode(ev, EncoderModes{CursorKeysApp: true})
	want := []byte("\x1bOA")
	if !bytes.Equal(got, want) {
		t.Fatalf("cursor-keys-app up: got %q, want %q", got, want)
	}

	gotNormal := Encode(ev, EncoderModes{})
	wantNormal := []byte("\x1b[A")
	if !bytes.Equal(gotNormal, wantNormal) {
		t.Fatalf("cursor-keys normal up: got %q, want %q", gotNormal, wantNormal)
	}
}

func TestEncodeArrowWithModifier(t *testing.T) {
	ev := KeyEvent{Key: KeyRight, Mods: ModShift}
	got := Encode(ev, EncoderModes{})
	want := []byte("\x1b[1;2C")
	if !bytes.Equal(got, want) {
		t.Fatalf("shift+right: got %q, want %q", got, want)
	}
}

func TestEncodeFunctionKeyTilde(t *testing.T) {
	ev := KeyEvent{Key: KeyF5}
	got := Encode(ev, EncoderModes{})
	want := []byte("\x1b[15~")
	if !bytes.Equal(got, want) {
		t.Fatalf("F5: got %q, want %q", got, want)
	}
}

func TestEncodeAltEscapePrefix(t *testing.T) {
	ev := KeyEvent{Text: "x", Mods: ModAlt}
	got := Encode(ev, EncoderModes{AltEscapePrefix: true})
	want := []byte("\x1bx")
	if !bytes.Equal(got, want) {
		t.Fatalf("alt+x: got %q, want %q", got, want)
	}
}

func TestEncodeKeypadApplicationMode(t *testing.T) {
	ev := KeyEvent{Key: KeyKeypadEnter}
	got := Encode(ev, EncoderModes{KeypadApp: true})
	want := []byte("\x1bOM")
	if !bytes.Equal(got, want) {
		t.Fatalf("keypad enter app mode: got %q, want %q", got, want)
	}

	gotNormal := Encode(ev, EncoderModes{})
	wantNormal := []byte("\r")
	if !bytes.Equal(gotNormal, wantNormal) {
		t.Fatalf("keypad enter normal: got %q, want %q", gotNormal, wantNormal)
	}
}
