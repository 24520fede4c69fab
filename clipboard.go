package headlessterm

import "github.com/atotto/clipboard"

// AtottoClipboard is a ClipboardProvider backed by the host OS
// clipboard via github.com/atotto/clipboard, alongside the teacher's
// NoopClipboard default (see DESIGN.md "Clipboard"). It treats both
// the 'c' (clipboard) and 'p' (primary selection) selectors the same
// way, since atotto/clipboard exposes only one system clipboard slot;
// that matches most non-X11 hosts where there is no separate primary
// selection anyway.
type AtottoClipboard struct{}

func (AtottoClipboard) Read(clip byte) string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return text
}

func (AtottoClipboard) Write(clip byte, data []byte) {
	_ = clipboard.WriteAll(string(data))
}

var _ ClipboardProvider = AtottoClipboard{}
