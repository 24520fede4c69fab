package headlessterm

import "testing"

func TestAtottoClipboardImplementsProvider(t *testing.T) {
	var p ClipboardProvider = AtottoClipboard{}
	if p == nil {
		t.Fatal("expected AtottoClipboard to satisfy ClipboardProvider")
	}
}
