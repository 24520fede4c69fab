package headlessterm

import "testing"

type countingDiagnostics struct {
	counts map[string]int
}

func (c *countingDiagnostics) Count(kind string) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[kind]++
}

func TestDiagnosticsProviderCountsDroppedGrapheme(t *testing.T) {
	term := New(WithSize(1, 1))
	diag := &countingDiagnostics{}
	term.SetDiagnosticsProvider(diag)

	// A combining mark arriving with the cursor at row 0, col 0 has no
	// preceding cell to attach to.
	term.Write([]byte("́"))

	if diag.counts["parser.grapheme-no-target-cell"] == 0 {
		t.Fatal("expected a diagnostics count for a grapheme with no target cell")
	}
}

func TestNoopDiagnosticsDiscardsCounts(t *testing.T) {
	var d NoopDiagnostics
	d.Count("anything")
}
