package diag

import "wisp/internal/source"

// Reporter is the minimal contract a pipeline stage uses to emit
// diagnostics without coupling to how they're stored.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a Bag into a Reporter.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards every diagnostic. Useful when a caller wants the
// core pipeline to run without accumulating a Bag.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
