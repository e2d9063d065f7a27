package diag_test

import (
	"testing"

	"wisp/internal/diag"
	"wisp/internal/source"
)

func TestBagRespectsCapacity(t *testing.T) {
	b := diag.NewBag(2)
	if !b.Add(diag.NewError(diag.UnexpectedToken, source.Span{}, "one")) {
		t.Fatalf("first add should succeed")
	}
	if !b.Add(diag.NewError(diag.UnexpectedToken, source.Span{}, "two")) {
		t.Fatalf("second add should succeed")
	}
	if b.Add(diag.NewError(diag.UnexpectedToken, source.Span{}, "three")) {
		t.Fatalf("third add should be dropped at capacity")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
	if !b.Full() {
		t.Fatalf("bag should report full at capacity")
	}
}

func TestBagHasErrors(t *testing.T) {
	b := diag.NewBag(0)
	b.Add(diag.New(diag.SevWarning, diag.UnknownBindingPower, source.Span{}, "warn"))
	if b.HasErrors() {
		t.Fatalf("warnings alone should not count as errors")
	}
	b.Add(diag.NewError(diag.UnexpectedEndOfFile, source.Span{}, "boom"))
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors to be true after adding an error")
	}
}

func TestBagDedup(t *testing.T) {
	b := diag.NewBag(0)
	sp := source.Span{File: 0, Start: 3, End: 5}
	b.Add(diag.NewError(diag.MalformedDigit, sp, "bad digit"))
	b.Add(diag.NewError(diag.MalformedDigit, sp, "bad digit"))
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("expected dedup to collapse to 1 item, got %d", b.Len())
	}
}

func TestBagSortOrdersByFileThenStart(t *testing.T) {
	b := diag.NewBag(0)
	b.Add(diag.NewError(diag.UnexpectedToken, source.Span{File: 0, Start: 10, End: 11}, "late"))
	b.Add(diag.NewError(diag.UnexpectedToken, source.Span{File: 0, Start: 2, End: 3}, "early"))
	b.Sort()
	items := b.Items()
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Fatalf("expected sort by span start, got %#v", items)
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.NewError(diag.UnexpectedToken, source.Span{}, "a"))
	other := diag.NewBag(2)
	other.Add(diag.NewError(diag.UnexpectedToken, source.Span{}, "b"))
	other.Add(diag.NewError(diag.UnexpectedToken, source.Span{}, "c"))
	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("expected merged bag to hold 3 items, got %d", a.Len())
	}
}
