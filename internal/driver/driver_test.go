package driver_test

import (
	"context"
	"fmt"
	"testing"

	"wisp/internal/driver"
	"wisp/internal/source"
)

// TestParseBatchConsultsCache is §4.9's cache contract: ParseBatch looks
// up each file in the cache before parsing it (setting CacheHit), and
// always records a fresh summary afterward — a second pass over the same
// content sees a hit where the first pass saw none.
func TestParseBatchConsultsCache(t *testing.T) {
	cache, err := driver.OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	fs := source.NewFileSet()
	file := fs.AddVirtual("f.wisp", []byte("a = 0\n"))

	first, err := driver.ParseBatch(context.Background(), fs, []source.FileID{file}, driver.BatchOptions{Cache: cache})
	if err != nil {
		t.Fatalf("ParseBatch (first pass): %v", err)
	}
	if first[0].CacheHit {
		t.Fatalf("expected no cache hit on first pass")
	}

	second, err := driver.ParseBatch(context.Background(), fs, []source.FileID{file}, driver.BatchOptions{Cache: cache})
	if err != nil {
		t.Fatalf("ParseBatch (second pass): %v", err)
	}
	if !second[0].CacheHit {
		t.Fatalf("expected a cache hit on second pass")
	}
	if len(second[0].Module.Declarations) != len(first[0].Module.Declarations) {
		t.Fatalf("a cache hit must not skip reparsing: declaration counts differ")
	}
}

// TestParseBatchMatchesSerial is §8's driver-level property: running
// ParseBatch concurrently over N files must produce the same
// diagnostics, in the same order, as calling ParseFile on each file one
// at a time — the concurrency wrapper adds no cross-file interference.
func TestParseBatchMatchesSerial(t *testing.T) {
	sources := []string{
		"a = 0\nb = 0\n",
		"infixl 4 add as +\nexample = a + b + c\n",
		"main & Effect Unit\n",
		"x = a + b\n",
		"example = if a then b else c\n",
	}

	fs := source.NewFileSet()
	files := make([]source.FileID, len(sources))
	for i, src := range sources {
		files[i] = fs.AddVirtual(fmt.Sprintf("f%d.wisp", i), []byte(src))
	}

	serial := make([]driver.FileResult, len(files))
	for i, f := range files {
		serial[i] = driver.ParseFile(fs, f, 0)
	}

	batch, err := driver.ParseBatch(context.Background(), fs, files, driver.BatchOptions{Jobs: 4})
	if err != nil {
		t.Fatalf("ParseBatch: %v", err)
	}
	if len(batch) != len(serial) {
		t.Fatalf("expected %d results, got %d", len(serial), len(batch))
	}

	for i := range serial {
		want := serial[i].Bag.Items()
		got := batch[i].Bag.Items()
		if len(want) != len(got) {
			t.Fatalf("file %d: diagnostic count mismatch: serial %d, batch %d", i, len(want), len(got))
		}
		for j := range want {
			if want[j].Code != got[j].Code || want[j].Message != got[j].Message {
				t.Errorf("file %d diagnostic %d: serial %+v, batch %+v", i, j, want[j], got[j])
			}
		}
		if len(serial[i].Module.Declarations) != len(batch[i].Module.Declarations) {
			t.Errorf("file %d: declaration count mismatch: serial %d, batch %d",
				i, len(serial[i].Module.Declarations), len(batch[i].Module.Declarations))
		}
	}
}

func TestParseFileStageEventsFireInOrder(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("f.wisp", []byte("a = 0\n"))

	var stages []string
	_, err := driver.ParseBatch(context.Background(), fs, []source.FileID{file}, driver.BatchOptions{
		Jobs: 1,
		Observer: func(ev driver.StageEvent) {
			if ev.Status == driver.StageStart {
				stages = append(stages, ev.Stage)
			}
		},
	})
	if err != nil {
		t.Fatalf("ParseBatch: %v", err)
	}
	want := []string{driver.StageLex, driver.StageLayout, driver.StagePartition, driver.StageFixity, driver.StageParse}
	if len(stages) != len(want) {
		t.Fatalf("expected %d stage-start events, got %d: %v", len(want), len(stages), stages)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("stage %d: expected %q, got %q", i, want[i], stages[i])
		}
	}
}
