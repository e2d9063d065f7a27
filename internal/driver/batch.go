package driver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"wisp/internal/source"
)

// BatchOptions configures ParseBatch/ParseDir.
type BatchOptions struct {
	// Jobs caps how many files parse concurrently. 0 or negative means
	// GOMAXPROCS.
	Jobs int
	// MaxDiagnostics bounds each file's diagnostic bag (0 = unbounded).
	MaxDiagnostics int
	// Observer, if set, receives every StageEvent from every file. It is
	// called from whichever goroutine ran that file's pipeline, so an
	// observer that isn't itself concurrency-safe must synchronize.
	Observer func(StageEvent)
	// Cache, if set, is consulted (Lookup) before parsing each file to
	// set FileResult.CacheHit, then updated (Put) after; see cache.go.
	// The file is still fully parsed either way.
	Cache *DiskCache
}

// ParseBatch runs ParseFile over files concurrently, bounded by
// opts.Jobs, and returns one FileResult per input in the same order —
// §8's property that batch parsing produces the same diagnostics as
// parsing every file serially. Each goroutine owns a disjoint arena and
// interner set (§5: "multiple single-threaded parses running side by
// side"), so there is no shared parser state to race on; the only
// shared resource is the FileSet, which every goroutine only reads from
// (all files are already loaded into it by the time ParseBatch starts).
func ParseBatch(ctx context.Context, fs *source.FileSet, files []source.FileID, opts BatchOptions) ([]FileResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			path := fs.Get(file).Path
			content := fs.Get(file).Content

			var cacheHit bool
			if opts.Cache != nil {
				_, cacheHit = opts.Cache.Lookup(content)
			}

			res := parseFileObserved(fs, file, opts.MaxDiagnostics, opts.Observer)
			res.CacheHit = cacheHit
			results[i] = res
			if opts.Cache != nil {
				_ = opts.Cache.Put(path, content, res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseDir loads every *.wisp file under dir (sorted for determinism)
// into a fresh FileSet and parses them with ParseBatch.
func ParseDir(ctx context.Context, dir string, opts BatchOptions) (*source.FileSet, []FileResult, error) {
	paths, err := ListWispFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fs := source.NewFileSet()
	files := make([]source.FileID, 0, len(paths))
	for _, p := range paths {
		id, err := fs.Load(p)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, id)
	}

	results, err := ParseBatch(ctx, fs, files, opts)
	if err != nil {
		return nil, nil, err
	}
	return fs, results, nil
}

// ListWispFiles returns every *.wisp file under dir, sorted, for a
// caller that wants the file list before committing to ParseDir (e.g.
// to size a progress view).
func ListWispFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".wisp") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
