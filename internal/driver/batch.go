package driver

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FileResult pairs a compiled file's relative path with its Result, for
// the batch "build" command (SPEC_FULL.md's directory-compile supplement).
type FileResult struct {
	Path   string
	Result Result
}

// CompileDir compiles every ".sc" file under dir concurrently, bounding
// the number of simultaneously-running compiles at jobs (0 sets no bound:
// every file gets its own goroutine at once). Results
// are returned sorted by path so output is deterministic regardless of
// goroutine completion order.
func CompileDir(ctx context.Context, dir string, jobs int) ([]FileResult, error) {
	return CompileDirWithProgress(ctx, dir, jobs, nil)
}

// ListSourceFiles returns every ".sc" file under dir, sorted.
func ListSourceFiles(dir string) ([]string, error) {
	paths, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// CompileDirWithProgress behaves like CompileDir, additionally invoking
// onStatus twice per file — once as a compile starts (done=false) and
// once as it finishes (done=true, failed reports whether it produced any
// diagnostic) — so a caller such as the "build" CLI command can drive a
// live progress display. onStatus may be nil.
func CompileDirWithProgress(ctx context.Context, dir string, jobs int, onStatus func(path string, done, failed bool)) ([]FileResult, error) {
	paths, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if onStatus != nil {
				onStatus(p, false, false)
			}
			content, err := os.ReadFile(p)
			if err != nil {
				return err
			}
			res := CompileFrontend(string(content))
			results[i] = FileResult{Path: p, Result: res}
			if onStatus != nil {
				onStatus(p, true, res.HasErrors())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

func listSourceFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(p, ".sc") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
