// Package verify runs the decode → encode → decode round-trip contract over
// directories of saved API responses. It is the runtime counterpart of the
// fixture-file tests: point it at a directory of .json files and it reports,
// per file, whether the codec absorbs the payload losslessly.
package verify

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"spur"
)

// Entities lists the accepted entity names, in the order they are
// documented.
var Entities = []string{"context", "tag", "status", "assessment"}

// Result reports the round-trip outcome for one file. Err is nil when the
// file decoded, re-encoded and decoded again to an equal record.
type Result struct {
	Path string
	Err  error
}

// Directory round-trips every .json file under dir (recursively) as the
// given entity, decoding at most workers files concurrently. The returned
// results are sorted by path; a per-file failure is reported in its Result,
// not as the function error.
func Directory(ctx context.Context, dir, entity string, workers int) ([]Result, error) {
	if !validEntity(entity) {
		return nil, fmt.Errorf("verify: unknown entity %q, want one of %s", entity, strings.Join(Entities, ", "))
	}
	if workers < 1 {
		workers = 1
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify: walk %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("verify: no .json files under %s", dir)
	}

	results := make([]Result, 0, len(files))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result := Result{Path: file}
			if data, err := os.ReadFile(file); err != nil {
				result.Err = err
			} else {
				result.Err = RoundTrip(entity, data)
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// Failed returns the subset of results that did not round-trip.
func Failed(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

// RoundTrip checks one payload: decode, encode the canonical form, decode
// again, and require both records to be equal. The first decode may consume
// non-canonical wire shapes; everything after one encode must be stable.
func RoundTrip(entity string, data []byte) error {
	switch entity {
	case "context":
		return roundTrip(data, spur.DecodeContext, spur.EncodeContext)
	case "tag":
		return roundTrip(data, spur.DecodeTagMetadata, spur.EncodeTagMetadata)
	case "status":
		return roundTrip(data, spur.DecodeStatus, spur.EncodeStatus)
	case "assessment":
		return roundTrip(data, spur.DecodeAssessment, spur.EncodeAssessment)
	default:
		return fmt.Errorf("verify: unknown entity %q", entity)
	}
}

func roundTrip[T any](data []byte, decode func([]byte) (*T, error), encode func(*T) ([]byte, error)) error {
	first, err := decode(data)
	if err != nil {
		return err
	}
	encoded, err := encode(first)
	if err != nil {
		return fmt.Errorf("verify: encode: %w", err)
	}
	second, err := decode(encoded)
	if err != nil {
		return fmt.Errorf("verify: decode of canonical form: %w", err)
	}
	if !reflect.DeepEqual(first, second) {
		return fmt.Errorf("verify: canonical form decodes to a different record")
	}
	return nil
}

func validEntity(entity string) bool {
	for _, known := range Entities {
		if entity == known {
			return true
		}
	}
	return false
}
