package driver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/glazari/javaimports/parse"
)

// ScanRequest identifies one driver scan invocation across every file in
// a project (spec §5: the driver is the unit that fans a project's files
// out to concurrent scanner runs). ID is used purely for log/diagnostic
// correlation, matching mamaar/gorefactor and cuelang.org/go's use of
// google/uuid for per-run correlation ids.
type ScanRequest struct {
	ID    uuid.UUID
	Files []string
}

func NewScanRequest(files []string) ScanRequest {
	return ScanRequest{ID: uuid.New(), Files: files}
}

// FileScan pairs a file path with its scan outcome: exactly one of Scan
// or Err is set.
type FileScan struct {
	File string
	Scan *CachedScan
	Err  error
}

// ScanProject runs parser.ParseFile concurrently across req.Files, each
// file independent of every other (spec §5's "files may be scanned in
// any order, or concurrently, without affecting the result"). Up to
// concurrency files are in flight at once; concurrency <= 0 falls back
// to DEFAULT_CONCURRENCY. A per-file parse/scan error does not abort the
// other files still in flight -- it is recorded on that file's FileScan
// and surfaced to the caller once every file has finished.
func ScanProject(
	ctx context.Context,
	req ScanRequest,
	parser parse.Parser[CachedScan],
	concurrency int,
) ([]FileScan, error) {
	if concurrency <= 0 {
		concurrency = DEFAULT_CONCURRENCY
	}

	results := make([]FileScan, len(req.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, file := range req.Files {
		i, file := i, file
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			scan, errs := parser.ParseFile(file)
			if len(errs) > 0 {
				results[i] = FileScan{File: file, Err: fmt.Errorf("%s: %w", file, errs[0])}
				return nil
			}
			results[i] = FileScan{File: file, Scan: scan}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("driver: scan %s cancelled: %w", req.ID, err)
	}

	return results, nil
}
