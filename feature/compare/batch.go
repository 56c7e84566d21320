package compare

import (
	"context"

	"xml-compare-api/core/xmldiff"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunBatch evaluates inline comparisons synchronously in submission
// order. A failing item is replaced by a placeholder and counted as
// failed; the batch itself always succeeds.
func (s *Service) RunBatch(reqs []CompareRequest) BatchResult {
	results := make([]xmldiff.Result, len(reqs))
	failed := 0

	for i, req := range reqs {
		result, err := s.CompareXML(req)
		if err != nil {
			s.logger.Warn("Batch item failed", zap.Int("index", i), zap.Error(err))
			results[i] = placeholder()
			failed++
			continue
		}
		results[i] = result
	}

	return BatchResult{
		Results:    results,
		Total:      len(reqs),
		Successful: len(reqs) - failed,
		Failed:     failed,
	}
}

// RunURLBatch evaluates URL comparisons concurrently through a bounded
// worker group. Each result lands in the slot of its request, so the
// output order is the submission order regardless of completion order.
// The call returns only after every item has completed.
func (s *Service) RunURLBatch(ctx context.Context, reqs []URLCompareRequest) BatchResult {
	results := make([]xmldiff.Result, len(reqs))
	ok := make([]bool, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			result, err := s.CompareURLs(ctx, req)
			if err != nil {
				s.logger.Warn("URL batch item failed",
					zap.Int("index", i),
					zap.String("url1", req.URL1),
					zap.String("url2", req.URL2),
					zap.Error(err))
				results[i] = placeholder()
				return nil
			}
			results[i] = result
			ok[i] = true
			return nil
		})
	}

	// Workers never return errors, so this is a plain join-all.
	_ = g.Wait()

	successful := 0
	for _, v := range ok {
		if v {
			successful++
		}
	}

	return BatchResult{
		Results:    results,
		Total:      len(reqs),
		Successful: successful,
		Failed:     len(reqs) - successful,
	}
}

// placeholder is the zero-value result substituted for a failed batch
// item. It keeps the batch cardinality and ordering intact.
func placeholder() xmldiff.Result {
	return xmldiff.Result{
		Matched: false,
		Diffs:   []xmldiff.Diff{},
	}
}
