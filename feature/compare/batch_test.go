package compare

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"xml-compare-api/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunBatch_MixedValidity(t *testing.T) {
	svc := newTestService(&fakeSource{}, nil, nil)

	reqs := []CompareRequest{
		{XML1: `<a>1</a>`, XML2: `<a>1</a>`},      // matched
		{XML1: ``, XML2: `<a/>`},                  // validation failure
		{XML1: `<a>1</a>`, XML2: `<a>2</a>`},      // real diff
		{XML1: `<a><b></a>`, XML2: `<a/>`},        // parse failure
		{XML1: `<a c="x"/>`, XML2: `<a c="x"/>`},  // matched
	}

	result := svc.RunBatch(reqs)

	require.Len(t, result.Results, len(reqs))
	assert.Equal(t, len(reqs), result.Total)
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, result.Total, result.Successful+result.Failed)

	// Results are slot-for-slot with the requests.
	assert.True(t, result.Results[0].Matched)
	assert.False(t, result.Results[2].Matched)
	assert.NotEmpty(t, result.Results[2].Diffs)
	assert.True(t, result.Results[4].Matched)

	// Failed slots carry zero-value placeholders.
	for _, i := range []int{1, 3} {
		assert.False(t, result.Results[i].Matched)
		assert.Zero(t, result.Results[i].TotalElements)
		assert.Zero(t, result.Results[i].MatchedElements)
		assert.Zero(t, result.Results[i].MatchRatio)
		assert.NotNil(t, result.Results[i].Diffs)
		assert.Empty(t, result.Results[i].Diffs)
	}
}

func TestRunBatch_Empty(t *testing.T) {
	svc := newTestService(&fakeSource{}, nil, nil)

	result := svc.RunBatch(nil)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.Successful)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Results)
}

// docWithChildren builds a document with n uniquely named children, so
// its flattened form has n+1 elements.
func docWithChildren(n int) string {
	var b strings.Builder
	b.WriteString("<root>")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "<c%d/>", i)
	}
	b.WriteString("</root>")
	return b.String()
}

func TestRunURLBatch_PreservesSubmissionOrder(t *testing.T) {
	const n = 6

	docs := make(map[string]string, n)
	delays := make(map[string]time.Duration, n)
	reqs := make([]URLCompareRequest, n)
	for i := 0; i < n; i++ {
		url := fmt.Sprintf("http://example.com/doc/%d", i)
		docs[url] = docWithChildren(i + 1)
		// Earlier items finish last, to prove result order is not
		// completion order.
		delays[url] = time.Duration(n-i) * 10 * time.Millisecond
		reqs[i] = URLCompareRequest{URL1: url, URL2: url}
	}

	fetcher := &fakeSource{docs: docs, delays: delays}
	svc := newTestService(fetcher, nil, nil)

	result := svc.RunURLBatch(context.Background(), reqs)

	require.Len(t, result.Results, n)
	assert.Equal(t, n, result.Successful)
	assert.Zero(t, result.Failed)
	for i := 0; i < n; i++ {
		assert.True(t, result.Results[i].Matched, "slot %d", i)
		// Document i has i+2 elements, pinning each result to its slot.
		assert.Equal(t, i+2, result.Results[i].TotalElements, "slot %d", i)
	}
}

func TestRunURLBatch_FailureIsolation(t *testing.T) {
	fetcher := &fakeSource{docs: map[string]string{
		"http://example.com/ok": `<root/>`,
	}}
	svc := newTestService(fetcher, nil, nil)

	reqs := []URLCompareRequest{
		{URL1: "http://example.com/ok", URL2: "http://example.com/ok"},
		{URL1: "http://example.com/ok", URL2: "http://example.com/gone"},
		{URL1: "http://example.com/ok", URL2: "http://example.com/ok"},
	}

	result := svc.RunURLBatch(context.Background(), reqs)

	require.Len(t, result.Results, 3)
	assert.Equal(t, 2, result.Successful)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, result.Results[0].Matched)
	assert.False(t, result.Results[1].Matched)
	assert.Empty(t, result.Results[1].Diffs)
	assert.True(t, result.Results[2].Matched)
}

func TestRunURLBatch_UnknownSessionIsolated(t *testing.T) {
	fetcher := &fakeSource{docs: map[string]string{
		"http://example.com/ok": `<root/>`,
	}}
	svc := newTestService(fetcher, nil, nil)

	result := svc.RunURLBatch(context.Background(), []URLCompareRequest{
		{URL1: "http://example.com/ok", URL2: "http://example.com/ok", SessionID: "nope"},
		{URL1: "http://example.com/ok", URL2: "http://example.com/ok"},
	})

	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Results[0].Matched)
	assert.True(t, result.Results[1].Matched)
}

func TestRunURLBatch_BoundedConcurrency(t *testing.T) {
	const limit = 2

	docs := make(map[string]string)
	delays := make(map[string]time.Duration)
	var reqs []URLCompareRequest
	for i := 0; i < 8; i++ {
		url := fmt.Sprintf("http://example.com/doc/%d", i)
		docs[url] = `<root/>`
		delays[url] = 10 * time.Millisecond
		reqs = append(reqs, URLCompareRequest{URL1: url, URL2: url})
	}

	fetcher := &fakeSource{docs: docs, delays: delays}
	svc := NewService(fetcher, session.NewStore(), &fakeAuth{}, nil, limit, zap.NewNop())

	result := svc.RunURLBatch(context.Background(), reqs)

	assert.Equal(t, 8, result.Successful)
	// Each worker fetches sequentially, so in-flight fetches never
	// exceed the worker limit.
	assert.LessOrEqual(t, fetcher.maxInflight, limit)
	assert.Positive(t, fetcher.maxInflight)
}
