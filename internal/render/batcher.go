package render

// maxRequest mirrors the largest primitive run the original X server
// protocol would accept in one request; chunk sizes derive from it.
const maxRequest = 65535

// MarkerBatch and LineBatch are the default chunk limits for marker
// and polyline runs.
const (
	MarkerBatch = maxRequest / 3
	LineBatch   = maxRequest / 2
)

// Batcher splits long primitive runs into chunks of at most Limit
// elements, so no single drawing call grows without bound.
type Batcher struct {
	Limit int
}

// Chunks calls emit once per chunk with half-open index bounds
// covering 0..n.
func (b Batcher) Chunks(n int, emit func(lo, hi int)) {
	limit := b.Limit
	if limit < 1 {
		limit = 1
	}
	for lo := 0; lo < n; lo += limit {
		hi := lo + limit
		if hi > n {
			hi = n
		}
		emit(lo, hi)
	}
}
