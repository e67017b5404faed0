// SPDX-License-Identifier: MIT

package thumbnail

// Fallback walks a precomputed candidate list one step per load failure.
// It never revisits a failed URL and never resets on its own; Reset is
// only called when the owning card is bound to a different video.
//
// Fallback is not safe for concurrent use; each rendered card owns one.
type Fallback struct {
	id         string
	candidates []string
	index      int
}

// NewFallback builds a fallback chain for the given video ID.
func NewFallback(id string) *Fallback {
	return &Fallback{id: id, candidates: FallbackCandidates(id)}
}

// CurrentURL returns the candidate the card should render now. Once the
// chain is exhausted it keeps returning the final placeholder.
func (f *Fallback) CurrentURL() string {
	if f.index >= len(f.candidates) {
		return f.candidates[len(f.candidates)-1]
	}
	return f.candidates[f.index]
}

// Advance records a load failure of the current candidate and moves to
// the next one. Advancing past the last candidate is a no-op: the
// machine stays exhausted on the placeholder.
func (f *Fallback) Advance() {
	if f.index < len(f.candidates) {
		f.index++
	}
}

// Exhausted reports whether every fetchable candidate failed and only
// the placeholder remains.
func (f *Fallback) Exhausted() bool {
	return f.index >= len(f.candidates)-1
}

// Reset rebinds the machine to a new video identity, restarting at the
// first candidate. Resetting to the same ID is a no-op, so a re-render
// of an unchanged card never forgets its failure progress.
func (f *Fallback) Reset(id string) {
	if id == f.id {
		return
	}
	f.id = id
	f.candidates = FallbackCandidates(id)
	f.index = 0
}
