package histz

import "iter"

// Stride yields the input indices owned by one worker in a fixed pool:
// worker, worker+workers, worker+2*workers, ... below n.
//
// For 0 <= worker < workers the per-worker index sets are disjoint and
// together cover [0, n) exactly, whether workers divides n, exceeds it, or
// neither. Workers past the end of the input simply yield nothing, which is
// what decouples pool size from input size. Out-of-pool coordinates
// (workers <= 0, worker < 0, worker >= workers) own no indices.
func Stride(worker, workers, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if workers <= 0 || worker < 0 || worker >= workers {
			return
		}
		for i := worker; i < n; i += workers {
			if !yield(i) {
				return
			}
		}
	}
}
