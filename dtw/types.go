// Package dtw defines options and modes for Dynamic Time Warping.
package dtw

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix   - keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - RollingArray - only keep two rows (current and previous).
//     Reduces memory to O(m), but cannot recover the path.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// RollingArray mode: keep only two rows, no path recovery, uses O(M) memory.
	RollingArray
)

// Options configures Dynamic Time Warping over feature sequences.
//
// Fields:
//   - Band         - maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     A value of 0 (or negative) means no constraint.
//   - SlopePenalty - cost added to insertion/deletion steps.
//   - ReturnPath   - backtrack and return the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   - FullMatrix or RollingArray storage.
//
// A nil *Options means: no band, no penalty, distance only, FullMatrix.
type Options struct {
	Band         int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}
