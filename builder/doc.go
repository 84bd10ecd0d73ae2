// Package builder generates deterministic d×T paths for tests, examples and
// the pathsig CLI.
//
// Builders:
//   - BuildRandomWalk(d, n, seed) - Gaussian random walk from the origin.
//   - BuildChirpPath(n, seed)     - planar rotation with a linear frequency sweep.
//   - BuildGBMPath(d, n, seed)    - independent geometric Brownian motions.
//
// Determinism:
//
//	Same seed ⇒ identical path. WithSeed / WithRand override the seed
//	argument so several builders can share one stream.
//
// Errors are sentinels (ErrBadSize, ErrOptionViolation) wrapped with the
// builder name; option constructors panic on meaningless values.
package builder
