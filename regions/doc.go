// Package regions extracts winning regions from the textual output of the
// two temporal-reachability solvers and compares them exactly.
//
// Two output conventions are supported:
//
//   - timed: one `W_<t> = {"id", ...}` line per time index, quoted ids
//     (ParseTimed);
//   - per-player: `Player <n>:` sections with a `Winning regions: {id, ...}`
//     block of bare ids (ParsePlayers).
//
// Both parsers are tolerant (they collect what matches and never fail)
// and the Set type is nil-safe, so a missing section flows through the
// comparison as an empty region. Compare returns the verdict together with
// the three witness sets (only-in-a, only-in-b, both) by pure set algebra.
package regions
