// Package builder assembles deterministic core.Tree[int] fixtures from
// insertion-sequence constructors.
//
// A tree's shape is fully determined by the order values are inserted, so
// every constructor here is just a rule for producing that order:
//
//   - Values(vs...)      explicit sequence, inserted as given
//   - Ascending(n)       start, start+1, ... (degenerates to a right spine)
//   - Descending(n)      reverse of Ascending (degenerates to a left spine)
//   - Balanced(n)        midpoint first, then halves (minimal height)
//   - Random(n, limit)   n draws from [0, limit) using the configured RNG
//
// Constructors compose: BuildTree applies them in order to one tree, so
// BuildTree(nil, Balanced(7), Values(3, 3)) yields a balanced tree with two
// extra duplicates routed right.
//
// Options:
//
//   - WithSeed(seed)  deterministic RNG for Random
//   - WithRand(r)     explicit RNG (panics on nil)
//   - WithStart(v)    first value of the ranged constructors (default 1)
//
// Errors:
//
//   - ErrTooFewValues     n < 0
//   - ErrInvalidRange     Random limit < 1
//   - ErrNeedRandSource   Random without WithSeed/WithRand
//   - ErrConstructFailed  nil constructor passed to BuildTree
package builder
