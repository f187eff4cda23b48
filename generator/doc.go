// Package generator ties an adjacency model, a wave grid, a propagator and a
// heuristic into one generation attempt.
//
// Flow:
//
//	New(model, w, h, opts...)  → fresh grid, propagator and heuristic initialized,
//	                             heuristic subscribed to grid notifications
//	Step()                     → pick a cell; none left ⇒ Collapsed;
//	                             otherwise collapse + propagate;
//	                             failure ⇒ Contradicted (terminal)
//	Generate()                 → Step until the result is not Collapsing
//	Reset(seed)                → discard the grid and start a new attempt
//
// There is no backtracking: a contradicted attempt is thrown away wholesale
// and retried with a new seed (see DeriveSeed). The core has no timeout or
// cancellation; bounding the number of attempts is the caller's job.
//
// Determinism: one *rand.Rand per attempt, created from the seed with the
// policy seed==0 ⇒ DefaultSeed, feeds both model sampling and heuristic
// jitter. (model, propagator, heuristic, seed) fully determine the output.
//
// A Generator is not safe for concurrent use.
package generator
