// Package random implements the engine's single deterministic PRNG:
// mulberry32. It is the only source of randomness reachable from the
// solver, the two model builders, and every heuristic — no package in
// this module ever touches math/rand.
//
// Goals:
//   - Determinism: the same seed produces the same uint32 stream on any
//     platform, because every step is defined over wrapping uint32
//     arithmetic rather than the machine's native int width.
//   - Encapsulation: a single constructor, New(seed); no global state,
//     no time-based fallback hidden anywhere.
//   - Portability: the algorithm is specified bit-for-bit (see Source.Next),
//     not merely "a good PRNG" — two Source values built from the same
//     seed must be indistinguishable by their output sequence.
//
// Concurrency:
//   - *Source is NOT goroutine-safe. It carries mutable state (a single
//     uint32) and advances on every call to Next/NextInt. Callers that
//     need independent streams should call Clone before branching.
//
// Complexity: O(1) time and space per draw.
package random
