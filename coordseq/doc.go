// Package coordseq provides the coordinate-sequence abstraction: ordered,
// random-access containers of coordinates that hide their physical
// storage encoding behind one indexed-access contract.
//
// The coordseq package provides:
//
//   - Sequence, the capability set algorithms program against:
//     {Len, At, CopyInto, SetAt} plus dimension/measure metadata. Callers
//     never learn (and must never care) which encoding backs a sequence.
//   - ArraySequence, the object-backed variant holding discrete
//     coord.Coordinate values.
//   - PackedSequence, the packed variant holding one flat []float64 of
//     length N × dimension, addressed by offset arithmetic.
//   - ArrayFactory and PackedFactory, stateless builders that silently
//     clamp requested dimension/measure counts to the supported ranges
//     and support zero-copy adoption of caller-supplied storage.
//   - Helpers shared by callers: Reverse, Equal, IsClosed.
//
// Dimension and measure count are fixed at creation and immutable; only
// coordinate values may change afterwards. Out-of-range indexed access is
// a programming error and is reported loudly via ErrIndexOutOfRange —
// never silently clamped, since a clamped read would corrupt downstream
// area and length results without any signal.
//
// See the examples in this package and measure for usage patterns.
package coordseq
