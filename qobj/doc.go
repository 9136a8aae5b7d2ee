// Package qobj is the quantum object model: a complex matrix together with
// its tensor-factor structure (Dims), its Kind (operator, superoperator, ket,
// bra, operator-ket, operator-bra) and, for superoperators, the
// Representation in which the map is stored (Liouville "super" or Choi).
//
// Objects are immutable values: every operation returns a freshly built
// *Qobj and accessors hand out copies.
//
// Besides the type itself the package provides the primitives that map
// conversion and tensor composition are built from:
//
//   - Dag, Mul: adjoint and product with kind bookkeeping.
//   - Spre, Spost: column-stacking left/right multiplication superoperators.
//   - OperatorToVector, VectorToOperator, Vec2Mat, Ket2DM: moves between
//     Hilbert space and Liouville space.
//   - Reshuffle: the involutive factor-grid permutation that makes Kronecker
//     products of superoperators well-defined.
//   - Tidyup and the process-wide auto-tidy policy.
//
// Column-stacking convention: for an operator X with dims [[r...],[c...]] the
// vectorized index is col·rows + row, so a Liouville-space side lists the
// column ("bra") factors first, then the row ("ket") factors. That is the
// Standard layout; Reshuffle interleaves the two halves subsystem by
// subsystem (Shuffled layout) and back.
package qobj
