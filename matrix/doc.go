// Package matrix is the dense complex linear-algebra layer underneath the
// quantum object model.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked accessors and an
//     optional finite-value policy.
//   - Kernels: Add, Sub, Scale, Mul, Kron, Transpose, Conj, Adjoint, Trace,
//     Outer, Column, AllClose, Tidy.
//   - Reshape/PermuteAxes: reinterpret the buffer as a multi-index tensor,
//     permute axes numpy-style and flatten back; the primitive behind
//     Liouville ⇄ Choi conversion and superoperator reshuffling.
//   - EigenHermitian: spectral decomposition of Hermitian matrices through a
//     real symmetric embedding solved by gonum.
//
// Every kernel allocates a fresh result and returns sentinel errors wrapped
// with an operation tag; nothing panics on user input.
package matrix
