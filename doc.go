// Package qmaps is a toolkit for representing quantum maps and composing
// them over multipartite systems.
//
// 🚀 What is qmaps?
//
//	A small, dependency-light library that brings together:
//		• matrix:  dense complex128 kernels (Kron, PermuteAxes, EigenHermitian)
//		• qobj:    the quantum-object model (dims, kind, representation,
//		           Hermiticity, layout), vectorization and reshuffling
//		• superop: Liouville ⇄ Choi ⇄ Kraus conversion, channel action and
//		           reference channels (depolarizing, amplitude damping)
//		• compose: Tensor, SuperTensor and Composite over any number of operands
//		• cmd/qmaps: a CLI that builds, tensors and converts reference channels
//
// ✨ Conventions
//
//   - Operators are vectorized column-stacking: vec(X)[c·n+r] = X[r,c].
//   - A superoperator's dims list the column factors of its operand space
//     first, then the row factors.
//   - Every constructor returns fresh data; no operation mutates its inputs.
//
// 📦 Quick start
//
//	h := qobj.Hadamard()
//	dep, _ := superop.DepolarizingSuper(0.3)
//	joint, _ := compose.Composite(h, dep)  // super ⊗ super on 2 qubits
//	choi, _ := superop.ToChoi(joint)
//	kraus, _ := superop.ToKraus(choi)
//	fmt.Println(kraus.Len())
//
// See the subpackage documentation for the full API.
package qmaps
