// Package compose builds composite quantum objects from one or more operands
// with Kronecker products.
//
//   - Tensor: the plain product. Dims concatenate factor-wise in call order.
//   - SuperTensor: the product of Liouville-space objects (superoperators,
//     operator-kets, operator-bras). Operands are reshuffled into the
//     subsystem-interleaved layout, tensored, and the aggregate is reshuffled
//     back, so the result acts on vectorized operators of the joint system.
//   - Composite: classifies operands into operator-like, ket-like and
//     bra-like families, promotes mixed operands into Liouville space, and
//     delegates to Tensor or SuperTensor.
//
// Promotion (operator to superoperator, ket to projector, operator to
// operator-ket) is supplied through the Promoter interface; the package-level
// functions use superop.Promoter. A Composer carries a logger and an optional
// override of the global auto-tidy policy (qobj.SetAutoTidyup).
//
// Go's static typing turns "operand is not a quantum object" into a nil
// operand, which every entry point rejects with *qobj.TypeKindError.
package compose
