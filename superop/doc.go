// Package superop converts quantum maps between their three equivalent
// representations:
//
//   - Super (Liouville form): a d²×d² matrix S with vec(Λ(ρ)) = S·vec(ρ).
//   - Choi: the d²×d² matrix Σ_k vec(A_k)·vec(A_k)†.
//   - Kraus: an ordered, non-unique list of operators {A_k} with
//     Λ(ρ) = Σ_k A_k·ρ·A_k†.
//
// Super and Choi are related by a single axis permutation of the matrix read
// as a (d, d, d, d) row-major tensor, so SuperToChoi and ChoiToSuper are the
// same data movement with opposite tags. Kraus operators are extracted from
// the Choi matrix by Hermitian eigendecomposition and never carried as a
// single quantum object (see Kraus).
//
// The dispatchers ToSuper, ToChoi and ToKraus accept any superoperator and,
// additionally, plain operators, which are read as unitary channels.
// Already-converted inputs are returned unchanged.
//
// Everything here is a pure value transform; functions accept an optional
// zerolog logger (WithLogger) and an opt-in complete-positivity check
// (WithCPCheck) for Kraus extraction.
package superop
