// SPDX-License-Identifier: MIT

// Package matrix - spectral decomposition of Hermitian complex matrices.
//
// Purpose:
//   - Diagonalize H = Σ λ_k v_k v_k† for (numerically) Hermitian inputs.
//
// Method:
//   - Hermitize: H = (M + M†)/2, so mildly asymmetric round-off is tolerated.
//   - Embed H = A + iB as the real symmetric matrix R = [[A, −B], [B, A]] and
//     factorize R with gonum's EigenSym. Every eigenpair (λ, v) of H appears in R
//     twice, as (Re v, Im v) and (−Im v, Re v).
//   - Recover n complex-orthonormal eigenvectors from the 2n real candidates by
//     pivoted complex Gram–Schmidt: the candidate with the largest residual is
//     accepted each round, so partners of accepted vectors (residual ≈ 0) are
//     never picked. Residual energy over all candidates equals twice the
//     remaining dimension, so the pivot norm is always ≥ sqrt(1/n).
//   - Eigenvalues are Rayleigh quotients of the accepted vectors.
//
// Complexity:
//   - Time O(n³) dominated by the 2n×2n symmetric eigensolver, Space O(n²).

package matrix

import (
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

const (
	opEigen = "EigenHermitian"

	// pivotFloor is the smallest acceptable Gram–Schmidt pivot norm. The
	// theoretical floor is sqrt(1/n), so anything below this means the real
	// eigensolver returned a rank-deficient basis.
	pivotFloor = 1e-6
)

// HermitianDefect returns max |m[i,j] − conj(m[j,i])| over all entries.
// Zero for an exactly Hermitian matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func HermitianDefect(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opEigen, err)
	}
	n := m.r
	var worst, d float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d = cmplx.Abs(m.data[i*n+j] - cmplx.Conj(m.data[j*n+i]))
			if d > worst {
				worst = d
			}
		}
	}

	return worst, nil
}

// IsHermitian reports whether HermitianDefect(m) ≤ eps (DefaultEpsilon unless
// overridden with WithEpsilon). Nil or non-square matrices are not Hermitian.
func IsHermitian(m *Dense, opts ...Option) bool {
	d, err := HermitianDefect(m)
	if err != nil {
		return false
	}

	return d <= gatherOptions(opts...).eps
}

// EigenHermitian computes the eigenvalues and orthonormal eigenvectors of the
// Hermitian part of a square complex matrix.
// Implementation:
//   - Stage 1: validate square input; Hermitize.
//   - Stage 2: factorize the real symmetric embedding (gonum mat.EigenSym).
//   - Stage 3: pivoted complex Gram–Schmidt over the 2n real candidates.
//   - Stage 4: Rayleigh-quotient eigenvalues; sort descending.
//
// Returns:
//   - []float64: eigenvalues in descending order.
//   - *Dense: n×n matrix whose column k is the unit eigenvector of value k.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrMatrixEigenFailed.
//
// Notes:
//   - The anti-Hermitian part of m is discarded; callers that care should
//     inspect HermitianDefect first.
//
// AI-Hints:
//   - Degenerate eigenvalues get an arbitrary orthonormal basis of their
//     eigenspace; do not rely on a particular basis.
func EigenHermitian(m *Dense) ([]float64, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := m.r
	h := hermitianPart(m)

	// Real symmetric embedding R = [[A, −B], [B, A]].
	n2 := 2 * n
	raw := make([]float64, n2*n2)
	var i, j int
	var re, im float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			re, im = real(h[i*n+j]), imag(h[i*n+j])
			raw[i*n2+j] = re
			raw[i*n2+n+j] = -im
			raw[(n+i)*n2+j] = im
			raw[(n+i)*n2+n+j] = re
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n2, raw), true); !ok {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}
	var ev mat.Dense
	es.VectorsTo(&ev)

	// Complex candidates z = x + i·y from each real eigenvector (x; y).
	residual := make([][]complex128, n2)
	for j = 0; j < n2; j++ {
		z := make([]complex128, n)
		for i = 0; i < n; i++ {
			z[i] = complex(ev.At(i, j), ev.At(n+i, j))
		}
		residual[j] = z
	}

	basis, err := pivotedGramSchmidt(residual, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Rayleigh quotients λ_k = Re(v_k† H v_k).
	vals := make([]float64, n)
	hv := make([]complex128, n)
	for k, v := range basis {
		for i = 0; i < n; i++ {
			var s complex128
			for j = 0; j < n; j++ {
				s += h[i*n+j] * v[j]
			}
			hv[i] = s
		}
		vals[k] = real(cmplxs.Dot(v, hv))
	}

	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	sorted := make([]float64, n)
	vecs := newLike(m, n, n)
	for col, k := range order {
		sorted[col] = vals[k]
		for i = 0; i < n; i++ {
			vecs.data[i*n+col] = basis[k][i]
		}
	}

	return sorted, vecs, nil
}

// hermitianPart returns the row-major buffer of (M + M†)/2.
func hermitianPart(m *Dense) []complex128 {
	n := m.r
	h := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h[i*n+j] = (m.data[i*n+j] + cmplx.Conj(m.data[j*n+i])) / 2
		}
	}

	return h
}

// pivotedGramSchmidt selects want orthonormal vectors from candidates, always
// taking the candidate with the largest residual norm. Candidates are consumed
// (orthogonalized in place).
func pivotedGramSchmidt(candidates [][]complex128, want int) ([][]complex128, error) {
	used := make([]bool, len(candidates))
	basis := make([][]complex128, 0, want)
	for len(basis) < want {
		best, bestNorm := -1, 0.0
		for j, r := range candidates {
			if used[j] {
				continue
			}
			if nrm := cmplxs.Norm(r, 2); nrm > bestNorm {
				best, bestNorm = j, nrm
			}
		}
		if best < 0 || bestNorm < pivotFloor {
			return nil, ErrMatrixEigenFailed
		}
		used[best] = true
		q := candidates[best]
		cmplxs.Scale(complex(1/bestNorm, 0), q)
		basis = append(basis, q)
		for j, r := range candidates {
			if used[j] {
				continue
			}
			cmplxs.AddScaled(r, -cmplxs.Dot(q, r), q)
		}
	}

	return basis, nil
}
