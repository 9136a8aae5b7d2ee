// SPDX-License-Identifier: MIT
package compose_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/qmaps/compose"
	"github.com/katalvlaran/qmaps/matrix"
	"github.com/katalvlaran/qmaps/qobj"
	"github.com/katalvlaran/qmaps/superop"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// mustOper builds an n×n operator whose entries are all distinct.
func mustOper(t *testing.T, n int, seed float64) *qobj.Qobj {
	t.Helper()
	vals := make([]complex128, n*n)
	for i := range vals {
		vals[i] = complex(seed+float64(i), float64(i%2))
	}
	m, err := matrix.NewDenseFrom(n, n, vals)
	require.NoError(t, err)
	op, err := qobj.NewOper(m)
	require.NoError(t, err)

	return op
}

func mustDM(t *testing.T, n, k int) *qobj.Qobj {
	t.Helper()
	ket, err := qobj.Basis(n, k)
	require.NoError(t, err)
	rho, err := qobj.Ket2DM(ket)
	require.NoError(t, err)

	return rho
}

// TestTensor_DimsLaw concatenates dims factor-wise in call order.
func TestTensor_DimsLaw(t *testing.T) {
	a, b := mustOper(t, 2, 1), mustOper(t, 3, 10)

	ab, err := compose.Tensor(a, b)
	require.NoError(t, err)
	require.True(t, ab.Dims().Equal(qobj.NewDims([]int{2, 3}, []int{2, 3})))
	want, err := matrix.Kron(a.Data(), b.Data())
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, ab.Data()))

	ba, err := compose.Tensor(b, a)
	require.NoError(t, err)
	require.True(t, ba.Dims().Equal(qobj.NewDims([]int{3, 2}, []int{3, 2})))
	require.False(t, matrix.Equal(ab.Data(), ba.Data()))

	// The list form is the same call.
	list := []*qobj.Qobj{a, b}
	ab2, err := compose.Tensor(list...)
	require.NoError(t, err)
	require.True(t, qobj.Equal(ab, ab2))
}

// TestTensor_Arguments covers the empty, single and nil cases.
func TestTensor_Arguments(t *testing.T) {
	_, err := compose.Tensor()
	require.ErrorIs(t, err, qobj.ErrArgument)

	x := qobj.SigmaX()
	got, err := compose.Tensor(x)
	require.NoError(t, err)
	require.Same(t, x, got)

	_, err = compose.Tensor(x, nil)
	require.ErrorIs(t, err, qobj.ErrTypeKind)
}

// TestTensor_MixedHilbertKinds derives the result kind from the operands.
func TestTensor_MixedHilbertKinds(t *testing.T) {
	x := qobj.SigmaX()
	k0, err := qobj.Basis(2, 0)
	require.NoError(t, err)
	k1, err := qobj.Basis(3, 1)
	require.NoError(t, err)
	b0, err := k0.Dag()
	require.NoError(t, err)

	xk, err := compose.Tensor(x, k0)
	require.NoError(t, err)
	require.Equal(t, qobj.KindOper, xk.Kind())
	require.True(t, xk.Dims().Equal(qobj.NewDims([]int{2, 2}, []int{2, 1})))
	rows, cols := xk.Shape()
	require.Equal(t, [2]int{4, 2}, [2]int{rows, cols})
	want, err := matrix.Kron(x.Data(), k0.Data())
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, xk.Data()))

	kk, err := compose.Tensor(k0, k1)
	require.NoError(t, err)
	require.Equal(t, qobj.KindKet, kk.Kind())
	require.True(t, kk.Dims().Equal(qobj.NewDims([]int{2, 3}, []int{1, 1})))

	bb, err := compose.Tensor(b0, b0)
	require.NoError(t, err)
	require.Equal(t, qobj.KindBra, bb.Kind())

	kb, err := compose.Tensor(k0, b0)
	require.NoError(t, err)
	require.Equal(t, qobj.KindOper, kb.Kind())
	require.True(t, kb.Dims().Equal(qobj.NewDims([]int{2, 1}, []int{1, 2})))
}

// TestTensor_LiouvilleRejects keeps kind, representation and layout uniform.
func TestTensor_LiouvilleRejects(t *testing.T) {
	s, err := superop.DepolarizingSuper(0.3)
	require.NoError(t, err)
	c, err := superop.DepolarizingChoi(0.3)
	require.NoError(t, err)
	shuffled, err := qobj.Reshuffle(s)
	require.NoError(t, err)
	v, err := qobj.OperatorToVector(qobj.SigmaX())
	require.NoError(t, err)

	cases := []struct {
		name string
		ops  []*qobj.Qobj
	}{
		{"SuperAndChoi", []*qobj.Qobj{s, c}},
		{"StandardAndShuffled", []*qobj.Qobj{s, shuffled}},
		{"SuperAndOperKet", []*qobj.Qobj{s, v}},
		{"SuperAndOper", []*qobj.Qobj{s, qobj.SigmaX()}},
		{"OperKetAndOper", []*qobj.Qobj{v, qobj.SigmaX()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compose.Tensor(tc.ops...)
			require.ErrorIs(t, err, qobj.ErrTypeKind)
		})
	}

	// Uniform shuffled operands keep their layout.
	ss, err := compose.Tensor(shuffled, shuffled)
	require.NoError(t, err)
	require.Equal(t, qobj.LayoutShuffled, ss.Layout())
}

// TestTensor_Hermiticity is true only when every operand is known Hermitian.
func TestTensor_Hermiticity(t *testing.T) {
	xz, err := compose.Tensor(qobj.SigmaX(), qobj.SigmaZ())
	require.NoError(t, err)
	require.Equal(t, qobj.HermTrue, xz.Hermiticity())

	// NewOper leaves the flag unknown, which poisons the product.
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	unknown, err := qobj.NewOper(id)
	require.NoError(t, err)
	xu, err := compose.Tensor(qobj.SigmaX(), unknown)
	require.NoError(t, err)
	require.Equal(t, qobj.HermUnknown, xu.Hermiticity())
}

// TestSuperTensor_MatchesJointSpre checks Spre(A)⊗Spre(B) = Spre(A⊗B).
func TestSuperTensor_MatchesJointSpre(t *testing.T) {
	a, b := mustOper(t, 2, 1), mustOper(t, 3, 10)
	sa, err := qobj.Spre(a)
	require.NoError(t, err)
	sb, err := qobj.Spre(b)
	require.NoError(t, err)

	got, err := compose.SuperTensor(sa, sb)
	require.NoError(t, err)

	ab, err := compose.Tensor(a, b)
	require.NoError(t, err)
	want, err := qobj.Spre(ab)
	require.NoError(t, err)

	require.Equal(t, qobj.LayoutStandard, got.Layout())
	require.True(t, got.Dims().Equal(qobj.NewDims([]int{2, 3, 2, 3}, []int{2, 3, 2, 3})))
	require.True(t, qobj.AllClose(want, got, tol))
}

// TestSuperTensor_ActsOnProductStates checks (Λ1⊗Λ2)(ρ1⊗ρ2) = Λ1(ρ1)⊗Λ2(ρ2).
func TestSuperTensor_ActsOnProductStates(t *testing.T) {
	dep, err := superop.DepolarizingSuper(0.3)
	require.NoError(t, err)
	had, err := superop.ToSuper(qobj.Hadamard())
	require.NoError(t, err)
	rho1, rho2 := mustDM(t, 2, 0), mustOper(t, 2, 3)

	joint, err := compose.SuperTensor(dep, had)
	require.NoError(t, err)
	rho, err := compose.Tensor(rho1, rho2)
	require.NoError(t, err)
	got, err := superop.Apply(joint, rho)
	require.NoError(t, err)

	out1, err := superop.Apply(dep, rho1)
	require.NoError(t, err)
	out2, err := superop.Apply(had, rho2)
	require.NoError(t, err)
	want, err := compose.Tensor(out1, out2)
	require.NoError(t, err)

	require.True(t, qobj.AllClose(want, got, 1e-9), "want %v\ngot %v", want, got)
}

// TestSuperTensor_OperatorKets vectorizes a product operator.
func TestSuperTensor_OperatorKets(t *testing.T) {
	r1, r2 := mustOper(t, 2, 1), mustOper(t, 2, 5)
	v1, err := qobj.OperatorToVector(r1)
	require.NoError(t, err)
	v2, err := qobj.OperatorToVector(r2)
	require.NoError(t, err)

	got, err := compose.SuperTensor(v1, v2)
	require.NoError(t, err)

	prod, err := compose.Tensor(r1, r2)
	require.NoError(t, err)
	want, err := qobj.OperatorToVector(prod)
	require.NoError(t, err)
	require.True(t, qobj.AllClose(want, got, tol))

	// Operator-bras go through adjoints.
	b1, err := v1.Dag()
	require.NoError(t, err)
	b2, err := v2.Dag()
	require.NoError(t, err)
	gotBra, err := compose.SuperTensor(b1, b2)
	require.NoError(t, err)
	wantBra, err := want.Dag()
	require.NoError(t, err)
	require.Equal(t, qobj.KindOperBra, gotBra.Kind())
	require.True(t, qobj.AllClose(wantBra, gotBra, tol))
}

// TestSuperTensor_Rejects never coerces representations or kinds.
func TestSuperTensor_Rejects(t *testing.T) {
	s, err := superop.DepolarizingSuper(0.3)
	require.NoError(t, err)
	c, err := superop.DepolarizingChoi(0.3)
	require.NoError(t, err)

	_, err = compose.SuperTensor(s, c)
	require.ErrorIs(t, err, qobj.ErrTypeKind)

	_, err = compose.SuperTensor(qobj.SigmaX(), qobj.SigmaZ())
	require.ErrorIs(t, err, qobj.ErrTypeKind)

	v, err := qobj.OperatorToVector(qobj.SigmaX())
	require.NoError(t, err)
	_, err = compose.SuperTensor(s, v)
	require.ErrorIs(t, err, qobj.ErrTypeKind)

	_, err = compose.SuperTensor()
	require.ErrorIs(t, err, qobj.ErrArgument)
}

// TestComposite_PromotesUnitary checks composite(U, S) = super_tensor(to_super(U), S).
func TestComposite_PromotesUnitary(t *testing.T) {
	u := qobj.Hadamard()
	s, err := superop.DepolarizingSuper(0.3)
	require.NoError(t, err)

	got, err := compose.Composite(u, s)
	require.NoError(t, err)

	su, err := superop.ToSuper(u)
	require.NoError(t, err)
	want, err := compose.SuperTensor(su, s)
	require.NoError(t, err)
	require.True(t, qobj.Equal(want, got))

	// A Choi operand is promoted to Liouville form as well.
	c, err := superop.DepolarizingChoi(0.3)
	require.NoError(t, err)
	got, err = compose.Composite(u, c)
	require.NoError(t, err)
	require.True(t, qobj.AllClose(want, got, tol))
}

// TestComposite_Families covers the plain, ket-like and bra-like paths.
func TestComposite_Families(t *testing.T) {
	x, z := qobj.SigmaX(), qobj.SigmaZ()
	plain, err := compose.Composite(x, z)
	require.NoError(t, err)
	want, err := compose.Tensor(x, z)
	require.NoError(t, err)
	require.True(t, qobj.Equal(want, plain))

	k0, err := qobj.Basis(2, 0)
	require.NoError(t, err)
	k1, err := qobj.Basis(2, 1)
	require.NoError(t, err)
	kets, err := compose.Composite(k0, k1)
	require.NoError(t, err)
	require.Equal(t, qobj.KindKet, kets.Kind())

	b0, err := k0.Dag()
	require.NoError(t, err)
	b1, err := k1.Dag()
	require.NoError(t, err)
	bras, err := compose.Composite(b0, b1)
	require.NoError(t, err)
	wantBras, err := kets.Dag()
	require.NoError(t, err)
	require.True(t, qobj.Equal(wantBras, bras))

	// Ket + operator-ket: the ket becomes vec(|ψ⟩⟨ψ|).
	v, err := qobj.OperatorToVector(mustOper(t, 2, 2))
	require.NoError(t, err)
	mixed, err := compose.Composite(k0, v)
	require.NoError(t, err)
	vk, err := qobj.OperatorToVector(mustDM(t, 2, 0))
	require.NoError(t, err)
	wantMixed, err := compose.SuperTensor(vk, v)
	require.NoError(t, err)
	require.True(t, qobj.Equal(wantMixed, mixed))

	_, err = compose.Composite(x, k0)
	require.ErrorIs(t, err, qobj.ErrTypeKind)
	_, err = compose.Composite()
	require.ErrorIs(t, err, qobj.ErrArgument)
	_, err = compose.Composite(nil)
	require.ErrorIs(t, err, qobj.ErrTypeKind)
}

// TestComposer_TidyupOverride keeps sub-threshold noise when tidying is off.
func TestComposer_TidyupOverride(t *testing.T) {
	noisy, err := matrix.NewDenseFrom(1, 2, []complex128{complex(1, 1e-14), 1})
	require.NoError(t, err)
	q, err := qobj.New(qobj.NewDims([]int{1}, []int{2}), noisy, qobj.KindOper)
	require.NoError(t, err)
	one, err := qobj.Identity(1)
	require.NoError(t, err)

	raw := compose.New(superop.Promoter{}, compose.WithAutoTidyup(false))
	out, err := raw.Tensor(q, one)
	require.NoError(t, err)
	require.Equal(t, complex(1, 1e-14), out.Data().Values()[0])

	tidy := compose.New(superop.Promoter{}, compose.WithAutoTidyup(true))
	out, err = tidy.Tensor(q, one)
	require.NoError(t, err)
	require.Equal(t, complex(1, 0), out.Data().Values()[0])
}

// TestComposer_Logger emits component-tagged events.
func TestComposer_Logger(t *testing.T) {
	var buf bytes.Buffer
	c := compose.New(superop.NewPromoter(), compose.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, err := c.Tensor(qobj.SigmaX(), qobj.SigmaY())
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"component":"compose"`)
	require.Contains(t, buf.String(), "tensor product")

	require.Panics(t, func() { compose.New(nil) })
}
