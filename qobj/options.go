// SPDX-License-Identifier: MIT

// Package qobj: functional options for New.

package qobj

// Option configures a quantum object under construction.
type Option func(*options)

type options struct {
	rep    Representation
	herm   Hermiticity
	layout Layout
}

// WithRepresentation tags a superoperator with its representation.
// Any value other than RepNone on a non-super kind makes New fail with TypeKind.
func WithRepresentation(rep Representation) Option {
	return func(o *options) { o.rep = rep }
}

// WithHermiticity seeds the cached Hermiticity flag. The caller vouches for it.
func WithHermiticity(h Hermiticity) Option {
	return func(o *options) { o.herm = h }
}

// WithLayout sets the factor layout of a Liouville-space object.
func WithLayout(l Layout) Option {
	return func(o *options) { o.layout = l }
}

func gatherOptions(user ...Option) options {
	o := options{rep: RepNone, herm: HermUnknown, layout: LayoutStandard}
	for _, set := range user {
		set(&o)
	}

	return o
}
