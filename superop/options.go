// SPDX-License-Identifier: MIT

// Package superop: functional options.

package superop

import (
	"math"

	"github.com/rs/zerolog"
)

const (
	// DefaultCPCheck leaves Kraus extraction unvalidated.
	DefaultCPCheck = false

	// DefaultCPEpsilon is the tolerance used when the CP check is on and the
	// caller did not pick one.
	DefaultCPEpsilon = 1e-9

	panicCPEpsilonInvalid = "superop: WithCPCheck: eps must be finite, non-negative"
)

// Option configures a conversion.
type Option func(*options)

type options struct {
	logger  zerolog.Logger
	cpCheck bool
	cpEps   float64
}

// WithLogger routes debug/warn events of the conversion to log.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithCPCheck makes ChoiToKraus (and ToKraus) verify that the Choi matrix is
// Hermitian with no eigenvalue below −eps, failing with
// ErrNotCompletelyPositive otherwise.
// Panics when eps is negative or non-finite.
func WithCPCheck(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicCPEpsilonInvalid)
	}

	return func(o *options) {
		o.cpCheck = true
		o.cpEps = eps
	}
}

func gatherOptions(user ...Option) options {
	o := options{
		logger:  zerolog.Nop(),
		cpCheck: DefaultCPCheck,
		cpEps:   DefaultCPEpsilon,
	}
	for _, set := range user {
		set(&o)
	}
	o.logger = o.logger.With().Str("component", "superop").Logger()

	return o
}
