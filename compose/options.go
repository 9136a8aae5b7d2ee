// SPDX-License-Identifier: MIT

// Package compose: functional options for New.

package compose

import "github.com/rs/zerolog"

// Option configures a Composer.
type Option func(*Composer)

// WithLogger routes composition debug events to log.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Composer) { c.log = log }
}

// WithAutoTidyup overrides the global tidy-up policy for this composer.
// The cutoff is still qobj.AutoTidyupAtol.
func WithAutoTidyup(on bool) Option {
	return func(c *Composer) { c.tidy = &on }
}
