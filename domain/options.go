// SPDX-License-Identifier: MIT
// Package: masseyramanujan/domain
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors panic on nil arguments; New and iteration never do.
//   • Options apply in order, last wins.

package domain

import "github.com/rs/zerolog"

// Observer is notified once per examined (a, b) pair, accepted or not.
// Implementations must be safe for concurrent use when several iterations
// run at once.
type Observer interface {
	Observe(primary Primary, accepted bool)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(primary Primary, accepted bool)

// Observe calls f.
func (f ObserverFunc) Observe(primary Primary, accepted bool) { f(primary, accepted) }

type nopObserver struct{}

func (nopObserver) Observe(Primary, bool) {}

// Option customizes an Enumerator.
type Option func(*options)

type options struct {
	observer   Observer
	log        zerolog.Logger
	allowEmpty bool
}

func newOptions(opts ...Option) options {
	o := options{
		observer: nopObserver{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithObserver installs a per-pair observer (e.g. metrics counters).
// Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("domain: WithObserver(nil)")
	}

	return func(o *options) { o.observer = obs }
}

// WithLogger sets the logger used for construction and iteration summaries.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithEmptyRanges accepts ranges with Min > Max and treats them as empty
// axes. Without it New rejects them with coef.ErrInvertedRange.
func WithEmptyRanges() Option {
	return func(o *options) { o.allowEmpty = true }
}
