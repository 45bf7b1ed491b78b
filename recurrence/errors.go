// SPDX-License-Identifier: MIT
// Package: masseyramanujan/recurrence
//
// errors.go — sentinel errors for family lookup.

package recurrence

import "errors"

// ErrUnknownFamily indicates Lookup was asked for a name that is not registered.
var ErrUnknownFamily = errors.New("recurrence: unknown family")
