// SPDX-License-Identifier: MIT
// Package: masseyramanujan/config
//
// errors.go — sentinel errors for config loading.

package config

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrDecode indicates malformed YAML/TOML or unknown keys.
	ErrDecode = errors.New("config: decode failed")

	// ErrInvalid indicates a decoded config that fails validation.
	ErrInvalid = errors.New("config: invalid")
)
