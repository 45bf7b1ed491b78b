// Package config loads a search-domain description from a YAML or TOML file.
//
// Example (YAML):
//
//	family: zeta3
//	a: [[0, 2], [-2, 2], [0, 3], [-3, 3]]   # x0..x3, inclusive [min, max]
//	b: [[-20, 0]]                           # x4
//	primary: a
//	terms: 10
//
// The same keys work in TOML:
//
//	family = "zeta3"
//	a = [[0, 2], [-2, 2], [0, 3], [-3, 3]]
//	b = [[-20, 0]]
//
// Unknown keys are rejected. After decoding, the struct is checked with
// go-playground/validator; File.DomainConfig then resolves the family and
// File.Options derives the matching domain options.
package config
