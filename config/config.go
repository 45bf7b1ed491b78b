// SPDX-License-Identifier: MIT
// Package: masseyramanujan/config
//
// config.go — File, Load and Parse.

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/domain"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/recurrence"
)

// Format names a supported file syntax.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Defaults applied before decoding.
const (
	DefaultPrimary = string(domain.PrimaryA)
	DefaultStart   = int64(1)
)

// File is the on-disk description of one search.
type File struct {
	// Family is a recurrence registry name, e.g. "zeta3".
	Family string `yaml:"family" toml:"family" validate:"required"`
	// A and B list one [min, max] pair per coefficient.
	A [][]int64 `yaml:"a" toml:"a" validate:"required,min=1,dive,len=2"`
	B [][]int64 `yaml:"b" toml:"b" validate:"required,min=1,dive,len=2"`
	// Primary is the outer-loop family, "a" or "b".
	Primary string `yaml:"primary" toml:"primary" validate:"oneof=a b"`
	// AllowEmpty treats min > max as an empty axis instead of an error.
	AllowEmpty bool `yaml:"allow_empty" toml:"allow_empty"`
	// Terms is the number of a(n)/b(n) values to emit per candidate.
	Terms int `yaml:"terms" toml:"terms" validate:"gte=0"`
	// Start is the first sequence index.
	Start int64 `yaml:"start" toml:"start"`
	// Limit caps the number of emitted candidates; 0 means no cap.
	Limit int64 `yaml:"limit" toml:"limit" validate:"gte=0"`
}

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads path and parses it in the format implied by its extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, format)
}

// FormatOf maps a file extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Parse decodes data, applies defaults and validates the result.
func Parse(data []byte, format Format) (*File, error) {
	f := &File{Primary: DefaultPrimary, Start: DefaultStart}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate runs the struct tag checks.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Ranges converts the a and b pair lists to coef.Ranges.
func (f *File) Ranges() (a, b coef.Ranges) {
	return toRanges(f.A), toRanges(f.B)
}

// DomainConfig resolves the family and builds a domain.Config.
// Family arity errors (coef.ErrArity) and unknown names
// (recurrence.ErrUnknownFamily) are returned unchanged for errors.Is.
func (f *File) DomainConfig() (domain.Config, error) {
	a, b := f.Ranges()
	fam, err := recurrence.Lookup(f.Family, len(a), len(b))
	if err != nil {
		return domain.Config{}, fmt.Errorf("config: %w", err)
	}

	return domain.Config{Family: fam, A: a, B: b}, nil
}

// Options derives domain options implied by the file.
func (f *File) Options() []domain.Option {
	var opts []domain.Option
	if f.AllowEmpty {
		opts = append(opts, domain.WithEmptyRanges())
	}

	return opts
}

// PrimaryFamily returns the parsed primary token.
func (f *File) PrimaryFamily() (domain.Primary, error) {
	return domain.ParsePrimary(f.Primary)
}

func toRanges(pairs [][]int64) coef.Ranges {
	rs := make(coef.Ranges, len(pairs))
	for i, p := range pairs {
		rs[i] = coef.Range{Min: p[0], Max: p[1]}
	}

	return rs
}
