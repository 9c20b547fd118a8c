// Package gen renders the generated parts of the catalogue: the
// FixedArray constraint and the named numerals of both genarray encodings.
package gen

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	ErrRange        = errors.New("gen: invalid range")
	ErrNegative     = errors.New("gen: negative length")
	ErrNoArrays     = errors.New("gen: no array lengths")
	ErrTooManyTerms = errors.New("gen: too many union terms")
	ErrStale        = errors.New("gen: generated file is stale")
)

// MaxUnionTerms is the Go compiler's limit on the number of terms in a
// union constraint.
const MaxUnionTerms = 100

// Range is an inclusive run of lengths.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Set is a range plus hand picked extra lengths.
type Set struct {
	Range *Range `yaml:"range"`
	Extra []int  `yaml:"extra"`
}

// Lengths returns the sorted, deduplicated lengths of s.
func (s Set) Lengths() []int {
	var out []int
	if s.Range != nil {
		for n := s.Range.Min; n <= s.Range.Max; n++ {
			out = append(out, n)
		}
	}
	out = append(out, s.Extra...)
	slices.Sort(out)
	return slices.Compact(out)
}

func (s Set) validate(name string) error {
	if r := s.Range; r != nil {
		if r.Min < 0 {
			return fmt.Errorf("%w: %s range starts at %d", ErrNegative, name, r.Min)
		}
		if r.Min > r.Max {
			return fmt.Errorf("%w: %s min %d > max %d", ErrRange, name, r.Min, r.Max)
		}
	}
	for _, n := range s.Extra {
		if n < 0 {
			return fmt.Errorf("%w: %s extra %d", ErrNegative, name, n)
		}
	}
	return nil
}

// Config mirrors catalogue.yaml.
type Config struct {
	Arrays   Set `yaml:"arrays"`
	Numerals Set `yaml:"numerals"`
}

func (c *Config) Validate() error {
	if err := c.Arrays.validate("arrays"); err != nil {
		return err
	}
	if err := c.Numerals.validate("numerals"); err != nil {
		return err
	}
	n := len(c.Arrays.Lengths())
	if n == 0 {
		return ErrNoArrays
	}
	if n > MaxUnionTerms {
		return fmt.Errorf("%w: %d array lengths, limit %d", ErrTooManyTerms, n, MaxUnionTerms)
	}
	return nil
}

// Parse decodes and validates a YAML config.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("gen: parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gen: read config: %w", err)
	}
	return Parse(data)
}
