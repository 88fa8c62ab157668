// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import (
	"math"
	"math/big"
	"regexp"
)

// Option configures a descriptor at construction time. Options that do not
// apply to a variant are ignored by its constructor.
type Option func(*options)

type options struct {
	required   bool
	nullable   bool
	allowEmpty bool

	enum    []any
	enumSet bool

	predicate check

	minLength *int
	maxLength *int
	pattern   *regexp.Regexp

	minValue *big.Rat
	maxValue *big.Rat
}

func buildOptions(opts []Option) *options {
	o := &options{
		required:   true,
		allowEmpty: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Optional marks the key as not required. An absent key is then accepted,
// while a present value is still validated.
func Optional() Option {
	return func(o *options) { o.required = false }
}

// Nullable accepts an explicit null for the key without running any other
// check of the descriptor.
func Nullable() Option {
	return func(o *options) { o.nullable = true }
}

// Enum restricts the value to the given set. Numbers compare by value, so
// Enum(1, 2) accepts both a decoded 1 and a Go int 1.
func Enum(values ...any) Option {
	return func(o *options) {
		o.enum = append([]any(nil), values...)
		o.enumSet = true
	}
}

// Check adds a custom predicate evaluated after every other check.
func Check(predicate func(value any) bool) Option {
	return func(o *options) { o.predicate = predicate }
}

// DisallowEmpty rejects the empty string. Strings only.
func DisallowEmpty() Option {
	return func(o *options) { o.allowEmpty = false }
}

// MinLength sets the minimum length of a string (in runes) or a list.
func MinLength(n int) Option {
	return func(o *options) { o.minLength = &n }
}

// MaxLength sets the maximum length of a string (in runes) or a list.
func MaxLength(n int) Option {
	return func(o *options) { o.maxLength = &n }
}

// Pattern requires a string to match expr at its start, the way a
// prefix-anchored match works. It panics if expr does not compile, so that
// a broken rule fails at registration rather than on the first request.
func Pattern(expr string) Option {
	re := regexp.MustCompile(`^(?:` + expr + `)`)
	return func(o *options) { o.pattern = re }
}

// MinValue sets the inclusive lower bound of a numeric value. Values are
// compared exactly, so the bound is never rounded against a large integer.
// It panics on NaN or an infinity.
func MinValue(v float64) Option {
	r := boundRat(v)
	return func(o *options) { o.minValue = r }
}

// MaxValue sets the inclusive upper bound of a numeric value.
// It panics on NaN or an infinity.
func MaxValue(v float64) Option {
	r := boundRat(v)
	return func(o *options) { o.maxValue = r }
}

// MinInt and MaxInt set integer bounds that float64 cannot hold exactly.
func MinInt(v int64) Option {
	r := new(big.Rat).SetInt64(v)
	return func(o *options) { o.minValue = r }
}

func MaxInt(v int64) Option {
	r := new(big.Rat).SetInt64(v)
	return func(o *options) { o.maxValue = r }
}

func boundRat(v float64) *big.Rat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("fields: numeric bound must be finite")
	}
	return new(big.Rat).SetFloat64(v)
}
