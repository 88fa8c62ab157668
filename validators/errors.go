// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeyMissing is returned when a required key is absent at some level
	// of the payload.
	ErrKeyMissing = errors.New("key missing")

	// ErrInvalidTypeOrValue is returned when a present value fails a type,
	// bound, pattern, enum or predicate check.
	ErrInvalidTypeOrValue = errors.New("invalid type or value")

	// ErrNotAnObject is returned when a key described by a nested rule holds
	// something other than an object. It matches ErrInvalidTypeOrValue.
	ErrNotAnObject = fmt.Errorf("%w: not an object", ErrInvalidTypeOrValue)

	// ErrSchemaViolation is returned when a payload does not conform to a
	// schema document.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrInvalidSpec signals a broken rule definition (an empty entry, a nil
	// descriptor, a duplicate key). It is a programming error and is never
	// caused by the payload.
	ErrInvalidSpec = errors.New("invalid validation spec")

	// ErrInvalidSchema is returned when a schema document cannot be parsed
	// or is not a valid schema.
	ErrInvalidSchema = errors.New("invalid schema document")
)

// PathError records the key path at which validation stopped.
type PathError struct {
	// Path holds the keys from the payload root to the failing key.
	// It is empty when the root itself was rejected.
	Path []string

	Err error
}

func newPathError(path []string, err error) *PathError {
	return &PathError{Path: path, Err: err}
}

// Key returns the dotted form of Path, e.g. "user.address.zip".
func (e *PathError) Key() string {
	return strings.Join(e.Path, ".")
}

func (e *PathError) Error() string {
	if len(e.Path) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Key(), e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// KeyOf returns the dotted key path carried by err, or "" if there is none.
func KeyOf(err error) string {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Key()
	}
	return ""
}

// Outcome is the classified result of a validation pass.
type Outcome int

const (
	Pass Outcome = iota
	KeyMissing
	InvalidTypeOrValue
	// Unexpected covers implementation errors such as ErrInvalidSpec.
	Unexpected
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case KeyMissing:
		return "key-missing"
	case InvalidTypeOrValue:
		return "invalid-type-or-value"
	default:
		return "unexpected"
	}
}

// OutcomeOf classifies an error returned by a Validator.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Pass
	case errors.Is(err, ErrKeyMissing):
		return KeyMissing
	case errors.Is(err, ErrInvalidTypeOrValue), errors.Is(err, ErrSchemaViolation):
		return InvalidTypeOrValue
	default:
		return Unexpected
	}
}

// appendPath returns a copy of path extended with key, so sibling branches
// never share a backing array.
func appendPath(path []string, key string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = key
	return out
}
