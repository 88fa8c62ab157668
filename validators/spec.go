// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/MKhiriev/go-payload-guard/fields"
)

type entryKind int

const (
	entryInvalid entryKind = iota
	entryField
	entryObject
)

// Entry is one key of a Spec: either a field descriptor or a nested Spec.
// Build entries with [Field] and [Object]; the zero Entry is invalid.
type Entry struct {
	kind   entryKind
	key    string
	field  fields.Field
	nested Spec
}

// Field returns an entry validating the value at key with f.
func Field(key string, f fields.Field) Entry {
	return Entry{kind: entryField, key: key, field: f}
}

// Object returns an entry requiring key to hold an object that satisfies
// the nested entries.
func Object(key string, entries ...Entry) Entry {
	return Entry{kind: entryObject, key: key, nested: Spec(entries)}
}

// Key returns the payload key the entry applies to.
func (e Entry) Key() string {
	return e.key
}

// Spec is an ordered set of entries. Entries are checked in declaration
// order, which fixes which failure is reported when several exist.
//
// Example:
//
//	spec := validators.Spec{
//		validators.Field("a", fields.Int(fields.MinValue(0))),
//		validators.Object("b",
//			validators.Field("c", fields.Boolean(fields.Nullable())),
//		),
//	}
type Spec []Entry

// Validate implements Validator.
func (s Spec) Validate(body any) error {
	return Validate(body, s)
}

// Check reports definition errors in s: zero entries, nil descriptors and
// duplicate keys on the same level. It is meant to run once when a route
// is registered.
func (s Spec) Check() error {
	return s.check(nil)
}

func (s Spec) check(path []string) error {
	seen := make(map[string]struct{}, len(s))
	for i, e := range s {
		keyPath := appendPath(path, e.key)
		if _, dup := seen[e.key]; dup {
			return newPathError(keyPath, fmt.Errorf("%w: duplicate key", ErrInvalidSpec))
		}
		seen[e.key] = struct{}{}

		switch e.kind {
		case entryField:
			if e.field == nil {
				return newPathError(keyPath, fmt.Errorf("%w: nil field descriptor", ErrInvalidSpec))
			}
		case entryObject:
			if err := e.nested.check(keyPath); err != nil {
				return err
			}
		default:
			return newPathError(path, fmt.Errorf("%w: entry %d is not initialized", ErrInvalidSpec, i))
		}
	}
	return nil
}

// Validate walks spec against body key by key and returns the first
// violation found, or nil if body satisfies every entry.
//
// For a field entry:
//   - a required key that is absent fails with ErrKeyMissing;
//   - an optional key that is absent is skipped;
//   - a null value of a nullable field is skipped without calling the
//     descriptor;
//   - otherwise the descriptor decides, failing with ErrInvalidTypeOrValue.
//
// For an object entry the key must be present (ErrKeyMissing) and hold an
// object (ErrNotAnObject); the nested spec is then applied recursively.
func Validate(body any, spec Spec) error {
	return validateObject(body, spec, nil)
}

func validateObject(body any, spec Spec, path []string) error {
	object, ok := body.(map[string]any)
	if !ok {
		return newPathError(path, ErrNotAnObject)
	}

	for i, e := range spec {
		keyPath := appendPath(path, e.key)

		switch e.kind {
		case entryField:
			if e.field == nil {
				return newPathError(keyPath, fmt.Errorf("%w: nil field descriptor", ErrInvalidSpec))
			}

			value, present := object[e.key]
			if !present {
				if e.field.Required() {
					return newPathError(keyPath, ErrKeyMissing)
				}
				continue
			}

			if value == nil && e.field.Nullable() {
				continue
			}

			if !e.field.Validate(value) {
				return newPathError(keyPath, fmt.Errorf("%w: expected %s", ErrInvalidTypeOrValue, e.field.Kind()))
			}

		case entryObject:
			value, present := object[e.key]
			if !present {
				return newPathError(keyPath, ErrKeyMissing)
			}
			if _, ok := value.(map[string]any); !ok {
				return newPathError(keyPath, ErrNotAnObject)
			}
			if err := validateObject(value, e.nested, keyPath); err != nil {
				return err
			}

		default:
			return newPathError(path, fmt.Errorf("%w: entry %d is not initialized", ErrInvalidSpec, i))
		}
	}

	return nil
}
