// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fields provides typed field descriptors used to describe the
// acceptable shape of a single value inside a decoded JSON payload.
//
// A descriptor is built once with one of the constructors ([String],
// [Number], [Int], [Float], [Boolean], [List]) and a set of options, and is
// then shared read-only between requests.
//
// Each descriptor owns an ordered list of independent checks:
//  1. runtime type check (a mismatch fails without evaluating anything else);
//  2. variant bounds: max before min, then pattern for strings;
//  3. shared checks: enum membership, then the custom predicate.
//
// Null handling and key presence are not the descriptor's business: callers
// consult [Field.Required] and [Field.Nullable] before calling
// [Field.Validate].
//
// Usage:
//
//	name := fields.String(fields.MaxLength(32), fields.DisallowEmpty())
//	age := fields.Int(fields.MinValue(0), fields.Optional())
//	name.Validate("gopher") // true
package fields
