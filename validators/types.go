// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/MKhiriev/go-payload-guard/fields"

// TypeEntry maps a required key to an exact value kind or to a nested
// type mapping.
type TypeEntry struct {
	key    string
	kind   fields.Kind
	nested Types
	object bool
}

// TypeOf requires key to be present and hold a value of kind.
func TypeOf(key string, kind fields.Kind) TypeEntry {
	return TypeEntry{key: key, kind: kind}
}

// TypesOf requires key to hold an object matching the nested entries.
func TypesOf(key string, entries ...TypeEntry) TypeEntry {
	return TypeEntry{key: key, nested: Types(entries), object: true}
}

// Types is an ordered key-to-type mapping:
//
//	validators.Types{
//		validators.TypeOf("a", fields.KindString),
//		validators.TypeOf("b", fields.KindInt),
//		validators.TypesOf("c", validators.TypeOf("d", fields.KindInt)),
//	}
//
// Every key is required and no constraint other than the type is applied.
type Types []TypeEntry

// Spec converts t into the equivalent Spec of default descriptors. An
// unknown kind yields an entry that fails with ErrInvalidSpec.
func (t Types) Spec() Spec {
	spec := make(Spec, 0, len(t))
	for _, e := range t {
		if e.object {
			spec = append(spec, Object(e.key, e.nested.Spec()...))
			continue
		}
		spec = append(spec, Field(e.key, fields.ForKind(e.kind)))
	}
	return spec
}

// Validate implements Validator.
func (t Types) Validate(body any) error {
	return Validate(body, t.Spec())
}
