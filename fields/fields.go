// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

// Kind identifies the variant of a field descriptor.
type Kind int

const (
	KindString Kind = iota + 1
	KindNumber
	KindInt
	KindFloat
	KindBoolean
	KindList
)

var kindNames = map[Kind]string{
	KindString:  "string",
	KindNumber:  "number",
	KindInt:     "int",
	KindFloat:   "float",
	KindBoolean: "boolean",
	KindList:    "list",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Field describes the acceptance rule for one value of a payload.
//
// Implementations must be immutable after construction so that a single
// descriptor can be shared by concurrent requests.
type Field interface {
	// Validate reports whether value satisfies every constraint of the
	// descriptor. It is called only for present, non-skipped values.
	Validate(value any) bool

	// Required reports whether the key holding the value must be present.
	Required() bool

	// Nullable reports whether an explicit null is accepted without
	// calling Validate.
	Nullable() bool

	// Kind returns the descriptor variant.
	Kind() Kind
}

// check is a single independent predicate of a descriptor.
type check func(value any) bool

// descriptor is the only Field implementation of this package.
type descriptor struct {
	kind     Kind
	required bool
	nullable bool
	checks   []check
}

func (d *descriptor) Validate(value any) bool {
	for _, c := range d.checks {
		if !c(value) {
			return false
		}
	}
	return true
}

func (d *descriptor) Required() bool { return d.required }
func (d *descriptor) Nullable() bool { return d.nullable }
func (d *descriptor) Kind() Kind     { return d.kind }

// newDescriptor assembles the final check list: typeCheck, then the variant
// checks in the given order, then enum and predicate.
func newDescriptor(kind Kind, o *options, typeCheck check, variant ...check) *descriptor {
	checks := make([]check, 0, len(variant)+3)
	checks = append(checks, typeCheck)
	for _, c := range variant {
		if c != nil {
			checks = append(checks, c)
		}
	}
	if o.enumSet {
		checks = append(checks, enumCheck(o.enum))
	}
	if o.predicate != nil {
		checks = append(checks, o.predicate)
	}

	return &descriptor{
		kind:     kind,
		required: o.required,
		nullable: o.nullable,
		checks:   checks,
	}
}

// String returns a descriptor accepting text values.
//
// Relevant options: DisallowEmpty, MaxLength, MinLength, Pattern.
// Lengths are counted in runes.
func String(opts ...Option) Field {
	o := buildOptions(opts)
	return newDescriptor(KindString, o, isString,
		emptyStringCheck(o),
		maxLengthCheck(o, stringLength),
		minLengthCheck(o, stringLength),
		patternCheck(o),
	)
}

// Number returns a descriptor accepting any integer or floating value
// except booleans.
//
// Relevant options: MaxValue, MinValue.
func Number(opts ...Option) Field {
	o := buildOptions(opts)
	return newDescriptor(KindNumber, o, isNumber, maxValueCheck(o), minValueCheck(o))
}

// Int returns a descriptor accepting integral values only. Booleans and
// floating values such as 1.0 are rejected.
func Int(opts ...Option) Field {
	o := buildOptions(opts)
	return newDescriptor(KindInt, o, isInt, maxValueCheck(o), minValueCheck(o))
}

// Float returns a descriptor accepting floating values only.
func Float(opts ...Option) Field {
	o := buildOptions(opts)
	return newDescriptor(KindFloat, o, isFloat, maxValueCheck(o), minValueCheck(o))
}

// Boolean returns a descriptor accepting true and false.
func Boolean(opts ...Option) Field {
	o := buildOptions(opts)
	return newDescriptor(KindBoolean, o, isBool)
}

// List returns a descriptor accepting sequences.
//
// Relevant options: MaxLength, MinLength.
func List(opts ...Option) Field {
	o := buildOptions(opts)
	return newDescriptor(KindList, o, isList,
		maxLengthCheck(o, listLength),
		minLengthCheck(o, listLength),
	)
}

// ForKind returns a descriptor of the given kind built with opts.
// It returns nil for an unknown kind.
func ForKind(kind Kind, opts ...Option) Field {
	switch kind {
	case KindString:
		return String(opts...)
	case KindNumber:
		return Number(opts...)
	case KindInt:
		return Int(opts...)
	case KindFloat:
		return Float(opts...)
	case KindBoolean:
		return Boolean(opts...)
	case KindList:
		return List(opts...)
	default:
		return nil
	}
}
