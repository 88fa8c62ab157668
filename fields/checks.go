// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// isInt accepts Go integer types and json.Number literals written without
// a fraction or exponent.
func isInt(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case json.Number:
		return isIntegralLiteral(n)
	default:
		return false
	}
}

// isFloat accepts Go floating types and json.Number literals carrying a
// fraction or exponent ("1.0", "1e3").
func isFloat(v any) bool {
	switch n := v.(type) {
	case float32, float64:
		return true
	case json.Number:
		return !isIntegralLiteral(n) && isNumericLiteral(n)
	default:
		return false
	}
}

func isNumber(v any) bool {
	return isInt(v) || isFloat(v)
}

func isList(v any) bool {
	if _, ok := v.([]any); ok {
		return true
	}
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Slice
}

// jsonNumber is the number grammar of RFC 8259. json.Number built by hand
// may hold anything, "NaN" and "Infinity" included.
var jsonNumber = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?$`)

func isIntegralLiteral(n json.Number) bool {
	s := string(n)
	return !strings.ContainsAny(s, ".eE") && isNumericLiteral(n)
}

func isNumericLiteral(n json.Number) bool {
	return jsonNumber.MatchString(string(n))
}

// toRat converts any numeric value (booleans excluded) to an exact rational,
// so integers past 2^53 keep every digit. Floats keep their binary value.
func toRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int8:
		return new(big.Rat).SetInt64(int64(n)), true
	case int16:
		return new(big.Rat).SetInt64(int64(n)), true
	case int32:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case uint:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Rat).SetUint64(n), true
	case float32:
		return floatRat(float64(n))
	case float64:
		return floatRat(n)
	case json.Number:
		if isIntegralLiteral(n) {
			return new(big.Rat).SetString(string(n))
		}
		if !isNumericLiteral(n) {
			return nil, false
		}
		// A fraction or exponent decodes to the nearest float64, as it
		// would into a float field.
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return nil, false
		}
		return floatRat(f)
	default:
		return nil, false
	}
}

// floatRat rejects NaN and the infinities, which have no rational value.
func floatRat(f float64) (*big.Rat, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return new(big.Rat).SetFloat64(f), true
}

func stringLength(v any) int {
	s, _ := v.(string)
	return utf8.RuneCountInString(s)
}

func listLength(v any) int {
	if l, ok := v.([]any); ok {
		return len(l)
	}
	return reflect.ValueOf(v).Len()
}

func emptyStringCheck(o *options) check {
	if o.allowEmpty {
		return nil
	}
	return func(v any) bool { return stringLength(v) > 0 }
}

func maxLengthCheck(o *options, length func(any) int) check {
	if o.maxLength == nil {
		return nil
	}
	limit := *o.maxLength
	return func(v any) bool { return length(v) <= limit }
}

func minLengthCheck(o *options, length func(any) int) check {
	if o.minLength == nil {
		return nil
	}
	limit := *o.minLength
	return func(v any) bool { return length(v) >= limit }
}

func patternCheck(o *options) check {
	if o.pattern == nil {
		return nil
	}
	re := o.pattern
	return func(v any) bool {
		s, _ := v.(string)
		return re.MatchString(s)
	}
}

func maxValueCheck(o *options) check {
	if o.maxValue == nil {
		return nil
	}
	limit := o.maxValue
	return func(v any) bool {
		r, ok := toRat(v)
		return ok && r.Cmp(limit) <= 0
	}
}

func minValueCheck(o *options) check {
	if o.minValue == nil {
		return nil
	}
	limit := o.minValue
	return func(v any) bool {
		r, ok := toRat(v)
		return ok && r.Cmp(limit) >= 0
	}
}

func enumCheck(values []any) check {
	allowed := make([]any, len(values))
	for i, v := range values {
		allowed[i] = normalize(v)
	}
	return func(v any) bool {
		n := normalize(v)
		for _, a := range allowed {
			if reflect.DeepEqual(n, a) {
				return true
			}
		}
		return false
	}
}

// number is the canonical form of a numeric value inside an enum, so that
// 1, int64(1), 1.0 and json.Number("1") compare equal.
type number string

// normalize rewrites v into a form where equal values are deeply equal.
// Lists and objects are rewritten element by element.
func normalize(v any) any {
	switch t := v.(type) {
	case nil, bool, string:
		return v
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	}

	if r, ok := toRat(v); ok {
		return number(r.RatString())
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	}
	return v
}
