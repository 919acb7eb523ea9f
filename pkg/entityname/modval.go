/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package entityname

import "strconv"

type modValKind uint8

const (
	modValKind_null modValKind = iota
	modValKind_True
	modValKind_String
)

// Modifier value.
//
// Has three states:
//   - unset (zero value), used in Input to mark omitted value,
//   - true, modifier is set without explicit value (simple modifier),
//   - string, modifier has explicit value, empty string is possible.
//
// ModVal is comparable.
type ModVal struct {
	kind modValKind
	val  string
}

// Returns true modifier value
func True() ModVal { return ModVal{kind: modValKind_True} }

// Returns explicit modifier value
func Val(v string) ModVal { return ModVal{kind: modValKind_String, val: v} }

// Returns is value set
func (v ModVal) IsSet() bool { return v.kind != modValKind_null }

// Returns is value true
func (v ModVal) IsTrue() bool { return v.kind == modValKind_True }

// Returns explicit value and true if value is explicit string
func (v ModVal) Value() (string, bool) {
	return v.val, v.kind == modValKind_String
}

// Returns value as string.
//
// Unset value is empty string, true value is "true".
func (v ModVal) String() string {
	switch v.kind {
	case modValKind_True:
		return "true"
	case modValKind_String:
		return v.val
	}
	return ""
}

// Returns value in inspect form: `true`, `'val'` or `undefined`
func (v ModVal) GoString() string {
	switch v.kind {
	case modValKind_True:
		return "true"
	case modValKind_String:
		return "'" + quote(v.val) + "'"
	}
	return "undefined"
}

// Returns tuple value: explicit not empty value or empty string
func (v ModVal) tuple() string {
	if s, ok := v.Value(); ok {
		return s
	}
	return ""
}

func quote(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
