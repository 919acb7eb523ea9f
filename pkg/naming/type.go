/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package naming

// Entity type
type Type string

const (
	// Unknown type. Returned for tuples without block
	TypeNull Type = ""

	// Block, e.g. `button`
	TypeBlock Type = "block"

	// Element of block, e.g. `button__text`
	TypeElem Type = "elem"

	// Modifier of block, e.g. `button_disabled`
	TypeBlockMod Type = "blockMod"

	// Modifier of element, e.g. `button__text_size_l`
	TypeElemMod Type = "elemMod"
)

// Returns is type is block or element modifier
func (t Type) IsMod() bool {
	return (t == TypeBlockMod) || (t == TypeElemMod)
}

// Returns type as string
func (t Type) String() string {
	if t == TypeNull {
		return "null"
	}
	return string(t)
}

// Normalized entity tuple passed to naming functions.
//
// Empty string fields are omitted parts. ModVal is empty if modifier has no
// explicit value (simple modifier).
type Tuple struct {
	Block   string
	Elem    string
	ModName string
	ModVal  string
}

// Returns entity type for tuple.
//
// Returns TypeNull if tuple has no block.
func TypeOf(t Tuple) Type {
	switch {
	case t.Block == "":
		return TypeNull
	case t.Elem == "" && t.ModName == "":
		return TypeBlock
	case t.ModName == "":
		return TypeElem
	case t.Elem == "":
		return TypeBlockMod
	default:
		return TypeElemMod
	}
}
