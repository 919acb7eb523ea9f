/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package entityname

// Modifier
type Mod struct {
	Name string
	Val  ModVal
}

// Returns is modifier empty (has no name)
func (m Mod) IsZero() bool { return m.Name == "" }

// Returns modifier in inspect form: `{ name: 'm', val: true }`
func (m Mod) GoString() string {
	if m.IsZero() {
		return "{}"
	}
	return "{ name: '" + quote(m.Name) + "', val: " + m.Val.GoString() + " }"
}

// Modifier specification for Input
type ModInput struct {
	// Modifier name. Empty name means no modifier
	Name string

	// Modifier value. If unset then value is true
	Val ModVal
}

// Returns modifier specification with name only, modifier value will be true
func Shorthand(name string) ModInput { return ModInput{Name: name} }

// Entity name input for New()
type Input struct {
	// Block name. Required
	Block string

	// Element name
	Elem string

	// Modifier
	Mod ModInput

	// Deprecated: use Mod.Name.
	//
	// Used as modifier name if Mod.Name is empty
	ModName string

	// Deprecated: use Mod.Val.
	//
	// Used as modifier value if Mod.Val is unset
	ModVal ModVal
}

// Resolves modifier from input.
//
// Mod.Name precedes deprecated ModName, Mod.Val precedes deprecated ModVal.
// If no name is resolved, then returns zero modifier.
func (in Input) mod() Mod {
	name := in.Mod.Name
	if name == "" {
		name = in.ModName
	}
	if name == "" {
		return Mod{}
	}

	val := in.Mod.Val
	if !val.IsSet() {
		val = in.ModVal
	}
	if !val.IsSet() {
		val = True()
	}
	return Mod{Name: name, Val: val}
}
