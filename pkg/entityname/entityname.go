/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package entityname

import (
	"strings"
	"sync"

	"github.com/voedger/bemname/pkg/naming"
)

// # EntityName
//
// BEM entity name: block, optional element and optional modifier.
//
// Immutable. Id and type are calculated on first access and cached.
// Safe for concurrent use.
type EntityName struct {
	data Data
	id   func() string
	typ  func() naming.Type
}

// Entity name structure. Contains only block, element and modifier.
type Data struct {
	Block string
	Elem  string
	Mod   *Mod
}

// Creates new entity name from input.
//
// Returns ErrInvalidEntity if input has no block.
func New(in Input, opts ...Option) (*EntityName, error) {
	if in.Block == "" {
		return nil, ErrMissingField("block")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := &EntityName{data: Data{Block: in.Block, Elem: in.Elem}}
	if m := in.mod(); !m.IsZero() {
		n.data.Mod = &m
	}

	tuple := n.Tuple()
	n.id = sync.OnceValue(func() string { return o.stringify(tuple) })
	n.typ = sync.OnceValue(func() naming.Type { return o.classify(tuple) })

	return n, nil
}

// Creates new entity name from input.
//
// # Panics:
//   - if input has no block
func MustNew(in Input, opts ...Option) *EntityName {
	n, err := New(in, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// Returns block name
func (n *EntityName) Block() string { return n.data.Block }

// Returns element name or empty string
func (n *EntityName) Elem() string { return n.data.Elem }

// Returns modifier or zero modifier if entity has no modifier
func (n *EntityName) Mod() Mod {
	if n.data.Mod == nil {
		return Mod{}
	}
	return *n.data.Mod
}

// Returns is entity has modifier
func (n *EntityName) HasMod() bool { return n.data.Mod != nil }

// Deprecated: use Mod().Name.
func (n *EntityName) ModName() string { return n.Mod().Name }

// Deprecated: use Mod().Val.
//
// Returns unset value if entity has no modifier.
func (n *EntityName) ModVal() ModVal { return n.Mod().Val }

// Returns is entity has modifier with true value
func (n *EntityName) IsSimpleMod() bool {
	return n.HasMod() && n.data.Mod.Val.IsTrue()
}

// Returns normalized tuple for naming functions
func (n *EntityName) Tuple() naming.Tuple {
	t := naming.Tuple{Block: n.data.Block, Elem: n.data.Elem}
	if m := n.data.Mod; m != nil {
		t.ModName = m.Name
		t.ModVal = m.Val.tuple()
	}
	return t
}

// Returns entity id, canonical string key
func (n *EntityName) ID() string { return n.id() }

// Returns entity type
func (n *EntityName) Type() naming.Type { return n.typ() }

// Returns entity id
func (n *EntityName) String() string { return n.ID() }

// Returns entity structure copy
func (n *EntityName) Data() Data {
	d := n.data
	if m := d.Mod; m != nil {
		c := *m
		d.Mod = &c
	}
	return d
}

// Returns entity in inspect form:
//
//	EntityName { block: 'b', elem: 'e', mod: { name: 'm', val: true } }
func (n *EntityName) GoString() string {
	s := strings.Builder{}
	s.WriteString("EntityName { block: '")
	s.WriteString(quote(n.data.Block))
	s.WriteByte('\'')
	if n.data.Elem != "" {
		s.WriteString(", elem: '")
		s.WriteString(quote(n.data.Elem))
		s.WriteByte('\'')
	}
	if m := n.data.Mod; m != nil {
		s.WriteString(", mod: ")
		s.WriteString(m.GoString())
	}
	s.WriteString(" }")
	return s.String()
}

// Returns is other entity has the same id.
//
// Returns false if other is nil.
func (n *EntityName) IsEqual(other *EntityName) bool {
	if n == nil || other == nil {
		return false
	}
	return (n == other) || (n.ID() == other.ID())
}

// Returns is entity belongs to other entity:
//   - element and block modifier belong to their block,
//   - element modifier belongs to its element,
//   - modifier with explicit value belongs to the same simple modifier.
func (n *EntityName) BelongsTo(other *EntityName) bool {
	if n == nil || other == nil {
		return false
	}
	if (n.Block() != other.Block()) || n.IsEqual(other) {
		return false
	}

	switch other.Type() {
	case naming.TypeBlock:
		return n.Type() == naming.TypeBlockMod || n.Type() == naming.TypeElem
	case naming.TypeElem:
		return n.Type() == naming.TypeElemMod && n.Elem() == other.Elem()
	case naming.TypeBlockMod, naming.TypeElemMod:
		return n.Type() == other.Type() &&
			n.Elem() == other.Elem() &&
			n.ModName() == other.ModName() &&
			other.IsSimpleMod() && !n.IsSimpleMod()
	}
	return false
}

// Marks EntityName. Used by IsEntityName
func (*EntityName) BemEntityNameMarker() bool { return true }

// Returns is v is entity name.
//
// Checks the BemEntityNameMarker() method, not the concrete type, so entity
// names from another copy of this package are recognized too.
func IsEntityName(v any) bool {
	m, ok := v.(interface{ BemEntityNameMarker() bool })
	return ok && m.BemEntityNameMarker()
}
