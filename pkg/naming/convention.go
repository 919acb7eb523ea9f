/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package naming

import "strings"

// Function to build canonical string from entity tuple
type StringifyFunc func(Tuple) string

// Function to classify entity tuple
type ClassifyFunc func(Tuple) Type

// Naming convention. Describes delimiters between entity parts.
type Convention struct {
	// Convention name, used as preset key
	Name string

	// Delimiter between block and element, `__` in origin convention
	ElemDelim string

	// Delimiter before modifier name, `_` in origin convention
	ModDelim string

	// Delimiter between modifier name and value, `_` in origin convention
	ModValDelim string
}

// Returns error if convention has empty name or delimiters.
//
// Element delimiter must differ from modifier delimiter, else element and
// block modifier become indistinguishable.
func (c Convention) Validate() error {
	if c.Name == "" {
		return ErrInvalidConvention("empty name")
	}
	if c.ElemDelim == "" {
		return ErrInvalidConvention("«%s»: empty element delimiter", c.Name)
	}
	if c.ModDelim == "" {
		return ErrInvalidConvention("«%s»: empty modifier delimiter", c.Name)
	}
	if c.ModValDelim == "" {
		return ErrInvalidConvention("«%s»: empty modifier value delimiter", c.Name)
	}
	if c.ElemDelim == c.ModDelim {
		return ErrInvalidConvention("«%s»: element and modifier delimiters are same «%s»", c.Name, c.ElemDelim)
	}
	return nil
}

// Returns canonical string for tuple.
//
// Returns empty string if tuple has no block. Modifier value token is
// written only if tuple has modifier value.
func (c Convention) Stringify(t Tuple) string {
	if t.Block == "" {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(t.Block)
	if t.Elem != "" {
		s.WriteString(c.ElemDelim)
		s.WriteString(t.Elem)
	}
	if t.ModName != "" {
		s.WriteString(c.ModDelim)
		s.WriteString(t.ModName)
		if t.ModVal != "" {
			s.WriteString(c.ModValDelim)
			s.WriteString(t.ModVal)
		}
	}
	return s.String()
}

// Returns convention name
func (c Convention) String() string { return c.Name }

var (
	// Stringify function used by entity names by default
	DefaultStringify StringifyFunc = Origin.Stringify

	// Classify function used by entity names by default
	DefaultClassify ClassifyFunc = TypeOf
)
