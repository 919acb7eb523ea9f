/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package entityname

import (
	"slices"
	"strings"
)

// Compare two entity names by id.
//
// Nil entity is less than any not nil entity.
func Compare(a, b *EntityName) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(a.ID(), b.ID())
}

// Slice of entity names.
//
// Slice is sorted by id and has no entities with equal ids.
//
// Use NamesFrom() to create EntityNames slice from variadic arguments.
// Use Add() to add entity names to slice.
// Use Contains() and Find() to search for entity name in slice.
type EntityNames []*EntityName

// Returns slice of entity names from variadic arguments.
//
// Result slice is sorted and has no duplicates. Nil entities are ignored.
func NamesFrom(n ...*EntityName) EntityNames {
	nn := EntityNames{}
	nn.Add(n...)
	return nn
}

// Adds entity names to slice. Nil entities and entities with ids already
// in slice are ignored. Result slice is sorted.
func (nn *EntityNames) Add(n ...*EntityName) {
	for _, e := range n {
		if e == nil {
			continue
		}
		if i, ok := nn.Find(e); !ok {
			*nn = slices.Insert(*nn, i, e)
		}
	}
}

// Returns true if slice contains entity name with the same id
func (nn EntityNames) Contains(n *EntityName) bool {
	_, ok := nn.Find(n)
	return ok
}

// Returns index of entity name with the same id in slice and true if found.
func (nn EntityNames) Find(n *EntityName) (int, bool) {
	if n == nil {
		return 0, false
	}
	return slices.BinarySearchFunc(nn, n, Compare)
}

// Returns ids of entity names
func (nn EntityNames) IDs() []string {
	ids := make([]string, 0, len(nn))
	for _, n := range nn {
		ids = append(ids, n.ID())
	}
	return ids
}
