/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package naming

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestStringifyProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	tuple := func(block, elem, modName, modVal string) Tuple {
		return Tuple{Block: block, Elem: elem, ModName: modName, ModVal: modVal}
	}

	properties.Property("stringify starts with block and contains every present part", prop.ForAll(
		func(block, elem, modName, modVal string) bool {
			tt := tuple(block, elem, modName, modVal)
			for _, c := range []Convention{Origin, TwoDashes, React} {
				s := c.Stringify(tt)
				if block == "" {
					if s != "" {
						return false
					}
					continue
				}
				if !strings.HasPrefix(s, block) {
					return false
				}
				if elem != "" && !strings.Contains(s, c.ElemDelim+elem) {
					return false
				}
				if modName != "" && !strings.Contains(s, c.ModDelim+modName) {
					return false
				}
				if modName == "" && modVal != "" && strings.Contains(s, modVal) && !strings.Contains(block+elem, modVal) {
					return false
				}
			}
			return true
		},
		gen.AlphaString(), gen.AlphaString(), gen.AlphaString(), gen.AlphaString(),
	))

	properties.Property("type depends on present parts only", prop.ForAll(
		func(block, elem, modName, modVal string) bool {
			typ := TypeOf(tuple(block, elem, modName, modVal))
			switch {
			case block == "":
				return typ == TypeNull
			case modName != "":
				return typ.IsMod() && (typ == TypeElemMod) == (elem != "")
			case elem != "":
				return typ == TypeElem
			default:
				return typ == TypeBlock
			}
		},
		gen.AlphaString(), gen.AlphaString(), gen.AlphaString(), gen.AlphaString(),
	))

	properties.Property("memoized stringify returns the same result", prop.ForAll(
		func(block, elem, modName, modVal string) bool {
			memo := Memoize(Origin.Stringify, 4)
			tt := tuple(block, elem, modName, modVal)
			return memo(tt) == Origin.Stringify(tt) && memo(tt) == Origin.Stringify(tt)
		},
		gen.Identifier(), gen.AlphaString(), gen.AlphaString(), gen.AlphaString(),
	))

	properties.TestingRun(t)
}
