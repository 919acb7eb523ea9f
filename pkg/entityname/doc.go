/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package entityname provides BEM entity name: immutable block, element and
// modifier triple with derived canonical id and type.
//
// # Usage
//
//	n, err := entityname.New(entityname.Input{
//		Block: "menu",
//		Elem:  "item",
//		Mod:   entityname.Shorthand("current"),
//	})
//	n.ID()   // menu__item_current
//	n.Type() // elemMod
package entityname
