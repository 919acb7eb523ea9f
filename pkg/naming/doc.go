/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

// Package naming contains BEM naming convention helpers used by entity names:
// classification of an entity tuple into block, elem, blockMod or elemMod,
// and stringification of a tuple with convention delimiters.
//
// # Conventions
//
//	origin:     block__elem_mod_val
//	two-dashes: block__elem--mod_val
//	react:      block-elem_mod_val
package naming
