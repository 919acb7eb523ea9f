/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package naming

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Returns stringify function which memoizes results of f.
//
// Maximum number of memoized tuples is limited by size param.
//
// # Panics:
//   - if size is not positive
func Memoize(f StringifyFunc, size int) StringifyFunc {
	cache, err := lru.New[Tuple, string](size)
	if err != nil {
		panic(err)
	}

	return func(t Tuple) string {
		if s, ok := cache.Get(t); ok {
			return s
		}
		s := f(t)
		cache.Add(t, s)
		return s
	}
}
