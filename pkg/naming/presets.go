/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package naming

import (
	"slices"
	"sync"

	"github.com/untillpro/goutils/logger"
)

var (
	// Origin BEM convention: block__elem_mod_val
	Origin = Convention{Name: "origin", ElemDelim: "__", ModDelim: "_", ModValDelim: "_"}

	// Two dashes convention: block__elem--mod_val
	TwoDashes = Convention{Name: "two-dashes", ElemDelim: "__", ModDelim: "--", ModValDelim: "_"}

	// React convention: block-elem_mod_val
	React = Convention{Name: "react", ElemDelim: "-", ModDelim: "_", ModValDelim: "_"}
)

var presets = struct {
	sync.RWMutex
	m map[string]Convention
}{
	m: map[string]Convention{
		Origin.Name:    Origin,
		TwoDashes.Name: TwoDashes,
		React.Name:     React,
	},
}

// Returns preset convention by name
func Preset(name string) (Convention, error) {
	presets.RLock()
	c, ok := presets.m[name]
	presets.RUnlock()

	if !ok {
		return Convention{}, ErrUnknownConvention(name)
	}
	return c, nil
}

// Returns sorted names of preset conventions
func Presets() []string {
	presets.RLock()
	defer presets.RUnlock()

	nn := make([]string, 0, len(presets.m))
	for n := range presets.m {
		nn = append(nn, n)
	}
	slices.Sort(nn)
	return nn
}

// Registers convention as preset.
//
// Convention with the same name is replaced.
func Register(c Convention) error {
	if err := c.Validate(); err != nil {
		return err
	}

	presets.Lock()
	defer presets.Unlock()

	if old, ok := presets.m[c.Name]; ok && old != c {
		logger.Warning("naming convention «" + c.Name + "» is replaced")
	}
	presets.m[c.Name] = c
	return nil
}
