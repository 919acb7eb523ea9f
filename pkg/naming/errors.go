/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package naming

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrUnknownConventionError = errors.New("unknown naming convention")

func ErrUnknownConvention(name string) error {
	return EnrichError(ErrUnknownConventionError, "«%s», known are %v", name, Presets())
}

var ErrInvalidConventionError = errors.New("invalid naming convention")

func ErrInvalidConvention(msg string, args ...any) error {
	return EnrichError(ErrInvalidConventionError, msg, args...)
}
