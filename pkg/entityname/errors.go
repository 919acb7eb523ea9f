/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package entityname

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

var ErrInvalidEntity = errors.New("invalid entity name")

func ErrMissingField(field string) error {
	return EnrichError(ErrInvalidEntity, "the field «%s» is required", field)
}
