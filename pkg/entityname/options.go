/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package entityname

import "github.com/voedger/bemname/pkg/naming"

type options struct {
	stringify naming.StringifyFunc
	classify  naming.ClassifyFunc
}

func defaultOptions() options {
	return options{
		stringify: naming.DefaultStringify,
		classify:  naming.DefaultClassify,
	}
}

// New() option
type Option func(*options)

// Sets function to build entity id. Nil function is ignored.
func WithStringify(f naming.StringifyFunc) Option {
	return func(o *options) {
		if f != nil {
			o.stringify = f
		}
	}
}

// Sets function to classify entity. Nil function is ignored.
func WithClassify(f naming.ClassifyFunc) Option {
	return func(o *options) {
		if f != nil {
			o.classify = f
		}
	}
}

// Sets naming convention to build entity id
func WithConvention(c naming.Convention) Option {
	return WithStringify(c.Stringify)
}
