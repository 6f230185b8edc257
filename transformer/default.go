package transformer

import (
	"sync"

	"data-accessor/kind"
	"data-accessor/options"
)

var defaultTransformer = sync.OnceValue(func() Transformer {
	return NewBasicTypeConverter(nil)
})

// Default returns the shared BasicTypeConverter.
func Default() Transformer {
	return defaultTransformer()
}

// NewDefault builds a first-match chain of the auxiliary converters selected
// by categories, ending with a BasicTypeConverter. CategoryRecursive wraps
// the chain in a RecursionResolver.
func NewDefault(categories options.CategoryEnum) Transformer {
	var chain []Transformer

	if categories.Has(options.CategoryEnumName) {
		chain = append(chain, NewEnumConverter(false))
	}

	if categories.Has(options.CategoryReadable) {
		chain = append(chain, NewReadableConverter(false))
	}

	if categories.Has(options.CategoryError) {
		converter, _ := NewErrorConverter(nil, kind.None)
		chain = append(chain, converter)
	}

	if categories.Has(options.CategoryStringable) {
		chain = append(chain, NewStringableConverter(false))
	}

	chain = append(chain, NewBasicTypeConverter(nil))

	var t Transformer = NewFirstMatchResolver(chain, kind.None)
	if categories.Has(options.CategoryRecursive) {
		t = NewRecursionResolver(t)
	}

	return t
}
