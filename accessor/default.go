package accessor

import (
	"sync"

	"data-accessor/kind"
)

var defaultAccessor = sync.OnceValue(func() *Accessor {
	return New(DefaultConfig())
})

// Default returns the shared accessor built from DefaultConfig.
func Default() *Accessor {
	return defaultAccessor()
}

func Get(data any, path string, def any) any {
	return Default().Get(data, path, def)
}

func GetAs(data any, path string, def any, target kind.Type) (any, error) {
	return Default().GetAs(data, path, def, target)
}

func Has(data any, path string) bool {
	return Default().Has(data, path)
}

func Set(data any, path string, value any) (any, error) {
	return Default().Set(data, path, value)
}

// NewDataAccessor binds data to the default accessor.
func NewDataAccessor(data any) *DataAccessor {
	return Default().Bind(data)
}

// NewPathAccessor binds path to the default accessor.
func NewPathAccessor(path string) *PathAccessor {
	return Default().At(path)
}
