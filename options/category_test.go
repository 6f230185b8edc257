package options_test

import (
	"testing"

	"data-accessor/options"

	"github.com/stretchr/testify/assert"
)

func TestCategoryHas(t *testing.T) {
	t.Parallel()

	selected := options.CategoryReadable | options.CategoryError

	assert.True(t, selected.Has(options.CategoryReadable))
	assert.True(t, selected.Has(options.CategoryError))
	assert.True(t, selected.Has(options.CategoryReadable|options.CategoryError))
	assert.False(t, selected.Has(options.CategoryStringable))
	assert.False(t, selected.Has(options.CategoryReadable|options.CategoryRecursive))

	assert.True(t, options.CategoryEnum(options.CategoryAll).Has(selected))
	assert.True(t, selected.Has(options.CategoryNone))
	assert.False(t, options.CategoryEnum(options.CategoryNone).Has(options.CategoryEnumName))
}
