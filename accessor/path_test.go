package accessor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"data-accessor/accessor"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path      string
		separator string
		expected  []string
	}{
		{"", "/", []string{}},
		{"/", "/", []string{}},
		{"a", "/", []string{"a"}},
		{"//a//", "/", []string{"a"}},
		{"a/b/c", "/", []string{"a", "b", "c"}},
		{"/a//b/", "/", []string{"a", "b"}},
		{"a.b", "/", []string{"a.b"}},
		{"a.b", ".", []string{"a", "b"}},
		{"a::b::::c", "::", []string{"a", "b", "c"}},
		{"0/1", "/", []string{"0", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, accessor.ParsePath(tt.path, tt.separator))
		})
	}

	assert.PanicsWithValue(t, "accessor: empty separator", func() {
		accessor.ParsePath("a", "")
	})
}
