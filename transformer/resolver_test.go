package transformer_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-accessor/kind"
	"data-accessor/options"
	"data-accessor/transformer"
)

func fullChain(t *testing.T, target kind.Type) transformer.Transformer {
	t.Helper()

	errorConverter, err := transformer.NewErrorConverter(nil, kind.None)
	require.NoError(t, err)

	return transformer.NewFirstMatchResolver([]transformer.Transformer{
		transformer.NewEnumConverter(false),
		transformer.NewReadableConverter(false),
		errorConverter,
		transformer.NewStringableConverter(false),
		transformer.NewBasicTypeConverter(nil),
	}, target)
}

func TestFirstMatchResolver(t *testing.T) {
	tr := fullChain(t, kind.String)
	subject := &codeError{msg: "Error message", code: 123}

	tests := []struct {
		name     string
		subject  any
		expected any
	}{
		{"error", subject, "Error message"},
		{"enum", answerYes, "Yes"},
		{"readable", true, "true"},
		{"stringable", stringable{}, "Stringable test class"},
		{"basic", "A string", "A string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tr.CanTransform(tt.subject, kind.None))

			out, err := tr.Transform(tt.subject, kind.None)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	// an explicit target overrides the resolver default
	out, err := tr.Transform(subject, kind.Object)
	require.NoError(t, err)
	assert.Equal(t, "Error message", out.(map[string]any)["message"])
}

func TestFirstMatchResolverConvertable(t *testing.T) {
	tr := transformer.NewFirstMatchResolver([]transformer.Transformer{
		transformer.NewStringableConverter(false),
	}, kind.String)

	assert.True(t, tr.CanTransform(stringable{}, kind.None))
	assert.False(t, tr.CanTransform(newTestObject(), kind.None))
}

func TestFirstMatchResolverFallback(t *testing.T) {
	tr := transformer.NewFirstMatchResolver([]transformer.Transformer{
		transformer.NewEnumConverter(false),
		transformer.NewBasicTypeConverter(nil),
	}, kind.None)

	out, err := tr.Transform("hi", kind.Array)
	require.NoError(t, err)
	assert.Equal(t, []any{"hi"}, out)
}

func TestFirstMatchResolverInvalidTransformer(t *testing.T) {
	assert.PanicsWithValue(t, "transformer: nil transformer at index 1", func() {
		transformer.NewFirstMatchResolver([]transformer.Transformer{
			transformer.NewEnumConverter(false),
			nil,
		}, kind.None)
	})
}

func TestFirstMatchResolverNoMatch(t *testing.T) {
	tr := transformer.NewFirstMatchResolver([]transformer.Transformer{
		transformer.NewEnumConverter(false),
	}, kind.None)

	_, err := tr.Transform("A string", kind.None)
	assert.EqualError(t, err, "could not find transformer for string")
	assert.ErrorIs(t, err, transformer.ErrNoTransformer)
	assert.False(t, errors.Is(err, transformer.ErrUnsupported))
}

func TestRecursionResolver(t *testing.T) {
	tr := transformer.NewRecursionResolver(transformer.NewBasicTypeConverter(nil))

	subject := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{
				"d": 2,
				"e": newTestObject(),
			},
		},
	}
	expected := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{
				"d": 2,
				"e": map[string]any{"Public": "public"},
			},
		},
	}

	for _, target := range []kind.Type{kind.Array, kind.Object} {
		out, err := tr.Transform(subject, target)
		require.NoError(t, err)
		assert.Equal(t, expected, out, spew.Sdump(out))
	}

	out, err := tr.Transform([]any{newTestObject(), 1}, kind.Array)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"Public": "public"}, 1}, out)

	assert.True(t, tr.CanTransform("A string", kind.None))

	out, err = tr.Transform("A string", kind.None)
	require.NoError(t, err)
	assert.Equal(t, "A string", out)
}

func TestDefault(t *testing.T) {
	assert.Same(t, transformer.Default(), transformer.Default())
	assert.IsType(t, &transformer.BasicTypeConverter{}, transformer.Default())
}

func TestNewDefault(t *testing.T) {
	tr := transformer.NewDefault(options.CategoryAll)

	out, err := tr.Transform(map[string]any{"err": errors.New("boom")}, kind.Object)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"err": map[string]any{"type": "*errors.errorString", "message": "boom", "code": 0},
	}, out, spew.Sdump(out))

	out, err = tr.Transform(true, kind.String)
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	out, err = tr.Transform(answerYes, kind.String)
	require.NoError(t, err)
	assert.Equal(t, "Yes", out)

	basic := transformer.NewDefault(options.CategoryNone)

	out, err = basic.Transform(true, kind.String)
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}
