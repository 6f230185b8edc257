package transformer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-accessor/kind"
	"data-accessor/transformer"
)

type basicCase struct {
	target   kind.Type
	expected any
}

func runBasic(t *testing.T, tr transformer.Transformer, subject any, cases []basicCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.target.String(), func(t *testing.T) {
			assert.True(t, tr.CanTransform(subject, tc.target))

			out, err := tr.Transform(subject, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestBasicTypeConverter(t *testing.T) {
	tr := transformer.NewBasicTypeConverter(nil)

	t.Run("string", func(t *testing.T) {
		runBasic(t, tr, "A string", []basicCase{
			{kind.None, "A string"},
			{kind.Array, []any{"A string"}},
			{kind.Boolean, true},
			{kind.Integer, 0},
			{kind.Null, nil},
			{kind.Number, 0.0},
			{kind.Object, map[string]any{"scalar": "A string"}},
			{kind.String, "A string"},
		})
	})

	t.Run("float", func(t *testing.T) {
		runBasic(t, tr, 123.456, []basicCase{
			{kind.None, 123.456},
			{kind.Array, []any{123.456}},
			{kind.Boolean, true},
			{kind.Integer, 123},
			{kind.Null, nil},
			{kind.Number, 123.456},
			{kind.Object, map[string]any{"scalar": 123.456}},
			{kind.String, "123.456"},
		})
	})

	t.Run("int", func(t *testing.T) {
		runBasic(t, tr, 789, []basicCase{
			{kind.None, 789},
			{kind.Array, []any{789}},
			{kind.Boolean, true},
			{kind.Integer, 789},
			{kind.Null, nil},
			{kind.Number, 789.0},
			{kind.Object, map[string]any{"scalar": 789}},
			{kind.String, "789"},
		})
	})

	t.Run("true", func(t *testing.T) {
		runBasic(t, tr, true, []basicCase{
			{kind.None, true},
			{kind.Array, []any{true}},
			{kind.Boolean, true},
			{kind.Integer, 1},
			{kind.Null, nil},
			{kind.Number, 1.0},
			{kind.Object, map[string]any{"scalar": true}},
			{kind.String, "1"},
		})
	})

	t.Run("false", func(t *testing.T) {
		runBasic(t, tr, false, []basicCase{
			{kind.None, false},
			{kind.Array, []any{false}},
			{kind.Boolean, false},
			{kind.Integer, 0},
			{kind.Number, 0.0},
			{kind.Object, map[string]any{"scalar": false}},
			{kind.String, ""},
		})
	})

	t.Run("null", func(t *testing.T) {
		runBasic(t, tr, nil, []basicCase{
			{kind.None, nil},
			{kind.Array, []any{}},
			{kind.Boolean, false},
			{kind.Integer, 0},
			{kind.Null, nil},
			{kind.Number, 0.0},
			{kind.Object, map[string]any{}},
			{kind.String, ""},
		})
	})

	t.Run("slice", func(t *testing.T) {
		subject := []any{1, "a"}
		runBasic(t, tr, subject, []basicCase{
			{kind.None, subject},
			{kind.Array, subject},
			{kind.Boolean, true},
			{kind.Integer, 1},
			{kind.Null, nil},
			{kind.Number, 1.0},
			{kind.Object, map[string]any{"0": 1, "1": "a"}},
			{kind.String, "array"},
		})
	})

	t.Run("empty slice", func(t *testing.T) {
		subject := []any{}
		runBasic(t, tr, subject, []basicCase{
			{kind.Array, subject},
			{kind.Boolean, false},
			{kind.Integer, 0},
			{kind.Number, 0.0},
			{kind.Object, map[string]any{}},
			{kind.String, "array"},
		})
	})

	t.Run("map", func(t *testing.T) {
		subject := map[string]int{"b": 2, "a": 1}
		runBasic(t, tr, subject, []basicCase{
			{kind.None, subject},
			{kind.Array, subject},
			{kind.Boolean, true},
			{kind.Integer, 1},
			{kind.Number, 1.0},
			{kind.Object, map[string]any{"a": 1, "b": 2}},
			{kind.String, "array"},
		})
	})

	t.Run("record", func(t *testing.T) {
		members := map[string]any{"Public": "public"}
		runBasic(t, tr, newTestObject(), []basicCase{
			{kind.None, members},
			{kind.Array, members},
			{kind.Boolean, true},
			{kind.Integer, 1},
			{kind.Null, nil},
			{kind.Number, 1.0},
			{kind.Object, members},
			{kind.String, "data-accessor/transformer_test.testObject"},
		})
	})

	t.Run("enum", func(t *testing.T) {
		runBasic(t, tr, answerYes, []basicCase{
			{kind.None, 1},
			{kind.Boolean, true},
			{kind.String, "1"},
		})
	})

	t.Run("error", func(t *testing.T) {
		runBasic(t, tr, errors.New("Error message"), []basicCase{
			{kind.None, map[string]any{}},
			{kind.Array, map[string]any{}},
			{kind.Boolean, true},
			{kind.Integer, 1},
			{kind.Number, 1.0},
			{kind.String, "errors.errorString"},
		})
	})

	t.Run("opaque", func(t *testing.T) {
		runBasic(t, tr, make(chan int), []basicCase{
			{kind.None, "resource (chan)"},
			{kind.Array, []any{"resource (chan)"}},
			{kind.Boolean, true},
			{kind.Integer, 0},
			{kind.Null, nil},
			{kind.Number, 0.0},
			{kind.Object, map[string]any{"scalar": "resource (chan)"}},
			{kind.String, "resource (chan)"},
		})
	})
}

func TestBasicTypeConverterNumericPrefix(t *testing.T) {
	tr := transformer.NewBasicTypeConverter(nil)

	tests := []struct {
		subject string
		integer int
		number  float64
	}{
		{"12abc", 12, 12},
		{"  -7 apples", -7, -7},
		{"3.75 kg", 3, 3.75},
		{".5", 0, 0.5},
		{"1e3", 1, 1000},
		{"abc", 0, 0},
		{"", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			out, err := tr.Transform(tt.subject, kind.Integer)
			require.NoError(t, err)
			assert.Equal(t, tt.integer, out)

			out, err = tr.Transform(tt.subject, kind.Number)
			require.NoError(t, err)
			assert.InDelta(t, tt.number, out, 1e-9)
		})
	}
}

func TestBasicTypeConverterWithMap(t *testing.T) {
	tr := transformer.NewBasicTypeConverter(map[kind.Type]kind.Type{
		kind.Array:   kind.Object,
		kind.Object:  kind.Array,
		kind.Boolean: kind.String,
		kind.Integer: kind.String,
		kind.Null:    kind.String,
		kind.Number:  kind.String,
		kind.String:  kind.Boolean,
	})

	tests := []struct {
		name     string
		subject  any
		expected any
	}{
		{"string", "A string", true},
		{"float", 123.456, "123.456"},
		{"int", 789, "789"},
		{"bool", true, "1"},
		{"null", nil, ""},
		{"slice", []any{1, "a"}, map[string]any{"0": 1, "1": "a"}},
		{"record", newTestObject(), map[string]any{"Public": "public"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tr.Transform(tt.subject, kind.None)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	// explicit targets are remapped as well
	out, err := tr.Transform(false, kind.String)
	require.NoError(t, err)
	assert.Equal(t, false, out)
}

func TestBasicTypeConverterUnsupportedType(t *testing.T) {
	tr := transformer.NewBasicTypeConverter(nil)

	assert.False(t, tr.CanTransform("A string", kind.Type(42)))

	_, err := tr.Transform("A string", kind.Type(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, transformer.ErrUnsupported)
	assert.EqualError(t, err, "converting string to Type(42) is not supported")

	var terr *transformer.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "A string", terr.Value)
	assert.Equal(t, kind.Type(42), terr.Target)
}
