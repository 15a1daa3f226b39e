package schema

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Shape
	}{
		{"flat", map[string]any{"nodes": []any{}, "edges": []any{}}, ShapeFlat},
		{"flat edges only", map[string]any{"edges": []any{}}, ShapeFlat},
		{"tree", map[string]any{"name": "x"}, ShapeTree},
		{"tree children only", map[string]any{"children": []any{}}, ShapeTree},
		{"both prefers flat", map[string]any{"name": "x", "nodes": []any{}}, ShapeFlat},
		{"empty object", map[string]any{}, ShapeUnknown},
		{"array", []any{}, ShapeUnknown},
		{"nil", nil, ShapeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.input))
		})
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"", ShapeUnknown, false},
		{"auto", ShapeUnknown, false},
		{"Flat", ShapeFlat, false},
		{"graph", ShapeFlat, false},
		{"tree", ShapeTree, false},
		{" hierarchy ", ShapeTree, false},
		{"dag", ShapeUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShape(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "flat", ShapeFlat.String())
	assert.Equal(t, "tree", ShapeTree.String())
	assert.Equal(t, "unknown", ShapeUnknown.String())
}

func TestAsID(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   int64
		wantOK bool
	}{
		{"float integral", float64(4), 4, true},
		{"float fractional", 4.5, 0, false},
		{"negative", float64(-2), -2, true},
		{"json int", json.Number("12"), 12, true},
		{"json exponent", json.Number("1e2"), 100, true},
		{"json fractional", json.Number("1.25"), 0, false},
		{"int", 7, 7, true},
		{"int64", int64(8), 8, true},
		{"too large float", float64(1 << 60), 0, false},
		{"nan", math.NaN(), 0, false},
		{"string", "1", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
