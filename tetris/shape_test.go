package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestKindShapes(t *testing.T) {
	want := map[tetris.Kind]string{
		tetris.I: "####",
		tetris.T: "###/.#.",
		tetris.Z: "##./.##",
		tetris.S: ".##/##.",
		tetris.O: "##/##",
		tetris.L: "###/#..",
		tetris.J: "###/..#",
	}

	colors := make(map[tetris.Color]tetris.Kind)
	for _, k := range tetris.Kinds {
		t.Run(k.String(), func(t *testing.T) {
			shape := k.Shape()
			assert.Equal(t, want[k], shape.String())

			cells := 0
			for range shape.Cells() {
				cells++
			}
			assert.Equal(t, 4, cells)
			assert.True(t, k.Valid())
		})

		c := k.Color()
		assert.NotEqual(t, tetris.Empty, c)
		_, dup := colors[c]
		assert.False(t, dup, "color %v used twice", c)
		colors[c] = k
	}

	assert.False(t, tetris.Kind(0).Valid())
	assert.False(t, tetris.Kind(8).Valid())
}

func TestKindShapeIsACopy(t *testing.T) {
	shape := tetris.T.Shape()
	shape[0][0] = false

	assert.Equal(t, "###/.#.", tetris.T.Shape().String())
}

func TestRotate(t *testing.T) {
	tests := []struct {
		kind tetris.Kind
		want []string
	}{
		{tetris.I, []string{"#/#/#/#", "####", "#/#/#/#", "####"}},
		{tetris.T, []string{".#/##/.#", ".#./###", "#./##/#.", "###/.#."}},
		{tetris.S, []string{"#./##/.#", ".##/##.", "#./##/.#", ".##/##."}},
		{tetris.L, []string{"##/.#/.#", "..#/###", "#./#./##", "###/#.."}},
		{tetris.O, []string{"##/##", "##/##", "##/##", "##/##"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			shape := tt.kind.Shape()
			for i, want := range tt.want {
				shape = shape.Rotate()
				assert.Equal(t, want, shape.String(), "rotation %d", i+1)
			}
			assert.True(t, shape.Equal(tt.kind.Shape()))
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range tetris.Kinds {
		original := k.Shape()
		shape := original
		for range 4 {
			next := shape.Rotate()
			assert.Equal(t, shape.Rows(), next.Cols())
			assert.Equal(t, shape.Cols(), next.Rows())
			shape = next
		}
		assert.True(t, original.Equal(shape), "kind %v", k)
	}
}

func TestRotateLeavesReceiver(t *testing.T) {
	shape := tetris.J.Shape()
	_ = shape.Rotate()
	assert.Equal(t, "###/..#", shape.String())
}
