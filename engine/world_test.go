package engine_test

import (
	"reflect"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type score struct {
	Points int
}

type settings struct {
	Name  string
	Speed float64
}

func TestWorldInsertAndRead(t *testing.T) {
	w := engine.NewWorld()
	w.Insert(score{Points: 3})
	w.Insert(&settings{Name: "fast", Speed: 2})

	var s *score
	require.True(t, w.Read(&s))
	assert.Equal(t, 3, s.Points)

	var cfg *settings
	require.True(t, w.Read(&cfg))
	assert.Equal(t, "fast", cfg.Name)

	assert.Equal(t, 2, w.Len())
	assert.True(t, w.Has(reflect.TypeFor[score]()))
}

func TestWorldInsertReplacesInPlace(t *testing.T) {
	w := engine.NewWorld()
	w.Insert(score{Points: 1})

	var before *score
	require.True(t, w.Read(&before))

	w.Insert(score{Points: 9})
	assert.Equal(t, 9, before.Points)
	assert.Equal(t, 1, w.Len())
}

func TestWorldInsertCopies(t *testing.T) {
	w := engine.NewWorld()
	original := &score{Points: 1}
	w.Insert(original)
	original.Points = 5

	var s *score
	require.True(t, w.Read(&s))
	assert.Equal(t, 1, s.Points)
}

func TestWorldRemove(t *testing.T) {
	w := engine.NewWorld()
	w.Insert(score{Points: 1})

	assert.True(t, w.Remove(reflect.TypeFor[score]()))
	assert.False(t, w.Remove(reflect.TypeFor[score]()))

	var s *score
	assert.False(t, w.Read(&s))
	assert.Nil(t, s)
	assert.Equal(t, 0, w.Len())
}

func TestWorldRejectsBadValues(t *testing.T) {
	w := engine.NewWorld()
	assert.Panics(t, func() { w.Insert(nil) })
	assert.Panics(t, func() { w.Insert(func() {}) })

	var s score
	assert.Panics(t, func() { w.Read(&s) })
}

func TestWorldStats(t *testing.T) {
	w := engine.NewWorld()
	w.Insert(settings{})
	w.Insert(score{})

	stats := w.Stats()
	assert.Equal(t, 2, stats.ResourceCount)
	assert.Equal(t, []string{"engine_test.score", "engine_test.settings"}, stats.ResourceTypes)
}

func TestResource(t *testing.T) {
	w := engine.NewWorld()

	r := engine.NewResource(w, score{Points: 4})
	require.True(t, r.Exists())
	assert.Equal(t, 4, r.Get().Points)

	// An existing resource is kept.
	again := engine.NewResource(w, score{Points: 100})
	assert.Equal(t, 4, again.Get().Points)

	r.Get().Points++
	assert.Equal(t, 5, again.Get().Points)

	w.Remove(reflect.TypeFor[score]())
	assert.Nil(t, r.Get())
	assert.False(t, r.Exists())

	w.Insert(score{Points: 7})
	assert.Equal(t, 7, r.Get().Points)

	got, ok := engine.ReadResource[score](w)
	require.True(t, ok)
	assert.Equal(t, 7, got.Points)

	_, ok = engine.ReadResource[settings](w)
	assert.False(t, ok)
}

func TestResourceUnbound(t *testing.T) {
	var r engine.Resource[score]
	assert.Nil(t, r.Get())
	assert.False(t, r.Exists())
}
