package sparse_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcalc/funcalc/sparse"
)

func TestList_DefaultValue(t *testing.T) {
	l := sparse.NewList(5, -1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, -1, l.Get(i))
	}
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, 0, l.Stored())
}

func TestList_SetGet(t *testing.T) {
	l := sparse.NewList(5, 0)
	l.Set(2, 42)
	assert.Equal(t, 42, l.Get(2))
	assert.Equal(t, 0, l.Get(1))
	assert.Equal(t, 1, l.Stored())
}

func TestList_SetGrows(t *testing.T) {
	l := sparse.NewList(3, 0)
	l.Set(9, 7)
	assert.Equal(t, 10, l.Len())
	assert.Equal(t, 7, l.Get(9))
	assert.Equal(t, 0, l.Get(5))
}

func TestList_SetDefaultReleasesEntry(t *testing.T) {
	l := sparse.NewList(3, 0)
	l.Set(1, 5)
	require.Equal(t, 1, l.Stored())
	l.Set(1, 0)
	assert.Equal(t, 0, l.Stored())
	assert.Equal(t, 0, l.Get(1))
}

func TestList_OutOfRangePanics(t *testing.T) {
	l := sparse.NewList(3, 0)
	require.Panics(t, func() { l.Get(-1) })
	require.Panics(t, func() { l.Get(3) })
	require.Panics(t, func() { l.Set(-1, 5) })
}

func TestList_FindByValue(t *testing.T) {
	l := sparse.NewList(6, 0)
	l.Set(2, 9)
	l.Set(4, 9)
	assert.Equal(t, 2, l.FindByValue(9))
	assert.Equal(t, -1, l.FindByValue(100))
}

func TestList_FindByValue_Default(t *testing.T) {
	l := sparse.NewList(3, 0)
	l.Set(0, 1)
	l.Set(1, 2)
	assert.Equal(t, 2, l.FindByValue(0))

	l.Set(2, 3)
	assert.Equal(t, -1, l.FindByValue(0))
}

func TestList_FindFirstBy(t *testing.T) {
	l := sparse.NewList(5, 0)
	l.Set(3, 10)
	assert.Equal(t, 3, l.FindFirstBy(func(v int) bool { return v > 5 }))
	assert.Equal(t, 0, l.FindFirstBy(func(v int) bool { return v == 0 }))
	assert.Equal(t, -1, l.FindFirstBy(func(v int) bool { return v < 0 }))
}

func TestList_Clear(t *testing.T) {
	l := sparse.NewList(4, 0)
	l.Set(1, 1)
	l.Set(2, 2)
	l.Clear()
	assert.Equal(t, 0, l.Stored())
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 0, l.Get(1))
}

func TestList_String(t *testing.T) {
	l := sparse.NewList(3, 0)
	l.Set(1, 7)
	assert.Equal(t, "SparseList[size=3, stored=1]: [0, 7, 0]", l.String())
}

func TestList_String_Truncates(t *testing.T) {
	l := sparse.NewList(100, 0)
	assert.Contains(t, l.String(), ", ...]")
}

func TestList_SaveLoad(t *testing.T) {
	l := sparse.NewList(8, 0.0)
	l.Set(1, 2.5)
	l.Set(6, -3.0)
	path := filepath.Join(t.TempDir(), "list.json")
	require.NoError(t, l.Save(path))

	loaded, err := sparse.LoadList[float64](path)
	require.NoError(t, err)
	assert.Equal(t, l.Len(), loaded.Len())
	assert.Equal(t, l.Stored(), loaded.Stored())
	for i := 0; i < l.Len(); i++ {
		assert.Equal(t, l.Get(i), loaded.Get(i))
	}
}

func TestLoadList_Missing(t *testing.T) {
	_, err := sparse.LoadList[int](filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
