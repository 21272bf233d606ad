package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryKV_Basics(t *testing.T) {
	m := NewMemoryKV()
	ctx := context.Background()

	v, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)

	require.NoError(t, m.Delete(ctx, "k"))
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryKV_GetReturnsCopy(t *testing.T) {
	m := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("abc")))
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)

	v[0] = 'x' // must not leak into the store

	v2, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v2)
}

func TestMemoryKV_Clear(t *testing.T) {
	m := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte("1")))
	require.NoError(t, m.Set(ctx, "b", []byte("2")))
	require.NoError(t, m.Clear(ctx))

	all, err := m.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
