package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "first")
	require.NoError(t, err)
	assert.True(t, isNew)

	// Ghi đè item cũ
	isNew, err = r.Register("a", "second")
	require.NoError(t, err)
	assert.False(t, isNew)

	v, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, "second", v)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0

	v, err := r.GetOrCreate("counter", func() (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// Lần thứ hai không gọi creator nữa
	v, err = r.GetOrCreate("counter", func() (int, error) {
		calls++
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)

	_, err = r.GetOrCreate("bad", func() (int, error) {
		return 0, fmt.Errorf("boom")
	})
	assert.Error(t, err)
	_, exists := r.Get("bad")
	assert.False(t, exists)
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "x")

	cleaned := false
	deleted, err := r.Clear("a", func(s string) error {
		cleaned = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, cleaned)

	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistryClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("item-%d", n), n)
			r.Get(fmt.Sprintf("item-%d", n))
		}(i)
	}
	wg.Wait()

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}
