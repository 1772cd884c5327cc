package factory

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynced_ConcurrentGetCreatesOnce(t *testing.T) {
	var calls atomic.Int32
	f, err := New([]Entry[string, speaker]{{Key: "dog", Create: func() (speaker, error) {
		calls.Add(1)
		return &dog{}, nil
	}}})
	require.NoError(t, err)
	s := NewSynced(f)

	const workers = 32
	got := make([]speaker, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			inst, ok, err := s.Get("dog")
			if err == nil && ok {
				got[i] = inst
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, inst := range got {
		assert.Same(t, got[0], inst)
	}
}

func TestSynced_Operations(t *testing.T) {
	f, err := New[string, speaker](nil)
	require.NoError(t, err)
	s := NewSynced(f)

	s.Add("cat", Construct[speaker, cat]())
	s.Add("dog", Construct[speaker, dog]())
	assert.Equal(t, []string{"cat", "dog"}, s.Keys())
	assert.Len(t, s.Registered(), 2)

	_, ok, err := s.Get("cat")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, s.Cached("cat"))
	assert.Equal(t, []string{"cat"}, s.Live())

	assert.True(t, s.Remove("dog"))
	assert.False(t, s.Remove("dog"))
	assert.True(t, s.Stop("cat"))
	assert.False(t, s.Stop("cat"))

	_, _, _ = s.Get("cat")
	assert.Equal(t, 1, s.StopAll())
}
