package globals

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarDefault(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		v := New("test", func() uint64 { return 42 })
		assert.Equal(t, uint64(42), v.Get())
	})
	t.Run("setBeforeGet", func(t *testing.T) {
		calls := 0
		v := New("test", func() uint64 { calls++; return 42 })
		v.Set(7)
		assert.Equal(t, uint64(7), v.Get())
		assert.Equal(t, 1, calls)
	})
	t.Run("optional", func(t *testing.T) {
		v := New("test", None[string])
		value, err := v.Load()
		assert.Nil(t, err)
		assert.False(t, value.IsSome())
	})
}

func TestVarWrite(t *testing.T) {
	v := New("test", func() uint64 { return 1000 })
	t.Run("sameGoroutine", func(t *testing.T) {
		assert.Nil(t, v.Store(2000))
		assert.Equal(t, uint64(2000), v.Get())
	})
	t.Run("otherGoroutine", func(t *testing.T) {
		done := make(chan struct{})
		go func() {
			v.Set(3000)
			close(done)
		}()
		<-done
		assert.Equal(t, uint64(3000), v.Get())
	})
	t.Run("helpers", func(t *testing.T) {
		Write(v, 4000)
		assert.Equal(t, uint64(4000), Read(v))
	})
	t.Run("update", func(t *testing.T) {
		assert.Nil(t, v.Update(func(old uint64) uint64 { return old + 1 }))
		assert.Equal(t, uint64(4001), v.Get())
	})
}

func TestVarCopy(t *testing.T) {
	type pair struct {
		A, B int
	}
	v := New("test", func() pair { return pair{1, 2} })
	got := v.Get()
	got.A = 100
	assert.Equal(t, pair{1, 2}, v.Get())
}

func TestConcurrentWriters(t *testing.T) {
	const n = 64
	v := New("test", func() uint64 { return 1 << 40 })
	wg := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i uint64) {
			defer wg.Done()
			v.Set(i)
		}(uint64(i))
	}
	wg.Wait()
	assert.Less(t, v.Get(), uint64(n))
}

func TestConcurrentOptionalWriters(t *testing.T) {
	const n = 64
	v := New("test", None[string])
	written := map[string]bool{}
	values := make([]string, n)
	for i := range values {
		values[i] = "uid-" + strconv.Itoa(i)
		written[values[i]] = true
	}
	wg := sync.WaitGroup{}
	for _, value := range values {
		wg.Add(1)
		go func(value string) {
			defer wg.Done()
			v.Set(Some(value))
		}(value)
	}
	wg.Wait()
	got, ok := v.Get().Get()
	require.True(t, ok)
	assert.True(t, written[got])
}

func TestNoDeadlock(t *testing.T) {
	const (
		workers = 100
		calls   = 1000
	)
	v := New("test", func() uint64 { return 0 })
	done := make(chan struct{})
	go func() {
		wg := sync.WaitGroup{}
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < calls; j++ {
					if (i+j)%2 == 0 {
						v.Set(uint64(j))
					} else {
						_ = v.Get()
					}
				}
			}(i)
		}
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("get/set did not complete")
	}
}

func TestInitOnce(t *testing.T) {
	var calls atomic.Int32
	v := New("test", func() uint64 {
		calls.Add(1)
		time.Sleep(time.Millisecond)
		return 10
	})
	const n = 50
	results := make([]uint64, n)
	start := make(chan struct{})
	wg := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = v.Get()
		}(i)
	}
	close(start)
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
	for _, result := range results {
		assert.Equal(t, uint64(10), result)
	}
}

func TestIndependentVars(t *testing.T) {
	a := New("a", None[string])
	b := New("b", func() uint64 { return 10 })
	// hold a's lock; b must remain usable
	a.mu.Lock()
	done := make(chan struct{})
	go func() {
		b.Set(20)
		_ = b.Get()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("access to b blocked by a")
	}
	a.mu.Unlock()
	assert.Equal(t, uint64(20), b.Get())
	assert.False(t, a.Get().IsSome())
}

func TestPoisoned(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		v := New("poisoned", func() uint64 { return 1 })
		assert.Panics(t, func() {
			_ = v.Update(func(uint64) uint64 { panic("boom") })
		})
		_, err := v.Load()
		assert.True(t, errors.Is(err, ErrPoisoned))
		var poison *PoisonError
		require.True(t, errors.As(err, &poison))
		assert.Equal(t, "poisoned", poison.Name)
		assert.True(t, errors.Is(v.Store(2), ErrPoisoned))
		assert.Panics(t, func() { v.Get() })
		assert.Panics(t, func() { v.Set(3) })
	})
	t.Run("init", func(t *testing.T) {
		calls := 0
		v := New("poisoned", func() uint64 { calls++; panic("boom") })
		assert.Panics(t, func() { v.Get() })
		_, err := v.Load()
		assert.True(t, errors.Is(err, ErrPoisoned))
		assert.Equal(t, 1, calls)
	})
	t.Run("notLocked", func(t *testing.T) {
		v := New("poisoned", func() uint64 { panic("boom") })
		assert.Panics(t, func() { v.Get() })
		assert.True(t, v.mu.TryLock())
		v.mu.Unlock()
	})
}

func TestOptional(t *testing.T) {
	some := Some("machine")
	value, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "machine", value)
	assert.Equal(t, "machine", some.String())
	assert.Equal(t, "machine", some.OrElse("other"))
	none := None[string]()
	assert.False(t, none.IsSome())
	assert.Equal(t, "other", none.OrElse("other"))
	assert.Equal(t, "<none>", none.String())
	assert.Equal(t, none, Optional[string]{})
}
