package scheduler

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsAndJoins(t *testing.T) {
	p := New(2)
	var sum int64
	h1 := p.Submit(func() error { atomic.AddInt64(&sum, 1); return nil })
	h2 := p.Submit(func() error { atomic.AddInt64(&sum, 2); return nil })

	require.NoError(t, p.Join(h1))
	require.NoError(t, p.Join(h2))
	assert.Equal(t, int64(3), atomic.LoadInt64(&sum))
}

func TestPoolPropagatesTaskError(t *testing.T) {
	p := New(1)
	boom := assert.AnError
	h := p.Submit(func() error { return boom })
	assert.ErrorIs(t, p.Join(h), boom)
}

func TestNewDefaultsWorkersWhenNonPositive(t *testing.T) {
	p := New(0)
	assert.Greater(t, p.Workers(), 0)
}

func TestPoolBoundsConcurrency(t *testing.T) {
	const workers = 3
	p := New(workers)
	var cur, max int64
	handles := make([]Handle, 0, 20)
	for i := 0; i < 20; i++ {
		handles = append(handles, p.Submit(func() error {
			n := atomic.AddInt64(&cur, 1)
			for {
				m := atomic.LoadInt64(&max)
				if n <= m || atomic.CompareAndSwapInt64(&max, m, n) {
					break
				}
			}
			atomic.AddInt64(&cur, -1)
			return nil
		}))
	}
	for _, h := range handles {
		require.NoError(t, p.Join(h))
	}
	assert.LessOrEqual(t, atomic.LoadInt64(&max), int64(workers))
}
