package parallel

import "sync/atomic"
import "testing"

import "github.com/stretchr/testify/assert"

func TestForEachVisitsEveryIndexOnce(t *testing.T) {
	var seen = make([]int32, 1000)
	ForEach(len(seen), 7, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		assert.EqualValues(t, 1, v, "index %d", i)
	}
}

func TestForEachRespectsLimit(t *testing.T) {
	var running, peak int32
	ForEach(200, 3, func(int) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
	})
	assert.LessOrEqual(t, peak, int32(3))
	assert.GreaterOrEqual(t, peak, int32(1))
}

func TestForEachEmptyAndDefaultLimit(t *testing.T) {
	called := false
	ForEach(0, 4, func(int) { called = true })
	assert.False(t, called)

	var n int32
	ForEach(10, 0, func(int) { atomic.AddInt32(&n, 1) })
	assert.EqualValues(t, 10, n)
	assert.Greater(t, Workers(), 0)
}
