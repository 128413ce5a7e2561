package workerpool

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestSubmitResolvesToTaskResult(t *testing.T) {
	pool := New(2)
	defer pool.Shutdown(true)

	fut := pool.Submit(func() (any, error) { return 42, nil })

	v, err := fut.Result()
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestSubmitPropagatesTaskError(t *testing.T) {
	pool := New(2)
	defer pool.Shutdown(true)

	fut := pool.Submit(func() (any, error) { return nil, fmt.Errorf("boom") })

	_, err := fut.Result()
	assert.EqualError(t, err, "boom")
}

func TestResultIsIdempotent(t *testing.T) {
	pool := New(1)
	defer pool.Shutdown(true)

	fut := pool.Submit(func() (any, error) { return "once", nil })

	v1, _ := fut.Result()
	v2, _ := fut.Result()
	assert.Equal(t, v1, v2)
}

// TestConcurrentSubmissionsAllComplete drives many concurrent submitters
// against a small pool using errgroup, confirming every future resolves
// independently regardless of submission order.
func TestConcurrentSubmissionsAllComplete(t *testing.T) {
	pool := New(4)
	defer pool.Shutdown(true)

	const n = 50
	var g errgroup.Group
	results := make([]int, n)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fut := pool.Submit(func() (any, error) { return i * i, nil })
			v, err := fut.Result()
			if err != nil {
				return err
			}
			results[i] = v.(int)
			return nil
		})
	}

	assert.NoError(t, g.Wait())
	for i := 0; i < n; i++ {
		assert.Equal(t, i*i, results[i])
	}
}
