// Copyright (c) 2023 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool adapts github.com/JekaMas/workerpool's fixed-size
// goroutine pool to the parallel.Pool contract. It exists as a reference
// implementation; the parallel executor itself never constructs a pool,
// it only consumes the parallel.Pool interface.
package workerpool

import (
	"sync"

	jwp "github.com/JekaMas/workerpool"

	"github.com/ianj-als/pypeline/parallel"
)

// Pool wraps a fixed-size github.com/JekaMas/workerpool worker pool.
type Pool struct {
	wp *jwp.WorkerPool
}

// New starts a pool with maxWorkers goroutines ready to accept tasks.
func New(maxWorkers int) *Pool {
	return &Pool{wp: jwp.New(maxWorkers)}
}

type result struct {
	value any
	err   error
}

type future struct {
	once  sync.Once
	ch    chan result
	value any
	err   error
}

func (f *future) Result() (any, error) {
	f.once.Do(func() {
		r := <-f.ch
		f.value, f.err = r.value, r.err
	})
	return f.value, f.err
}

// Submit queues task on the pool and returns a handle to its result.
func (p *Pool) Submit(task func() (any, error)) parallel.Future[any] {
	fut := &future{ch: make(chan result, 1)}
	p.wp.Submit(func() {
		v, err := task()
		fut.ch <- result{value: v, err: err}
	})
	return fut
}

// Shutdown stops accepting new tasks. If wait is true it blocks until
// every already-submitted task has completed.
func (p *Pool) Shutdown(wait bool) {
	if wait {
		p.wp.StopWait()
	} else {
		p.wp.Stop()
	}
}
