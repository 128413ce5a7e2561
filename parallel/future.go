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

package parallel

import "github.com/ianj-als/pypeline/perrors"

// Future is a handle to an in-flight or already completed task. Result
// blocks until the task has produced a value, returning it or the error
// that a user task raised. Calling Result more than once returns the same
// pair every time.
type Future[A any] interface {
	Result() (A, error)
}

// Pool is the worker-pool contract the parallel executor requires: submit
// a task and get back a handle to its eventual result. The library never
// constructs a pool itself; callers supply one.
type Pool interface {
	Submit(task func() (any, error)) Future[any]
}

type resolvedFuture[A any] struct {
	value A
}

func (r resolvedFuture[A]) Result() (A, error) {
	return r.value, nil
}

// Resolved builds a [Future] whose result is already set to a.
func Resolved[A any](a A) Future[A] {
	return resolvedFuture[A]{value: a}
}

type failedFuture[A any] struct {
	err error
}

func (f failedFuture[A]) Result() (A, error) {
	var zero A
	return zero, f.err
}

// Failed builds a [Future] that immediately reports err.
func Failed[A any](err error) Future[A] {
	return failedFuture[A]{err: err}
}

type typedFuture[A any] struct {
	inner Future[any]
}

func (t typedFuture[A]) Result() (A, error) {
	v, err := t.inner.Result()
	if err != nil {
		var zero A
		return zero, err
	}
	a, ok := v.(A)
	if !ok {
		var zero A
		return zero, perrors.NewContractViolation("future: task produced %T, want %T", v, zero)
	}
	return a, nil
}

// Submit dispatches task onto pool and returns a strongly typed handle to
// its result. Any panic inside task is recovered and reported as a
// [perrors.UserTaskFailure], surfacing only when Result is called.
func Submit[A any](pool Pool, task func() (A, error)) Future[A] {
	inner := pool.Submit(func() (result any, err error) {
		defer func() {
			if r := recover(); r != nil {
				result, err = nil, perrors.NewUserTaskFailure(r)
			}
		}()
		return task()
	})
	return typedFuture[A]{inner: inner}
}
