// Copyright (c) 2024 IBM Corp.
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

// Package state implements the State carrier: an opaque value wrapping a
// function from an initial state to a (value, final state) pair. A State
// value is not executed at construction; it is run by applying it to an
// initial state.
package state

// State wraps a function S -> (A, S). Two State values built independently
// never share a closed-over initial state, so running the same State twice
// with two different initial states is well defined.
type State[S, A any] struct {
	run func(S) (A, S)
}

// Make wraps an arbitrary S -> (A, S) function as a State value.
func Make[S, A any](f func(S) (A, S)) State[S, A] {
	return State[S, A]{run: f}
}

// Of is the identity effect: it returns a unchanged, threading s untouched.
func Of[S, A any](a A) State[S, A] {
	return Make(func(s S) (A, S) {
		return a, s
	})
}

// Get returns the current state as the value, leaving it unchanged.
func Get[S any]() State[S, S] {
	return Make(func(s S) (S, S) {
		return s, s
	})
}

// Modify replaces the state with f(s), discarding the current value.
func Modify[S any](f func(S) S) State[S, any] {
	return Make(func(s S) (any, S) {
		return nil, f(s)
	})
}

// Run applies the state value to s0, returning the final value and state.
func Run[S, A any](m State[S, A], s0 S) (A, S) {
	return m.run(s0)
}

// Eval runs m and discards the final state.
func Eval[S, A any](m State[S, A], s0 S) A {
	a, _ := Run(m, s0)
	return a
}

// Exec runs m and discards the final value.
func Exec[S, A any](m State[S, A], s0 S) S {
	_, s := Run(m, s0)
	return s
}

// MonadChain is the sequential bind: run m with s0, then run f(a) with s1.
func MonadChain[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return Make(func(s0 S) (B, S) {
		a, s1 := Run(m, s0)
		return f(a).run(s1)
	})
}

// Chain composes computations in sequence, using the value of one to determine the next.
func Chain[S, A, B any](f func(A) State[S, B]) func(State[S, A]) State[S, B] {
	return func(m State[S, A]) State[S, B] {
		return MonadChain(m, f)
	}
}

// MonadMap applies f to the value produced by m, leaving the state thread untouched.
func MonadMap[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return MonadChain(m, func(a A) State[S, B] {
		return Of[S](f(a))
	})
}

// Map lifts a plain function into one over State values.
func Map[S, A, B any](f func(A) B) func(State[S, A]) State[S, B] {
	return func(m State[S, A]) State[S, B] {
		return MonadMap(m, f)
	}
}
