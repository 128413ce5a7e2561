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

// Package pair implements a small strongly typed product type. It is the
// generic tuple the Kleisli arrow operators (First, Second, Split) work
// over; running a State computation returns a plain (value, state) pair of
// results instead.
package pair

import "fmt"

type (
	pair struct {
		h, t any
	}

	// Pair holds two strongly typed values.
	Pair[A, B any] pair
)

// String prints some debug info for the object
func (s Pair[A, B]) String() string {
	return fmt.Sprintf("Pair[%T, %T](%v, %v)", s.h, s.t, s.h, s.t)
}

// MakePair creates a [Pair] from two values
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{h: a, t: b}
}

// Head returns the head value of the pair
func Head[A, B any](fa Pair[A, B]) A {
	return fa.h.(A)
}

// Tail returns the tail value of the pair
func Tail[A, B any](fa Pair[A, B]) B {
	return fa.t.(B)
}

// Swap swaps the head and tail of the pair
func Swap[A, B any](fa Pair[A, B]) Pair[B, A] {
	return MakePair(Tail(fa), Head(fa))
}
