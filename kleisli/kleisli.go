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

// Package kleisli implements the Kleisli morphism algebra over the state
// effect: an opaque value wrapping a function b -> State[S, c]. Composition,
// product, fan-out and pair splitting are all defined once in terms of the
// state effect's own unit (state.Of) and bind (state.MonadChain), so lifting
// the same algebra onto a different effect is a matter of swapping those two
// primitives, not rewriting the operators.
package kleisli

import (
	P "github.com/ianj-als/pypeline/pair"
	S "github.com/ianj-als/pypeline/state"
)

// K is a morphism b -> c under the state effect threaded through S.
type K[St, B, C any] struct {
	run func(B) S.State[St, C]
}

// Make wraps an arbitrary b -> State[S, c] function as a morphism.
func Make[St, B, C any](f func(B) S.State[St, C]) K[St, B, C] {
	return K[St, B, C]{run: f}
}

// Run applies the morphism to b, producing the state computation it denotes.
func Run[St, B, C any](k K[St, B, C], b B) S.State[St, C] {
	return k.run(b)
}

// Arr lifts a pure function into the morphism algebra: arr(f) = K(b -> return(f(b))).
func Arr[St, B, C any](f func(B) C) K[St, B, C] {
	return Make(func(b B) S.State[St, C] {
		return S.Of[St](f(b))
	})
}

// Id is the identity morphism: id >>> k = k = k >>> id.
func Id[St, B any]() K[St, B, B] {
	return Arr[St](func(b B) B { return b })
}

// Compose is sequential composition: k >>> k' = K(b -> k(b) >>= k').
func Compose[St, B, C, D any](k K[St, B, C], k2 K[St, C, D]) K[St, B, D] {
	return Make(func(b B) S.State[St, D] {
		return S.MonadChain(Run(k, b), func(c C) S.State[St, D] {
			return Run(k2, c)
		})
	})
}

// First lifts k to act on the left of a pair, passing the right element through unchanged.
func First[St, B, C, D any](k K[St, B, C]) K[St, P.Pair[B, D], P.Pair[C, D]] {
	return Make(func(bd P.Pair[B, D]) S.State[St, P.Pair[C, D]] {
		d := P.Tail(bd)
		return S.MonadMap(Run(k, P.Head(bd)), func(c C) P.Pair[C, D] {
			return P.MakePair(c, d)
		})
	})
}

// Second is the dual of First: it lifts k to act on the right of a pair.
func Second[St, B, C, D any](k K[St, B, C]) K[St, P.Pair[D, B], P.Pair[D, C]] {
	return Make(func(db P.Pair[D, B]) S.State[St, P.Pair[D, C]] {
		d := P.Head(db)
		return S.MonadMap(Run(k, P.Tail(db)), func(c C) P.Pair[D, C] {
			return P.MakePair(d, c)
		})
	})
}

// Product is the parallel product: k *** h = first(k) >>> second(h).
func Product[St, B, C, B2, C2 any](k K[St, B, C], h K[St, B2, C2]) K[St, P.Pair[B, B2], P.Pair[C, C2]] {
	return Compose(First[St, B, C, B2](k), Second[St, B2, C2, C](h))
}

// Split duplicates the input into a pair: split : K b (b,b).
func Split[St, B any]() K[St, B, P.Pair[B, B]] {
	return Arr[St](func(b B) P.Pair[B, B] {
		return P.MakePair(b, b)
	})
}

// Unsplit joins a pair with g: unsplit(g) : K (c,d) e.
func Unsplit[St, C, D, E any](g func(C, D) E) K[St, P.Pair[C, D], E] {
	return Arr[St](func(cd P.Pair[C, D]) E {
		return g(P.Head(cd), P.Tail(cd))
	})
}

// FanOut applies k and h to the same input and pairs their outputs:
// k &&& h = split >>> (k *** h). Both underlying state effects run, in
// left-then-right order along the state thread.
func FanOut[St, B, C, D any](k K[St, B, C], h K[St, B, D]) K[St, B, P.Pair[C, D]] {
	return Compose(Split[St, B](), Product(k, h))
}
