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

// Package choice extends the Kleisli morphism algebra with conditional
// branching over Either, mirroring the ArrowChoice mix-in the source
// applied to both its plain-function and Kleisli arrows. Built as free
// functions over kleisli.K morphisms and either.Either values, rather than
// by mixing the capability onto a base type through inheritance.
package choice

import (
	E "github.com/ianj-als/pypeline/either"
	K "github.com/ianj-als/pypeline/kleisli"
	S "github.com/ianj-als/pypeline/state"
)

// Left lifts k to act inside a Left value, passing a Right value unchanged.
func Left[St, B, C, D any](k K.K[St, B, C]) K.K[St, E.Either[B, D], E.Either[C, D]] {
	return K.Make(func(e E.Either[B, D]) S.State[St, E.Either[C, D]] {
		return E.MonadFold(e,
			func(b B) S.State[St, E.Either[C, D]] {
				return S.MonadMap(K.Run(k, b), E.Left[D, C])
			},
			func(d D) S.State[St, E.Either[C, D]] {
				return S.Of[St](E.Right[C](d))
			},
		)
	})
}

// Right is the dual of Left: it lifts k to act inside a Right value.
func Right[St, B, C, D any](k K.K[St, B, C]) K.K[St, E.Either[D, B], E.Either[D, C]] {
	return K.Make(func(e E.Either[D, B]) S.State[St, E.Either[D, C]] {
		return E.MonadFold(e,
			func(d D) S.State[St, E.Either[D, C]] {
				return S.Of[St](E.Left[C](d))
			},
			func(b B) S.State[St, E.Either[D, C]] {
				return S.MonadMap(K.Run(k, b), E.Right[D, C])
			},
		)
	})
}

// Plus is k +++ h = left(k) >>> right(h).
func Plus[St, B, C, B2, C2 any](k K.K[St, B, C], h K.K[St, B2, C2]) K.K[St, E.Either[B, B2], E.Either[C, C2]] {
	return K.Compose(Left[St, B, C, B2](k), Right[St, B2, C2, C](h))
}

// Or is k ||| h = (k +++ h) >>> arr(extract payload), collapsing both tags to the same output type.
func Or[St, B, C, D any](k K.K[St, B, D], h K.K[St, C, D]) K.K[St, E.Either[B, C], D] {
	return K.Compose(Plus[St, B, D, C, D](k, h), K.Arr[St](func(e E.Either[D, D]) D {
		return E.MonadFold(e, func(d D) D { return d }, func(d D) D { return d })
	}))
}

// Test builds a predicate morphism producing Left(b) when p(b) is truthy,
// Right(b) otherwise.
func Test[St, B any](p func(B) bool) K.K[St, B, E.Either[B, B]] {
	return K.Arr[St](func(b B) E.Either[B, B] {
		if p(b) {
			return E.Left[B](b)
		}
		return E.Right[B, B](b)
	})
}

// If builds a conditional component: ifc(p, t, e) = test(p) >>> (t ||| e).
func If[St, B, C any](p func(B) bool, t K.K[St, B, C], e K.K[St, B, C]) K.K[St, B, C] {
	return K.Compose(Test[St](p), Or(t, e))
}
