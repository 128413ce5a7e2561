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

// Package either implements the Either sum type: a value that logically
// holds one of two typed alternatives, Left or Right, but never both.
// It is used both as a generic tagged union and, inside kleisli/choice,
// as the explicit carrier of conditional branches in the arrow algebra.
package either

import (
	"fmt"
	"hash/fnv"

	F "github.com/ianj-als/pypeline/function"
)

// Of is equivalent to [Right]
func Of[E, A any](value A) Either[E, A] {
	return Right[E](value)
}

// Fold extracts the value from an [Either] by invoking onLeft or onRight
// depending on the case.
func Fold[E, A, B any](onLeft func(E) B, onRight func(A) B) func(Either[E, A]) B {
	return func(ma Either[E, A]) B {
		return MonadFold(ma, onLeft, onRight)
	}
}

// MonadMap applies f to the Right payload, leaving a Left untouched.
func MonadMap[E, A, B any](fa Either[E, A], f func(a A) B) Either[E, B] {
	return MonadFold(fa, Left[B, E], F.Flow2(f, Right[E, B]))
}

// Map turns a plain function into a function over [Either], acting on the Right case.
func Map[E, A, B any](f func(a A) B) func(Either[E, A]) Either[E, B] {
	return func(ma Either[E, A]) Either[E, B] {
		return MonadMap(ma, f)
	}
}

// MapLeft applies f to the Left payload, leaving a Right untouched.
func MapLeft[A, E1, E2 any](f func(E1) E2) func(Either[E1, A]) Either[E2, A] {
	return Fold(F.Flow2(f, Left[A, E2]), Right[E2, A])
}

// Swap changes the order of the type parameters.
func Swap[E, A any](val Either[E, A]) Either[A, E] {
	return MonadFold(val, Right[A, E], Left[E, A])
}

// Equal performs structural equality; a Left never equals a Right.
func Equal[E, A comparable](a, b Either[E, A]) bool {
	if IsLeft(a) != IsLeft(b) {
		return false
	}
	aVal, aErr := Unwrap(a)
	bVal, bErr := Unwrap(b)
	if IsLeft(a) {
		return aErr == bErr
	}
	return aVal == bVal
}

// Hash computes a deterministic, payload-derived hash of an [Either]'s active case.
func Hash[E, A any](ma Either[E, A]) uint64 {
	h := fnv.New64a()
	MonadFold(ma,
		func(e E) struct{} {
			fmt.Fprintf(h, "L:%v", e)
			return struct{}{}
		},
		func(a A) struct{} {
			fmt.Fprintf(h, "R:%v", a)
			return struct{}{}
		},
	)
	return h.Sum64()
}
