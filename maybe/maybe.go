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

// Package maybe implements the Maybe sum type: a value that either holds
// a payload (Just) or holds nothing (Nothing). Ported from the teacher's
// option package, renamed to the vocabulary this library's callers expect.
package maybe

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

type (
	maybe struct {
		isJust bool
		value  any
	}

	// Maybe holds an optional, strongly typed value.
	Maybe[A any] maybe
)

// String prints some debug info for the object
func (s Maybe[A]) String() string {
	if s.isJust {
		return fmt.Sprintf("Just[%T](%v)", s.value, s.value)
	}
	return fmt.Sprintf("Nothing[%T]", s.value)
}

// isAbsent reports whether a value is a nil/absent payload: a nil pointer,
// interface, map, slice, chan or func. Anything else is always present.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// Just wraps a, panicking if a is a nil/absent payload - matching the
// source implementation's constructor contract.
func Just[A any](a A) Maybe[A] {
	if isAbsent(a) {
		panic("maybe.Just: value cannot be absent")
	}
	return Maybe[A]{isJust: true, value: a}
}

// Nothing is the singleton absent value. Any two calls compare equal.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{isJust: false}
}

// IsJust tests if the [Maybe] holds a payload.
func IsJust[A any](val Maybe[A]) bool {
	return val.isJust
}

// IsNothing tests if the [Maybe] is empty.
func IsNothing[A any](val Maybe[A]) bool {
	return !val.isJust
}

// MonadFold extracts the value by invoking onNothing or onJust.
func MonadFold[A, B any](ma Maybe[A], onNothing func() B, onJust func(a A) B) B {
	if ma.isJust {
		return onJust(ma.value.(A))
	}
	return onNothing()
}

// Fold extracts the value by invoking onNothing or onJust.
func Fold[A, B any](onNothing func() B, onJust func(A) B) func(Maybe[A]) B {
	return func(ma Maybe[A]) B {
		return MonadFold(ma, onNothing, onJust)
	}
}

// MonadBind applies function to the payload if present, per Just's bind
// semantics; Nothing's bind ignores its argument and returns Nothing.
func MonadBind[A, B any](ma Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	return MonadFold(ma, Nothing[B], f)
}

// Bind applies function to the payload if present.
func Bind[A, B any](f func(A) Maybe[B]) func(Maybe[A]) Maybe[B] {
	return func(ma Maybe[A]) Maybe[B] {
		return MonadBind(ma, f)
	}
}

// Map applies f to the payload if present.
func Map[A, B any](f func(A) B) func(Maybe[A]) Maybe[B] {
	return Fold(Nothing[B], func(a A) Maybe[B] {
		return Just(f(a))
	})
}

// Unwrap converts a [Maybe] into the idiomatic (value, ok) pair.
func Unwrap[A any](ma Maybe[A]) (A, bool) {
	if ma.isJust {
		return ma.value.(A), true
	}
	var zero A
	return zero, false
}

// Equal performs structural equality; two Nothings always compare equal.
func Equal[A comparable](a, b Maybe[A]) bool {
	if IsJust(a) != IsJust(b) {
		return false
	}
	if IsNothing(a) {
		return true
	}
	av, _ := Unwrap(a)
	bv, _ := Unwrap(b)
	return av == bv
}

// Hash computes a deterministic hash: payload-derived for Just, a constant
// for every Nothing regardless of its type parameter.
func Hash[A any](ma Maybe[A]) uint64 {
	h := fnv.New64a()
	MonadFold(ma,
		func() struct{} {
			fmt.Fprint(h, "Nothing")
			return struct{}{}
		},
		func(a A) struct{} {
			fmt.Fprintf(h, "Just:%v", a)
			return struct{}{}
		},
	)
	return h.Sum64()
}
