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

// Package parallel is the parallel, task-based executor. It builds the
// same Kleisli morphism algebra as package pipeline, but over values of
// type Future[A] threaded through a WrappedState that pairs a worker pool
// with the user's state. A function component's body is submitted to the
// pool and yields a Future in place of a bare value; its state mutator
// still runs synchronously on the calling goroutine, so state updates
// along one path stay ordered by construction regardless of when the
// submitted tasks finish.
package parallel

import (
	K "github.com/ianj-als/pypeline/kleisli"
	P "github.com/ianj-als/pypeline/pair"
	"github.com/ianj-als/pypeline/perrors"
	"github.com/ianj-als/pypeline/plog"
	S "github.com/ianj-als/pypeline/state"
)

// WrappedState pairs a worker pool handle with the user's state; it is
// threaded through the parallel executor in place of the bare state.
type WrappedState[St any] struct {
	Pool  Pool
	State St
}

// RunOption configures a Run/Eval/ExecPipeline call. Its zero value runs
// silently; WithTracer is the only option so far.
type RunOption func(*runConfig)

type runConfig struct {
	tracer *plog.Tracer
}

// WithTracer attaches a tracer that logs pipeline dispatch and, should a
// forced future or a synchronous wire panic, the failure.
func WithTracer(t *plog.Tracer) RunOption {
	return func(c *runConfig) {
		c.tracer = t
	}
}

func applyRunOptions(opts ...RunOption) runConfig {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Component is a parallel pipeline stage: a morphism from a deferred input
// to a deferred output, threaded through WrappedState[St].
type Component[St, B, C any] = K.K[WrappedState[St], Future[B], Future[C]]

// ConsFunctionComponent constructs a component based on a function. The
// function's body, together with any input/output forming functions, is
// submitted to the pool as a single task; the state mutator, if any, runs
// synchronously right after that task is submitted, without waiting for it
// to finish. The task sees the state as it was before the mutator ran.
func ConsFunctionComponent[St, A, B, A2 any](
	f func(A2, St) B,
	in func(A, St) A2,
	out func(B, St) B,
	mut func(St) St,
) Component[St, A, B] {
	return K.Make(func(future Future[A]) S.State[WrappedState[St], Future[B]] {
		return S.Make(func(ws WrappedState[St]) (Future[B], WrappedState[St]) {
			state := ws.State
			newFuture := Submit(ws.Pool, func() (B, error) {
				a, err := future.Result()
				if err != nil {
					var zero B
					return zero, err
				}
				var transformed A2
				if in != nil {
					transformed = in(a, state)
				} else {
					transformed = any(a).(A2)
				}
				b := f(transformed, state)
				if out != nil {
					b = out(b, state)
				}
				return b, nil
			})
			nextState := state
			if mut != nil {
				nextState = mut(state)
			}
			return newFuture, WrappedState[St]{Pool: ws.Pool, State: nextState}
		})
	})
}

// ConsWire constructs a wire: it forces the input future on the calling
// goroutine, applies g, and hands the result forward as a resolved future.
// Wires carry schema conversions, not user work, so they never touch the
// pool.
func ConsWire[St, A, B any](g func(A, St) B) Component[St, A, B] {
	return K.Make(func(future Future[A]) S.State[WrappedState[St], Future[B]] {
		return S.Make(func(ws WrappedState[St]) (Future[B], WrappedState[St]) {
			a, err := future.Result()
			if err != nil {
				return Failed[B](err), ws
			}
			return Resolved(g(a, ws.State)), ws
		})
	})
}

// ConsDictionaryWire is ConsWire specialised to remap map keys, matching
// the sequential executor's contract: a source key missing from the input
// is a contract violation.
func ConsDictionaryWire[St any, K1 comparable, V any](conversions map[K1]K1) Component[St, map[K1]V, map[K1]V] {
	return ConsWire(func(a map[K1]V, _ St) map[K1]V {
		out := make(map[K1]V, len(conversions))
		for srcKey, dstKey := range conversions {
			v, ok := a[srcKey]
			if !ok {
				panic(perrors.NewContractViolation("dictionary wire: missing key %v", srcKey))
			}
			out[dstKey] = v
		}
		return out
	})
}

// ConsSplitWire duplicates a scalar future: both halves of the resulting
// pair resolve to the same underlying future, since Future.Result is
// idempotent and side-effect free to call more than once. Go's static
// typing resolves the source's runtime scalar-vs-already-a-pair branch at
// the call site: a caller already holding a pair of futures has no reason
// to call ConsSplitWire again.
func ConsSplitWire[St, A any]() K.K[WrappedState[St], Future[A], P.Pair[Future[A], Future[A]]] {
	return K.Make(func(f Future[A]) S.State[WrappedState[St], P.Pair[Future[A], Future[A]]] {
		return S.Of[WrappedState[St]](P.MakePair[Future[A], Future[A]](f, f))
	})
}

// ConsUnsplitWire builds a component whose task awaits both input futures
// via Result and returns g(top, bottom).
func ConsUnsplitWire[St, C, D, E any](g func(C, D) E) K.K[WrappedState[St], P.Pair[Future[C], Future[D]], Future[E]] {
	return K.Make(func(pair P.Pair[Future[C], Future[D]]) S.State[WrappedState[St], Future[E]] {
		return S.Make(func(ws WrappedState[St]) (Future[E], WrappedState[St]) {
			top := P.Head(pair)
			bottom := P.Tail(pair)
			newFuture := Submit(ws.Pool, func() (E, error) {
				c, err := top.Result()
				if err != nil {
					var zero E
					return zero, err
				}
				d, err := bottom.Result()
				if err != nil {
					var zero E
					return zero, err
				}
				return g(c, d), nil
			})
			return newFuture, ws
		})
	})
}

// ConsComposedComponent composes two components in sequence. Unlike
// Component, this and the wiring helpers below are not constrained to
// Future-to-Future morphisms: a split or unsplit stage's endpoints are a
// pair of futures, not a future of a pair, so the plumbing between stages
// is expressed over bare kleisli.K values.
func ConsComposedComponent[St, A, B, C any](first K.K[WrappedState[St], A, B], second K.K[WrappedState[St], B, C]) K.K[WrappedState[St], A, C] {
	return K.Compose(first, second)
}

// ConsWiredComponents wires two components together through a connecting
// wire: c1 >>> w >>> c2.
func ConsWiredComponents[St, A, B, C, D any](c1 K.K[WrappedState[St], A, B], w K.K[WrappedState[St], B, C], c2 K.K[WrappedState[St], C, D]) K.K[WrappedState[St], A, D] {
	return K.Compose(c1, K.Compose(w, c2))
}

// WireComponents is an alias for ConsWiredComponents.
func WireComponents[St, A, B, C, D any](c1 K.K[WrappedState[St], A, B], w K.K[WrappedState[St], B, C], c2 K.K[WrappedState[St], C, D]) K.K[WrappedState[St], A, D] {
	return ConsWiredComponents(c1, w, c2)
}

// ConsParallelComponent builds a component over a pair of futures, one per
// branch. Because dispatch (submission) is non-blocking, the top and
// bottom tasks run concurrently on the pool once both have been
// submitted, even though submission itself happens left-then-right on the
// calling goroutine.
func ConsParallelComponent[St, B, C, B2, C2 any](top Component[St, B, C], bottom Component[St, B2, C2]) K.K[WrappedState[St], P.Pair[Future[B], Future[B2]], P.Pair[Future[C], Future[C2]]] {
	return K.Product(top, bottom)
}

// ConsPipeline prepends an input wire and appends an output wire to a
// component: in >>> c >>> out.
func ConsPipeline[St, In, A, B, Out any](in Component[St, In, A], c Component[St, A, B], out Component[St, B, Out]) Component[St, In, Out] {
	return K.Compose(in, K.Compose(c, out))
}

// ConsIfComponent builds a conditional component. The predicate is
// evaluated against the forced input value, and the chosen branch then
// runs against a fresh resolved future carrying that same value, so
// whichever branch runs still dispatches its own work to the pool.
func ConsIfComponent[St, A, B any](p func(A) bool, t, e Component[St, A, B]) Component[St, A, B] {
	return K.Make(func(future Future[A]) S.State[WrappedState[St], Future[B]] {
		return S.Make(func(ws WrappedState[St]) (Future[B], WrappedState[St]) {
			a, err := future.Result()
			if err != nil {
				return Failed[B](err), ws
			}
			if p(a) {
				return S.Run(K.Run(t, Resolved(a)), ws)
			}
			return S.Run(K.Run(e, Resolved(a)), ws)
		})
	})
}

// RunPipeline drives pipeline with the initial input and state, forcing
// the final output future and returning its value alongside the final
// state. A WithTracer option logs the dispatch, a synchronous panic (a
// contract or branch-tag violation raised by a wire before any task ever
// reaches the pool), and a forced future resolving to an error (typically
// a UserTaskFailure recovered from a submitted task).
func RunPipeline[St, In, Out any](pool Pool, p Component[St, In, Out], input In, state St, opts ...RunOption) (out Out, finalState St, err error) {
	cfg := applyRunOptions(opts...)
	cfg.tracer.Dispatch("pipeline")
	defer func() {
		if r := recover(); r != nil {
			cfg.tracer.Failure("pipeline", perrors.AsError(r))
			panic(r)
		}
	}()
	outFuture, ws := S.Run(K.Run(p, Resolved(input)), WrappedState[St]{Pool: pool, State: state})
	finalState = ws.State
	out, err = outFuture.Result()
	if err != nil {
		cfg.tracer.Failure("pipeline", err)
	}
	return
}

// EvalPipeline drives pipeline and returns only the forced output value.
func EvalPipeline[St, In, Out any](pool Pool, p Component[St, In, Out], input In, state St, opts ...RunOption) (Out, error) {
	out, _, err := RunPipeline(pool, p, input, state, opts...)
	return out, err
}

// ExecPipeline drives pipeline and returns only the final state, without
// forcing the output future.
func ExecPipeline[St, In, Out any](pool Pool, p Component[St, In, Out], input In, state St, opts ...RunOption) St {
	cfg := applyRunOptions(opts...)
	cfg.tracer.Dispatch("pipeline")
	defer func() {
		if r := recover(); r != nil {
			cfg.tracer.Failure("pipeline", perrors.AsError(r))
			panic(r)
		}
	}()
	return S.Exec(K.Run(p, Resolved(input)), WrappedState[St]{Pool: pool, State: state}).State
}
