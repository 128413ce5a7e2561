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

// Package pipeline is the sequential executor: it builds Kleisli morphisms
// over the bare state effect and drives them to completion on the calling
// goroutine. Every builder here returns a kleisli.K value; nothing is
// executed until Run/Eval/Exec applies it to an input and an initial state.
package pipeline

import (
	"github.com/ianj-als/pypeline/choice"
	K "github.com/ianj-als/pypeline/kleisli"
	P "github.com/ianj-als/pypeline/pair"
	"github.com/ianj-als/pypeline/perrors"
	"github.com/ianj-als/pypeline/plog"
	S "github.com/ianj-als/pypeline/state"
)

// Component is the public alias for a pipeline stage: a morphism from an
// input type to an output type, threaded through a user state St.
type Component[St, B, C any] = K.K[St, B, C]

// RunOption configures a Run/Eval/ExecPipeline call. Its zero value runs
// silently; WithTracer is the only option so far.
type RunOption func(*runConfig)

type runConfig struct {
	tracer *plog.Tracer
}

// WithTracer attaches a tracer that logs pipeline dispatch and, should the
// run panic with a contract or branch-tag violation, the failure.
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

// ConsFunctionComponent constructs a component from a plain function. Given
// input a and current state s, it computes a' = in(a,s) (or a if in is nil),
// b = f(a',s), b' = out(b,s) (or b if out is nil), s' = mut(s) (or s if mut
// is nil), and emits (b', s').
func ConsFunctionComponent[St, A, B, A2 any](
	f func(A2, St) B,
	in func(A, St) A2,
	out func(B, St) B,
	mut func(St) St,
) Component[St, A, B] {
	return K.Make(func(a A) S.State[St, B] {
		return S.Make(func(s St) (B, St) {
			var transformed A2
			if in != nil {
				transformed = in(a, s)
			} else {
				transformed = any(a).(A2)
			}
			b := f(transformed, s)
			if out != nil {
				b = out(b, s)
			}
			nextS := s
			if mut != nil {
				nextS = mut(s)
			}
			return b, nextS
		})
	})
}

// ConsWire constructs a wire: a component that transforms the value via
// g(a,s) and leaves state unchanged.
func ConsWire[St, A, B any](g func(A, St) B) Component[St, A, B] {
	return K.Make(func(a A) S.State[St, B] {
		return S.Make(func(s St) (B, St) {
			return g(a, s), s
		})
	})
}

// ConsDictionaryWire builds a wire that maps one map's entries onto another:
// given a source-key to destination-key mapping m, it produces a wire whose
// output has entries {m[k]: a[k]} for each k in m. A source key missing from
// the input value is a contract violation, surfaced by panicking: the
// executor detects builder/dispatch-time shape mistakes synchronously.
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

// ConsSplitWire duplicates its input into a pair. See *** , First, Second
// and ConsUnsplitWire.
func ConsSplitWire[St, A any]() Component[St, A, P.Pair[A, A]] {
	return K.Split[St, A]()
}

// ConsUnsplitWire builds a wire that takes a pair and joins it into one
// value with g.
func ConsUnsplitWire[St, C, D, E any](g func(C, D) E) Component[St, P.Pair[C, D], E] {
	return K.Unsplit[St](g)
}

// ConsComposedComponent composes two components in sequence.
func ConsComposedComponent[St, A, B, C any](first Component[St, A, B], second Component[St, B, C]) Component[St, A, C] {
	return K.Compose(first, second)
}

// ConsWiredComponents wires two components together through a connecting
// wire: c1 >>> w >>> c2.
func ConsWiredComponents[St, A, B, C, D any](c1 Component[St, A, B], w Component[St, B, C], c2 Component[St, C, D]) Component[St, A, D] {
	return K.Compose(c1, K.Compose(w, c2))
}

// WireComponents is an alias for ConsWiredComponents, matching the
// alternate spelling used across the source test suite.
func WireComponents[St, A, B, C, D any](c1 Component[St, A, B], w Component[St, B, C], c2 Component[St, C, D]) Component[St, A, D] {
	return ConsWiredComponents(c1, w, c2)
}

// ConsParallelComponent builds a component computing top and bottom over
// the two halves of a pair input, yielding a pair output. Despite the name
// it still runs on the sequential executor's single goroutine; true
// concurrency is only available from the parallel package.
func ConsParallelComponent[St, B, C, B2, C2 any](top Component[St, B, C], bottom Component[St, B2, C2]) Component[St, P.Pair[B, B2], P.Pair[C, C2]] {
	return K.Product(top, bottom)
}

// ConsPipeline prepends an input wire and appends an output wire to a
// component: in >>> c >>> out.
func ConsPipeline[St, In, A, B, Out any](in Component[St, In, A], c Component[St, A, B], out Component[St, B, Out]) Component[St, In, Out] {
	return K.Compose(in, K.Compose(c, out))
}

// ConsIfComponent builds a conditional component: test(p) >>> (t ||| e).
func ConsIfComponent[St, A, B any](p func(A) bool, t, e Component[St, A, B]) Component[St, A, B] {
	return choice.If(p, t, e)
}

// RunPipeline drives pipeline with the initial input and state, returning
// the final value and state. A WithTracer option logs the dispatch and,
// if the run panics with a contract or branch-tag violation, the failure
// before the panic continues to unwind.
func RunPipeline[St, In, Out any](p Component[St, In, Out], input In, state St, opts ...RunOption) (out Out, finalState St) {
	cfg := applyRunOptions(opts...)
	cfg.tracer.Dispatch("pipeline")
	defer func() {
		if r := recover(); r != nil {
			cfg.tracer.Failure("pipeline", perrors.AsError(r))
			panic(r)
		}
	}()
	out, finalState = S.Run(K.Run(p, input), state)
	return
}

// EvalPipeline drives pipeline and returns only the final value.
func EvalPipeline[St, In, Out any](p Component[St, In, Out], input In, state St, opts ...RunOption) Out {
	out, _ := RunPipeline(p, input, state, opts...)
	return out
}

// ExecPipeline drives pipeline and returns only the final state.
func ExecPipeline[St, In, Out any](p Component[St, In, Out], input In, state St, opts ...RunOption) St {
	_, s := RunPipeline(p, input, state, opts...)
	return s
}
