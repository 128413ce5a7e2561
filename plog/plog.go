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

// Package plog provides an optional tracer for pipeline dispatch, built
// directly on the standard library logger. Wiring it in is never required:
// a nil *Tracer is safe to call and simply discards every entry.
package plog

import "log"

// Tracer logs pipeline dispatch and failure events through a *log.Logger.
type Tracer struct {
	l *log.Logger
}

// NewTracer wraps l. If l is nil, log.Default() is used.
func NewTracer(l *log.Logger) *Tracer {
	if l == nil {
		l = log.Default()
	}
	return &Tracer{l: l}
}

// Dispatch logs a component or wire being invoked.
func (t *Tracer) Dispatch(name string, args ...any) {
	if t == nil {
		return
	}
	t.l.Printf("dispatch: "+name, args...)
}

// Failure logs a task or component failing.
func (t *Tracer) Failure(name string, err error) {
	if t == nil {
		return
	}
	t.l.Printf("failure: %s: %v", name, err)
}
