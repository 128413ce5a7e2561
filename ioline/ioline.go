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

// Package ioline implements the subprocess-component boundary contract: a
// component built over a child process exposing line-oriented byte
// streams. Its responsibility stops at formatting one line from the
// inbound value, writing it plus a newline, flushing, reading one line
// back, stripping trailing whitespace, and handing it to the
// output-forming function. Spawning, supervising, or terminating the
// child process is the caller's job; this package only ever sees an
// io.Reader and an io.Writer the caller already owns.
package ioline

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	K "github.com/ianj-als/pypeline/kleisli"
	S "github.com/ianj-als/pypeline/state"
)

// ConsLineComponent constructs a component over a line-oriented process:
// given input a and current state s, it writes in(a,s) as a line to w,
// reads a line back from r, and hands the trimmed line to out, producing
// (out(line, s), mut(s)) (or (out(line,s), s) if mut is nil).
func ConsLineComponent[St, A, B any](
	r *bufio.Reader,
	w io.Writer,
	in func(A, St) string,
	out func(string, St) B,
	mut func(St) St,
) K.K[St, A, B] {
	return K.Make(func(a A) S.State[St, B] {
		return S.Make(func(s St) (B, St) {
			line := in(a, s)
			if _, err := fmt.Fprintln(w, line); err != nil {
				panic(err)
			}
			if f, ok := w.(interface{ Flush() error }); ok {
				if err := f.Flush(); err != nil {
					panic(err)
				}
			}
			reply, err := r.ReadString('\n')
			if err != nil && err != io.EOF {
				panic(err)
			}
			reply = strings.TrimRightFunc(reply, unicode.IsSpace)

			b := out(reply, s)
			nextS := s
			if mut != nil {
				nextS = mut(s)
			}
			return b, nextS
		})
	})
}
