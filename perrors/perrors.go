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

// Package perrors defines the error taxonomy the pipeline builders and
// executors raise: contract violations detected at builder or dispatch
// time, branch-tag violations for an Either value carrying an unrecognised
// tag, and user-task failures that travel inside a deferred value until
// forced. either.Either has exactly two cases, so the choice operators in
// this module never raise a branch-tag violation.
package perrors

import "fmt"

// ContractViolation reports that a builder received a value of the wrong
// shape: a wire missing a required key, a non-morphism where one was
// expected, or a similar construction-time mistake.
type ContractViolation struct {
	msg string
}

func (e *ContractViolation) Error() string {
	return e.msg
}

// NewContractViolation builds a [ContractViolation] with a formatted message.
func NewContractViolation(format string, args ...any) error {
	return &ContractViolation{msg: fmt.Sprintf(format, args...)}
}

// BranchTagViolation reports that a choice operation encountered an Either
// value carrying an unrecognised tag.
type BranchTagViolation struct {
	msg string
}

func (e *BranchTagViolation) Error() string {
	return e.msg
}

// NewBranchTagViolation builds a [BranchTagViolation] with a formatted message.
func NewBranchTagViolation(format string, args ...any) error {
	return &BranchTagViolation{msg: fmt.Sprintf(format, args...)}
}

// UserTaskFailure wraps a panic recovered from user-supplied work running
// inside a deferred value; it surfaces only when the value is forced.
type UserTaskFailure struct {
	cause any
}

func (e *UserTaskFailure) Error() string {
	return fmt.Sprintf("user task failed: %v", e.cause)
}

func (e *UserTaskFailure) Unwrap() error {
	if err, ok := e.cause.(error); ok {
		return err
	}
	return nil
}

// NewUserTaskFailure wraps the recovered panic value of a user task.
func NewUserTaskFailure(cause any) error {
	return &UserTaskFailure{cause: cause}
}

// AsError coerces a recovered panic value into an error, for callers that
// need to hand a panic to something expecting the error interface (a
// tracer, for instance) before re-panicking with the original value.
func AsError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return NewUserTaskFailure(r)
}
