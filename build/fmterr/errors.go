// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fmterr

import (
	"go.uber.org/multierr"
)

type (
	contextError struct {
		f    func(error) error
		errs error
	}

	// Errors is a set of errors.
	// The zero value is an empty set ready to use.
	Errors struct {
		stack []contextError
		errs  error
	}
)

// Push opens a context. Errors appended until the matching Pop are
// combined and transformed by f.
func (errs *Errors) Push(f func(error) error) {
	errs.stack = append(errs.stack, contextError{f: f})
}

// Pop closes the last context opened by Push.
func (errs *Errors) Pop() {
	last := errs.stack[len(errs.stack)-1]
	errs.stack = errs.stack[:len(errs.stack)-1]
	if last.errs == nil {
		return
	}
	errs.Append(last.f(last.errs))
}

// Append an error to the set. A nil error is ignored.
// Always returns false so that callers can return the result as an ok flag.
func (errs *Errors) Append(err error) bool {
	if err == nil {
		return false
	}
	if len(errs.stack) == 0 {
		errs.errs = multierr.Append(errs.errs, err)
	} else {
		top := &errs.stack[len(errs.stack)-1]
		top.errs = multierr.Append(top.errs, err)
	}
	return false
}

// Appendf appends an error attached to a node description.
func (errs *Errors) Appendf(where string, format string, a ...any) bool {
	return errs.Append(Errorf(where, format, a...))
}

// Empty returns true if no error has been appended.
func (errs *Errors) Empty() bool {
	if errs.errs != nil {
		return false
	}
	for _, st := range errs.stack {
		if st.errs != nil {
			return false
		}
	}
	return true
}

// Errors returns all the errors, including the ones in contexts still open.
func (errs *Errors) Errors() []error {
	all := multierr.Errors(errs.errs)
	for _, st := range errs.stack {
		if st.errs == nil {
			continue
		}
		all = append(all, st.f(st.errs))
	}
	return all
}

// ToError returns nil if the set is empty or all the errors combined in a single error.
func (errs *Errors) ToError() error {
	if errs == nil || errs.Empty() {
		return nil
	}
	return multierr.Combine(errs.Errors()...)
}
