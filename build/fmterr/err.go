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
	"fmt"

	"github.com/pkg/errors"
)

type (
	// ErrorAt is an error attached to a node of a kernel.
	ErrorAt interface {
		error
		// Where returns a short description of the node.
		Where() string
		Err() error
	}

	errorAt struct {
		where string
		err   error
	}
)

// At attaches an error to a node description.
func At(where string, err error) ErrorAt {
	return errorAt{where: where, err: err}
}

// Errorf returns a formatted error attached to a node description.
func Errorf(where string, format string, a ...any) error {
	return At(where, errors.Errorf(format, a...))
}

// Internal marks an error as a bug in the kernel generator.
func Internal(err error) error {
	return fmt.Errorf("kernel generator internal error. This is a bug. Please report it. Error:\n%+v", err)
}

// Internalf returns an internal error attached to a node description.
func Internalf(where string, format string, a ...any) error {
	return Internal(Errorf(where, format, a...))
}

func (err errorAt) Error() string {
	if err.where == "" {
		return err.err.Error()
	}
	return err.where + ": " + err.err.Error()
}

func (err errorAt) Unwrap() error {
	return err.err
}

func (err errorAt) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}

func (err errorAt) Where() string {
	return err.where
}

func (err errorAt) Err() error {
	return err.err
}
