// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a pipeline failure
type Kind string

// Kinds of failure, one per pipeline stage
const (
	TransferError  Kind = "transfer_error"
	TransformError Kind = "transform_error"
	AuthError      Kind = "auth_error"
	UploadError    Kind = "upload_error"
	CleanupError   Kind = "cleanup_error"
)

// Error is a failure of one pipeline operation
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// New returns an Error of the given kind wrapping err
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first Error found in the err chain, empty when none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
