// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package streamable

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FieldError marks the field whose encoding or decoding failed. Nested
// composites wrap the inner FieldError, so Path reports the full route to
// the failing primitive while errors.Is still reaches the codec sentinel.
type FieldError struct {
	Type  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path(), e.root())
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Path returns the dotted route from the outermost type to the failing field,
// e.g. "SpendBundle.coin_spends.coin.amount".
func (e *FieldError) Path() string {
	parts := []string{e.Type, e.Field}
	var inner *FieldError
	err := e.Err
	for errors.As(err, &inner) {
		parts = append(parts, inner.Field)
		err = inner.Err
	}
	return strings.Join(parts, ".")
}

// root returns the innermost non-field error.
func (e *FieldError) root() error {
	var inner *FieldError
	err := e.Err
	for errors.As(err, &inner) {
		err = inner.Err
	}
	return err
}

func typeName(s Streamable) string {
	n := fmt.Sprintf("%T", s)
	if i := strings.LastIndexByte(n, '.'); i >= 0 {
		n = n[i+1:]
	}
	return strings.TrimPrefix(n, "*")
}
