// Copyright 2025 The Rivaas Authors
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

package hangul64

import (
	"errors"
	"fmt"
)

// Static errors for decode failures. Every error returned by Decode wraps
// exactly one of these.
var (
	// ErrMalformedStream means the cursor was not positioned at a start
	// delimiter where one was expected.
	ErrMalformedStream = errors.New("expected start delimiter")

	// ErrUnterminatedToken means a start delimiter has no matching end
	// delimiter before the input ends.
	ErrUnterminatedToken = errors.New("missing end delimiter")

	// ErrUnknownSymbol means token content contains a rune that is neither
	// the padding marker nor a member of the symbol table.
	ErrUnknownSymbol = errors.New("unknown symbol in token")

	// ErrInvalidLength means the reconstructed base64 string is not a
	// multiple of four characters long.
	ErrInvalidLength = errors.New("reconstructed base64 length not a multiple of 4")

	// ErrInvalidPadding means the reconstructed base64 string places
	// padding where standard base64 forbids it.
	ErrInvalidPadding = errors.New("invalid base64 padding")
)

// DecodeError represents a decode failure with positional context.
// It reports where in the token stream the problem was found and, when a
// specific rune is at fault, which one.
//
// Use [errors.As] to check for DecodeError:
//
//	var decErr *hangul64.DecodeError
//	if errors.As(err, &decErr) {
//	    fmt.Printf("position: %d\n", decErr.Pos)
//	}
type DecodeError struct {
	Pos    int  // Rune index into the token string
	Symbol rune // Offending rune, zero when not applicable
	Err    error
}

// Error returns a formatted error message with the offending position.
func (e *DecodeError) Error() string {
	if e.Symbol != 0 {
		return fmt.Sprintf("hangul64: %v: %q at position %d", e.Err, e.Symbol, e.Pos)
	}

	return fmt.Sprintf("hangul64: %v at position %d", e.Err, e.Pos)
}

// Unwrap returns the underlying sentinel for errors.Is/As compatibility.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
