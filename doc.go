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

// Package hangul64 implements a reversible codec between arbitrary bytes
// and a stream of Hangul tokens.
//
// The encoder first converts the input to standard base64, then maps every
// base64 character to one token. A token is the start delimiter '뿡',
// followed by the token content, followed by the end delimiter '뽕'.
//
// For a data character, the content spells out the character's 6-bit
// alphabet index as a set of symbols, one per bit, most-significant bit
// first:
//
//	bit 5  4  3  2  1  0
//	    낑 깡 삐 앙 버 거
//
// A symbol is present when its bit is 1 and absent when it is 0, so index 0
// produces an empty token (뿡뽕) and index 63 produces all six symbols
// (뿡낑깡삐앙버거뽕). A base64 padding character '=' is carried through
// literally as 뿡=뽕.
//
// # Quick Start
//
//	tokens := hangul64.Encode([]byte("f"))
//	// 뿡깡삐거뽕뿡낑뽕뿡=뽕뿡=뽕
//
//	data, err := hangul64.Decode(tokens)
//	if err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// Decode rejects any input that is not a well-formed token stream. Failures
// are ordinary error values wrapping one of the package sentinels, so
// callers can branch with [errors.Is] and recover the offending position
// with [errors.As]:
//
//	var decErr *hangul64.DecodeError
//	if errors.As(err, &decErr) {
//	    fmt.Printf("bad input at rune %d\n", decErr.Pos)
//	}
//
// # Concurrency
//
// Both operations are pure functions over immutable package-level tables.
// Concurrent calls from any number of goroutines are safe without locking.
package hangul64
