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
	"encoding/base64"
	"errors"
	"slices"
	"strings"
)

const (
	// alphabet is the standard base64 alphabet; a character's index is its
	// 6-bit value. Must stay identical to what base64.StdEncoding emits.
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	startDelim = '뿡'
	endDelim   = '뽕'
	padMarker  = '='
)

// symbolTable maps bit positions to symbols, most-significant bit first:
// symbolTable[0] is bit 5, symbolTable[5] is bit 0.
var symbolTable = [6]rune{'낑', '깡', '삐', '앙', '버', '거'}

// Encode converts data to its Hangul token stream.
//
// Each character of the standard base64 form of data becomes one token:
// '=' becomes 뿡=뽕, every other character becomes the start delimiter, the
// symbols for the bits set in its 6-bit index (most-significant first), and
// the end delimiter. The empty input encodes to the empty string.
//
// Encode never fails and is safe for concurrent use.
func Encode(data []byte) string {
	b64 := base64.StdEncoding.EncodeToString(data)

	var sb strings.Builder
	// Worst case: all six bits set in every token, three bytes per rune.
	sb.Grow(len(b64) * (len(symbolTable) + 2) * 3)

	for i := 0; i < len(b64); i++ {
		ch := b64[i]
		sb.WriteRune(startDelim)

		if ch == padMarker {
			sb.WriteByte(padMarker)
		} else {
			idx := strings.IndexByte(alphabet, ch)
			for bit, sym := range symbolTable {
				if idx>>(5-bit)&1 == 1 {
					sb.WriteRune(sym)
				}
			}
		}

		sb.WriteRune(endDelim)
	}

	return sb.String()
}

// Decode converts a Hangul token stream back to the bytes Encode produced
// it from. It is the exact left inverse of [Encode].
//
// The stream is scanned left to right. Any structural violation aborts the
// whole decode with an error wrapping one of the package sentinels; no
// partial output is returned. Positions in the returned [DecodeError] are
// rune indexes into s.
func Decode(s string) ([]byte, error) {
	runes := []rune(s)
	n := len(runes)

	b64 := make([]byte, 0, n/2)
	// Start position of each token, for mapping base64 offsets back to the
	// input when reporting padding errors.
	starts := make([]int, 0, n/2)

	for i := 0; i < n; {
		if runes[i] != startDelim {
			return nil, &DecodeError{Pos: i, Symbol: runes[i], Err: ErrMalformedStream}
		}
		start := i
		starts = append(starts, start)
		i++

		end := i
		for end < n && runes[end] != endDelim {
			end++
		}
		if end == n {
			return nil, &DecodeError{Pos: start, Err: ErrUnterminatedToken}
		}
		content := runes[i:end]
		i = end + 1

		if len(content) == 1 && content[0] == padMarker {
			b64 = append(b64, padMarker)
			continue
		}

		for k, r := range content {
			if !slices.Contains(symbolTable[:], r) {
				return nil, &DecodeError{Pos: start + 1 + k, Symbol: r, Err: ErrUnknownSymbol}
			}
		}

		// Existence-based reconstruction: a symbol anywhere in the content
		// sets its bit. A repeated symbol is indistinguishable from a
		// single occurrence.
		var idx int
		for bit, sym := range symbolTable {
			if slices.Contains(content, sym) {
				idx |= 1 << (5 - bit)
			}
		}
		b64 = append(b64, alphabet[idx])
	}

	if len(b64)%4 != 0 {
		return nil, &DecodeError{Pos: n, Err: ErrInvalidLength}
	}

	out, err := base64.StdEncoding.DecodeString(string(b64))
	if err != nil {
		pos := n
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) && int(corrupt) < len(starts) {
			pos = starts[corrupt]
		}

		return nil, &DecodeError{Pos: pos, Err: ErrInvalidPadding}
	}

	return out, nil
}
