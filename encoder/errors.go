// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfSpace is returned when the payload does not fit the largest
	// symbol permitted by the requested CodeForm, or when a Base256 run
	// would overflow its two-byte length encoding.
	ErrOutOfSpace = errors.New("datamatrix/encoder: payload too large for any symbol of the requested form")

	// ErrInvalidBlockSize is returned when the Reed-Solomon generator table
	// has no entry for a requested error-codeword count. It is unreachable
	// for every size in the static symbol table. It wraps ErrOutOfSpace,
	// since both mean the same thing to a caller: the fixed symbol table
	// could not satisfy the request.
	ErrInvalidBlockSize = fmt.Errorf("datamatrix/encoder: no Reed-Solomon generator for requested block size: %w", ErrOutOfSpace)
)
