// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package datamatrix generates ECC200 Data Matrix two-dimensional
// barcode symbols from arbitrary byte input. It implements the encoding
// side of ISO/IEC 16022 only: high-level text/byte encoding, symbol
// sizing, Reed-Solomon error correction, and ECC200 module placement.
// Decoding, camera acquisition and image file rendering are out of
// scope.
package datamatrix

import (
	"github.com/barcodelib/datamatrix/encoder"
	"github.com/rs/zerolog"
)

// Encode produces the Data Matrix symbol for data. The zero value of
// CodeType is Default (no type-marker preamble) and the zero value of
// CodeForm is Square, matching the package defaults.
func Encode(data []byte, codeType CodeType, form CodeForm) (*Result, error) {
	return encoder.Encode(data, codeType, form, zerolog.Nop())
}

// EncodeWithLogger is Encode with mode-switch tracing sent to log. Use
// this to observe the high-level encoder's ASCII/C40/Text/X12/EDIFACT/
// Base256 transitions while debugging a specific payload.
func EncodeWithLogger(data []byte, codeType CodeType, form CodeForm, log zerolog.Logger) (*Result, error) {
	return encoder.Encode(data, codeType, form, log)
}
