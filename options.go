// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package datamatrix

import "github.com/barcodelib/datamatrix/encoder"

// CodeType and CodeForm are re-exported here so callers never have to
// import the encoder subpackage directly.
type (
	CodeType = encoder.CodeType
	CodeForm = encoder.CodeForm
)

const (
	Default           = encoder.Default
	GS1               = encoder.GS1
	ReaderProgramming = encoder.ReaderProgramming
	Format05          = encoder.Format05
	Format06          = encoder.Format06
)

const (
	Square            = encoder.Square
	Rectangular       = encoder.Rectangular
	PreferRectangular = encoder.PreferRectangular
)

// Result is the finished symbol bitmap.
type Result = encoder.Result
