// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package datamatrix

import "github.com/barcodelib/datamatrix/encoder"

// ErrOutOfSpace is returned when the payload does not fit any symbol of
// the requested CodeForm.
var ErrOutOfSpace = encoder.ErrOutOfSpace
