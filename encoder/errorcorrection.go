// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/barcodelib/datamatrix/reedsolomon"
)

// encodeECC200 appends Reed-Solomon ECC200 error-correction codewords to
// codewords and returns the full data+EC stream, de-interleaving into
// info.NumberOfBlocks blocks first when there is more than one. Byte i
// of codewords belongs to block i mod N; when the data doesn't divide
// evenly the first len(codewords) mod N blocks are one codeword longer.
func encodeECC200(codewords []byte, info *SymbolInfo) ([]byte, error) {
	if len(codewords) != info.MaxDataCodewords {
		return nil, fmt.Errorf("datamatrix/encoder: expected %d data codewords, got %d",
			info.MaxDataCodewords, len(codewords))
	}

	n := info.NumberOfBlocks
	ecPerBlock := info.ReedSolomonPerBlock
	result := make([]byte, info.MaxDataCodewords+n*ecPerBlock)
	copy(result, codewords)

	if n == 1 {
		ec, err := encodeBlock(codewords, ecPerBlock)
		if err != nil {
			return nil, err
		}
		copy(result[info.MaxDataCodewords:], ec)
		return result, nil
	}

	blocks := make([][]byte, n)
	for i := range blocks {
		blocks[i] = make([]byte, 0, (len(codewords)+n-1)/n)
	}
	for i, b := range codewords {
		blockIdx := i % n
		blocks[blockIdx] = append(blocks[blockIdx], b)
	}

	ecBlocks := make([][]byte, n)
	for i, block := range blocks {
		ec, err := encodeBlock(block, ecPerBlock)
		if err != nil {
			return nil, err
		}
		ecBlocks[i] = ec
	}

	ecStart := info.MaxDataCodewords
	for j := 0; j < ecPerBlock; j++ {
		for i := 0; i < n; i++ {
			result[ecStart] = ecBlocks[i][j]
			ecStart++
		}
	}
	return result, nil
}

// encodeBlock computes numEC Reed-Solomon error-correction codewords for
// one data block over reedsolomon.DataMatrixField256. A fresh Encoder is
// built for each call rather than shared across calls: Encoder caches
// generator polynomials in a plain, unsynchronized slice it grows on
// demand, so sharing one across concurrent encodeECC200 calls would race
// on that slice. datamatrix.Encode must be safe to call concurrently, so
// each block gets its own Encoder instead.
func encodeBlock(data []byte, numEC int) ([]byte, error) {
	if _, ok := generatorDegrees[numEC]; !ok {
		return nil, fmt.Errorf("datamatrix/encoder: %w (%d)", ErrInvalidBlockSize, numEC)
	}

	toEncode := make([]int, len(data)+numEC)
	for i, b := range data {
		toEncode[i] = int(b)
	}
	reedsolomon.NewEncoder(reedsolomon.DataMatrixField256).Encode(toEncode, numEC)

	ec := make([]byte, numEC)
	for i := range ec {
		ec[i] = byte(toEncode[len(data)+i])
	}
	return ec, nil
}

// generatorDegrees is the set of reedSolomonPerBlock values the 30-entry
// symbol table actually uses; encodeBlock rejects anything else rather
// than silently building a generator polynomial no symbol needs.
var generatorDegrees = func() map[int]bool {
	m := make(map[int]bool)
	for _, si := range symbols {
		m[si.ReedSolomonPerBlock] = true
	}
	return m
}()
