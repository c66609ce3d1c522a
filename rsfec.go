// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package rsfec implements a Reed-Solomon error & erasure correcting
// codec (systematic codes) over GF(2^8).
// Primitive Polynomial: x^8+x^4+x^3+x^2+1 (0x11d).
//
// Unlike matrix based erasure codes, the decoder locates corrupted
// symbols by itself: it computes syndromes, removes the known erasure
// contribution (Forney syndromes), derives the error locator with
// Berlekamp-Massey, finds its roots with a Chien search and computes
// the correction magnitudes with the Forney algorithm.
//
// A codeword carrying e erased symbols and f corrupted symbols is
// recoverable while e + 2*f <= parityNum.
package rsfec

import (
	"errors"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("rsfec")

// RS Reed-Solomon codec receiver.
type RS struct {
	ParityNum int // ParityNum is the number of parity symbols per codeword.

	gen poly // Generator polynomial, fixed at construction.
	gm  *gmu // Galois multiplying unit.
}

var ErrIllegalParityNum = errors.New("rsfec: illegal parity number: <= 0 or >= 256")

// New creates an RS codec with a specific parity symbol count.
//
// The generator polynomial is built here once and reused by every
// Encode/Decode call. Codewords are only exchangeable between codecs
// built with the same parityNum.
//
// The returned codec is immutable, it's safe to encode/decode
// independent codewords concurrently on one instance.
func New(parityNum int) (r *RS, err error) {
	if parityNum <= 0 || parityNum >= fieldSize {
		return nil, ErrIllegalParityNum
	}
	r = &RS{
		ParityNum: parityNum,
		gen:       genPoly(parityNum),
		gm:        &defaultGMU,
	}
	return
}
