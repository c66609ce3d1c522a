// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rsfec

import (
	"errors"

	xor "github.com/templexxx/xorsimd"
)

// Encode returns the systematic codeword for msg: the message symbols
// verbatim, followed by ParityNum parity symbols. It is deterministic
// and never fails.
//
// The parity is the remainder of msg * x^ParityNum divided by the
// generator polynomial. Full correction capability requires
// len(msg)+ParityNum <= 255; Encode does not enforce it.
func (r *RS) Encode(msg []byte) []byte {
	cw := make([]byte, len(msg)+r.ParityNum)
	copy(cw, msg)

	// LFSR-style reduction. gen[0] == 1, so each step zeroes the
	// message symbol it starts at; the copy below restores them.
	for i := 0; i < len(msg); i++ {
		c := cw[i]
		if c != 0 {
			r.gm.mulVectXOR(c, r.gen, cw[i:i+len(r.gen)])
		}
	}
	copy(cw, msg)
	return cw
}

var ErrIllegalSymbolIndex = errors.New("rsfec: symbol index out of message range")

// Update patches codeword in place after a single message symbol
// change, recomputing only the parity delta instead of re-encoding the
// whole message. Parity is linear over the field, so the parity of the
// one-symbol delta message is exactly the parity correction.
//
// pos indexes the message portion of the codeword.
func (r *RS) Update(codeword []byte, pos int, newVal byte) error {
	msgLen := len(codeword) - r.ParityNum
	if pos < 0 || pos >= msgLen {
		return ErrIllegalSymbolIndex
	}

	delta := codeword[pos] ^ newVal
	if delta == 0 {
		return nil
	}

	dmsg := make([]byte, msgLen)
	dmsg[pos] = delta
	dcw := r.Encode(dmsg)

	par := make([]byte, r.ParityNum)
	xor.Encode(par, [][]byte{codeword[msgLen:], dcw[msgLen:]})
	copy(codeword[msgLen:], par)
	codeword[pos] = newVal
	return nil
}
