// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rsfec

import (
	"errors"

	xor "github.com/templexxx/xorsimd"
)

var (
	ErrTooManyErasures = errors.New("rsfec: too many erasures to correct")
	ErrTooManyErrors   = errors.New("rsfec: too many errors to correct")
	ErrShortVect       = errors.New("rsfec: codeword shorter than parity")
	ErrIllegalErasure  = errors.New("rsfec: erasure index out of codeword range")
)

// Decode recovers the message symbols from a received codeword.
//
// erasures lists the positions whose symbols are known to be missing
// or unreadable; the values stored there are ignored. Corrupted
// positions not listed are located and corrected automatically while
// len(erasures) + 2*errors <= ParityNum.
//
// On failure (ErrTooManyErasures, ErrTooManyErrors, ErrDivByZero) no
// partial result is returned; the block must be re-requested or
// encoded with more parity.
func (r *RS) Decode(codeword []byte, erasures []int) ([]byte, error) {
	t := r.ParityNum
	if len(codeword) < t {
		return nil, ErrShortVect
	}

	buf := make(poly, len(codeword))
	copy(buf, codeword)

	var ers []int
	if len(erasures) > 0 {
		ers = make([]int, len(erasures))
		copy(ers, erasures)
		ers = dedup(ers)
	}
	for _, e := range ers {
		if e < 0 || e >= len(buf) {
			return nil, ErrIllegalErasure
		}
		buf[e] = 0
	}
	if len(ers) > t {
		return nil, ErrTooManyErasures
	}

	synd := syndromePoly(buf, t)
	if synd.allZero() {
		// Valid codeword as-is. Note the erasure positions were
		// already zero-filled above, so this also fires when the
		// zero-filled form happens to be a valid codeword.
		log.Debugf("decode: syndromes clear, no correction needed")
		return buf[:len(buf)-t], nil
	}

	fsynd := forneySyndromes(synd, ers, len(buf))
	errPos, err := findErrors(fsynd, len(buf))
	if err != nil {
		return nil, err
	}
	log.Debugf("decode: %d erasures, %d errors located at %v", len(ers), len(errPos), errPos)

	out, err := correct(buf, synd, append(ers, errPos...))
	if err != nil {
		return nil, err
	}
	return out[:len(out)-t], nil
}

// forneySyndromes removes the contribution of the known erasures from
// the syndromes, leaving a shorter syndrome sequence that depends only
// on the unknown errors. One synthetic-division pass per erasure,
// keyed on 2^(coefficient position).
func forneySyndromes(synd poly, erasures []int, n int) poly {
	fs := make(poly, len(synd))
	copy(fs, synd)
	for _, p := range erasures {
		x := Pow(2, n-1-p)
		for j := 0; j < len(fs)-1; j++ {
			fs[j] = gfMul(fs[j], x) ^ fs[j+1]
		}
		fs = fs[:len(fs)-1]
	}
	return fs
}

// findErrors derives the error locator polynomial from the Forney
// syndromes with Berlekamp-Massey, then finds its roots with a Chien
// search. It returns the error positions in the codeword.
func findErrors(fsynd poly, n int) ([]int, error) {
	errLoc := poly{1}
	prev := poly{1}

	for i := 0; i < len(fsynd); i++ {
		// Discrepancy between the syndromes and the recurrence the
		// current locator describes.
		delta := fsynd[i]
		for j := 1; j < len(errLoc); j++ {
			delta ^= gfMul(errLoc[len(errLoc)-1-j], fsynd[i-j])
		}

		prev = append(prev, 0) // prev *= x

		if delta != 0 {
			if len(prev) > len(errLoc) {
				np := prev.scale(delta)
				prev = errLoc.scale(Inv(delta))
				errLoc = np
			}
			errLoc = errLoc.add(prev.scale(delta))
		}
	}
	errLoc.reverse()

	errCount := len(errLoc) - 1
	if errCount*2 > len(fsynd) {
		return nil, ErrTooManyErrors
	}

	// Chien search: a root at 2^i marks an error at position n-i-1.
	var positions []int
	for i := 0; i < groupOrder; i++ {
		if errLoc.eval(Pow(2, i)) == 0 {
			pos := n - i - 1
			if pos < 0 {
				return nil, ErrTooManyErrors
			}
			positions = append(positions, pos)
		}
	}
	// Sanity check against the locator degree.
	if len(positions) != errCount {
		return nil, ErrTooManyErrors
	}
	return positions, nil
}

// correct computes the magnitude of the symbol corruption at every
// erasure/error position with the Forney algorithm and XORs the
// magnitudes into the received buffer.
func correct(received, synd poly, positions []int) (poly, error) {
	n := len(received)

	coefPos := make([]int, len(positions))
	for i, p := range positions {
		coefPos[i] = n - 1 - p
	}
	locator := errLocatorPoly(coefPos)

	syndRev := make(poly, len(synd))
	copy(syndRev, synd)
	syndRev.reverse()
	evaluator := errEvaluatorPoly(syndRev, locator)

	// One locator root per corrupted position: X_i = 2^cp.
	roots := make([]byte, len(coefPos))
	for i, cp := range coefPos {
		roots[i] = Pow(2, cp)
	}

	magnitudes := make(poly, n)
	for i, root := range roots {
		rootInv := Inv(root)

		// Formal derivative of the locator at this root: the product
		// of (1 ^ rootInv*other) over all the other roots.
		deriv := byte(1)
		for j, other := range roots {
			if j != i {
				deriv = gfMul(deriv, 1^gfMul(rootInv, other))
			}
		}

		y := evaluator.eval(rootInv)
		mag, err := Div(y, deriv)
		if err != nil {
			return nil, err
		}
		magnitudes[positions[i]] = mag
	}

	out := make(poly, n)
	xor.Encode(out, [][]byte{received, magnitudes})
	return out, nil
}
