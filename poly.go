// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rsfec

import (
	xor "github.com/templexxx/xorsimd"
)

// poly is a polynomial over GF(2^8).
// Coefficients are ordered highest degree first, len == degree+1.
// Methods return new polynomials, the backing array is never shared.
type poly []byte

// add returns a + b. Operands are right-aligned: the shorter one is
// implicitly zero-padded on the high-degree side. Addition is
// coefficient-wise XOR, so a.add(b).add(b) == a.
func (a poly) add(b poly) poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	sum := make(poly, n)
	if len(a) == len(b) {
		xor.Encode(sum, [][]byte{a, b})
		return sum
	}
	copy(sum[n-len(a):], a)
	for i, c := range b {
		sum[n-len(b)+i] ^= c
	}
	return sum
}

// scale returns p with every coefficient multiplied by k.
func (p poly) scale(k byte) poly {
	s := make(poly, len(p))
	defaultGMU.mulVect(k, p, s)
	return s
}

// eval evaluates p at x with Horner's method.
func (p poly) eval(x byte) byte {
	v := p[0]
	for i := 1; i < len(p); i++ {
		v = gfMul(v, x) ^ p[i]
	}
	return v
}

// mul returns the product a*b: a convolution over the field,
// coefficient i+j accumulates a[i]*b[j] by XOR.
func (a poly) mul(b poly) poly {
	prod := make(poly, len(a)+len(b)-1)
	for i, c := range a {
		if c != 0 {
			defaultGMU.mulVectXOR(c, b, prod[i:i+len(b)])
		}
	}
	return prod
}

// div divides a by b with synthetic division, returning quotient and
// remainder such that a == q.mul(b).add(r).
// b must be monic; the codec only divides by x^k, which is.
func (a poly) div(b poly) (q, r poly) {
	out := make(poly, len(a))
	copy(out, a)
	if len(a) < len(b) {
		return out[:0], out
	}
	for i := 0; i <= len(a)-len(b); i++ {
		c := out[i]
		if c != 0 {
			for j := 1; j < len(b); j++ {
				out[i+j] ^= gfMul(b[j], c)
			}
		}
	}
	sep := len(a) - (len(b) - 1)
	return out[:sep], out[sep:]
}

// reverse flips p between highest-degree-first and lowest-degree-first
// ordering, in place. The Chien search needs the reversed ordering for
// its root-to-position correspondence.
func (p poly) reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

func (p poly) allZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// genPoly builds the generator polynomial for parityNum parity
// symbols: the product of (x - 2^i) for i in [0, parityNum).
func genPoly(parityNum int) poly {
	g := poly{1}
	for i := 0; i < parityNum; i++ {
		g = g.mul(poly{1, expTbl[i]})
	}
	return g
}

// syndromePoly evaluates block at each generator root 2^i.
// An all-zero result means block is a valid codeword.
func syndromePoly(block poly, parityNum int) poly {
	s := make(poly, parityNum)
	for i := 0; i < parityNum; i++ {
		s[i] = block.eval(expTbl[i])
	}
	return s
}

// errLocatorPoly rebuilds a locator polynomial from known coefficient
// positions: the product of (1 + 2^p * x) over the positions.
func errLocatorPoly(positions []int) poly {
	loc := poly{1}
	for _, p := range positions {
		loc = loc.mul(poly{Pow(2, p), 1})
	}
	return loc
}

// errEvaluatorPoly is the remainder of syndRev * locator modulo
// x^len(syndRev). It feeds the Forney magnitude computation, syndRev
// is the syndrome polynomial in reversed coefficient order.
//
// The modulus must span the full syndrome length: the product is
// evaluator + x^t*junk, and with a shorter modulus the junk term
// bleeds into the evaluator once the errata count reaches the parity
// count.
func errEvaluatorPoly(syndRev, locator poly) poly {
	mod := make(poly, len(syndRev)+1)
	mod[0] = 1
	_, r := syndRev.mul(locator).div(mod)
	return r
}
