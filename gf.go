// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rsfec

import "errors"

// Galois Field arithmetic over GF(2^8).
// Primitive Polynomial: x^8+x^4+x^3+x^2+1 (0x11d), primitive element: 2.
//
// Every table here is built once in init and never written again,
// concurrent readers need no locking.

const (
	fieldSize = 256
	// Order of the multiplicative group: 2^8 - 1.
	groupOrder = fieldSize - 1

	primitivePoly = 0x11d
)

// expTbl[i] == 2^i. The upper half repeats the cycle
// (expTbl[i] == expTbl[i%255] for i >= 255), so Mul/Div can add or
// subtract logarithms without a mod on the hot path.
var expTbl [2 * fieldSize]byte

// logTbl[e] is the exponent i in [0,254] with expTbl[i] == e.
// logTbl[0] is meaningless: zero has no logarithm.
var logTbl [fieldSize]int16

// inverseTbl[e] == 1/e for e != 0.
var inverseTbl [fieldSize]byte

func init() {
	genExpLogTbls()
	genInverseTbl()
	genMulTbl()
	defaultGMU.initFunc()
}

func genExpLogTbls() {
	expTbl[0] = 1
	v := 1
	for i := 1; i < groupOrder; i++ {
		v <<= 1
		if v&0x100 != 0 {
			v ^= primitivePoly
		}
		expTbl[i] = byte(v)
		logTbl[v] = int16(i)
	}
	for i := groupOrder; i < len(expTbl); i++ {
		expTbl[i] = expTbl[i-groupOrder]
	}
}

func genInverseTbl() {
	for x := 1; x < fieldSize; x++ {
		inverseTbl[x] = expTbl[groupOrder-logTbl[x]]
	}
}

// Mul returns x*y in the field.
func Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return expTbl[logTbl[x]+logTbl[y]]
}

var ErrDivByZero = errors.New("rsfec: divide by zero")

// Div returns x/y in the field.
// Dividing by zero returns ErrDivByZero.
func Div(x, y byte) (byte, error) {
	if y == 0 {
		return 0, ErrDivByZero
	}
	if x == 0 {
		return 0, nil
	}
	// +groupOrder keeps the index non-negative,
	// the doubled table range makes the result exact.
	return expTbl[logTbl[x]-logTbl[y]+groupOrder], nil
}

// Pow returns x^n in the field. n may be negative:
// Pow(x, -1) == Inv(x) for any non-zero x.
// Pow(0, n) is undefined.
func Pow(x byte, n int) byte {
	e := (int(logTbl[x]) * n) % groupOrder
	if e < 0 {
		e += groupOrder
	}
	return expTbl[e]
}

// Inv returns the multiplicative inverse of x.
// Inv(0) is undefined.
func Inv(x byte) byte {
	return inverseTbl[x]
}
