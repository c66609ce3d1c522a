// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rsfec

import "github.com/templexxx/cpu"

// galois field multiplying unit
type gmu struct {
	// output = c * input
	mulVect func(c byte, input, output []byte)
	// output ^= c * input
	mulVectXOR func(c byte, input, output []byte)
}

var defaultGMU gmu

// mulTbl[a][b] = a * b in the field.
var mulTbl [fieldSize][fieldSize]byte

func genMulTbl() {
	for a := 1; a < fieldSize; a++ {
		for b := 1; b < fieldSize; b++ {
			mulTbl[a][b] = expTbl[logTbl[a]+logTbl[b]]
		}
	}
}

// a * b
func gfMul(a, b byte) byte {
	return mulTbl[a][b]
}

// The full multiplication table costs 64KiB, its rows thrash small L1
// data caches. Pick the exp/log pair there instead.
// L1D <= 0 means the cache size cannot be detected
// (or CPU is not X86), assume 32KiB.
func (g *gmu) initFunc() {
	l1d := cpu.X86.Cache.L1D
	if l1d <= 0 {
		l1d = 32 * 1024
	}
	if l1d >= 32*1024 {
		g.mulVect = mulVectTbl
		g.mulVectXOR = mulVectXORTbl
	} else {
		g.mulVect = mulVectNoTbl
		g.mulVectXOR = mulVectXORNoTbl
	}
}

// Coefficient multiply by vector, byte by byte over a multiply table row.
// Then write result.
func mulVectTbl(c byte, input, output []byte) {
	t := mulTbl[c][:fieldSize]
	for i := 0; i < len(input); i++ {
		output[i] = t[input[i]]
	}
}

// Coefficient multiply by vector, byte by byte over a multiply table row.
// Then update result by XOR old result.
func mulVectXORTbl(c byte, input, output []byte) {
	t := mulTbl[c][:fieldSize]
	for i := 0; i < len(input); i++ {
		output[i] ^= t[input[i]]
	}
}

// Coefficient multiply by vector through the exp/log pair.
// Then write result.
func mulVectNoTbl(c byte, input, output []byte) {
	if c == 0 {
		for i := range output[:len(input)] {
			output[i] = 0
		}
		return
	}
	lc := logTbl[c]
	for i, v := range input {
		if v == 0 {
			output[i] = 0
		} else {
			output[i] = expTbl[lc+logTbl[v]]
		}
	}
}

// Coefficient multiply by vector through the exp/log pair.
// Then update result by XOR old result.
func mulVectXORNoTbl(c byte, input, output []byte) {
	if c == 0 {
		return
	}
	lc := logTbl[c]
	for i, v := range input {
		if v != 0 {
			output[i] ^= expTbl[lc+logTbl[v]]
		}
	}
}
