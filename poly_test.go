// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rsfec

import (
	"bytes"
	"math/rand"
	"testing"
	"time"
)

// Adding the same polynomial twice must give the original back.
func TestPolyAddSelfInverse(t *testing.T) {

	rand.Seed(time.Now().UnixNano())

	for i := 0; i < 1024; i++ {
		na := rand.Intn(32) + 1
		nb := rand.Intn(na) + 1 // len(b) <= len(a)
		a := make(poly, na)
		b := make(poly, nb)
		fillRandom(a)
		fillRandom(b)

		got := a.add(b).add(b)
		if !bytes.Equal(got, a) {
			t.Fatalf("add not self-inverse, a: %v, b: %v, got: %v", a, b, got)
		}
	}
}

func TestPolyAddAlign(t *testing.T) {
	a := poly{1, 2, 3}
	b := poly{5}
	sum := a.add(b)
	if !bytes.Equal(sum, poly{1, 2, 6}) {
		t.Fatalf("expected {1,2,6}, got %v", sum)
	}
}

func TestPolyEval(t *testing.T) {
	p := poly{2, 3} // 2x + 3
	// 2*4 ^ 3 = 8 ^ 3 = 11
	if v := p.eval(4); v != 11 {
		t.Fatalf("expected 11, got %d", v)
	}
	if v := (poly{1}).eval(200); v != 1 {
		t.Fatalf("constant poly: expected 1, got %d", v)
	}
	if v := (poly{1, 0}).eval(77); v != 77 {
		t.Fatalf("x at 77: expected 77, got %d", v)
	}
}

func TestPolyScale(t *testing.T) {
	p := poly{1, 2, 16}
	s := p.scale(16)
	want := poly{16, 32, 29} // 16*16 reduces to 29
	if !bytes.Equal(s, want) {
		t.Fatalf("expected %v, got %v", want, s)
	}
}

func TestPolyMul(t *testing.T) {
	// (x+1)^2 = x^2+1 in characteristic 2.
	prod := poly{1, 1}.mul(poly{1, 1})
	if !bytes.Equal(prod, poly{1, 0, 1}) {
		t.Fatalf("(x+1)^2: expected {1,0,1}, got %v", prod)
	}
	// (2x+1)^2 = 4x^2+1.
	prod = poly{2, 1}.mul(poly{2, 1})
	if !bytes.Equal(prod, poly{4, 0, 1}) {
		t.Fatalf("(2x+1)^2: expected {4,0,1}, got %v", prod)
	}
}

// a == q*b + r for random dividends and random monic divisors.
func TestPolyDiv(t *testing.T) {

	rand.Seed(time.Now().UnixNano())

	for i := 0; i < 1024; i++ {
		na := rand.Intn(16) + 2
		nb := rand.Intn(na-1) + 2
		a := make(poly, na)
		b := make(poly, nb)
		fillRandom(a)
		fillRandom(b)
		b[0] = 1 // monic

		q, r := a.div(b)
		if len(r) != len(b)-1 {
			t.Fatalf("remainder length: expected %d, got %d", len(b)-1, len(r))
		}
		back := q.mul(b).add(r)
		if !bytes.Equal(back, a) {
			t.Fatalf("q*b+r != a, a: %v, b: %v", a, b)
		}
	}
}

// Dividing by x^k just splits off the k low-order coefficients.
func TestPolyDivByXk(t *testing.T) {
	a := poly{7, 6, 5, 4, 3}
	mod := poly{1, 0, 0} // x^2
	q, r := a.div(mod)
	if !bytes.Equal(q, poly{7, 6, 5}) || !bytes.Equal(r, poly{4, 3}) {
		t.Fatalf("got q: %v, r: %v", q, r)
	}
}

// The canonical generator polynomial for 4 parity symbols under 0x11d.
func TestGenPoly(t *testing.T) {
	g := genPoly(4)
	want := poly{1, 15, 54, 120, 64}
	if !bytes.Equal(g, want) {
		t.Fatalf("expected %v, got %v", want, g)
	}
	if len(genPoly(10)) != 11 {
		t.Fatal("generator degree must equal parity count")
	}
}

// Syndromes of any freshly encoded codeword are all zero.
func TestSyndromePoly(t *testing.T) {

	rand.Seed(time.Now().UnixNano())

	r, err := New(8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 128; i++ {
		msg := make([]byte, rand.Intn(200)+1)
		fillRandom(msg)
		cw := r.Encode(msg)
		if !syndromePoly(cw, 8).allZero() {
			t.Fatal("valid codeword must have zero syndromes")
		}
		// A single flipped symbol must be visible in the syndromes.
		cw[rand.Intn(len(cw))] ^= 0x55
		if syndromePoly(cw, 8).allZero() {
			t.Fatal("corrupted codeword must have non-zero syndromes")
		}
	}
}

func TestErrLocatorPoly(t *testing.T) {
	if !bytes.Equal(errLocatorPoly(nil), poly{1}) {
		t.Fatal("empty locator must be 1")
	}
	// (1 + 2^3*x) == {8, 1}.
	if !bytes.Equal(errLocatorPoly([]int{3}), poly{8, 1}) {
		t.Fatal("single position locator mismatched")
	}
	// The locator vanishes at the inverse of each position's root.
	loc := errLocatorPoly([]int{2, 5, 9})
	for _, p := range []int{2, 5, 9} {
		if loc.eval(Inv(Pow(2, p))) != 0 {
			t.Fatalf("locator must vanish for position %d", p)
		}
	}
}
