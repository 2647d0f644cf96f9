// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"
)

// Equal reports shape-and-coefficient equality: two
// expressions are equal when they have the same kind, outer
// coefficient, exponent (Monomial only) and inner expression, or — for
// Sum/Product — the same multiset of terms.
func (e Expression) Equal(o Expression) bool {
	if e.kind != o.kind {
		return false
	}
	if e.a != o.a {
		return false
	}
	switch e.kind {
	case KindConstant:
		return true
	case KindMonomial:
		if e.p != o.p {
			return false
		}
		return identityOrInner(e.inner).Equal(identityOrInner(o.inner))
	case KindNaturalExponent:
		return identityOrInner(e.inner).Equal(identityOrInner(o.inner))
	case KindSum, KindProduct:
		if len(e.terms) != len(o.terms) {
			return false
		}
		for i := range e.terms {
			if !e.terms[i].Equal(o.terms[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// shapeHash is an order-invariant-at-the-multiset-level structural hash:
// Sum/Product children are hashed in their already-canonical (sorted)
// order, so two expressions with the same multiset of terms hash
// identically regardless of construction order.
func shapeHash(e Expression) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	writeU64(uint64(e.kind))
	writeFloat(e.a)
	switch e.kind {
	case KindMonomial:
		writeFloat(e.p)
		writeU64(shapeHash(identityOrInner(e.inner)))
	case KindNaturalExponent:
		writeU64(shapeHash(identityOrInner(e.inner)))
	case KindSum, KindProduct:
		for _, t := range e.terms {
			writeU64(shapeHash(t))
		}
	}
	return h.Sum64()
}

// sortByShape orders terms by their structural hash, giving Sum/Product
// children a stable canonical (multiset) order.
func sortByShape(terms []Expression) {
	sort.Slice(terms, func(i, j int) bool {
		hi, hj := shapeHash(terms[i]), shapeHash(terms[j])
		if hi != hj {
			return hi < hj
		}
		return false
	})
}
