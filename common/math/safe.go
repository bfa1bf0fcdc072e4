// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math checked arithmetic for ledger counters
package math

import (
	"errors"
	"math"
)

// ErrOverflow the result does not fit in 64 bits
var ErrOverflow = errors.New("ErrOverflow")

// SafeAdd returns a+b, or ErrOverflow instead of wrapping
func SafeAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return a, ErrOverflow
	}
	return a + b, nil
}

// SafeSub returns a-b, or ErrOverflow when b > a
func SafeSub(a, b uint64) (uint64, error) {
	if b > a {
		return a, ErrOverflow
	}
	return a - b, nil
}
