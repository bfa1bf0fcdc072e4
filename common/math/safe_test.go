// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeAdd(t *testing.T) {
	v, err := SafeAdd(1, 2)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), v)

	v, err = SafeAdd(math.MaxUint64, 0)
	assert.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)

	v, err = SafeAdd(math.MaxUint64, 1)
	assert.Equal(t, ErrOverflow, err)
	assert.Equal(t, uint64(math.MaxUint64), v)
}

func TestSafeSub(t *testing.T) {
	v, err := SafeSub(5, 5)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), v)

	_, err = SafeSub(4, 5)
	assert.Equal(t, ErrOverflow, err)
}
