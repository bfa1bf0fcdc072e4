// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merkle

import (
	"testing"

	"github.com/33cn/referendum/common"
	"github.com/stretchr/testify/assert"
)

func leaves(n int) [][]byte {
	var l [][]byte
	for i := 0; i < n; i++ {
		l = append(l, common.Sha256([]byte{byte(i)}))
	}
	return l
}

func TestMerkleRootSmall(t *testing.T) {
	assert.Equal(t, zeroHash[:], GetMerkleRoot(nil))

	l := leaves(1)
	assert.Equal(t, l[0], GetMerkleRoot(l))

	l = leaves(2)
	assert.Equal(t, GetHashFromTwoHash(l[0], l[1]), GetMerkleRoot(l))

	//奇数个复制最后一个
	l = leaves(3)
	expect := GetHashFromTwoHash(GetHashFromTwoHash(l[0], l[1]), GetHashFromTwoHash(l[2], l[2]))
	assert.Equal(t, expect, GetMerkleRoot(l))
}

func TestMerkleBranch(t *testing.T) {
	for n := 1; n <= 9; n++ {
		l := leaves(n)
		for i := 0; i < n; i++ {
			root, branch := GetMerkleRootAndBranch(l, i)
			assert.Equal(t, root, GetMerkleRootFromBranch(branch, l[i], uint32(i)), "n=%d i=%d", n, i)
		}
	}
}

func TestMerkleMutated(t *testing.T) {
	l := leaves(6)
	root6, mutated, _ := Computation(l, -1)
	assert.False(t, mutated)

	l = append(l, l[4], l[5])
	root8, mutated, _ := Computation(l, -1)
	assert.True(t, mutated)
	assert.Equal(t, root6, root8)
}

func TestGetHashFromTwoHashNil(t *testing.T) {
	assert.Nil(t, GetHashFromTwoHash(nil, []byte{1}))
}
