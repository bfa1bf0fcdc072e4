// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merkle 计算区块交易和状态变更的 merkle root
package merkle

import (
	"bytes"

	"github.com/33cn/referendum/common"
)

var zeroHash [32]byte

// GetHashFromTwoHash 计算左右节点hash的父hash
func GetHashFromTwoHash(left []byte, right []byte) []byte {
	if left == nil || right == nil {
		return nil
	}
	parent := make([]byte, len(left)+len(right))
	copy(parent, left)
	copy(parent[len(left):], right)
	hash := common.Sha2Sum(parent)
	return hash[:]
}

// Computation 逐层计算, 奇数个节点时复制最后一个
// mutated 表示同一层最后两个节点相同 (CVE-2012-2459), 调用者应视为非法
// position 为叶子下标, 同时返回它的 branch
func Computation(leaves [][]byte, position int) (roothash []byte, mutated bool, branch [][]byte) {
	if len(leaves) == 0 {
		return nil, false, nil
	}
	level := make([][]byte, len(leaves))
	copy(level, leaves)
	index := position
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		} else if bytes.Equal(level[len(level)-1], level[len(level)-2]) {
			mutated = true
		}
		if index >= 0 && index < len(level) {
			branch = append(branch, level[index^1])
		}
		next := make([][]byte, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, GetHashFromTwoHash(level[i], level[i+1]))
		}
		level = next
		if index >= 0 {
			index /= 2
		}
	}
	return level[0], mutated, branch
}

// GetMerkleRoot 获取merkle roothash, 没有叶子时返回全0
func GetMerkleRoot(leaves [][]byte) []byte {
	if len(leaves) == 0 {
		return zeroHash[:]
	}
	root, _, _ := Computation(leaves, -1)
	return root
}

// GetMerkleRootAndBranch 获取 roothash 以及指定下标的 branch, position 从0开始
func GetMerkleRootAndBranch(leaves [][]byte, position int) ([]byte, [][]byte) {
	root, _, branch := Computation(leaves, position)
	return root, branch
}

// GetMerkleRootFromBranch 通过branch获取对应的roothash, 用于证明某个叶子属于该树
func GetMerkleRootFromBranch(branch [][]byte, leaf []byte, index uint32) []byte {
	hash := leaf
	for _, b := range branch {
		if index&1 != 0 {
			hash = GetHashFromTwoHash(b, hash)
		} else {
			hash = GetHashFromTwoHash(hash, b)
		}
		index >>= 1
	}
	return hash
}
