// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"github.com/33cn/referendum/common"
	"github.com/33cn/referendum/common/merkle"
)

// TxHash 交易hash的merkle根
func (m *Block) TxHash() []byte {
	leaves := make([][]byte, len(m.Txs))
	for i, tx := range m.Txs {
		leaves[i] = tx.Hash()
	}
	return merkle.GetMerkleRoot(leaves)
}

// Hash 区块头hash
func (m *Header) Hash() []byte {
	return common.Sha256(Encode(m))
}

// NewErrReceipt 失败交易的回执, 只记录错误信息
func NewErrReceipt(err error) *ReceiptData {
	return &ReceiptData{Ty: ExecErr, Logs: []*ReceiptLog{{Ty: TyLogErr, Log: []byte(err.Error())}}}
}

// MergeReceipt 合并两个回执
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 != nil {
		receipt1.KV = append(receipt1.KV, receipt2.KV...)
		receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	}
	return receipt1
}

// BlockKey 区块高度格式化, 便于按顺序遍历
func BlockKey(height int64) string {
	return fmt.Sprintf("%012d", height)
}
