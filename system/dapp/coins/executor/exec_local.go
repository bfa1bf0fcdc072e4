// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	drivers "github.com/33cn/referendum/system/dapp"
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
)

// ExecLocal_Transfer 更新接收统计, 记录双方的交易索引
func (c *Coins) ExecLocal_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	kv, err := updateAddrReciver(c.GetLocalDB(), tx.To, transfer.Amount)
	if err != nil {
		return nil, err
	}
	set := &types.LocalDBSet{KV: []*types.KeyValue{kv}}
	set.KV = append(set.KV, c.addrTxKVs(tx, transfer.Amount, index)...)
	return set, nil
}

// ExecLocal_Genesis 更新接收统计
func (c *Coins) ExecLocal_Genesis(gen *cty.CoinsGenesis, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	kv, err := updateAddrReciver(c.GetLocalDB(), tx.To, gen.Amount)
	if err != nil {
		return nil, err
	}
	set := &types.LocalDBSet{KV: []*types.KeyValue{kv}}
	set.KV = append(set.KV, c.addrTxKVs(tx, gen.Amount, index)...)
	return set, nil
}

func (c *Coins) addrTxKVs(tx *types.Transaction, amount uint64, index int) []*types.KeyValue {
	heightIndex := drivers.HeightIndexStr(c.GetHeight(), int64(index))
	info := &cty.AddrTxInfo{
		Hash:        tx.Hash(),
		Height:      c.GetHeight(),
		Index:       int64(index),
		HeightIndex: heightIndex,
		Amount:      amount,
		From:        tx.From(),
		To:          tx.To,
	}
	value := types.Encode(info)
	kvs := []*types.KeyValue{{Key: calcAddrTxKey(tx.To, heightIndex), Value: value}}
	if info.From != "" && info.From != tx.To {
		kvs = append(kvs, &types.KeyValue{Key: calcAddrTxKey(info.From, heightIndex), Value: value})
	}
	return kvs
}
