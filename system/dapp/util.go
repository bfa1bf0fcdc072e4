// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"fmt"

	"github.com/33cn/referendum/common/db"
	"github.com/33cn/referendum/types"
)

// HeightIndexStr 区块高度和交易序号组成的有序字符串
func HeightIndexStr(height, index int64) string {
	v := height*types.MaxTxsPerBlock + index
	return fmt.Sprintf("%018d", v)
}

// KVCreator 记录执行过程中产生的 kv, Add 同时写入状态数据库
type KVCreator struct {
	kvs  []*types.KeyValue
	kvdb db.KV
}

// NewKVCreator new
func NewKVCreator(kv db.KV) *KVCreator {
	return &KVCreator{kvdb: kv}
}

func (c *KVCreator) add(key, value []byte, set bool) *KVCreator {
	c.kvs = append(c.kvs, &types.KeyValue{Key: key, Value: value})
	if set {
		err := c.kvdb.Set(key, value)
		if err != nil {
			panic(err)
		}
	}
	return c
}

// Add 写入数据库并记录
func (c *KVCreator) Add(key, value []byte) *KVCreator {
	return c.add(key, value, true)
}

// AddMsg proto 编码后写入
func (c *KVCreator) AddMsg(key []byte, msg types.Message) *KVCreator {
	return c.Add(key, types.Encode(msg))
}

// AddKV 只记录, 不写入
func (c *KVCreator) AddKV(key, value []byte) *KVCreator {
	return c.add(key, value, false)
}

// AddList 合并其他模块产生的kv
func (c *KVCreator) AddList(list []*types.KeyValue) *KVCreator {
	c.kvs = append(c.kvs, list...)
	return c
}

// KVList 所有记录
func (c *KVCreator) KVList() []*types.KeyValue {
	return c.kvs
}
