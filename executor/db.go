// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"
	"sort"

	dbm "github.com/33cn/referendum/common/db"
	"github.com/33cn/referendum/types"
)

// kvCache 区块内的读写缓存
// cache 保存已经提交的交易的修改, txcache 保存当前交易的修改
// value 为 nil 表示删除
type kvCache struct {
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
	db      dbm.DB
}

func newKVCache(db dbm.DB) kvCache {
	return kvCache{cache: make(map[string][]byte), db: db}
}

func (c *kvCache) resetTx() {
	c.intx = false
	c.txcache = nil
	c.keys = nil
}

// Begin 开始一个交易
func (c *kvCache) Begin() {
	c.intx = true
	c.keys = nil
	c.txcache = nil
}

// Rollback 丢弃当前交易的修改
func (c *kvCache) Rollback() {
	c.resetTx()
}

// Commit 当前交易的修改合并到区块缓存
func (c *kvCache) Commit() error {
	for k, v := range c.txcache {
		c.cache[k] = v
	}
	c.resetTx()
	return nil
}

// GetSetKeys 当前交易修改过的key, 按修改顺序
func (c *kvCache) GetSetKeys() (keys []string) {
	return c.keys
}

func (c *kvCache) lookup(skey string) ([]byte, bool) {
	if c.intx && c.txcache != nil {
		if value, ok := c.txcache[skey]; ok {
			return value, true
		}
	}
	value, ok := c.cache[skey]
	return value, ok
}

// Get 先查缓存, 再查数据库
func (c *kvCache) Get(key []byte) ([]byte, error) {
	if value, ok := c.lookup(string(key)); ok {
		if value == nil {
			return nil, types.ErrNotFound
		}
		return value, nil
	}
	value, err := c.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set 写入缓存
func (c *kvCache) Set(key []byte, value []byte) error {
	skey := string(key)
	if c.intx {
		if c.txcache == nil {
			c.txcache = make(map[string][]byte)
		}
		c.keys = append(c.keys, skey)
		c.txcache[skey] = value
		return nil
	}
	c.cache[skey] = value
	return nil
}

// writeTo 区块缓存写入 batch, 返回按 key 排序的修改
func (c *kvCache) writeTo(batch dbm.Batch) []*types.KeyValue {
	kvs := make([]*types.KeyValue, 0, len(c.cache))
	for k, v := range c.cache {
		kvs = append(kvs, &types.KeyValue{Key: []byte(k), Value: v})
	}
	sort.Slice(kvs, func(i, j int) bool {
		return bytes.Compare(kvs[i].Key, kvs[j].Key) < 0
	})
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
			continue
		}
		batch.Set(kv.Key, kv.Value)
	}
	return kvs
}

// StateDB 状态数据库, 每个交易在 Begin 和 Commit/Rollback 之间执行
type StateDB struct {
	kvCache
}

// NewStateDB 新建状态数据库
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{kvCache: newKVCache(db)}
}

// LocalDB 本地数据库, 保存 ExecLocal 产生的索引, 不参与状态hash
// List 和 PrefixCount 合并缓存和数据库中的数据
type LocalDB struct {
	kvCache
}

// NewLocalDB 新建本地数据库
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{kvCache: newKVCache(db)}
}

func (l *LocalDB) hasCached(prefix []byte) bool {
	for k := range l.cache {
		if bytes.HasPrefix([]byte(k), prefix) {
			return true
		}
	}
	for k := range l.txcache {
		if bytes.HasPrefix([]byte(k), prefix) {
			return true
		}
	}
	return false
}

// merged 数据库和缓存合并后的前缀数据, 按 key 升序
func (l *LocalDB) merged(prefix []byte) []*types.KeyValue {
	values := make(map[string][]byte)
	it := l.db.Iterator(prefix, nil, false)
	for it.Rewind(); it.Valid(); it.Next() {
		values[string(it.Key())] = it.ValueCopy()
	}
	it.Close()
	overlay := func(m map[string][]byte) {
		for k, v := range m {
			if !bytes.HasPrefix([]byte(k), prefix) {
				continue
			}
			if v == nil {
				delete(values, k)
				continue
			}
			values[k] = v
		}
	}
	overlay(l.cache)
	if l.intx {
		overlay(l.txcache)
	}
	kvs := make([]*types.KeyValue, 0, len(values))
	for k, v := range values {
		kvs = append(kvs, &types.KeyValue{Key: []byte(k), Value: v})
	}
	sort.Slice(kvs, func(i, j int) bool {
		return bytes.Compare(kvs[i].Key, kvs[j].Key) < 0
	})
	return kvs
}

// List 按前缀列出数据, 从 key 之后开始(不包含key), count <= 0 表示全部
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	var values [][]byte
	if !l.hasCached(prefix) {
		values = dbm.NewListHelper(l.db).List(prefix, key, count, direction)
	} else {
		values = listKVs(l.merged(prefix), key, count, direction)
	}
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

// PrefixCount 前缀数量
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	if !l.hasCached(prefix) {
		return dbm.NewListHelper(l.db).PrefixCount(prefix)
	}
	return int64(len(l.merged(prefix)))
}

func listKVs(kvs []*types.KeyValue, key []byte, count, direction int32) (values [][]byte) {
	if direction == dbm.ListDESC {
		for i, j := 0, len(kvs)-1; i < j; i, j = i+1, j-1 {
			kvs[i], kvs[j] = kvs[j], kvs[i]
		}
	}
	for _, kv := range kvs {
		if len(key) > 0 {
			cmp := bytes.Compare(kv.Key, key)
			if (direction == dbm.ListDESC && cmp >= 0) || (direction != dbm.ListDESC && cmp <= 0) {
				continue
			}
		}
		values = append(values, kv.Value)
		if int32(len(values)) == count {
			break
		}
	}
	return values
}
