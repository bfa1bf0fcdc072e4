// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/memdb"
)

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB 内存数据库, 测试和临时执行使用
type GoMemDB struct {
	db *memdb.DB
}

// NewGoMemDB memdb 不需要创建文件
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: memdb.New(comparer.DefaultComparer, 0)}, nil
}

// Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	v, err := db.db.Get(key)
	if err != nil {
		if err == errors.ErrNotFound {
			return nil, ErrNotFoundInDb
		}
		return nil, err
	}
	return cloneByte(v), nil
}

// Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	return db.db.Put(key, value)
}

// SetSync 同步
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.db.Put(key, value)
}

// Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	err := db.db.Delete(key)
	if err == errors.ErrNotFound {
		return nil
	}
	return err
}

// DeleteSync 删除同步
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close 释放内存
func (db *GoMemDB) Close() {
	db.db.Reset()
}

// Stats 统计
func (db *GoMemDB) Stats() map[string]string {
	return map[string]string{"memdb.len": itoa(db.db.Len()), "memdb.size": itoa(db.db.Size())}
}

// Iterator 迭代器
func (db *GoMemDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	base := newItBase(start, end, reverse)
	return &goLevelDBIt{db.db.NewIterator(base.rangeOf()), base}
}

// NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kv struct {
	k, v []byte
	del  bool
}

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value), false})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil, true})
	b.size++
}

func (b *memBatch) Write() error {
	for _, kv := range b.writes {
		var err error
		if kv.del {
			err = b.db.Delete(kv.k)
		} else {
			err = b.db.Set(kv.k, kv.v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
