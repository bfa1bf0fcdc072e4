// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 数据库接口以及 goleveldb, memdb, badger 三种后端
package db

import (
	"bytes"
	"errors"
	"strconv"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var dblog = log.New("module", "db")

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// ErrDBBackend 未注册的数据库后端
var ErrDBBackend = errors.New("ErrDBBackend")

// KV 最基本的读写接口, StateDB 和 LocalDB 都实现它
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// KVDB 本地数据库, 执行器的 ExecLocal 和 Query 使用
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
	PrefixCount(prefix []byte) int64
}

// IteratorDB 支持迭代的数据库
type IteratorDB interface {
	// end 为 nil 时, 迭代所有以 start 为前缀的 key
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

// DB 数据库后端
type DB interface {
	KV
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

// Batch 批量写, Write 之前不可见
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator 迭代器, Next 的方向由 reverse 决定
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	// Seek 正序定位到 >= key 的第一个, 逆序定位到 <= key 的第一个
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//-----------------------------------------------------------------------------

// 后端名称
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 根据后端名称创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		dblog.Error("NewDB", "backend", backend, "err", ErrDBBackend)
		return nil, ErrDBBackend
	}
	db, err := creator(name, dir, int(cache))
	if err != nil {
		dblog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, err
	}
	return db, nil
}

type itBase struct {
	start   []byte
	end     []byte
	reverse bool
}

func newItBase(start, end []byte, reverse bool) itBase {
	if end == nil && len(start) > 0 {
		end = util.BytesPrefix(start).Limit
	}
	return itBase{start: start, end: end, reverse: reverse}
}

// [start, end)
func (it *itBase) checkKey(key []byte) bool {
	if bytes.Compare(key, it.start) < 0 {
		return false
	}
	if it.end != nil && bytes.Compare(key, it.end) >= 0 {
		return false
	}
	return true
}

func (it *itBase) rangeOf() *util.Range {
	return &util.Range{Start: it.start, Limit: it.end}
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
