// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB badger 后端
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB 打开或创建 dir/name.db
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

//SetSync badger 的写入在 Update 返回时已经持久化
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

//DeleteSync 删除同步
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats 统计
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{"badger.lsm": itoa(int(lsm)), "badger.vlog": itoa(int(vlog))}
}

//Iterator 迭代器
func (db *GoBadgerDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{it: it, txn: txn, itBase: newItBase(start, end, reverse)}
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type goBadgerDBIt struct {
	itBase
	it  *badger.Iterator
	txn *badger.Txn
	err error
}

//Rewind 正序到 start, 逆序到 end 之前
func (it *goBadgerDBIt) Rewind() bool {
	if !it.reverse {
		it.it.Seek(it.start)
		return it.Valid()
	}
	if it.end == nil {
		it.it.Rewind()
		return it.Valid()
	}
	// 逆序 Seek 定位到 <= end 的第一个, end 本身不在范围内
	it.it.Seek(it.end)
	if it.it.Valid() && bytes.Equal(it.it.Item().Key(), it.end) {
		it.it.Next()
	}
	return it.Valid()
}

func (it *goBadgerDBIt) Next() bool {
	it.it.Next()
	return it.Valid()
}

func (it *goBadgerDBIt) Seek(key []byte) bool {
	if it.reverse && it.end != nil && bytes.Compare(key, it.end) >= 0 {
		return it.Rewind()
	}
	if !it.reverse && bytes.Compare(key, it.start) < 0 {
		key = it.start
	}
	it.it.Seek(key)
	return it.Valid()
}

func (it *goBadgerDBIt) Valid() bool {
	return it.it.Valid() && it.checkKey(it.it.Item().Key())
}

func (it *goBadgerDBIt) Key() []byte {
	return it.it.Item().Key()
}

func (it *goBadgerDBIt) Value() []byte {
	return it.ValueCopy()
}

func (it *goBadgerDBIt) ValueCopy() []byte {
	value, err := it.it.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *goBadgerDBIt) Error() error {
	return it.err
}

func (it *goBadgerDBIt) Close() {
	it.it.Close()
	it.txn.Discard()
}

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (b *goBadgerDBBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value), false})
	b.size += len(value)
}

func (b *goBadgerDBBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil, true})
	b.size++
}

// Write 一个 badger 事务写入, 事务过大时分段提交
func (b *goBadgerDBBatch) Write() error {
	txn := b.db.db.NewTransaction(true)
	for _, kv := range b.writes {
		err := b.apply(txn, kv)
		if err == badger.ErrTxnTooBig {
			if err = txn.Commit(); err != nil {
				blog.Error("Write", "error", err)
				return err
			}
			txn = b.db.db.NewTransaction(true)
			err = b.apply(txn, kv)
		}
		if err != nil {
			txn.Discard()
			blog.Error("Write", "error", err)
			return err
		}
	}
	if err := txn.Commit(); err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	return nil
}

func (b *goBadgerDBBatch) apply(txn *badger.Txn, kv kv) error {
	if kv.del {
		return txn.Delete(kv.k)
	}
	return txn.Set(kv.k, kv.v)
}

func (b *goBadgerDBBatch) ValueSize() int {
	return b.size
}

func (b *goBadgerDBBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
