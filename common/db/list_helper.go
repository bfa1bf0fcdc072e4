// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//PrefixScan 前缀
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("PrefixScan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
	}
	return values
}

//List 列表, key 为空时从头(ASC)或者尾(DESC)开始, 否则从 key 之后开始, 不包含 key
// count <= 0 表示不限制
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	reverse := direction == ListDESC
	it := db.db.Iterator(prefix, nil, reverse)
	defer it.Close()

	if len(key) == 0 {
		it.Rewind()
	} else if it.Seek(key) && bytes.Equal(it.Key(), key) {
		it.Next()
	}
	var i int32
	for ; it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("List it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return values
}

//PrefixCount 前缀数量
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		count++
	}
	return count
}
