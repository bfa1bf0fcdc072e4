// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/33cn/referendum/common/db"
	"github.com/33cn/referendum/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemDB(t *testing.T) dbm.DB {
	db, err := dbm.NewDB("test", "memdb", "", 0)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestStateDBRollback(t *testing.T) {
	db := newMemDB(t)
	require.NoError(t, db.Set([]byte("mavl-a"), []byte("1")))
	statedb := NewStateDB(db)

	statedb.Begin()
	assert.NoError(t, statedb.Set([]byte("mavl-a"), []byte("2")))
	assert.NoError(t, statedb.Set([]byte("mavl-b"), []byte("3")))
	v, err := statedb.Get([]byte("mavl-a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
	assert.Equal(t, []string{"mavl-a", "mavl-b"}, statedb.GetSetKeys())
	statedb.Rollback()

	v, err = statedb.Get([]byte("mavl-a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = statedb.Get([]byte("mavl-b"))
	assert.Equal(t, types.ErrNotFound, err)
	assert.Nil(t, statedb.GetSetKeys())

	statedb.Begin()
	assert.NoError(t, statedb.Set([]byte("mavl-b"), []byte("3")))
	assert.NoError(t, statedb.Set([]byte("mavl-a"), nil))
	assert.NoError(t, statedb.Commit())
	_, err = statedb.Get([]byte("mavl-a"))
	assert.Equal(t, types.ErrNotFound, err)

	//提交之前不会写入数据库
	v, err = db.Get([]byte("mavl-a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	batch := db.NewBatch(true)
	kvs := statedb.writeTo(batch)
	require.NoError(t, batch.Write())
	require.Len(t, kvs, 2)
	assert.Equal(t, []byte("mavl-a"), kvs[0].Key)
	assert.Nil(t, kvs[0].Value)
	assert.Equal(t, []byte("mavl-b"), kvs[1].Key)
	_, err = db.Get([]byte("mavl-a"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	v, err = db.Get([]byte("mavl-b"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("3"), v)
}

func TestLocalDBList(t *testing.T) {
	db := newMemDB(t)
	for _, k := range []string{"LODB-x-1", "LODB-x-3", "LODB-x-5", "LODB-y-1"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}
	localdb := NewLocalDB(db)
	prefix := []byte("LODB-x-")

	values, err := localdb.List(prefix, nil, 0, dbm.ListASC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("LODB-x-1"), []byte("LODB-x-3"), []byte("LODB-x-5")}, values)
	assert.Equal(t, int64(3), localdb.PrefixCount(prefix))

	localdb.Begin()
	require.NoError(t, localdb.Set([]byte("LODB-x-2"), []byte("LODB-x-2")))
	require.NoError(t, localdb.Set([]byte("LODB-x-3"), nil))
	values, err = localdb.List(prefix, nil, 0, dbm.ListASC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("LODB-x-1"), []byte("LODB-x-2"), []byte("LODB-x-5")}, values)
	require.NoError(t, localdb.Commit())

	values, err = localdb.List(prefix, []byte("LODB-x-5"), 2, dbm.ListDESC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("LODB-x-2"), []byte("LODB-x-1")}, values)
	values, err = localdb.List(prefix, []byte("LODB-x-1"), 1, dbm.ListASC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("LODB-x-2")}, values)
	assert.Equal(t, int64(3), localdb.PrefixCount(prefix))
	assert.Equal(t, int64(1), localdb.PrefixCount([]byte("LODB-y-")))

	_, err = localdb.List([]byte("LODB-z-"), nil, 0, dbm.ListASC)
	assert.Equal(t, types.ErrNotFound, err)
}

func TestAllowKey(t *testing.T) {
	execer := []byte("referendum")
	assert.True(t, isAllowKeyWrite([]byte("mavl-referendum-abc"), execer))
	assert.True(t, isAllowKeyWrite([]byte("mavl-coins-bty-abc"), execer))
	assert.False(t, isAllowKeyWrite([]byte("mavl-referendumx-abc"), execer))
	assert.False(t, isAllowKeyWrite([]byte("LODB-referendum-abc"), execer))

	assert.NoError(t, isAllowLocalKey(execer, []byte("LODB-referendum-market")))
	assert.Equal(t, types.ErrNotAllowKey, isAllowLocalKey(execer, []byte("LODB-referendum-")))
	assert.Equal(t, types.ErrNotAllowKey, isAllowLocalKey(execer, []byte("LODB-coins-abc")))
}

func TestCheckKV(t *testing.T) {
	kvs := []*types.KeyValue{{Key: []byte("a")}, {Key: []byte("b")}}
	assert.True(t, checkKV([]string{"a", "b", "a"}, kvs))
	assert.True(t, checkKV(nil, kvs))
	assert.False(t, checkKV([]string{"c"}, kvs))
}
