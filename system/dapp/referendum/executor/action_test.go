// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math"
	"testing"

	rty "github.com/33cn/referendum/system/dapp/referendum/types"
	"github.com/33cn/referendum/types"
	"github.com/33cn/referendum/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	m map[string][]byte
}

func (kv *memKV) Get(key []byte) ([]byte, error) {
	v, ok := kv.m[string(key)]
	if !ok {
		return nil, types.ErrNotFound
	}
	return v, nil
}

func (kv *memKV) Set(key []byte, value []byte) error {
	kv.m[string(key)] = value
	return nil
}

func newTestReferendum(db *memKV, blocktime int64) *Referendum {
	r := newReferendum().(*Referendum)
	r.SetStateDB(db)
	r.SetEnv(1, blocktime)
	return r
}

func TestCreateMarketTotalOverflow(t *testing.T) {
	db := &memKV{m: map[string][]byte{}}
	r := newTestReferendum(db, 1000)
	authority, priv := util.Genaddress()

	vaultAddr, nonce, err := rty.VaultAddress()
	require.NoError(t, err)
	vault := &rty.VaultAccount{Authority: authority, TotalMarkets: math.MaxUint64, Nonce: nonce}
	require.NoError(t, db.Set(stateKey(vaultAddr), types.Encode(vault)))

	create := &rty.ReferendumCreateMarket{MarketId: "m1", Question: "Q?", EndTimestamp: 2000}
	tx := rty.CreateMarketTx(create, 0, 1)
	tx.Sign(priv)
	_, err = newAction(r, tx, 0).CreateMarket(create)
	assert.Equal(t, types.ErrOverflow, err)

	//市场没有写入
	market, _, err := rty.MarketAddress("m1")
	require.NoError(t, err)
	_, err = db.Get(stateKey(market))
	assert.Equal(t, types.ErrNotFound, err)

	//计数未满时正常创建
	vault.TotalMarkets = math.MaxUint64 - 1
	require.NoError(t, db.Set(stateKey(vaultAddr), types.Encode(vault)))
	receipt, err := newAction(r, tx, 0).CreateMarket(create)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 2)
	loaded, _, err := loadVault(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), loaded.TotalMarkets)
}
