// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testnode

import (
	"testing"

	"github.com/33cn/referendum/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock(t *testing.T) {
	mock := New(nil)
	defer mock.Close()
	amount := mock.GetCfg().Coins.GenesisAmount
	for i := range TestPrivkeyHex {
		assert.Equal(t, amount, mock.GetBalance(mock.GetAddr(i)))
	}
	assert.Equal(t, mock.GetKey(0), mock.GetGenesisKey())

	to, _ := mock.Genaddress()
	start := mock.BlockTime()
	receipt, err := mock.ExecTx(mock.CreateCoinsTx(mock.GetKey(0), to, types.Coin))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, types.Coin, mock.GetBalance(to))
	assert.Equal(t, start+1, mock.BlockTime())

	mock.Advance(100)
	result, err := mock.ExecTxs()
	require.NoError(t, err)
	assert.Equal(t, start+102, result.Header.BlockTime)
	assert.Equal(t, int64(2), result.Header.Height)

	//余额不足
	_, poor := mock.Genaddress()
	_, err = mock.ExecTx(mock.CreateCoinsTx(poor, to, types.Coin))
	assert.Equal(t, types.ErrNoBalance, err)
}
