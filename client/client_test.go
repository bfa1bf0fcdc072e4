// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client_test

import (
	"encoding/json"
	"testing"

	"github.com/33cn/referendum/client"
	_ "github.com/33cn/referendum/system"
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
	"github.com/33cn/referendum/util"
	"github.com/33cn/referendum/util/testnode"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendTx(t *testing.T) {
	c, err := client.Open("")
	require.NoError(t, err)
	defer c.Close()
	_, err = c.LastHeader()
	assert.Equal(t, types.ErrNotFound, err)

	priv := util.HexToPrivkey(testnode.TestPrivkeyHex[0])
	addr := util.PrivkeyAddr(priv)
	reply, err := c.SendTx(cty.CreateGenesis(addr, 100*types.Coin))
	require.NoError(t, err)
	assert.Equal(t, int64(0), reply.Height)
	assert.Equal(t, "", reply.Err)
	assert.Equal(t, int32(types.ExecOk), reply.Receipt.Ty)

	acc, err := c.GetBalance(addr)
	require.NoError(t, err)
	assert.Equal(t, 100*types.Coin, acc.Balance)

	//余额不足, 区块仍然写入
	tx := cty.CreateTransfer(addr, types.Coin, "", 0, 1)
	other, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	tx.Sign(other)
	reply, err = c.SendTx(tx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reply.Height)
	assert.Equal(t, types.ErrNoBalance.Error(), reply.Err)
	assert.Equal(t, int32(types.ExecErr), reply.Receipt.Ty)

	header, err := c.LastHeader()
	require.NoError(t, err)
	assert.Equal(t, int64(1), header.Height)

	txres, err := c.GetTx(reply.Hash)
	require.NoError(t, err)
	assert.Equal(t, int64(1), txres.Height)
	assert.Equal(t, tx.Hash(), txres.Tx.Hash())
	_, err = c.GetTx("0x00")
	assert.Equal(t, types.ErrNotFound, err)
}

func TestMarshal(t *testing.T) {
	data, err := client.Marshal(&types.Account{Addr: "addr"})
	require.NoError(t, err)
	var acc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &acc))
	assert.Equal(t, "addr", acc["addr"])
	//默认值也输出
	assert.Contains(t, acc, "balance")

	data, err = client.Marshal(&client.TxReply{Hash: "0x01", Height: 2})
	require.NoError(t, err)
	var reply client.TxReply
	require.NoError(t, json.Unmarshal(data, &reply))
	assert.Equal(t, "0x01", reply.Hash)
	assert.Equal(t, int64(2), reply.Height)
}
