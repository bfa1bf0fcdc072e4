// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"testing"

	"github.com/33cn/referendum/common/address"
	"github.com/stretchr/testify/assert"
)

func TestGenaddress(t *testing.T) {
	addr, priv := Genaddress()
	assert.NoError(t, address.CheckAddress(addr))
	assert.Equal(t, addr, PrivkeyAddr(priv))

	same := HexToPrivkey("0x" + "CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	assert.Equal(t, PrivkeyAddr(same), PrivkeyAddr(HexToPrivkey("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")))
	assert.Panics(t, func() { HexToPrivkey("1234") })
}

func TestGenCoinsTxs(t *testing.T) {
	_, priv := Genaddress()
	txs := GenCoinsTxs(priv, 3)
	assert.Len(t, txs, 3)
	for _, tx := range txs {
		assert.True(t, tx.CheckSign())
		assert.Equal(t, PrivkeyAddr(priv), tx.From())
	}
	assert.NotEqual(t, txs[0].Hash(), txs[1].Hash())
	JSONPrint(t, txs[0])
}
