// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util 测试和工具使用的交易构造函数
package util

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/33cn/referendum/common"
	"github.com/33cn/referendum/common/address"
	cty "github.com/33cn/referendum/system/dapp/coins/types"
	"github.com/33cn/referendum/types"
	"github.com/btcsuite/btcd/btcec/v2"
)

//Genaddress : generate a address
func Genaddress() (string, *btcec.PrivateKey) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		panic(err)
	}
	return PrivkeyAddr(priv), priv
}

// PrivkeyAddr 私钥对应的地址
func PrivkeyAddr(priv *btcec.PrivateKey) string {
	return address.PubKeyToAddress(priv.PubKey().SerializeCompressed()).String()
}

// HexToPrivkey hex 私钥, 格式错误时 panic
func HexToPrivkey(s string) *btcec.PrivateKey {
	b, err := common.FromHex(s)
	if err != nil {
		panic(err)
	}
	if len(b) != 32 {
		panic(fmt.Sprintf("bad private key length %d", len(b)))
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return priv
}

// CreateCoinsTx 签名的转账交易
func CreateCoinsTx(priv *btcec.PrivateKey, to string, amount, fee uint64, nonce int64) *types.Transaction {
	tx := cty.CreateTransfer(to, amount, "", fee, nonce)
	tx.Sign(priv)
	return tx
}

//GenCoinsTxs : generate txs to be executed on exector coin
func GenCoinsTxs(priv *btcec.PrivateKey, n int64) (txs []*types.Transaction) {
	to, _ := Genaddress()
	for i := 0; i < int(n); i++ {
		txs = append(txs, CreateCoinsTx(priv, to, uint64(n+1), 0, int64(i)))
	}
	return txs
}

// JSONPrint : print in json format
func JSONPrint(t *testing.T, input interface{}) {
	data, err := json.MarshalIndent(input, "", "\t")
	if err != nil {
		t.Error(err)
		return
	}
	if t == nil {
		fmt.Println(string(data))
	} else {
		t.Log(string(data))
	}
}
