// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/referendum/common"
	"github.com/33cn/referendum/common/address"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	lru "github.com/hashicorp/golang-lru"
)

var fromCache *lru.Cache

func init() {
	var err error
	fromCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
}

// Hash 交易hash, 不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

// Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

// Sign 交易签名
func (tx *Transaction) Sign(priv *btcec.PrivateKey) {
	tx.Signature = nil
	sig := ecdsa.Sign(priv, tx.Hash())
	tx.Signature = &Signature{
		Ty:        SECP256K1,
		Pubkey:    priv.PubKey().SerializeCompressed(),
		Signature: sig.Serialize(),
	}
}

// CheckSign 检查交易签名
func (tx *Transaction) CheckSign() bool {
	sign := tx.GetSignature()
	if sign == nil || sign.Ty != SECP256K1 {
		return false
	}
	pub, err := btcec.ParsePubKey(sign.Pubkey)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(sign.Signature)
	if err != nil {
		return false
	}
	return sig.Verify(tx.Hash(), pub)
}

// From 交易发送方地址, 由签名公钥推导
func (tx *Transaction) From() string {
	sign := tx.GetSignature()
	if sign == nil {
		return ""
	}
	key := string(sign.Pubkey)
	if addr, ok := fromCache.Get(key); ok {
		return addr.(string)
	}
	addr := address.PubKeyToAddress(sign.Pubkey).String()
	fromCache.Add(key, addr)
	return addr
}

// Check 交易基本检查: 大小, 手续费
func (tx *Transaction) Check(minFee uint64) error {
	if tx.Size() > MaxTxSize {
		return ErrTxMsgSizeTooBig
	}
	if tx.Fee < minFee {
		return ErrTxFeeTooLow
	}
	return nil
}

// CreateTx 构造一笔交易, payload 为执行器的action
func CreateTx(execer string, action Message, fee uint64, nonce int64) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(action),
		Fee:     fee,
		Nonce:   nonce,
	}
}
